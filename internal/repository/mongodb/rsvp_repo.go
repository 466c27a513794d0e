package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"eventrsvp/internal/domain"
)

// rsvpDocument is the stored shape of an RSVP. NameKey holds the case-folded
// name and is the only field queried for uniqueness.
type rsvpDocument struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty"`
	Name               string             `bson:"name"`
	NameKey            string             `bson:"name_key"`
	WillAttend         bool               `bson:"will_attend"`
	HasChildren        bool               `bson:"has_children"`
	ChildrenNames      *string            `bson:"children_names"`
	DietaryRestriction *string            `bson:"dietary_restriction"`
	Timestamp          time.Time          `bson:"timestamp"`
}

func (d *rsvpDocument) toDomain() *domain.RSVP {
	return &domain.RSVP{
		ID:                 d.ID.Hex(),
		Name:               d.Name,
		WillAttend:         d.WillAttend,
		HasChildren:        d.HasChildren,
		ChildrenNames:      d.ChildrenNames,
		DietaryRestriction: d.DietaryRestriction,
		Timestamp:          d.Timestamp.UTC(),
	}
}

type rsvpRepository struct {
	coll *mongo.Collection
}

// NewRSVPRepository returns an RSVPRepository backed by coll.
func NewRSVPRepository(coll *mongo.Collection) domain.RSVPRepository {
	return &rsvpRepository{coll: coll}
}

// EnsureIndexes creates the unique name_key index that closes the
// check-then-insert race, plus the index backing the list sort.
func EnsureIndexes(ctx context.Context, coll *mongo.Collection) error {
	_, err := coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "name_key", Value: 1}},
			Options: options.Index().SetName("name_key_unique").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "timestamp", Value: -1}, {Key: "_id", Value: -1}},
			Options: options.Index().SetName("timestamp_desc"),
		},
	})
	return classify("create indexes", err)
}

func (r *rsvpRepository) Insert(ctx context.Context, rsvp *domain.RSVP, nameKey string) (string, error) {
	doc := rsvpDocument{
		Name:               rsvp.Name,
		NameKey:            nameKey,
		WillAttend:         rsvp.WillAttend,
		HasChildren:        rsvp.HasChildren,
		ChildrenNames:      rsvp.ChildrenNames,
		DietaryRestriction: rsvp.DietaryRestriction,
		Timestamp:          rsvp.Timestamp,
	}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", domain.ErrDuplicate
		}
		return "", classify("insert rsvp", err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert rsvp: unexpected id type %T", res.InsertedID)
	}
	return id.Hex(), nil
}

func (r *rsvpRepository) GetByID(ctx context.Context, id string) (*domain.RSVP, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	return r.findOne(ctx, "get rsvp", bson.D{{Key: "_id", Value: oid}})
}

func (r *rsvpRepository) FindByNameKey(ctx context.Context, nameKey string) (*domain.RSVP, error) {
	return r.findOne(ctx, "find rsvp by name", bson.D{{Key: "name_key", Value: nameKey}})
}

func (r *rsvpRepository) findOne(ctx context.Context, op string, filter bson.D) (*domain.RSVP, error) {
	var doc rsvpDocument
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, classify(op, err)
	}
	return doc.toDomain(), nil
}

func (r *rsvpRepository) ListByTimestampDesc(ctx context.Context) ([]*domain.RSVP, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}, {Key: "_id", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, classify("list rsvps", err)
	}
	defer cur.Close(ctx)

	rsvps := []*domain.RSVP{}
	for cur.Next(ctx) {
		var doc rsvpDocument
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode rsvp: %w", err)
		}
		rsvps = append(rsvps, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, classify("list rsvps", err)
	}
	return rsvps, nil
}
