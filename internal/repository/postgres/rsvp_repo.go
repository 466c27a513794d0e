package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"eventrsvp/internal/domain"
)

const rsvpColumns = `id, name, will_attend, has_children, children_names, dietary_restriction, created_at`

type rsvpRepository struct {
	DB *sql.DB
}

// NewRSVPRepository returns an RSVPRepository backed by the rsvps table.
func NewRSVPRepository(db *sql.DB) domain.RSVPRepository {
	return &rsvpRepository{DB: db}
}

func (r *rsvpRepository) Insert(ctx context.Context, rsvp *domain.RSVP, nameKey string) (string, error) {
	query := `
		INSERT INTO rsvps (name, name_key, will_attend, has_children, children_names, dietary_restriction, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	var id string
	err := r.DB.QueryRowContext(ctx, query,
		rsvp.Name, nameKey, rsvp.WillAttend, rsvp.HasChildren,
		nullString(rsvp.ChildrenNames), nullString(rsvp.DietaryRestriction), rsvp.Timestamp,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return "", domain.ErrDuplicate
		}
		return "", classify("insert rsvp", err)
	}
	return id, nil
}

func (r *rsvpRepository) GetByID(ctx context.Context, id string) (*domain.RSVP, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrNotFound
	}
	query := `SELECT ` + rsvpColumns + ` FROM rsvps WHERE id = $1`
	return r.scanOne("get rsvp", r.DB.QueryRowContext(ctx, query, id))
}

func (r *rsvpRepository) FindByNameKey(ctx context.Context, nameKey string) (*domain.RSVP, error) {
	query := `SELECT ` + rsvpColumns + ` FROM rsvps WHERE name_key = $1`
	return r.scanOne("find rsvp by name", r.DB.QueryRowContext(ctx, query, nameKey))
}

func (r *rsvpRepository) ListByTimestampDesc(ctx context.Context) ([]*domain.RSVP, error) {
	query := `SELECT ` + rsvpColumns + ` FROM rsvps ORDER BY created_at DESC, created_seq DESC`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, classify("list rsvps", err)
	}
	defer rows.Close()

	rsvps := []*domain.RSVP{}
	for rows.Next() {
		rsvp, err := scanRSVP(rows)
		if err != nil {
			return nil, classify("scan rsvp", err)
		}
		rsvps = append(rsvps, rsvp)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("list rsvps", err)
	}
	return rsvps, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func (r *rsvpRepository) scanOne(op string, row *sql.Row) (*domain.RSVP, error) {
	rsvp, err := scanRSVP(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, classify(op, err)
	}
	return rsvp, nil
}

func scanRSVP(s scanner) (*domain.RSVP, error) {
	var (
		rsvp          domain.RSVP
		childrenNames sql.NullString
		dietary       sql.NullString
		createdAt     time.Time
	)
	if err := s.Scan(&rsvp.ID, &rsvp.Name, &rsvp.WillAttend, &rsvp.HasChildren, &childrenNames, &dietary, &createdAt); err != nil {
		return nil, err
	}
	rsvp.ChildrenNames = stringPtr(childrenNames)
	rsvp.DietaryRestriction = stringPtr(dietary)
	rsvp.Timestamp = createdAt.UTC()
	return &rsvp, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}
