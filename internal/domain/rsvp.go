package domain

import (
	"context"
	"time"
)

// RSVP is a guest's attendance confirmation.
// swagger:model RSVP
type RSVP struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	WillAttend         bool      `json:"will_attend"`
	HasChildren        bool      `json:"has_children"`
	ChildrenNames      *string   `json:"children_names"`
	DietaryRestriction *string   `json:"dietary_restriction"`
	Timestamp          time.Time `json:"timestamp"`
}

// NewRSVP returns an RSVP with the given fields. ID is set by the repository on insert.
func NewRSVP(name string, willAttend, hasChildren bool, childrenNames, dietaryRestriction *string, timestamp time.Time) *RSVP {
	return &RSVP{
		Name:               name,
		WillAttend:         willAttend,
		HasChildren:        hasChildren,
		ChildrenNames:      childrenNames,
		DietaryRestriction: dietaryRestriction,
		Timestamp:          timestamp,
	}
}

// RSVPSubmission is the client payload for creating an RSVP.
// Booleans are pointers so that an absent field can be told apart from false.
// swagger:model RSVPSubmission
type RSVPSubmission struct {
	Name               string  `json:"name" validate:"required,min=2"`
	WillAttend         *bool   `json:"will_attend" validate:"required"`
	HasChildren        *bool   `json:"has_children" validate:"required"`
	ChildrenNames      *string `json:"children_names,omitempty"`
	DietaryRestriction *string `json:"dietary_restriction,omitempty"`
}

// RSVPRepository is the persistence port for RSVP records.
// nameKey is the case-folded name produced by validation.NameKey.
type RSVPRepository interface {
	Insert(ctx context.Context, rsvp *RSVP, nameKey string) (id string, err error)
	GetByID(ctx context.Context, id string) (*RSVP, error)
	FindByNameKey(ctx context.Context, nameKey string) (*RSVP, error)
	ListByTimestampDesc(ctx context.Context) ([]*RSVP, error)
}

// RSVPService defines the RSVP registration operations.
type RSVPService interface {
	// Create validates the submission, enforces name uniqueness and stores the RSVP.
	Create(ctx context.Context, sub *RSVPSubmission) (*RSVP, error)
	// List returns every RSVP, most recent first.
	List(ctx context.Context) ([]*RSVP, error)
}

// RSVPNotifier is told about every newly created RSVP.
type RSVPNotifier interface {
	RSVPCreated(ctx context.Context, rsvp *RSVP) error
}
