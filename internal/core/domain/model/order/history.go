package order

import (
	"fmt"
	"time"

	"marketplace/internal/pkg/errs"
)

// ChangedBy is the actor category recorded on a status-history entry.
type ChangedBy string

const (
	ChangedBySystem          ChangedBy = "SYSTEM"
	ChangedByRestaurant      ChangedBy = "RESTAURANT"
	ChangedByDeliveryPartner ChangedBy = "DELIVERY_PARTNER"
)

// Validate checks that the category is one of the known values.
func (c ChangedBy) Validate() error {
	switch c {
	case ChangedBySystem, ChangedByRestaurant, ChangedByDeliveryPartner:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("changedBy",
			fmt.Errorf("%q is not a valid actor category", string(c)))
	}
}

// HistoryEntry is one row of the append-only status audit trail. An order
// gets exactly one entry per transition, including the initial PENDING entry
// written at placement. Entries are never mutated or deleted.
type HistoryEntry struct {
	id        int64
	status    Status
	changedBy ChangedBy
	notes     string
	createdAt time.Time
}

// NewHistoryEntry creates an entry for a transition happening now.
func NewHistoryEntry(status Status, changedBy ChangedBy, notes string) (HistoryEntry, error) {
	if err := status.Validate(); err != nil {
		return HistoryEntry{}, err
	}
	if err := changedBy.Validate(); err != nil {
		return HistoryEntry{}, err
	}

	return HistoryEntry{
		status:    status,
		changedBy: changedBy,
		notes:     notes,
		createdAt: time.Now().UTC(),
	}, nil
}

// RestoreHistoryEntry reconstructs an entry from persistence.
func RestoreHistoryEntry(id int64, status Status, changedBy ChangedBy, notes string, createdAt time.Time) (HistoryEntry, error) {
	if err := status.Validate(); err != nil {
		return HistoryEntry{}, err
	}
	if err := changedBy.Validate(); err != nil {
		return HistoryEntry{}, err
	}

	return HistoryEntry{
		id:        id,
		status:    status,
		changedBy: changedBy,
		notes:     notes,
		createdAt: createdAt,
	}, nil
}

// ID returns the persistence identifier, zero for entries not yet stored.
func (h HistoryEntry) ID() int64 {
	return h.id
}

// Status returns the status the order held after this transition.
func (h HistoryEntry) Status() Status {
	return h.status
}

// ChangedBy returns the actor category that caused the transition.
func (h HistoryEntry) ChangedBy() ChangedBy {
	return h.changedBy
}

// Notes returns the optional free-text note.
func (h HistoryEntry) Notes() string {
	return h.notes
}

// CreatedAt returns when the transition happened.
func (h HistoryEntry) CreatedAt() time.Time {
	return h.createdAt
}
