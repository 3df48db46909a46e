// Package draft persists in-progress form state so an operator can close the
// form and resume later. Drafts live in three fixed slots; documents are
// never drafted.
package draft

import "context"

// Slot is one of the three fixed draft keys. The version suffix invalidates
// stale drafts when the form shape changes.
type Slot string

const (
	SlotForm      Slot = "employee-form-data-v1"
	SlotEducation Slot = "employee-education-list-v1"
	SlotWork      Slot = "employee-work-list-v1"
)

// Slots lists every draft slot, in clear order.
var Slots = []Slot{SlotForm, SlotEducation, SlotWork}

// Valid reports whether s names a known slot.
func (s Slot) Valid() bool {
	switch s {
	case SlotForm, SlotEducation, SlotWork:
		return true
	}
	return false
}

// Store persists draft payloads per slot. Payloads are opaque JSON; the
// store never inspects them. A failed Save or Clear must not affect the
// form data itself.
type Store interface {
	Save(ctx context.Context, slot Slot, payload []byte) error
	Load(ctx context.Context, slot Slot) ([]byte, error)
	Clear(ctx context.Context, slot Slot) error
}
