// Package audit records submission lifecycle events for operational
// traceability. Emission is fire-and-forget so a slow audit sink never blocks
// a submission.
package audit

import (
	"time"

	"github.com/google/uuid"
)

// Action labels what happened to a submission attempt.
type Action string

const (
	ActionSubmissionAccepted Action = "submission_accepted"
	ActionSubmissionRejected Action = "submission_rejected"
	ActionSubmissionFailed   Action = "submission_failed"
)

// Event is emitted from the submission service. Keep it transport-agnostic
// so stores and sinks can fan out.
type Event struct {
	ID         uuid.UUID
	Timestamp  time.Time
	EmployeeID uuid.UUID
	Email      string
	Action     Action
	Reason     string
}
