package audit

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

// PostgresStore appends audit events to the submission_events table.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed audit store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const appendEventQuery = `
	INSERT INTO submission_events (id, employee_id, email, action, reason, created_at)
	VALUES ($1, $2, $3, $4, $5, $6)
`

func (s *PostgresStore) Append(ctx context.Context, event Event) error {
	var employeeID any
	if event.EmployeeID != uuid.Nil {
		employeeID = event.EmployeeID
	}

	_, err := s.db.ExecContext(ctx, appendEventQuery,
		event.ID,
		employeeID,
		event.Email,
		string(event.Action),
		event.Reason,
		event.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("append submission event: %w", err)
	}
	return nil
}
