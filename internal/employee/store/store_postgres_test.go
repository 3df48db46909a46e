package store

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"onboard/internal/employee/models"
	"onboard/pkg/platform/sentinel"
)

func newMockStore(t *testing.T) (*PostgresStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPostgres(db), mock
}

func TestPostgresFindByEmail(t *testing.T) {
	store, mock := newMockStore(t)
	id := uuid.New()

	rows := sqlmock.NewRows([]string{"id", "name", "email", "aadhaar_number", "pan_number", "created_at"}).
		AddRow(id, "Asha Verma", "asha@example.com", nil, nil, time.Now())
	mock.ExpectQuery(`SELECT id, name, email, aadhaar_number, pan_number, created_at`).
		WithArgs("asha@example.com").
		WillReturnRows(rows)

	emp, err := store.FindByEmail(context.Background(), "asha@example.com")
	require.NoError(t, err)
	assert.Equal(t, id, emp.ID)
	assert.Equal(t, "asha@example.com", emp.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresFindByAadhaarNotFound(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT id, name, email, aadhaar_number, pan_number, created_at`).
		WithArgs("123456789012").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "aadhaar_number", "pan_number", "created_at"}))

	_, err := store.FindByAadhaar(context.Background(), "123456789012")
	assert.ErrorIs(t, err, sentinel.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresInsertMapsUniqueViolation(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(`INSERT INTO employees`).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "employees_email_key"})

	err := store.Insert(context.Background(), &models.Employee{
		Name:  "Asha Verma",
		Email: "asha@example.com",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, sentinel.ErrConflict)
	assert.Contains(t, err.Error(), "employees_email_key")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresInsertReturnsIDAndCreatedAt(t *testing.T) {
	store, mock := newMockStore(t)
	id := uuid.New()
	created := time.Now()

	mock.ExpectQuery(`INSERT INTO employees`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(id, created))

	emp := &models.Employee{Name: "Asha Verma", Email: "asha@example.com"}
	require.NoError(t, store.Insert(context.Background(), emp))
	assert.Equal(t, id, emp.ID)
	assert.Equal(t, created, emp.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresUpdateDocumentURLsNotFound(t *testing.T) {
	store, mock := newMockStore(t)
	id := uuid.New()

	mock.ExpectExec(`UPDATE employees SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := store.UpdateDocumentURLs(context.Background(), id, models.DocumentURLs{})
	assert.ErrorIs(t, err, sentinel.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresInsertEducation(t *testing.T) {
	store, mock := newMockStore(t)
	empID := uuid.New()
	entryID := uuid.New()

	mock.ExpectQuery(`INSERT INTO education`).
		WithArgs(empID, "B.Tech", "IIT Bombay", "Computer Science", 2016, "8.9", nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(entryID, time.Now()))

	entry := &models.EducationEntry{
		EmployeeID:    empID,
		Degree:        "B.Tech",
		Institution:   "IIT Bombay",
		FieldOfStudy:  "Computer Science",
		YearOfPassing: 2016,
		Grade:         "8.9",
	}
	require.NoError(t, store.InsertEducation(context.Background(), entry))
	assert.Equal(t, entryID, entry.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
