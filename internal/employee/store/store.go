// Package store persists employee records and their child entries.
//
// Error contract: Find methods return sentinel.ErrNotFound (wrapped) when no
// record matches; Insert wraps uniqueness-constraint rejections in
// sentinel.ErrConflict; infrastructure failures are returned wrapped with
// context.
package store

import (
	"context"

	"github.com/google/uuid"

	"onboard/internal/employee/models"
)

// Store is the repository capability the submission service consumes.
type Store interface {
	FindByEmail(ctx context.Context, email string) (*models.Employee, error)
	FindByAadhaar(ctx context.Context, aadhaar string) (*models.Employee, error)
	FindByPAN(ctx context.Context, pan string) (*models.Employee, error)

	Insert(ctx context.Context, emp *models.Employee) error
	UpdateDocumentURLs(ctx context.Context, id uuid.UUID, urls models.DocumentURLs) error

	InsertEducation(ctx context.Context, entry *models.EducationEntry) error
	InsertWorkExperience(ctx context.Context, entry *models.WorkExperienceEntry) error
}
