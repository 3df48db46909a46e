// Package blob stores uploaded employee documents and returns retrievable
// URLs. Objects are keyed {category}/{employeeID}/{unixMilli}_{filename}.
package blob

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Store is the single object-storage capability the submission service
// consumes. Implementations return the retrievable URL of the stored object
// and propagate failures unchanged.
type Store interface {
	Store(ctx context.Context, data []byte, bucket, path string) (string, error)
}

// Category is the fixed path-prefix vocabulary for document uploads.
type Category string

const (
	CategoryPhoto            Category = "photos"
	CategoryAadhaar          Category = "aadhaar"
	CategoryPAN              Category = "pan"
	CategoryBankProof        Category = "bank-proof"
	CategoryTenthMarksheet   Category = "10th-marksheets"
	CategoryTwelfthMarksheet Category = "12th-marksheets"
	CategoryOfferLetter      Category = "offer-letters"
	CategoryEducationCert    Category = "education-certificates"
	CategorySalarySlip       Category = "salary-slips"
	CategoryRelievingLetter  Category = "relieving-letters"
	CategoryExperienceLetter Category = "experience-letters"
)

// ObjectPath builds the storage path for one document. The timestamp keeps
// repeated uploads of the same filename from colliding.
func ObjectPath(category Category, employeeID uuid.UUID, filename string, now time.Time) string {
	return fmt.Sprintf("%s/%s/%d_%s", category, employeeID, now.UnixMilli(), filename)
}
