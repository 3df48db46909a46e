package models

import (
	"time"

	"github.com/google/uuid"
)

// EducationEntry is a child record owned by exactly one employee. It is only
// created after the parent exists.
type EducationEntry struct {
	ID             uuid.UUID
	EmployeeID     uuid.UUID
	Degree         string
	Institution    string
	FieldOfStudy   string
	YearOfPassing  int
	Grade          string
	CertificateURL *string
	CreatedAt      time.Time
}

// WorkExperienceEntry is a child record owned by exactly one employee.
type WorkExperienceEntry struct {
	ID                  uuid.UUID
	EmployeeID          uuid.UUID
	CompanyName         string
	Designation         string
	FromDate            string
	ToDate              string
	Salary              string
	SalarySlipURL       *string
	RelievingLetterURL  *string
	ExperienceLetterURL *string
	CreatedAt           time.Time
}
