package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"onboard/internal/employee/models"
	"onboard/pkg/platform/sentinel"
)

// PostgresStore persists employees in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed employee store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// findQuery selects the identity columns uniqueness checks care about. The
// full record is never needed for a duplicate lookup.
const findQuery = `
	SELECT id, name, email, aadhaar_number, pan_number, created_at
	FROM employees
	WHERE %s = $1
`

func (s *PostgresStore) FindByEmail(ctx context.Context, email string) (*models.Employee, error) {
	return s.findBy(ctx, "email", email)
}

func (s *PostgresStore) FindByAadhaar(ctx context.Context, aadhaar string) (*models.Employee, error) {
	return s.findBy(ctx, "aadhaar_number", aadhaar)
}

func (s *PostgresStore) FindByPAN(ctx context.Context, pan string) (*models.Employee, error) {
	return s.findBy(ctx, "pan_number", pan)
}

func (s *PostgresStore) findBy(ctx context.Context, column, value string) (*models.Employee, error) {
	var emp models.Employee
	err := s.db.QueryRowContext(ctx, fmt.Sprintf(findQuery, column), value).Scan(
		&emp.ID,
		&emp.Name,
		&emp.Email,
		&emp.AadhaarNumber,
		&emp.PANNumber,
		&emp.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("employee by %s: %w", column, sentinel.ErrNotFound)
		}
		return nil, fmt.Errorf("find employee by %s: %w", column, err)
	}
	return &emp, nil
}

const insertEmployeeQuery = `
	INSERT INTO employees (
		name, email, alternate_email, date_of_birth, marital_status, blood_group,
		mobile, alternate_phone,
		current_address, current_city, current_state, current_pincode,
		permanent_address, permanent_city, permanent_state, permanent_pincode,
		father_name, mother_name, spouse_name, number_of_children,
		guardian_name, guardian_relation, guardian_phone, guardian_address,
		emergency_contact_name, emergency_contact_relation, emergency_contact_phone,
		bank_name, account_number, ifsc_code, account_holder_name, branch_name,
		tenth_board, tenth_school, tenth_year, tenth_percentage,
		twelfth_board, twelfth_school, twelfth_year, twelfth_percentage,
		aadhaar_number, pan_number, has_offer_letter
	) VALUES (
		$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
		$11, $12, $13, $14, $15, $16, $17, $18, $19, $20,
		$21, $22, $23, $24, $25, $26, $27, $28, $29, $30,
		$31, $32, $33, $34, $35, $36, $37, $38, $39, $40,
		$41, $42, $43
	)
	RETURNING id, created_at
`

// Insert creates the primary record with all document URL columns NULL. A
// uniqueness violation raced past the pre-check surfaces as ErrConflict.
func (s *PostgresStore) Insert(ctx context.Context, emp *models.Employee) error {
	err := s.db.QueryRowContext(ctx, insertEmployeeQuery,
		emp.Name, emp.Email, emp.AlternateEmail, emp.DateOfBirth, emp.MaritalStatus, emp.BloodGroup,
		emp.Mobile, emp.AlternatePhone,
		emp.CurrentAddress, emp.CurrentCity, emp.CurrentState, emp.CurrentPincode,
		emp.PermanentAddress, emp.PermanentCity, emp.PermanentState, emp.PermanentPincode,
		emp.FatherName, emp.MotherName, emp.SpouseName, emp.NumberOfChildren,
		emp.GuardianName, emp.GuardianRelation, emp.GuardianPhone, emp.GuardianAddress,
		emp.EmergencyContactName, emp.EmergencyContactRelation, emp.EmergencyContactPhone,
		emp.BankName, emp.AccountNumber, emp.IFSCCode, emp.AccountHolderName, emp.BranchName,
		emp.TenthBoard, emp.TenthSchool, emp.TenthYear, emp.TenthPercentage,
		emp.TwelfthBoard, emp.TwelfthSchool, emp.TwelfthYear, emp.TwelfthPercentage,
		emp.AadhaarNumber, emp.PANNumber, emp.HasOfferLetter,
	).Scan(&emp.ID, &emp.CreatedAt)
	if err != nil {
		if constraint, ok := uniqueViolation(err); ok {
			return fmt.Errorf("%s: %w", constraint, sentinel.ErrConflict)
		}
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

const updateDocumentURLsQuery = `
	UPDATE employees SET
		photo_url = $2,
		aadhaar_card_url = $3,
		pan_card_url = $4,
		bank_proof_url = $5,
		tenth_marksheet_url = $6,
		twelfth_marksheet_url = $7,
		offer_letter_url = $8
	WHERE id = $1
`

func (s *PostgresStore) UpdateDocumentURLs(ctx context.Context, id uuid.UUID, urls models.DocumentURLs) error {
	res, err := s.db.ExecContext(ctx, updateDocumentURLsQuery,
		id,
		urls.Photo,
		urls.AadhaarCard,
		urls.PANCard,
		urls.BankProof,
		urls.TenthMarksheet,
		urls.TwelfthMarksheet,
		urls.OfferLetter,
	)
	if err != nil {
		return fmt.Errorf("update document urls: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update document urls: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("employee %s: %w", id, sentinel.ErrNotFound)
	}
	return nil
}

const insertEducationQuery = `
	INSERT INTO education (
		employee_id, degree, institution, field_of_study, year_of_passing, grade, certificate_url
	) VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING id, created_at
`

func (s *PostgresStore) InsertEducation(ctx context.Context, entry *models.EducationEntry) error {
	err := s.db.QueryRowContext(ctx, insertEducationQuery,
		entry.EmployeeID,
		entry.Degree,
		entry.Institution,
		entry.FieldOfStudy,
		entry.YearOfPassing,
		entry.Grade,
		entry.CertificateURL,
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert education entry: %w", err)
	}
	return nil
}

const insertWorkExperienceQuery = `
	INSERT INTO work_experience (
		employee_id, company_name, designation, from_date, to_date, salary,
		salary_slip_url, relieving_letter_url, experience_letter_url
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	RETURNING id, created_at
`

func (s *PostgresStore) InsertWorkExperience(ctx context.Context, entry *models.WorkExperienceEntry) error {
	err := s.db.QueryRowContext(ctx, insertWorkExperienceQuery,
		entry.EmployeeID,
		entry.CompanyName,
		entry.Designation,
		entry.FromDate,
		entry.ToDate,
		entry.Salary,
		entry.SalarySlipURL,
		entry.RelievingLetterURL,
		entry.ExperienceLetterURL,
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert work experience entry: %w", err)
	}
	return nil
}

// uniqueViolation reports whether err is a postgres unique_violation and
// returns the violated constraint name.
func uniqueViolation(err error) (string, bool) {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return pqErr.Constraint, true
	}
	return "", false
}
