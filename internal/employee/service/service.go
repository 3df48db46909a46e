// Package service orchestrates one employee submission: validation,
// normalization, duplicate pre-checks, the primary insert, document uploads,
// the URL update, and child-record inserts, in that order.
//
// The pipeline is a single logical transaction composed of non-atomic steps.
// There is no rollback: a failure after the primary insert leaves the backend
// in a partially written but well-typed state, and the operator resubmits.
// Duplicate pre-checks run before any write so a rejected submission never
// creates an orphan primary record.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"onboard/internal/audit"
	"onboard/internal/employee/blob"
	"onboard/internal/employee/models"
	"onboard/internal/employee/store"
	"onboard/internal/employee/validator"
	"onboard/internal/platform/metrics"
	dErrors "onboard/pkg/domain-errors"
	"onboard/pkg/platform/sentinel"
)

// Stage labels where in the pipeline a submission attempt stopped.
const (
	stageValidation = "validation"
	stageDuplicate  = "duplicate"
	stageInsert     = "insert"
	stageUpload     = "upload"
	stageUpdate     = "update"
	stageEducation  = "education"
	stageWork       = "work_experience"
)

// AuditRecorder receives submission lifecycle events. Emission must not
// block.
type AuditRecorder interface {
	Emit(ctx context.Context, event audit.Event)
}

// Service coordinates the stores behind one Submit call. It does not
// serialize concurrent submissions; callers own that (the form surface
// disables resubmission while one attempt is in flight).
type Service struct {
	store   store.Store
	blobs   blob.Store
	bucket  string
	logger  *slog.Logger
	metrics *metrics.Metrics
	audit   AuditRecorder
	now     func() time.Time
}

// New constructs the submission service. metrics and recorder may be nil.
func New(st store.Store, blobs blob.Store, bucket string, logger *slog.Logger, m *metrics.Metrics, recorder AuditRecorder) *Service {
	return &Service{
		store:   st,
		blobs:   blobs,
		bucket:  bucket,
		logger:  logger,
		metrics: m,
		audit:   recorder,
		now:     time.Now,
	}
}

// Submit runs the full pipeline over an immutable snapshot. On success the
// caller clears the draft slots; on failure the attempt is terminal and the
// operator resubmits.
func (s *Service) Submit(ctx context.Context, snap models.Snapshot) (models.SubmissionResult, error) {
	start := s.now()
	defer func() {
		s.metrics.ObserveSubmissionDuration(time.Since(start).Seconds())
	}()

	if err := validator.Validate(snap); err != nil {
		s.reject(ctx, stageValidation, snap.Form.Email, err)
		return models.SubmissionResult{}, err
	}

	norm := normalize(snap.Form)

	if err := s.checkDuplicates(ctx, norm); err != nil {
		s.reject(ctx, stageDuplicate, norm.Email, err)
		return models.SubmissionResult{}, err
	}

	emp := norm.employee()
	if err := s.store.Insert(ctx, emp); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			// The pre-check raced a concurrent insert; nothing was written.
			conflict := dErrors.New(dErrors.CodeConflict, "duplicate record exists (aadhaar/PAN/email already registered)")
			s.reject(ctx, stageDuplicate, norm.Email, conflict)
			return models.SubmissionResult{}, conflict
		}
		return models.SubmissionResult{}, s.fail(ctx, stageInsert, emp, fmt.Sprintf("error inserting employee record: %v", err), err)
	}

	urls, err := s.uploadPrimaryDocuments(ctx, emp.ID, snap.Documents)
	if err != nil {
		// The primary record stays behind with NULL document URLs.
		return models.SubmissionResult{}, s.fail(ctx, stageUpload, emp, err.Error(), err)
	}

	if err := s.store.UpdateDocumentURLs(ctx, emp.ID, urls); err != nil {
		return models.SubmissionResult{}, s.fail(ctx, stageUpdate, emp, fmt.Sprintf("error updating document urls: %v", err), err)
	}

	if err := s.insertEducationEntries(ctx, emp.ID, snap.Education); err != nil {
		s.reject(ctx, stageEducation, norm.Email, err)
		return models.SubmissionResult{}, err
	}

	if err := s.insertWorkExperienceEntries(ctx, emp.ID, snap.WorkExperience); err != nil {
		s.reject(ctx, stageWork, norm.Email, err)
		return models.SubmissionResult{}, err
	}

	s.metrics.RecordAccepted()
	if s.audit != nil {
		s.audit.Emit(ctx, audit.Event{
			EmployeeID: emp.ID,
			Email:      emp.Email,
			Action:     audit.ActionSubmissionAccepted,
		})
	}
	s.logger.InfoContext(ctx, "submission accepted", "employee_id", emp.ID, "email", emp.Email)

	return models.SubmissionResult{EmployeeID: emp.ID, Name: emp.Name}, nil
}

// checkDuplicates runs the idempotent uniqueness pre-checks, each awaited in
// sequence, before any mutating call.
func (s *Service) checkDuplicates(ctx context.Context, norm normalizedForm) error {
	if norm.Aadhaar != nil {
		if err := s.checkAbsent(ctx, s.store.FindByAadhaar, *norm.Aadhaar, "this aadhaar number is already registered"); err != nil {
			return err
		}
	}
	if err := s.checkAbsent(ctx, s.store.FindByEmail, norm.Email, "this email is already registered"); err != nil {
		return err
	}
	if norm.PAN != nil {
		if err := s.checkAbsent(ctx, s.store.FindByPAN, *norm.PAN, "this PAN number is already registered"); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) checkAbsent(ctx context.Context, find func(context.Context, string) (*models.Employee, error), value, conflictMsg string) error {
	_, err := find(ctx, value)
	switch {
	case err == nil:
		return dErrors.New(dErrors.CodeConflict, conflictMsg)
	case errors.Is(err, sentinel.ErrNotFound):
		return nil
	default:
		return dErrors.Wrap(dErrors.CodeUnavailable, fmt.Sprintf("duplicate check failed: %v", err), err)
	}
}

var slotCategories = map[models.DocumentSlot]blob.Category{
	models.SlotPhoto:            blob.CategoryPhoto,
	models.SlotAadhaarCard:      blob.CategoryAadhaar,
	models.SlotPANCard:          blob.CategoryPAN,
	models.SlotBankProof:        blob.CategoryBankProof,
	models.SlotTenthMarksheet:   blob.CategoryTenthMarksheet,
	models.SlotTwelfthMarksheet: blob.CategoryTwelfthMarksheet,
	models.SlotOfferLetter:      blob.CategoryOfferLetter,
}

// uploadPrimaryDocuments dispatches every present slot concurrently and joins
// with all-or-fail semantics. A single failure surfaces immediately; uploads
// already in flight are not cancelled and no compensation runs.
func (s *Service) uploadPrimaryDocuments(ctx context.Context, employeeID uuid.UUID, docs map[models.DocumentSlot]*models.FileUpload) (models.DocumentURLs, error) {
	var (
		g       errgroup.Group
		mu      sync.Mutex
		results = make(map[models.DocumentSlot]string, len(docs))
	)

	for _, slot := range models.PrimarySlots {
		doc := docs[slot]
		if doc == nil {
			continue
		}
		g.Go(func() error {
			path := blob.ObjectPath(slotCategories[slot], employeeID, doc.Name, s.now())
			url, err := s.blobs.Store(ctx, doc.Data, s.bucket, path)
			if err != nil {
				return fmt.Errorf("upload %s: %w", slot, err)
			}
			s.metrics.RecordDocumentUploaded()
			mu.Lock()
			results[slot] = url
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return models.DocumentURLs{}, err
	}

	return models.DocumentURLs{
		Photo:            urlFor(results, models.SlotPhoto),
		AadhaarCard:      urlFor(results, models.SlotAadhaarCard),
		PANCard:          urlFor(results, models.SlotPANCard),
		BankProof:        urlFor(results, models.SlotBankProof),
		TenthMarksheet:   urlFor(results, models.SlotTenthMarksheet),
		TwelfthMarksheet: urlFor(results, models.SlotTwelfthMarksheet),
		OfferLetter:      urlFor(results, models.SlotOfferLetter),
	}, nil
}

// insertEducationEntries processes entries in order: all-blank entries are
// skipped silently, partially filled entries abort the submission, complete
// entries upload their certificate (if any) and insert. Entries committed
// before an abort stay committed.
func (s *Service) insertEducationEntries(ctx context.Context, employeeID uuid.UUID, entries []models.EducationForm) error {
	for _, edu := range entries {
		if edu.IsBlank() {
			continue
		}
		if !edu.IsComplete() {
			return dErrors.New(dErrors.CodeBadRequest, "please complete all education fields for each added education entry")
		}
		year, err := strconv.Atoi(strings.TrimSpace(edu.YearOfPassing))
		if err != nil {
			return dErrors.New(dErrors.CodeBadRequest, "education year of passing must be a number")
		}

		var certURL *string
		if edu.Certificate != nil {
			path := blob.ObjectPath(blob.CategoryEducationCert, employeeID, edu.Certificate.Name, s.now())
			url, err := s.blobs.Store(ctx, edu.Certificate.Data, s.bucket, path)
			if err != nil {
				return dErrors.Wrap(dErrors.CodeUnavailable, fmt.Sprintf("upload education certificate: %v", err), err)
			}
			s.metrics.RecordDocumentUploaded()
			certURL = &url
		}

		entry := &models.EducationEntry{
			EmployeeID:     employeeID,
			Degree:         edu.Degree,
			Institution:    edu.Institution,
			FieldOfStudy:   edu.FieldOfStudy,
			YearOfPassing:  year,
			Grade:          edu.Grade,
			CertificateURL: certURL,
		}
		if err := s.store.InsertEducation(ctx, entry); err != nil {
			return dErrors.Wrap(dErrors.CodeUnavailable, fmt.Sprintf("error inserting education entry: %v", err), err)
		}
	}
	return nil
}

// insertWorkExperienceEntries mirrors the education loop; an entry's up to
// three documents upload sequentially before its insert.
func (s *Service) insertWorkExperienceEntries(ctx context.Context, employeeID uuid.UUID, entries []models.WorkExperienceForm) error {
	for _, exp := range entries {
		if exp.IsBlank() {
			continue
		}
		if !exp.IsComplete() {
			return dErrors.New(dErrors.CodeBadRequest, "please complete all work experience fields (company, designation, from, to, salary) for each added entry")
		}

		entry := &models.WorkExperienceEntry{
			EmployeeID:  employeeID,
			CompanyName: exp.CompanyName,
			Designation: exp.Designation,
			FromDate:    exp.FromDate,
			ToDate:      exp.ToDate,
			Salary:      exp.Salary,
		}

		docs := []struct {
			file     *models.FileUpload
			category blob.Category
			target   **string
		}{
			{exp.SalarySlip, blob.CategorySalarySlip, &entry.SalarySlipURL},
			{exp.RelievingLetter, blob.CategoryRelievingLetter, &entry.RelievingLetterURL},
			{exp.ExperienceLetter, blob.CategoryExperienceLetter, &entry.ExperienceLetterURL},
		}
		for _, doc := range docs {
			if doc.file == nil {
				continue
			}
			path := blob.ObjectPath(doc.category, employeeID, doc.file.Name, s.now())
			url, err := s.blobs.Store(ctx, doc.file.Data, s.bucket, path)
			if err != nil {
				return dErrors.Wrap(dErrors.CodeUnavailable, fmt.Sprintf("upload work experience document: %v", err), err)
			}
			s.metrics.RecordDocumentUploaded()
			u := url
			*doc.target = &u
		}

		if err := s.store.InsertWorkExperience(ctx, entry); err != nil {
			return dErrors.Wrap(dErrors.CodeUnavailable, fmt.Sprintf("error inserting work experience entry: %v", err), err)
		}
	}
	return nil
}

// reject records a pre-write or child-stage refusal (no compensation needed).
func (s *Service) reject(ctx context.Context, stage, email string, err error) {
	s.metrics.RecordRejected(stage)
	if s.audit != nil {
		s.audit.Emit(ctx, audit.Event{
			Email:  email,
			Action: audit.ActionSubmissionRejected,
			Reason: err.Error(),
		})
	}
	s.logger.WarnContext(ctx, "submission rejected", "stage", stage, "error", err)
}

// fail records a backend failure after the primary insert attempt and wraps
// it with the stage so the operator sees the backend message verbatim.
func (s *Service) fail(ctx context.Context, stage string, emp *models.Employee, msg string, cause error) error {
	s.metrics.RecordRejected(stage)
	if s.audit != nil {
		s.audit.Emit(ctx, audit.Event{
			EmployeeID: emp.ID,
			Email:      emp.Email,
			Action:     audit.ActionSubmissionFailed,
			Reason:     msg,
		})
	}
	s.logger.ErrorContext(ctx, "submission failed", "stage", stage, "employee_id", emp.ID, "error", cause)
	return dErrors.Wrap(dErrors.CodeUnavailable, msg, cause)
}

func urlFor(results map[models.DocumentSlot]string, slot models.DocumentSlot) *string {
	if url, ok := results[slot]; ok {
		return &url
	}
	return nil
}
