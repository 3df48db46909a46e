package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"onboard/internal/employee/models"
	"onboard/pkg/platform/sentinel"
)

// InMemoryStore keeps employees and child entries in memory for tests/dev.
// It enforces the same uniqueness rules as the postgres schema so duplicate
// races surface identically.
type InMemoryStore struct {
	mu        sync.RWMutex
	employees map[uuid.UUID]*models.Employee
	education map[uuid.UUID][]*models.EducationEntry
	work      map[uuid.UUID][]*models.WorkExperienceEntry
}

// NewInMemoryStore constructs an empty in-memory employee store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		employees: make(map[uuid.UUID]*models.Employee),
		education: make(map[uuid.UUID][]*models.EducationEntry),
		work:      make(map[uuid.UUID][]*models.WorkExperienceEntry),
	}
}

func (s *InMemoryStore) FindByEmail(_ context.Context, email string) (*models.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, emp := range s.employees {
		if emp.Email == email {
			return emp, nil
		}
	}
	return nil, fmt.Errorf("employee by email: %w", sentinel.ErrNotFound)
}

func (s *InMemoryStore) FindByAadhaar(_ context.Context, aadhaar string) (*models.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, emp := range s.employees {
		if emp.AadhaarNumber != nil && *emp.AadhaarNumber == aadhaar {
			return emp, nil
		}
	}
	return nil, fmt.Errorf("employee by aadhaar: %w", sentinel.ErrNotFound)
}

func (s *InMemoryStore) FindByPAN(_ context.Context, pan string) (*models.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, emp := range s.employees {
		if emp.PANNumber != nil && *emp.PANNumber == pan {
			return emp, nil
		}
	}
	return nil, fmt.Errorf("employee by pan: %w", sentinel.ErrNotFound)
}

func (s *InMemoryStore) Insert(_ context.Context, emp *models.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.employees {
		if existing.Email == emp.Email {
			return fmt.Errorf("employees_email_key: %w", sentinel.ErrConflict)
		}
		if emp.AadhaarNumber != nil && existing.AadhaarNumber != nil && *existing.AadhaarNumber == *emp.AadhaarNumber {
			return fmt.Errorf("employees_aadhaar_number_key: %w", sentinel.ErrConflict)
		}
		if emp.PANNumber != nil && existing.PANNumber != nil && *existing.PANNumber == *emp.PANNumber {
			return fmt.Errorf("employees_pan_number_key: %w", sentinel.ErrConflict)
		}
	}

	emp.ID = uuid.New()
	emp.CreatedAt = time.Now()
	s.employees[emp.ID] = emp
	return nil
}

func (s *InMemoryStore) UpdateDocumentURLs(_ context.Context, id uuid.UUID, urls models.DocumentURLs) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	emp, ok := s.employees[id]
	if !ok {
		return fmt.Errorf("employee %s: %w", id, sentinel.ErrNotFound)
	}
	emp.Documents = urls
	return nil
}

func (s *InMemoryStore) InsertEducation(_ context.Context, entry *models.EducationEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.employees[entry.EmployeeID]; !ok {
		return fmt.Errorf("employee %s: %w", entry.EmployeeID, sentinel.ErrNotFound)
	}
	entry.ID = uuid.New()
	entry.CreatedAt = time.Now()
	s.education[entry.EmployeeID] = append(s.education[entry.EmployeeID], entry)
	return nil
}

func (s *InMemoryStore) InsertWorkExperience(_ context.Context, entry *models.WorkExperienceEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.employees[entry.EmployeeID]; !ok {
		return fmt.Errorf("employee %s: %w", entry.EmployeeID, sentinel.ErrNotFound)
	}
	entry.ID = uuid.New()
	entry.CreatedAt = time.Now()
	s.work[entry.EmployeeID] = append(s.work[entry.EmployeeID], entry)
	return nil
}

// Get returns an employee by ID, for tests.
func (s *InMemoryStore) Get(id uuid.UUID) (*models.Employee, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	emp, ok := s.employees[id]
	return emp, ok
}

// EducationFor returns the education entries inserted for an employee, for tests.
func (s *InMemoryStore) EducationFor(id uuid.UUID) []*models.EducationEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.education[id]
}

// WorkExperienceFor returns the work entries inserted for an employee, for tests.
func (s *InMemoryStore) WorkExperienceFor(id uuid.UUID) []*models.WorkExperienceEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.work[id]
}
