package store

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"onboard/internal/employee/models"
	"onboard/pkg/platform/sentinel"
)

func strPtr(s string) *string { return &s }

type InMemoryStoreSuite struct {
	suite.Suite
	store *InMemoryStore
}

func (s *InMemoryStoreSuite) SetupTest() {
	s.store = NewInMemoryStore()
}

func (s *InMemoryStoreSuite) insertEmployee(email string, aadhaar, pan *string) *models.Employee {
	emp := &models.Employee{
		Name:          "Asha Verma",
		Email:         email,
		DateOfBirth:   "1994-05-12",
		Mobile:        "9876543210",
		AadhaarNumber: aadhaar,
		PANNumber:     pan,
	}
	require.NoError(s.T(), s.store.Insert(context.Background(), emp))
	return emp
}

func (s *InMemoryStoreSuite) TestInsertAndFind() {
	emp := s.insertEmployee("asha@example.com", strPtr("123456789012"), strPtr("ABCDE1234F"))
	assert.NotEqual(s.T(), uuid.Nil, emp.ID)
	assert.False(s.T(), emp.CreatedAt.IsZero())

	byEmail, err := s.store.FindByEmail(context.Background(), "asha@example.com")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), emp.ID, byEmail.ID)

	byAadhaar, err := s.store.FindByAadhaar(context.Background(), "123456789012")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), emp.ID, byAadhaar.ID)

	byPAN, err := s.store.FindByPAN(context.Background(), "ABCDE1234F")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), emp.ID, byPAN.ID)
}

func (s *InMemoryStoreSuite) TestFindNotFound() {
	_, err := s.store.FindByEmail(context.Background(), "ghost@example.com")
	assert.ErrorIs(s.T(), err, sentinel.ErrNotFound)

	_, err = s.store.FindByAadhaar(context.Background(), "999999999999")
	assert.ErrorIs(s.T(), err, sentinel.ErrNotFound)
}

func (s *InMemoryStoreSuite) TestInsertDuplicateEmailConflicts() {
	s.insertEmployee("asha@example.com", nil, nil)

	err := s.store.Insert(context.Background(), &models.Employee{Email: "asha@example.com"})
	assert.ErrorIs(s.T(), err, sentinel.ErrConflict)
}

func (s *InMemoryStoreSuite) TestInsertDuplicateIdentifiersConflict() {
	s.insertEmployee("one@example.com", strPtr("123456789012"), strPtr("ABCDE1234F"))

	err := s.store.Insert(context.Background(), &models.Employee{
		Email:         "two@example.com",
		AadhaarNumber: strPtr("123456789012"),
	})
	assert.ErrorIs(s.T(), err, sentinel.ErrConflict)

	err = s.store.Insert(context.Background(), &models.Employee{
		Email:     "three@example.com",
		PANNumber: strPtr("ABCDE1234F"),
	})
	assert.ErrorIs(s.T(), err, sentinel.ErrConflict)
}

func (s *InMemoryStoreSuite) TestNilIdentifiersNeverConflict() {
	s.insertEmployee("one@example.com", nil, nil)

	err := s.store.Insert(context.Background(), &models.Employee{Email: "two@example.com"})
	assert.NoError(s.T(), err)
}

func (s *InMemoryStoreSuite) TestUpdateDocumentURLs() {
	emp := s.insertEmployee("asha@example.com", nil, nil)

	urls := models.DocumentURLs{Photo: strPtr("https://cdn/photos/p.jpg")}
	require.NoError(s.T(), s.store.UpdateDocumentURLs(context.Background(), emp.ID, urls))

	got, ok := s.store.Get(emp.ID)
	require.True(s.T(), ok)
	assert.Equal(s.T(), urls, got.Documents)

	err := s.store.UpdateDocumentURLs(context.Background(), uuid.New(), urls)
	assert.ErrorIs(s.T(), err, sentinel.ErrNotFound)
}

func (s *InMemoryStoreSuite) TestChildInsertsRequireParent() {
	err := s.store.InsertEducation(context.Background(), &models.EducationEntry{EmployeeID: uuid.New()})
	assert.ErrorIs(s.T(), err, sentinel.ErrNotFound)

	emp := s.insertEmployee("asha@example.com", nil, nil)
	entry := &models.EducationEntry{
		EmployeeID:    emp.ID,
		Degree:        "B.Tech",
		Institution:   "IIT Bombay",
		FieldOfStudy:  "Computer Science",
		YearOfPassing: 2016,
		Grade:         "8.9",
	}
	require.NoError(s.T(), s.store.InsertEducation(context.Background(), entry))
	assert.Len(s.T(), s.store.EducationFor(emp.ID), 1)

	work := &models.WorkExperienceEntry{
		EmployeeID:  emp.ID,
		CompanyName: "Acme",
		Designation: "Engineer",
		FromDate:    "2016-07-01",
		ToDate:      "2019-03-31",
		Salary:      "65000",
	}
	require.NoError(s.T(), s.store.InsertWorkExperience(context.Background(), work))
	assert.Len(s.T(), s.store.WorkExperienceFor(emp.ID), 1)
}

func TestInMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(InMemoryStoreSuite))
}
