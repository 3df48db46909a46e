package models

import (
	"time"

	"github.com/google/uuid"
)

// Employee is the primary record created once per accepted submission.
// Optional columns are pointers so absent values persist as NULL rather than
// empty strings.
type Employee struct {
	ID uuid.UUID

	Name           string
	Email          string
	AlternateEmail *string
	DateOfBirth    string
	MaritalStatus  string
	BloodGroup     string
	Mobile         string
	AlternatePhone *string

	CurrentAddress string
	CurrentCity    string
	CurrentState   string
	CurrentPincode string

	PermanentAddress string
	PermanentCity    string
	PermanentState   string
	PermanentPincode string

	FatherName       string
	MotherName       string
	SpouseName       *string
	NumberOfChildren int

	GuardianName     string
	GuardianRelation string
	GuardianPhone    string
	GuardianAddress  string

	EmergencyContactName     string
	EmergencyContactRelation string
	EmergencyContactPhone    string

	BankName          string
	AccountNumber     string
	IFSCCode          string
	AccountHolderName string
	BranchName        string

	TenthBoard      string
	TenthSchool     string
	TenthYear       *int
	TenthPercentage string

	TwelfthBoard      string
	TwelfthSchool     string
	TwelfthYear       *int
	TwelfthPercentage string

	AadhaarNumber *string
	PANNumber     *string

	// HasOfferLetter is the tri-state prior-offer flag: "yes", "no" or "".
	HasOfferLetter string

	Documents DocumentURLs

	CreatedAt time.Time
}

// DocumentURLs holds the seven primary-record document locations. They start
// NULL on insert and are filled exactly once after the uploads finish.
type DocumentURLs struct {
	Photo            *string
	AadhaarCard      *string
	PANCard          *string
	BankProof        *string
	TenthMarksheet   *string
	TwelfthMarksheet *string
	OfferLetter      *string
}
