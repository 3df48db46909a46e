package models

import "github.com/google/uuid"

// DocumentSlot names one of the seven fixed primary-record document slots.
type DocumentSlot string

const (
	SlotPhoto            DocumentSlot = "photo"
	SlotAadhaarCard      DocumentSlot = "aadhaarCard"
	SlotPANCard          DocumentSlot = "panCard"
	SlotBankProof        DocumentSlot = "bankProof"
	SlotTenthMarksheet   DocumentSlot = "tenthMarksheet"
	SlotTwelfthMarksheet DocumentSlot = "twelfthMarksheet"
	SlotOfferLetter      DocumentSlot = "offerLetter"
)

// PrimarySlots lists the primary-record slots in upload order.
var PrimarySlots = []DocumentSlot{
	SlotPhoto,
	SlotAadhaarCard,
	SlotPANCard,
	SlotBankProof,
	SlotTenthMarksheet,
	SlotTwelfthMarksheet,
	SlotOfferLetter,
}

// FileUpload is an in-memory document attached to a single submission
// attempt. It is never retained after the attempt completes.
type FileUpload struct {
	Name string
	Data []byte
}

// EducationForm is one education entry as submitted, all fields still raw
// strings. An entry with every field blank is skipped; a partially filled
// entry is a validation error.
type EducationForm struct {
	Degree        string
	Institution   string
	FieldOfStudy  string
	YearOfPassing string
	Grade         string
	Certificate   *FileUpload
}

// IsBlank reports whether no field of the entry was filled in.
func (e EducationForm) IsBlank() bool {
	return e.Degree == "" && e.Institution == "" && e.FieldOfStudy == "" &&
		e.YearOfPassing == "" && e.Grade == ""
}

// IsComplete reports whether every required field of the entry was filled in.
func (e EducationForm) IsComplete() bool {
	return e.Degree != "" && e.Institution != "" && e.FieldOfStudy != "" &&
		e.YearOfPassing != "" && e.Grade != ""
}

// WorkExperienceForm is one work-experience entry as submitted.
type WorkExperienceForm struct {
	CompanyName      string
	Designation      string
	FromDate         string
	ToDate           string
	Salary           string
	SalarySlip       *FileUpload
	RelievingLetter  *FileUpload
	ExperienceLetter *FileUpload
}

// IsBlank reports whether no field of the entry was filled in.
func (w WorkExperienceForm) IsBlank() bool {
	return w.CompanyName == "" && w.Designation == "" && w.FromDate == "" &&
		w.ToDate == "" && w.Salary == ""
}

// IsComplete reports whether every required field of the entry was filled in.
func (w WorkExperienceForm) IsComplete() bool {
	return w.CompanyName != "" && w.Designation != "" && w.FromDate != "" &&
		w.ToDate != "" && w.Salary != ""
}

// Form carries the scalar fields of one submission exactly as entered.
// Normalization (trimming, case folding, empty-to-null) happens in the
// submission service, not here.
type Form struct {
	Name           string
	Email          string
	AlternateEmail string
	DateOfBirth    string
	MaritalStatus  string
	BloodGroup     string
	Mobile         string
	AlternatePhone string

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
	SpouseName       string
	NumberOfChildren string

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
	TenthYear       string
	TenthPercentage string

	TwelfthBoard      string
	TwelfthSchool     string
	TwelfthYear       string
	TwelfthPercentage string

	AadhaarNumber  string
	PANNumber      string
	HasOfferLetter string
}

// Snapshot is the immutable input to one submission attempt: the scalar
// fields, the primary document slots, and the two child collections.
type Snapshot struct {
	Form           Form
	Documents      map[DocumentSlot]*FileUpload
	Education      []EducationForm
	WorkExperience []WorkExperienceForm
}

// SubmissionResult is returned to the caller on full completion, carrying
// what the confirmation surface needs.
type SubmissionResult struct {
	EmployeeID uuid.UUID `json:"id"`
	Name       string    `json:"name"`
}
