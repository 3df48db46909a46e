package service

import (
	"strconv"
	"strings"

	"onboard/internal/employee/models"
)

// normalizedForm is the form after trimming, case folding, and empty-to-nil
// conversion, ready to become a primary record.
type normalizedForm struct {
	form    models.Form
	Email   string
	Mobile  string
	Aadhaar *string
	PAN     *string
}

// normalize canonicalizes the identity fields once, before any lookup or
// write, so the duplicate pre-checks and the stored record see the same
// values.
func normalize(form models.Form) normalizedForm {
	return normalizedForm{
		form:    form,
		Email:   strings.ToLower(strings.TrimSpace(form.Email)),
		Mobile:  strings.TrimSpace(form.Mobile),
		Aadhaar: emptyToNil(strings.TrimSpace(form.AadhaarNumber)),
		PAN:     emptyToNil(strings.ToUpper(strings.TrimSpace(form.PANNumber))),
	}
}

// employee materializes the primary record. Optional scalars persist as NULL
// when blank; numeric fields that fail to parse also persist as NULL rather
// than zero.
func (n normalizedForm) employee() *models.Employee {
	f := n.form
	return &models.Employee{
		Name:           strings.TrimSpace(f.Name),
		Email:          n.Email,
		AlternateEmail: emptyToNil(strings.TrimSpace(f.AlternateEmail)),
		DateOfBirth:    f.DateOfBirth,
		MaritalStatus:  f.MaritalStatus,
		BloodGroup:     f.BloodGroup,
		Mobile:         n.Mobile,
		AlternatePhone: emptyToNil(strings.TrimSpace(f.AlternatePhone)),

		CurrentAddress: f.CurrentAddress,
		CurrentCity:    f.CurrentCity,
		CurrentState:   f.CurrentState,
		CurrentPincode: f.CurrentPincode,

		PermanentAddress: f.PermanentAddress,
		PermanentCity:    f.PermanentCity,
		PermanentState:   f.PermanentState,
		PermanentPincode: f.PermanentPincode,

		FatherName:       f.FatherName,
		MotherName:       f.MotherName,
		SpouseName:       emptyToNil(strings.TrimSpace(f.SpouseName)),
		NumberOfChildren: atoiOrZero(f.NumberOfChildren),

		GuardianName:     strings.TrimSpace(f.GuardianName),
		GuardianRelation: strings.TrimSpace(f.GuardianRelation),
		GuardianPhone:    strings.TrimSpace(f.GuardianPhone),
		GuardianAddress:  strings.TrimSpace(f.GuardianAddress),

		EmergencyContactName:     f.EmergencyContactName,
		EmergencyContactRelation: f.EmergencyContactRelation,
		EmergencyContactPhone:    f.EmergencyContactPhone,

		BankName:          f.BankName,
		AccountNumber:     f.AccountNumber,
		IFSCCode:          strings.ToUpper(strings.TrimSpace(f.IFSCCode)),
		AccountHolderName: f.AccountHolderName,
		BranchName:        f.BranchName,

		TenthBoard:      f.TenthBoard,
		TenthSchool:     f.TenthSchool,
		TenthYear:       atoiOrNil(f.TenthYear),
		TenthPercentage: f.TenthPercentage,

		TwelfthBoard:      f.TwelfthBoard,
		TwelfthSchool:     f.TwelfthSchool,
		TwelfthYear:       atoiOrNil(f.TwelfthYear),
		TwelfthPercentage: f.TwelfthPercentage,

		AadhaarNumber:  n.Aadhaar,
		PANNumber:      n.PAN,
		HasOfferLetter: f.HasOfferLetter,
	}
}

func emptyToNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

func atoiOrNil(s string) *int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return nil
	}
	return &n
}
