// Package validator holds the pure client-side checks run before any backend
// call. Validation short-circuits: the first failing rule wins and callers
// must not assume all errors are collected.
package validator

import (
	"regexp"
	"strings"

	"onboard/internal/employee/models"
	dErrors "onboard/pkg/domain-errors"
)

var (
	emailRe   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	aadhaarRe = regexp.MustCompile(`^\d{12}$`)
	panRe     = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
)

// ValidEmail reports whether s has the local@domain.tld shape.
func ValidEmail(s string) bool { return emailRe.MatchString(s) }

// ValidAadhaar reports whether s is exactly 12 decimal digits. It checks the
// stored form only; callers trim before matching.
func ValidAadhaar(s string) bool { return aadhaarRe.MatchString(s) }

// ValidPAN reports whether s matches the 5-letter, 4-digit, 1-letter PAN
// pattern. It checks the stored (upper-case) form only; lower-case input is
// the caller's normalization problem.
func ValidPAN(s string) bool { return panRe.MatchString(s) }

// Validate runs the submission checks in order and returns the first failure
// as a coded bad-request error. It is a pure function over the snapshot.
func Validate(snap models.Snapshot) error {
	f := snap.Form

	if f.Name == "" || f.Email == "" || f.DateOfBirth == "" || f.Mobile == "" {
		return dErrors.New(dErrors.CodeBadRequest, "please fill all required fields (name, email, date of birth, mobile)")
	}

	if strings.TrimSpace(f.GuardianName) == "" ||
		strings.TrimSpace(f.GuardianRelation) == "" ||
		strings.TrimSpace(f.GuardianPhone) == "" ||
		strings.TrimSpace(f.GuardianAddress) == "" {
		return dErrors.New(dErrors.CodeBadRequest, "please complete guardian details (name, relation, phone, address)")
	}

	if !ValidEmail(f.Email) {
		return dErrors.New(dErrors.CodeBadRequest, "please enter a valid email address")
	}

	if aadhaar := strings.TrimSpace(f.AadhaarNumber); aadhaar != "" && !ValidAadhaar(aadhaar) {
		return dErrors.New(dErrors.CodeBadRequest, "aadhaar number must be 12 digits")
	}

	if pan := strings.ToUpper(strings.TrimSpace(f.PANNumber)); pan != "" && !ValidPAN(pan) {
		return dErrors.New(dErrors.CodeBadRequest, "PAN must be valid like ABCDE1234F")
	}

	if snap.Documents[models.SlotPhoto] == nil {
		return dErrors.New(dErrors.CodeBadRequest, "please upload your photo")
	}
	if snap.Documents[models.SlotTenthMarksheet] == nil {
		return dErrors.New(dErrors.CodeBadRequest, "please upload your 10th marksheet")
	}
	if snap.Documents[models.SlotTwelfthMarksheet] == nil {
		return dErrors.New(dErrors.CodeBadRequest, "please upload your 12th marksheet")
	}

	if f.HasOfferLetter == "yes" && snap.Documents[models.SlotOfferLetter] == nil {
		return dErrors.New(dErrors.CodeBadRequest, "please upload the offer/appointment letter")
	}

	return nil
}
