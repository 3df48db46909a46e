package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"onboard/internal/employee/models"
	dErrors "onboard/pkg/domain-errors"
)

// Upload ceilings. The form accepts scanned documents, not arbitrary blobs.
const (
	maxRequestBytes = 64 << 20
	maxFileBytes    = 10 << 20
)

// educationPayload is one education entry in the multipart "education" field.
type educationPayload struct {
	Degree        string `json:"degree"`
	Institution   string `json:"institution"`
	FieldOfStudy  string `json:"fieldOfStudy"`
	YearOfPassing string `json:"yearOfPassing"`
	Grade         string `json:"grade"`
}

// workExperiencePayload is one entry in the multipart "workExperience" field.
type workExperiencePayload struct {
	CompanyName string `json:"companyName"`
	Designation string `json:"designation"`
	FromDate    string `json:"fromDate"`
	ToDate      string `json:"toDate"`
	Salary      string `json:"salary"`
}

// parseSubmission decodes the multipart submission into a snapshot. Scalars
// arrive as plain form fields, documents as file parts named after their
// slot, and the two child collections as JSON array fields with their files
// in indexed parts (educationCertificate_0, workSalarySlip_1, ...).
func parseSubmission(r *http.Request) (models.Snapshot, error) {
	if err := r.ParseMultipartForm(maxRequestBytes); err != nil {
		return models.Snapshot{}, dErrors.Wrap(dErrors.CodeBadRequest, "request is not a valid multipart form", err)
	}

	field := r.FormValue
	snap := models.Snapshot{
		Form: models.Form{
			Name:           field("name"),
			Email:          field("email"),
			AlternateEmail: field("alternateEmail"),
			DateOfBirth:    field("dateOfBirth"),
			MaritalStatus:  field("maritalStatus"),
			BloodGroup:     field("bloodGroup"),
			Mobile:         field("mobile"),
			AlternatePhone: field("alternatePhone"),

			CurrentAddress: field("currentAddress"),
			CurrentCity:    field("currentCity"),
			CurrentState:   field("currentState"),
			CurrentPincode: field("currentPincode"),

			PermanentAddress: field("permanentAddress"),
			PermanentCity:    field("permanentCity"),
			PermanentState:   field("permanentState"),
			PermanentPincode: field("permanentPincode"),

			FatherName:       field("fatherName"),
			MotherName:       field("motherName"),
			SpouseName:       field("spouseName"),
			NumberOfChildren: field("numberOfChildren"),

			GuardianName:     field("guardianName"),
			GuardianRelation: field("guardianRelation"),
			GuardianPhone:    field("guardianPhone"),
			GuardianAddress:  field("guardianAddress"),

			EmergencyContactName:     field("emergencyContactName"),
			EmergencyContactRelation: field("emergencyContactRelation"),
			EmergencyContactPhone:    field("emergencyContactPhone"),

			BankName:          field("bankName"),
			AccountNumber:     field("accountNumber"),
			IFSCCode:          field("ifscCode"),
			AccountHolderName: field("accountHolderName"),
			BranchName:        field("branchName"),

			TenthBoard:      field("tenthBoard"),
			TenthSchool:     field("tenthSchool"),
			TenthYear:       field("tenthYear"),
			TenthPercentage: field("tenthPercentage"),

			TwelfthBoard:      field("twelfthBoard"),
			TwelfthSchool:     field("twelfthSchool"),
			TwelfthYear:       field("twelfthYear"),
			TwelfthPercentage: field("twelfthPercentage"),

			AadhaarNumber:  field("aadhaarNumber"),
			PANNumber:      field("panNumber"),
			HasOfferLetter: field("hasOfferLetter"),
		},
		Documents: make(map[models.DocumentSlot]*models.FileUpload),
	}

	for _, slot := range models.PrimarySlots {
		file, err := readFilePart(r, string(slot))
		if err != nil {
			return models.Snapshot{}, err
		}
		if file != nil {
			snap.Documents[slot] = file
		}
	}

	education, err := parseEducation(r)
	if err != nil {
		return models.Snapshot{}, err
	}
	snap.Education = education

	work, err := parseWorkExperience(r)
	if err != nil {
		return models.Snapshot{}, err
	}
	snap.WorkExperience = work

	return snap, nil
}

func parseEducation(r *http.Request) ([]models.EducationForm, error) {
	raw := r.FormValue("education")
	if raw == "" {
		return nil, nil
	}

	var payloads []educationPayload
	if err := json.Unmarshal([]byte(raw), &payloads); err != nil {
		return nil, dErrors.Wrap(dErrors.CodeBadRequest, "education field is not a valid JSON array", err)
	}

	entries := make([]models.EducationForm, 0, len(payloads))
	for i, p := range payloads {
		cert, err := readFilePart(r, fmt.Sprintf("educationCertificate_%d", i))
		if err != nil {
			return nil, err
		}
		entries = append(entries, models.EducationForm{
			Degree:        p.Degree,
			Institution:   p.Institution,
			FieldOfStudy:  p.FieldOfStudy,
			YearOfPassing: p.YearOfPassing,
			Grade:         p.Grade,
			Certificate:   cert,
		})
	}
	return entries, nil
}

func parseWorkExperience(r *http.Request) ([]models.WorkExperienceForm, error) {
	raw := r.FormValue("workExperience")
	if raw == "" {
		return nil, nil
	}

	var payloads []workExperiencePayload
	if err := json.Unmarshal([]byte(raw), &payloads); err != nil {
		return nil, dErrors.Wrap(dErrors.CodeBadRequest, "workExperience field is not a valid JSON array", err)
	}

	entries := make([]models.WorkExperienceForm, 0, len(payloads))
	for i, p := range payloads {
		slip, err := readFilePart(r, fmt.Sprintf("workSalarySlip_%d", i))
		if err != nil {
			return nil, err
		}
		relieving, err := readFilePart(r, fmt.Sprintf("workRelievingLetter_%d", i))
		if err != nil {
			return nil, err
		}
		experience, err := readFilePart(r, fmt.Sprintf("workExperienceLetter_%d", i))
		if err != nil {
			return nil, err
		}
		entries = append(entries, models.WorkExperienceForm{
			CompanyName:      p.CompanyName,
			Designation:      p.Designation,
			FromDate:         p.FromDate,
			ToDate:           p.ToDate,
			Salary:           p.Salary,
			SalarySlip:       slip,
			RelievingLetter:  relieving,
			ExperienceLetter: experience,
		})
	}
	return entries, nil
}

// readFilePart reads one named file part fully into memory, returning nil
// when the part is absent.
func readFilePart(r *http.Request, name string) (*models.FileUpload, error) {
	file, header, err := r.FormFile(name)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, dErrors.Wrap(dErrors.CodeBadRequest, fmt.Sprintf("could not read uploaded file %q", name), err)
	}
	defer file.Close()

	if header.Size > maxFileBytes {
		return nil, dErrors.New(dErrors.CodeBadRequest, fmt.Sprintf("file %q exceeds the 10MB upload limit", name))
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, dErrors.Wrap(dErrors.CodeBadRequest, fmt.Sprintf("could not read uploaded file %q", name), err)
	}

	return &models.FileUpload{Name: header.Filename, Data: data}, nil
}
