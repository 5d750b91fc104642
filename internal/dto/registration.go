package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/sonyho2715/truong-viet-ngu-sub000/internal/domain"
)

// RegistrationRequest is the flat draft the registration form posts. Every
// key is always present; optional fields arrive as empty strings.
type RegistrationRequest struct {
	StudentFirstName string `json:"studentFirstName"`
	StudentLastName  string `json:"studentLastName"`
	StudentDOB       string `json:"studentDOB"`
	PreferredGrade   string `json:"preferredGrade"`

	ParentFirstName  string `json:"parentFirstName"`
	ParentLastName   string `json:"parentLastName"`
	ParentEmail      string `json:"parentEmail"`
	ParentPhone      string `json:"parentPhone"`
	ParentRelation   string `json:"parentRelation"`
	Parent2FirstName string `json:"parent2FirstName"`
	Parent2LastName  string `json:"parent2LastName"`
	Parent2Email     string `json:"parent2Email"`
	Parent2Phone     string `json:"parent2Phone"`
	Parent2Relation  string `json:"parent2Relation"`

	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`

	EmergencyName     string `json:"emergencyName"`
	EmergencyPhone    string `json:"emergencyPhone"`
	EmergencyRelation string `json:"emergencyRelation"`

	PreviousSchool  string `json:"previousSchool"`
	MedicalNotes    string `json:"medicalNotes"`
	Allergies       string `json:"allergies"`
	SpecialNeeds    string `json:"specialNeeds"`
	HowHeard        string `json:"howHeard"`
	AdditionalNotes string `json:"additionalNotes"`
}

// ToApplication copies the request into a fresh PENDING application.
func (r *RegistrationRequest) ToApplication() *domain.RegistrationApplication {
	return &domain.RegistrationApplication{
		StudentFirstName:  r.StudentFirstName,
		StudentLastName:   r.StudentLastName,
		StudentDOB:        r.StudentDOB,
		PreferredGrade:    r.PreferredGrade,
		ParentFirstName:   r.ParentFirstName,
		ParentLastName:    r.ParentLastName,
		ParentEmail:       r.ParentEmail,
		ParentPhone:       r.ParentPhone,
		ParentRelation:    r.ParentRelation,
		Parent2FirstName:  r.Parent2FirstName,
		Parent2LastName:   r.Parent2LastName,
		Parent2Email:      r.Parent2Email,
		Parent2Phone:      r.Parent2Phone,
		Parent2Relation:   r.Parent2Relation,
		Address:           r.Address,
		City:              r.City,
		State:             r.State,
		ZipCode:           r.ZipCode,
		EmergencyName:     r.EmergencyName,
		EmergencyPhone:    r.EmergencyPhone,
		EmergencyRelation: r.EmergencyRelation,
		PreviousSchool:    r.PreviousSchool,
		MedicalNotes:      r.MedicalNotes,
		Allergies:         r.Allergies,
		SpecialNeeds:      r.SpecialNeeds,
		HowHeard:          r.HowHeard,
		AdditionalNotes:   r.AdditionalNotes,
		Status:            domain.ApplicationPending,
	}
}

// RegistrationAccepted is the 201 body for a successful submission.
type RegistrationAccepted struct {
	OK      bool      `json:"ok"`
	ID      uuid.UUID `json:"id"`
	Message string    `json:"message"`
}

// DecisionRequest carries an admin's decision on an application under review.
type DecisionRequest struct {
	Status     string `json:"status"` // APPROVED, WAITLISTED or REJECTED
	ReviewedBy string `json:"reviewedBy"`
	Notes      string `json:"notes"`
}

// ConvertRequest optionally places the new student straight into a class.
type ConvertRequest struct {
	ClassID    *uuid.UUID `json:"classId,omitempty"`
	SchoolYear string     `json:"schoolYear"`
}

// ApplicationListItem is the admin list row; the full record is only loaded
// on the detail view.
type ApplicationListItem struct {
	ID          uuid.UUID                `json:"id"`
	StudentName string                   `json:"studentName"`
	StudentDOB  string                   `json:"studentDOB"`
	GradeLabel  string                   `json:"gradeLabel"`
	ParentName  string                   `json:"parentName"`
	ParentEmail string                   `json:"parentEmail"`
	ParentPhone string                   `json:"parentPhone"`
	Status      domain.ApplicationStatus `json:"status"`
	CreatedAt   time.Time                `json:"createdAt"`
	ReviewedAt  *time.Time               `json:"reviewedAt,omitempty"`
}
