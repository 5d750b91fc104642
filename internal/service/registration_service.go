package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sonyho2715/truong-viet-ngu-sub000/internal/cache"
	"github.com/sonyho2715/truong-viet-ngu-sub000/internal/domain"
	"github.com/sonyho2715/truong-viet-ngu-sub000/internal/dto"
	"github.com/sonyho2715/truong-viet-ngu-sub000/internal/repository"
	"github.com/sonyho2715/truong-viet-ngu-sub000/internal/wizard"
)

var (
	// ErrIncomplete means a required field arrived empty. The form already
	// blocks this; the server re-checks because the endpoint is public.
	ErrIncomplete = errors.New("registration: required fields missing")
	// ErrInvalidGrade means preferredGrade is set but not a known code.
	ErrInvalidGrade = errors.New("registration: unknown grade level")
	// ErrTooFast means the same submission fingerprint arrived twice within
	// the guard window (a double-click or a stuck retry).
	ErrTooFast = errors.New("registration: duplicate submission within guard window")
	// ErrDuplicate means the student already has an undecided application.
	ErrDuplicate = errors.New("registration: student already has an open application")
	// ErrIllegalTransition means the requested status change is not allowed
	// from the application's current status.
	ErrIllegalTransition = errors.New("registration: illegal status transition")
	// ErrNotApproved means a conversion was requested on an application that
	// is not APPROVED.
	ErrNotApproved = errors.New("registration: application is not approved")
	// ErrAlreadyConverted means the application was already turned into a
	// student record; conversion happens at most once.
	ErrAlreadyConverted = errors.New("registration: application already converted")
)

// RegistrationService owns the application intake and review workflow:
// submission with the duplicate guard, the PENDING -> UNDER_REVIEW ->
// decision lifecycle, and the one-shot conversion of an approved application
// into a student record.
type RegistrationService struct {
	regRepo     *repository.RegistrationRepository
	studentRepo *repository.StudentRepository
	cache       *cache.Client
	guardWindow time.Duration
}

func NewRegistrationService(
	regRepo *repository.RegistrationRepository,
	studentRepo *repository.StudentRepository,
	cacheClient *cache.Client,
	guardWindow time.Duration,
) *RegistrationService {
	return &RegistrationService{
		regRepo:     regRepo,
		studentRepo: studentRepo,
		cache:       cacheClient,
		guardWindow: guardWindow,
	}
}

// Submit validates and persists one registration. The required-field rules
// are the same ones the form applies per step; the server re-applies them in
// one pass because the endpoint is public.
func (s *RegistrationService) Submit(ctx context.Context, req *dto.RegistrationRequest) (*domain.RegistrationApplication, error) {
	draft := draftFromRequest(req)
	for step := wizard.StepStudent; step <= wizard.StepEmergency; step++ {
		if !wizard.ValidateStep(&draft, step) {
			return nil, ErrIncomplete
		}
	}
	if req.PreferredGrade != "" && !domain.ValidGrade(req.PreferredGrade) {
		return nil, ErrInvalidGrade
	}

	key := submissionKey(req)
	if !s.cache.ClaimOnce(ctx, key, s.guardWindow) {
		return nil, ErrTooFast
	}

	open, err := s.regRepo.HasOpenApplication(req.StudentFirstName, req.StudentLastName, req.StudentDOB, req.ParentEmail)
	if err != nil {
		s.cache.Release(ctx, key)
		return nil, err
	}
	if open {
		// not a rapid resubmit; let a retry see the same 409 again
		s.cache.Release(ctx, key)
		return nil, ErrDuplicate
	}

	app := req.ToApplication()
	if err := s.regRepo.Create(app); err != nil {
		// free the fingerprint so the parent can retry right away
		s.cache.Release(ctx, key)
		return nil, err
	}
	return app, nil
}

// StartReview moves a PENDING application to UNDER_REVIEW.
func (s *RegistrationService) StartReview(id uuid.UUID, reviewedBy string) (*domain.RegistrationApplication, error) {
	app, err := s.regRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if !app.CanTransition(domain.ApplicationUnderReview) {
		return nil, ErrIllegalTransition
	}
	app.Status = domain.ApplicationUnderReview
	if reviewedBy != "" {
		app.ReviewedBy = &reviewedBy
	}
	if err := s.regRepo.Update(app); err != nil {
		return nil, err
	}
	return app, nil
}

// Decide records the outcome of a review: APPROVED, WAITLISTED or REJECTED.
func (s *RegistrationService) Decide(id uuid.UUID, req *dto.DecisionRequest) (*domain.RegistrationApplication, error) {
	next := domain.ApplicationStatus(req.Status)
	switch next {
	case domain.ApplicationApproved, domain.ApplicationWaitlisted, domain.ApplicationRejected:
	default:
		return nil, ErrIllegalTransition
	}

	app, err := s.regRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if !app.CanTransition(next) {
		return nil, ErrIllegalTransition
	}

	now := time.Now()
	app.Status = next
	app.ReviewedAt = &now
	if req.ReviewedBy != "" {
		app.ReviewedBy = &req.ReviewedBy
	}
	if req.Notes != "" {
		app.ReviewNotes = &req.Notes
	}
	if err := s.regRepo.Update(app); err != nil {
		return nil, err
	}
	return app, nil
}

// Convert turns an APPROVED application into a Student record, at most once.
// When a class is given the student is enrolled into it as well.
func (s *RegistrationService) Convert(id uuid.UUID, req *dto.ConvertRequest) (*domain.Student, error) {
	app, err := s.regRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if app.Status != domain.ApplicationApproved {
		return nil, ErrNotApproved
	}
	if app.StudentID != nil {
		return nil, ErrAlreadyConverted
	}

	student := &domain.Student{
		FirstName:      app.StudentFirstName,
		LastName:       app.StudentLastName,
		DateOfBirth:    app.StudentDOB,
		GradeLevel:     app.PreferredGrade,
		ParentName:     strings.TrimSpace(app.ParentFirstName + " " + app.ParentLastName),
		ParentEmail:    app.ParentEmail,
		ParentPhone:    app.ParentPhone,
		Address:        strings.Join([]string{app.Address, app.City, app.State + " " + app.ZipCode}, ", "),
		EmergencyName:  app.EmergencyName,
		EmergencyPhone: app.EmergencyPhone,
		MedicalNotes:   joinNotes(app.MedicalNotes, app.Allergies, app.SpecialNeeds),
		IsActive:       true,
	}
	var classID *uuid.UUID
	schoolYear := ""
	if req != nil {
		classID = req.ClassID
		schoolYear = req.SchoolYear
	}
	// One transaction: a failure here leaves no orphan student and the
	// conversion can simply be retried.
	if err := s.regRepo.Convert(app, student, classID, schoolYear); err != nil {
		return nil, err
	}
	return student, nil
}

// submissionKey fingerprints one submission for the rate guard. Casing and
// stray whitespace in the email must not defeat it.
func submissionKey(req *dto.RegistrationRequest) string {
	email := strings.ToLower(strings.TrimSpace(req.ParentEmail))
	return fmt.Sprintf("register:%s:%s %s:%s", email, req.StudentFirstName, req.StudentLastName, req.StudentDOB)
}

func joinNotes(parts ...string) string {
	var kept []string
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "; ")
}

func draftFromRequest(req *dto.RegistrationRequest) wizard.Draft {
	return wizard.Draft{
		StudentFirstName:  req.StudentFirstName,
		StudentLastName:   req.StudentLastName,
		StudentDOB:        req.StudentDOB,
		PreferredGrade:    req.PreferredGrade,
		ParentFirstName:   req.ParentFirstName,
		ParentLastName:    req.ParentLastName,
		ParentEmail:       req.ParentEmail,
		ParentPhone:       req.ParentPhone,
		ParentRelation:    req.ParentRelation,
		Parent2FirstName:  req.Parent2FirstName,
		Parent2LastName:   req.Parent2LastName,
		Parent2Email:      req.Parent2Email,
		Parent2Phone:      req.Parent2Phone,
		Parent2Relation:   req.Parent2Relation,
		Address:           req.Address,
		City:              req.City,
		State:             req.State,
		ZipCode:           req.ZipCode,
		EmergencyName:     req.EmergencyName,
		EmergencyPhone:    req.EmergencyPhone,
		EmergencyRelation: req.EmergencyRelation,
		PreviousSchool:    req.PreviousSchool,
		MedicalNotes:      req.MedicalNotes,
		Allergies:         req.Allergies,
		SpecialNeeds:      req.SpecialNeeds,
		HowHeard:          req.HowHeard,
		AdditionalNotes:   req.AdditionalNotes,
	}
}
