package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/sonyho2715/truong-viet-ngu-sub000/internal/cache"
	"github.com/sonyho2715/truong-viet-ngu-sub000/internal/domain"
	"github.com/sonyho2715/truong-viet-ngu-sub000/internal/dto"
	"github.com/sonyho2715/truong-viet-ngu-sub000/internal/repository"
)

// setupRegistrationTestDB creates an in-memory SQLite database for testing
func setupRegistrationTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&domain.RegistrationApplication{},
		&domain.Student{},
		&domain.Class{},
		&domain.Enrollment{},
	)
	require.NoError(t, err)

	return db
}

func newTestService(t *testing.T) (*RegistrationService, *repository.RegistrationRepository, *repository.StudentRepository) {
	db := setupRegistrationTestDB(t)
	regRepo := repository.NewRegistrationRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	// zero-value cache client: guard disabled, database check still applies
	svc := NewRegistrationService(regRepo, studentRepo, &cache.Client{}, 0)
	return svc, regRepo, studentRepo
}

func validRequest() *dto.RegistrationRequest {
	return &dto.RegistrationRequest{
		StudentFirstName:  "An",
		StudentLastName:   "Nguyen",
		StudentDOB:        "2015-03-01",
		ParentFirstName:   "Binh",
		ParentLastName:    "Tran",
		ParentEmail:       "binh@example.com",
		ParentPhone:       "8081234567",
		ParentRelation:    "Mẹ",
		Address:           "123 Main St",
		City:              "Honolulu",
		State:             "HI",
		ZipCode:           "96814",
		EmergencyName:     "Hoa Le",
		EmergencyPhone:    "8089999999",
		EmergencyRelation: "Bà",
	}
}

func TestSubmitCreatesPendingApplication(t *testing.T) {
	svc, regRepo, _ := newTestService(t)

	app, err := svc.Submit(context.Background(), validRequest())
	require.NoError(t, err)
	require.NotNil(t, app)
	assert.Equal(t, domain.ApplicationPending, app.Status)

	found, err := regRepo.FindByID(app.ID)
	require.NoError(t, err)
	assert.Equal(t, "An", found.StudentFirstName)
	assert.Equal(t, "binh@example.com", found.ParentEmail)
	assert.Empty(t, found.PreferredGrade, "grade left for the school to assign")
	assert.Nil(t, found.ReviewedAt)
}

func TestSubmitRejectsMissingRequiredFields(t *testing.T) {
	svc, _, _ := newTestService(t)

	req := validRequest()
	req.EmergencyPhone = ""
	_, err := svc.Submit(context.Background(), req)
	assert.ErrorIs(t, err, ErrIncomplete)

	req = validRequest()
	req.ParentEmail = ""
	_, err = svc.Submit(context.Background(), req)
	assert.ErrorIs(t, err, ErrIncomplete)
}

func TestSubmitRejectsUnknownGrade(t *testing.T) {
	svc, _, _ := newTestService(t)

	req := validRequest()
	req.PreferredGrade = "LOP_12"
	_, err := svc.Submit(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidGrade)

	req.PreferredGrade = "LOP_3"
	_, err = svc.Submit(context.Background(), req)
	assert.NoError(t, err)
}

func TestSubmitRejectsOpenDuplicate(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Submit(context.Background(), validRequest())
	require.NoError(t, err)

	_, err = svc.Submit(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrDuplicate)

	// A different student from the same family is fine.
	req := validRequest()
	req.StudentFirstName = "Mai"
	_, err = svc.Submit(context.Background(), req)
	assert.NoError(t, err)
}

func TestSubmitAllowedAgainAfterDecision(t *testing.T) {
	svc, _, _ := newTestService(t)

	app, err := svc.Submit(context.Background(), validRequest())
	require.NoError(t, err)

	_, err = svc.StartReview(app.ID, "cô Lan")
	require.NoError(t, err)
	_, err = svc.Decide(app.ID, &dto.DecisionRequest{Status: "REJECTED", Notes: "Hết chỗ"})
	require.NoError(t, err)

	// The earlier application is decided, so a fresh one may be filed.
	_, err = svc.Submit(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestReviewLifecycle(t *testing.T) {
	svc, _, _ := newTestService(t)

	app, err := svc.Submit(context.Background(), validRequest())
	require.NoError(t, err)

	// No decision straight from PENDING.
	_, err = svc.Decide(app.ID, &dto.DecisionRequest{Status: "APPROVED"})
	assert.ErrorIs(t, err, ErrIllegalTransition)

	app, err = svc.StartReview(app.ID, "cô Lan")
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationUnderReview, app.Status)
	require.NotNil(t, app.ReviewedBy)
	assert.Equal(t, "cô Lan", *app.ReviewedBy)

	// Starting review twice is not a thing.
	_, err = svc.StartReview(app.ID, "cô Lan")
	assert.ErrorIs(t, err, ErrIllegalTransition)

	app, err = svc.Decide(app.ID, &dto.DecisionRequest{Status: "APPROVED", ReviewedBy: "cô Lan", Notes: "Đủ điều kiện"})
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationApproved, app.Status)
	require.NotNil(t, app.ReviewedAt)
	require.NotNil(t, app.ReviewNotes)
	assert.Equal(t, "Đủ điều kiện", *app.ReviewNotes)

	// Decided applications are final.
	_, err = svc.Decide(app.ID, &dto.DecisionRequest{Status: "WAITLISTED"})
	assert.ErrorIs(t, err, ErrIllegalTransition)
}

func TestDecideRejectsUnknownStatus(t *testing.T) {
	svc, _, _ := newTestService(t)

	app, err := svc.Submit(context.Background(), validRequest())
	require.NoError(t, err)
	_, err = svc.StartReview(app.ID, "")
	require.NoError(t, err)

	_, err = svc.Decide(app.ID, &dto.DecisionRequest{Status: "PENDING"})
	assert.ErrorIs(t, err, ErrIllegalTransition)
	_, err = svc.Decide(app.ID, &dto.DecisionRequest{Status: "approved"})
	assert.ErrorIs(t, err, ErrIllegalTransition, "status codes are case sensitive")
}

func TestConvertApprovedApplicationOnce(t *testing.T) {
	svc, regRepo, studentRepo := newTestService(t)

	req := validRequest()
	req.PreferredGrade = "LOP_1"
	req.Allergies = "Đậu phộng"
	app, err := svc.Submit(context.Background(), req)
	require.NoError(t, err)

	// Not approved yet: no conversion.
	_, err = svc.Convert(app.ID, nil)
	assert.ErrorIs(t, err, ErrNotApproved)

	_, err = svc.StartReview(app.ID, "cô Lan")
	require.NoError(t, err)
	_, err = svc.Decide(app.ID, &dto.DecisionRequest{Status: "APPROVED"})
	require.NoError(t, err)

	student, err := svc.Convert(app.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, "An", student.FirstName)
	assert.Equal(t, "Nguyen", student.LastName)
	assert.Equal(t, "2015-03-01", student.DateOfBirth)
	assert.Equal(t, "LOP_1", student.GradeLevel)
	assert.Equal(t, "Binh Tran", student.ParentName)
	assert.Contains(t, student.MedicalNotes, "Đậu phộng")
	assert.True(t, student.IsActive)

	found, err := studentRepo.FindByID(student.ID)
	require.NoError(t, err)
	assert.Equal(t, "binh@example.com", found.ParentEmail)

	// The application now points at the student and cannot convert again.
	app, err = regRepo.FindByID(app.ID)
	require.NoError(t, err)
	require.NotNil(t, app.StudentID)
	assert.Equal(t, student.ID, *app.StudentID)

	_, err = svc.Convert(app.ID, nil)
	assert.ErrorIs(t, err, ErrAlreadyConverted)
}

func TestConvertWaitlistedFails(t *testing.T) {
	svc, _, _ := newTestService(t)

	app, err := svc.Submit(context.Background(), validRequest())
	require.NoError(t, err)
	_, err = svc.StartReview(app.ID, "")
	require.NoError(t, err)
	_, err = svc.Decide(app.ID, &dto.DecisionRequest{Status: "WAITLISTED"})
	require.NoError(t, err)

	_, err = svc.Convert(app.ID, nil)
	assert.ErrorIs(t, err, ErrNotApproved)
}

func TestConvertWithClassEnrollsStudent(t *testing.T) {
	svc, _, studentRepo := newTestService(t)

	class := &domain.Class{Name: "Lớp 1A", GradeLevel: "LOP_1", SchoolYear: "2026-2027", Capacity: 20}
	require.NoError(t, studentRepo.CreateClass(class))

	app, err := svc.Submit(context.Background(), validRequest())
	require.NoError(t, err)
	_, err = svc.StartReview(app.ID, "")
	require.NoError(t, err)
	_, err = svc.Decide(app.ID, &dto.DecisionRequest{Status: "APPROVED"})
	require.NoError(t, err)

	student, err := svc.Convert(app.ID, &dto.ConvertRequest{ClassID: &class.ID, SchoolYear: "2026-2027"})
	require.NoError(t, err)

	count, err := studentRepo.EnrollmentCount(class.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	found, err := studentRepo.FindByID(student.ID)
	require.NoError(t, err)
	require.NotNil(t, found.ClassID)
	assert.Equal(t, class.ID, *found.ClassID)
}

// A failure partway through conversion must leave nothing behind: no student
// row, no enrollment, and an application that still converts on retry.
func TestConvertRollsBackOnEnrollmentFailure(t *testing.T) {
	db := setupRegistrationTestDB(t)
	regRepo := repository.NewRegistrationRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	svc := NewRegistrationService(regRepo, studentRepo, &cache.Client{}, 0)

	class := &domain.Class{Name: "Lớp 1A", GradeLevel: "LOP_1", SchoolYear: "2026-2027", Capacity: 20}
	require.NoError(t, studentRepo.CreateClass(class))

	app, err := svc.Submit(context.Background(), validRequest())
	require.NoError(t, err)
	_, err = svc.StartReview(app.ID, "")
	require.NoError(t, err)
	_, err = svc.Decide(app.ID, &dto.DecisionRequest{Status: "APPROVED"})
	require.NoError(t, err)

	// Force the enrollment write to fail mid-transaction.
	require.NoError(t, db.Migrator().DropTable(&domain.Enrollment{}))
	_, err = svc.Convert(app.ID, &dto.ConvertRequest{ClassID: &class.ID, SchoolYear: "2026-2027"})
	require.Error(t, err)

	var students int64
	require.NoError(t, db.Model(&domain.Student{}).Count(&students).Error)
	assert.Zero(t, students, "a rolled-back conversion must not keep the student")

	found, err := regRepo.FindByID(app.ID)
	require.NoError(t, err)
	assert.Nil(t, found.StudentID)

	// With the fault gone, a retry converts cleanly.
	require.NoError(t, db.AutoMigrate(&domain.Enrollment{}))
	student, err := svc.Convert(app.ID, &dto.ConvertRequest{ClassID: &class.ID, SchoolYear: "2026-2027"})
	require.NoError(t, err)

	found, err = regRepo.FindByID(app.ID)
	require.NoError(t, err)
	require.NotNil(t, found.StudentID)
	assert.Equal(t, student.ID, *found.StudentID)

	count, err := studentRepo.EnrollmentCount(class.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
