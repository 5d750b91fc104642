package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sonyho2715/truong-viet-ngu-sub000/internal/domain"
)

type RegistrationRepository struct {
	db *gorm.DB
}

func NewRegistrationRepository(db *gorm.DB) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

func (r *RegistrationRepository) Create(app *domain.RegistrationApplication) error {
	return r.db.Create(app).Error
}

func (r *RegistrationRepository) FindByID(id uuid.UUID) (*domain.RegistrationApplication, error) {
	var app domain.RegistrationApplication
	err := r.db.Preload("Student").Where("id = ? AND deleted_at IS NULL", id).First(&app).Error
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *RegistrationRepository) Update(app *domain.RegistrationApplication) error {
	return r.db.Save(app).Error
}

// List returns applications, newest first, optionally filtered by status.
func (r *RegistrationRepository) List(status *domain.ApplicationStatus, page, limit int) ([]domain.RegistrationApplication, int64, error) {
	var apps []domain.RegistrationApplication
	var total int64

	query := r.db.Model(&domain.RegistrationApplication{}).Where("deleted_at IS NULL")
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	query.Count(&total)

	offset := (page - 1) * limit
	err := query.Offset(offset).Limit(limit).Order("created_at DESC").Find(&apps).Error
	return apps, total, err
}

// ListAll returns every application for the spreadsheet export, oldest first
// so the export reads like an intake log.
func (r *RegistrationRepository) ListAll(status *domain.ApplicationStatus) ([]domain.RegistrationApplication, error) {
	var apps []domain.RegistrationApplication
	query := r.db.Where("deleted_at IS NULL")
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	err := query.Order("created_at ASC").Find(&apps).Error
	return apps, err
}

// HasOpenApplication reports whether the same student already has an
// application that has not been decided yet. This is the durable half of the
// duplicate guard; the Redis fingerprint only covers rapid double-submits.
func (r *RegistrationRepository) HasOpenApplication(firstName, lastName, dob, parentEmail string) (bool, error) {
	var count int64
	err := r.db.Model(&domain.RegistrationApplication{}).
		Where("student_first_name = ? AND student_last_name = ? AND student_dob = ? AND parent_email = ?",
			firstName, lastName, dob, parentEmail).
		Where("status IN ?", []domain.ApplicationStatus{domain.ApplicationPending, domain.ApplicationUnderReview}).
		Where("deleted_at IS NULL").
		Count(&count).Error
	return count > 0, err
}

// Convert persists the student record, the optional enrollment and the
// application's student pointer in one transaction: either the conversion
// lands whole or the database keeps no trace of it, so a failed attempt can
// be retried without leaving an orphan student behind.
func (r *RegistrationRepository) Convert(app *domain.RegistrationApplication, student *domain.Student, classID *uuid.UUID, schoolYear string) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(student).Error; err != nil {
			return err
		}
		if classID != nil {
			e := domain.Enrollment{StudentID: student.ID, ClassID: *classID, SchoolYear: schoolYear}
			if err := tx.Create(&e).Error; err != nil {
				return err
			}
			if err := tx.Model(&domain.Student{}).
				Where("id = ?", student.ID).
				Update("class_id", classID).Error; err != nil {
				return err
			}
			student.ClassID = classID
		}
		app.StudentID = &student.ID
		return tx.Save(app).Error
	})
	if err != nil {
		// rolled back; the in-memory pointer must match the database
		app.StudentID = nil
	}
	return err
}

// CountByStatus feeds the admin dashboard.
func (r *RegistrationRepository) CountByStatus() (map[domain.ApplicationStatus]int64, error) {
	type row struct {
		Status domain.ApplicationStatus
		N      int64
	}
	var rows []row
	err := r.db.Model(&domain.RegistrationApplication{}).
		Select("status, COUNT(*) as n").
		Where("deleted_at IS NULL").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[domain.ApplicationStatus]int64, len(rows))
	for _, r := range rows {
		counts[r.Status] = r.N
	}
	return counts, nil
}

// IsNotFound lets handlers translate a missing row into a 404 without
// importing gorm.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
