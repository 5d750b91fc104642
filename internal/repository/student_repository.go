package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sonyho2715/truong-viet-ngu-sub000/internal/domain"
)

type StudentRepository struct {
	db *gorm.DB
}

func NewStudentRepository(db *gorm.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

func (r *StudentRepository) Create(student *domain.Student) error {
	return r.db.Create(student).Error
}

func (r *StudentRepository) FindByID(id uuid.UUID) (*domain.Student, error) {
	var student domain.Student
	err := r.db.Preload("Class").Where("id = ? AND deleted_at IS NULL", id).First(&student).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *StudentRepository) Update(student *domain.Student) error {
	return r.db.Save(student).Error
}

func (r *StudentRepository) List(activeOnly bool, page, limit int) ([]domain.Student, int64, error) {
	var students []domain.Student
	var total int64

	query := r.db.Model(&domain.Student{}).Where("deleted_at IS NULL")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	query.Count(&total)

	offset := (page - 1) * limit
	err := query.Preload("Class").
		Offset(offset).Limit(limit).
		Order("last_name ASC, first_name ASC").
		Find(&students).Error
	return students, total, err
}

// Classes

func (r *StudentRepository) CreateClass(class *domain.Class) error {
	return r.db.Create(class).Error
}

func (r *StudentRepository) FindClassByID(id uuid.UUID) (*domain.Class, error) {
	var class domain.Class
	err := r.db.Where("id = ? AND deleted_at IS NULL", id).First(&class).Error
	if err != nil {
		return nil, err
	}
	return &class, nil
}

func (r *StudentRepository) UpdateClass(class *domain.Class) error {
	return r.db.Save(class).Error
}

func (r *StudentRepository) DeleteClass(id uuid.UUID) error {
	return r.db.Where("id = ?", id).Delete(&domain.Class{}).Error
}

func (r *StudentRepository) ListClasses(activeOnly bool) ([]domain.Class, error) {
	var classes []domain.Class
	query := r.db.Where("deleted_at IS NULL")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	err := query.Order("school_year DESC, grade_level ASC, name ASC").Find(&classes).Error
	return classes, err
}

// Enrollments. Rows are written by RegistrationRepository.Convert as part of
// the conversion transaction; this side only counts them.

func (r *StudentRepository) EnrollmentCount(classID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Enrollment{}).Where("class_id = ?", classID).Count(&count).Error
	return count, err
}
