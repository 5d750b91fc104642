package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/sonyho2715/truong-viet-ngu-sub000/internal/domain"
)

// ContentRepository covers the editorial side of the site: blog posts and
// calendar events.
type ContentRepository struct {
	db *gorm.DB
}

func NewContentRepository(db *gorm.DB) *ContentRepository {
	return &ContentRepository{db: db}
}

// Blog posts

func (r *ContentRepository) CreatePost(post *domain.BlogPost) error {
	return r.db.Create(post).Error
}

func (r *ContentRepository) FindPostByID(id uuid.UUID) (*domain.BlogPost, error) {
	var post domain.BlogPost
	err := r.db.Where("id = ? AND deleted_at IS NULL", id).First(&post).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *ContentRepository) FindPublishedPostBySlug(slug string) (*domain.BlogPost, error) {
	var post domain.BlogPost
	err := r.db.Where("slug = ? AND status = ? AND deleted_at IS NULL", slug, domain.PostPublished).
		First(&post).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *ContentRepository) UpdatePost(post *domain.BlogPost) error {
	return r.db.Save(post).Error
}

func (r *ContentRepository) DeletePost(id uuid.UUID) error {
	return r.db.Where("id = ?", id).Delete(&domain.BlogPost{}).Error
}

func (r *ContentRepository) ListPublishedPosts(page, limit int) ([]domain.BlogPost, int64, error) {
	var posts []domain.BlogPost
	var total int64

	query := r.db.Model(&domain.BlogPost{}).
		Where("status = ? AND deleted_at IS NULL", domain.PostPublished)
	query.Count(&total)

	offset := (page - 1) * limit
	err := query.Offset(offset).Limit(limit).Order("published_at DESC").Find(&posts).Error
	return posts, total, err
}

func (r *ContentRepository) ListAllPosts(page, limit int) ([]domain.BlogPost, int64, error) {
	var posts []domain.BlogPost
	var total int64

	query := r.db.Model(&domain.BlogPost{}).Where("deleted_at IS NULL")
	query.Count(&total)

	offset := (page - 1) * limit
	err := query.Offset(offset).Limit(limit).Order("created_at DESC").Find(&posts).Error
	return posts, total, err
}

// Calendar events

func (r *ContentRepository) CreateEvent(event *domain.CalendarEvent) error {
	return r.db.Create(event).Error
}

func (r *ContentRepository) FindEventByID(id uuid.UUID) (*domain.CalendarEvent, error) {
	var event domain.CalendarEvent
	err := r.db.Where("id = ? AND deleted_at IS NULL", id).First(&event).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *ContentRepository) UpdateEvent(event *domain.CalendarEvent) error {
	return r.db.Save(event).Error
}

func (r *ContentRepository) DeleteEvent(id uuid.UUID) error {
	return r.db.Where("id = ?", id).Delete(&domain.CalendarEvent{}).Error
}

// ListUpcomingEvents returns events starting at or after from, soonest first.
func (r *ContentRepository) ListUpcomingEvents(from time.Time, limit int) ([]domain.CalendarEvent, error) {
	var events []domain.CalendarEvent
	err := r.db.Where("starts_at >= ? AND deleted_at IS NULL", from).
		Order("starts_at ASC").
		Limit(limit).
		Find(&events).Error
	return events, err
}

func (r *ContentRepository) ListEventsBetween(from, to time.Time) ([]domain.CalendarEvent, error) {
	var events []domain.CalendarEvent
	err := r.db.Where("starts_at >= ? AND starts_at < ? AND deleted_at IS NULL", from, to).
		Order("starts_at ASC").
		Find(&events).Error
	return events, err
}

// IsUniqueViolation reports whether err is a Postgres unique-constraint
// failure, e.g. a duplicate post slug.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
