package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sonyho2715/truong-viet-ngu-sub000/internal/domain"
)

// SiteRepository covers the remaining site furniture: contact messages,
// volunteer opportunities, gallery albums and the homepage slideshow.
type SiteRepository struct {
	db *gorm.DB
}

func NewSiteRepository(db *gorm.DB) *SiteRepository {
	return &SiteRepository{db: db}
}

// Contact messages

func (r *SiteRepository) CreateContact(msg *domain.ContactMessage) error {
	return r.db.Create(msg).Error
}

func (r *SiteRepository) FindContactByID(id uuid.UUID) (*domain.ContactMessage, error) {
	var msg domain.ContactMessage
	err := r.db.Where("id = ? AND deleted_at IS NULL", id).First(&msg).Error
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

func (r *SiteRepository) ListContacts(status *domain.ContactStatus, page, limit int) ([]domain.ContactMessage, int64, error) {
	var msgs []domain.ContactMessage
	var total int64

	query := r.db.Model(&domain.ContactMessage{}).Where("deleted_at IS NULL")
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	query.Count(&total)

	offset := (page - 1) * limit
	err := query.Offset(offset).Limit(limit).Order("created_at DESC").Find(&msgs).Error
	return msgs, total, err
}

// SetContactStatus moves a message through new -> read -> resolved. The
// resolved timestamp is only ever set once.
func (r *SiteRepository) SetContactStatus(id uuid.UUID, status domain.ContactStatus) error {
	updates := map[string]interface{}{"status": status}
	if status == domain.ContactResolved {
		now := time.Now()
		updates["resolved_at"] = &now
	}
	return r.db.Model(&domain.ContactMessage{}).Where("id = ?", id).Updates(updates).Error
}

// Volunteer opportunities

func (r *SiteRepository) CreateVolunteer(v *domain.VolunteerOpportunity) error {
	return r.db.Create(v).Error
}

func (r *SiteRepository) FindVolunteerByID(id uuid.UUID) (*domain.VolunteerOpportunity, error) {
	var v domain.VolunteerOpportunity
	err := r.db.Where("id = ? AND deleted_at IS NULL", id).First(&v).Error
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *SiteRepository) UpdateVolunteer(v *domain.VolunteerOpportunity) error {
	return r.db.Save(v).Error
}

func (r *SiteRepository) DeleteVolunteer(id uuid.UUID) error {
	return r.db.Where("id = ?", id).Delete(&domain.VolunteerOpportunity{}).Error
}

func (r *SiteRepository) ListVolunteers(openOnly bool) ([]domain.VolunteerOpportunity, error) {
	var vols []domain.VolunteerOpportunity
	query := r.db.Where("deleted_at IS NULL")
	if openOnly {
		query = query.Where("is_open = ?", true)
	}
	err := query.Order("created_at DESC").Find(&vols).Error
	return vols, err
}

// Gallery

func (r *SiteRepository) CreateAlbum(album *domain.GalleryAlbum) error {
	return r.db.Create(album).Error
}

func (r *SiteRepository) FindAlbumByID(id uuid.UUID) (*domain.GalleryAlbum, error) {
	var album domain.GalleryAlbum
	err := r.db.Preload("Images", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	}).Where("id = ? AND deleted_at IS NULL", id).First(&album).Error
	if err != nil {
		return nil, err
	}
	return &album, nil
}

func (r *SiteRepository) UpdateAlbum(album *domain.GalleryAlbum) error {
	return r.db.Save(album).Error
}

func (r *SiteRepository) DeleteAlbum(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("album_id = ?", id).Delete(&domain.GalleryImage{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&domain.GalleryAlbum{}).Error
	})
}

func (r *SiteRepository) ListAlbums() ([]domain.GalleryAlbum, error) {
	var albums []domain.GalleryAlbum
	err := r.db.Where("deleted_at IS NULL").Order("created_at DESC").Find(&albums).Error
	return albums, err
}

func (r *SiteRepository) AddAlbumImage(img *domain.GalleryImage) error {
	return r.db.Create(img).Error
}

func (r *SiteRepository) DeleteAlbumImage(albumID, imageID uuid.UUID) error {
	return r.db.Where("id = ? AND album_id = ?", imageID, albumID).
		Delete(&domain.GalleryImage{}).Error
}

// Slideshow

func (r *SiteRepository) CreateSlide(slide *domain.SlideshowSlide) error {
	return r.db.Create(slide).Error
}

func (r *SiteRepository) FindSlideByID(id uuid.UUID) (*domain.SlideshowSlide, error) {
	var slide domain.SlideshowSlide
	err := r.db.Where("id = ? AND deleted_at IS NULL", id).First(&slide).Error
	if err != nil {
		return nil, err
	}
	return &slide, nil
}

func (r *SiteRepository) UpdateSlide(slide *domain.SlideshowSlide) error {
	return r.db.Save(slide).Error
}

func (r *SiteRepository) DeleteSlide(id uuid.UUID) error {
	return r.db.Where("id = ?", id).Delete(&domain.SlideshowSlide{}).Error
}

// ListActiveSlides returns the homepage carousel in display order.
func (r *SiteRepository) ListActiveSlides() ([]domain.SlideshowSlide, error) {
	var slides []domain.SlideshowSlide
	err := r.db.Where("is_active = ? AND deleted_at IS NULL", true).
		Order("position ASC").
		Find(&slides).Error
	return slides, err
}

func (r *SiteRepository) ListAllSlides() ([]domain.SlideshowSlide, error) {
	var slides []domain.SlideshowSlide
	err := r.db.Where("deleted_at IS NULL").Order("position ASC").Find(&slides).Error
	return slides, err
}
