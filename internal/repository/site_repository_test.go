package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/sonyho2715/truong-viet-ngu-sub000/internal/domain"
)

func setupSiteTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&domain.ContactMessage{},
		&domain.VolunteerOpportunity{},
		&domain.GalleryAlbum{},
		&domain.GalleryImage{},
		&domain.SlideshowSlide{},
	)
	require.NoError(t, err)

	return db
}

func TestContactStatusLifecycle(t *testing.T) {
	db := setupSiteTestDB(t)
	repo := NewSiteRepository(db)

	msg := &domain.ContactMessage{
		Name:    "Chi Pham",
		Email:   "chi@example.com",
		Message: "Xin hỏi về lịch học",
		Status:  domain.ContactNew,
	}
	require.NoError(t, repo.CreateContact(msg))

	require.NoError(t, repo.SetContactStatus(msg.ID, domain.ContactRead))
	found, err := repo.FindContactByID(msg.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ContactRead, found.Status)
	assert.Nil(t, found.ResolvedAt)

	require.NoError(t, repo.SetContactStatus(msg.ID, domain.ContactResolved))
	found, err = repo.FindContactByID(msg.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ContactResolved, found.Status)
	assert.NotNil(t, found.ResolvedAt)

	newStatus := domain.ContactNew
	msgs, total, err := repo.ListContacts(&newStatus, 1, 10)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, msgs)
}

func TestActiveSlidesOrderedByPosition(t *testing.T) {
	db := setupSiteTestDB(t)
	repo := NewSiteRepository(db)

	require.NoError(t, repo.CreateSlide(&domain.SlideshowSlide{ImageURL: "/b.jpg", Position: 2, IsActive: true}))
	require.NoError(t, repo.CreateSlide(&domain.SlideshowSlide{ImageURL: "/a.jpg", Position: 1, IsActive: true}))
	require.NoError(t, repo.CreateSlide(&domain.SlideshowSlide{ImageURL: "/c.jpg", Position: 3, IsActive: false}))

	slides, err := repo.ListActiveSlides()
	require.NoError(t, err)
	require.Len(t, slides, 2, "inactive slides stay off the homepage")
	assert.Equal(t, "/a.jpg", slides[0].ImageURL)
	assert.Equal(t, "/b.jpg", slides[1].ImageURL)

	all, err := repo.ListAllSlides()
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestAlbumImagesOrderedAndDeletedWithAlbum(t *testing.T) {
	db := setupSiteTestDB(t)
	repo := NewSiteRepository(db)

	album := &domain.GalleryAlbum{TitleVi: "Tết 2026"}
	require.NoError(t, repo.CreateAlbum(album))
	require.NoError(t, repo.AddAlbumImage(&domain.GalleryImage{AlbumID: album.ID, URL: "/2.jpg", Position: 2}))
	require.NoError(t, repo.AddAlbumImage(&domain.GalleryImage{AlbumID: album.ID, URL: "/1.jpg", Position: 1}))

	found, err := repo.FindAlbumByID(album.ID)
	require.NoError(t, err)
	require.Len(t, found.Images, 2)
	assert.Equal(t, "/1.jpg", found.Images[0].URL)

	require.NoError(t, repo.DeleteAlbum(album.ID))
	_, err = repo.FindAlbumByID(album.ID)
	assert.True(t, IsNotFound(err))
}
