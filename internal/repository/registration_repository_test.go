package repository

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/sonyho2715/truong-viet-ngu-sub000/internal/domain"
)

// setupRegistrationTestDB creates an in-memory SQLite database for testing
func setupRegistrationTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&domain.RegistrationApplication{}, &domain.Student{})
	require.NoError(t, err)

	return db
}

func testApplication(i int, status domain.ApplicationStatus) *domain.RegistrationApplication {
	return &domain.RegistrationApplication{
		StudentFirstName:  fmt.Sprintf("An%d", i),
		StudentLastName:   "Nguyen",
		StudentDOB:        "2015-03-01",
		ParentFirstName:   "Binh",
		ParentLastName:    "Tran",
		ParentEmail:       fmt.Sprintf("binh%d@example.com", i),
		ParentPhone:       "8081234567",
		ParentRelation:    "Mẹ",
		Address:           "123 Main St",
		City:              "Honolulu",
		State:             "HI",
		ZipCode:           "96814",
		EmergencyName:     "Hoa Le",
		EmergencyPhone:    "8089999999",
		EmergencyRelation: "Bà",
		Status:            status,
	}
}

func TestListFiltersByStatusAndPaginates(t *testing.T) {
	db := setupRegistrationTestDB(t)
	repo := NewRegistrationRepository(db)

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Create(testApplication(i, domain.ApplicationPending)))
	}
	for i := 5; i < 8; i++ {
		require.NoError(t, repo.Create(testApplication(i, domain.ApplicationApproved)))
	}

	apps, total, err := repo.List(nil, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(8), total)
	assert.Len(t, apps, 8)

	pending := domain.ApplicationPending
	apps, total, err = repo.List(&pending, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, apps, 3)

	apps, _, err = repo.List(&pending, 2, 3)
	require.NoError(t, err)
	assert.Len(t, apps, 2, "second page carries the remainder")
}

func TestHasOpenApplication(t *testing.T) {
	db := setupRegistrationTestDB(t)
	repo := NewRegistrationRepository(db)

	app := testApplication(1, domain.ApplicationPending)
	require.NoError(t, repo.Create(app))

	open, err := repo.HasOpenApplication("An1", "Nguyen", "2015-03-01", "binh1@example.com")
	require.NoError(t, err)
	assert.True(t, open)

	// Different DOB means a different child.
	open, err = repo.HasOpenApplication("An1", "Nguyen", "2016-03-01", "binh1@example.com")
	require.NoError(t, err)
	assert.False(t, open)

	// Once decided, the application no longer blocks.
	app.Status = domain.ApplicationRejected
	require.NoError(t, repo.Update(app))
	open, err = repo.HasOpenApplication("An1", "Nguyen", "2015-03-01", "binh1@example.com")
	require.NoError(t, err)
	assert.False(t, open)
}

func TestCountByStatus(t *testing.T) {
	db := setupRegistrationTestDB(t)
	repo := NewRegistrationRepository(db)

	for i := 0; i < 2; i++ {
		require.NoError(t, repo.Create(testApplication(i, domain.ApplicationPending)))
	}
	require.NoError(t, repo.Create(testApplication(2, domain.ApplicationWaitlisted)))

	counts, err := repo.CountByStatus()
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts[domain.ApplicationPending])
	assert.Equal(t, int64(1), counts[domain.ApplicationWaitlisted])
	assert.Zero(t, counts[domain.ApplicationApproved])
}

func TestListAllOldestFirst(t *testing.T) {
	db := setupRegistrationTestDB(t)
	repo := NewRegistrationRepository(db)

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Create(testApplication(i, domain.ApplicationPending)))
	}

	apps, err := repo.ListAll(nil)
	require.NoError(t, err)
	require.Len(t, apps, 3)
	assert.Equal(t, "An0", apps[0].StudentFirstName, "export reads like an intake log")
}
