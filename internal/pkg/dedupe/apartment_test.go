package dedupe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/estatefox/estatefox/app/models"
	"github.com/estatefox/estatefox/app/repository"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	assert.NoError(t, err)
	err = db.AutoMigrate(&models.Apartment{})
	assert.NoError(t, err)
	return db
}

func TestApartmentDedupe(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewApartmentRepository(db)

	assert.NoError(t, repo.Create(&models.Apartment{UniqueID: "U1", Title: "Altbau 2Zi"}))
	assert.NoError(t, repo.Create(&models.Apartment{UniqueID: "U1", Title: "Altbau 2Zi (reimport)"}))
	assert.NoError(t, repo.Create(&models.Apartment{UniqueID: "U2", Title: "Neubau 3Zi"}))

	engine := ForApartments(repo)
	report, err := engine.Run()
	assert.NoError(t, err)
	assert.Len(t, report.Groups, 1)
	assert.Equal(t, "U1", report.Groups[0].Key)
	assert.Equal(t, []uint{2}, report.Groups[0].RemovedIDs)

	// Ids 1 and 3 remain; the earliest row per key is canonical.
	kept, err := repo.ListOrderedByID()
	assert.NoError(t, err)
	assert.Len(t, kept, 2)
	assert.Equal(t, uint(1), kept[0].ID)
	assert.Equal(t, "Altbau 2Zi", kept[0].Title)
	assert.Equal(t, uint(3), kept[1].ID)

	count, err := repo.CountByUniqueID("U1")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)

	// A second pass is a no-op.
	report, err = engine.Run()
	assert.NoError(t, err)
	assert.Equal(t, 0, report.Removed)
}
