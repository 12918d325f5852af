package docurl

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
	err = db.AutoMigrate(&models.Document{})
	assert.NoError(t, err)
	return db
}

func TestRunRewritesRelativeReferences(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewDocumentRepository(db)

	assert.NoError(t, repo.Create(&models.Document{Name: "contract.pdf", FileURL: "/uploads/a.pdf"}))
	assert.NoError(t, repo.Create(&models.Document{Name: "floorplan.png", FileURL: "https://cdn.estatefox.test/uploads/b.png"}))

	svc, err := NewService(repo, "http://localhost:3001")
	assert.NoError(t, err)

	report, err := svc.Run()
	assert.NoError(t, err)
	assert.Equal(t, 1, report.Matched)
	assert.Equal(t, 1, report.Updated)
	assert.Empty(t, report.Failures)

	doc, err := repo.GetByID(1)
	assert.NoError(t, err)
	assert.Equal(t, "http://localhost:3001/uploads/a.pdf", doc.FileURL)

	// Already-absolute rows are untouched.
	doc, err = repo.GetByID(2)
	assert.NoError(t, err)
	assert.Equal(t, "https://cdn.estatefox.test/uploads/b.png", doc.FileURL)
}

func TestRunIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewDocumentRepository(db)

	assert.NoError(t, repo.Create(&models.Document{Name: "contract.pdf", FileURL: "/uploads/a.pdf"}))

	svc, err := NewService(repo, "http://localhost:3001")
	assert.NoError(t, err)

	_, err = svc.Run()
	assert.NoError(t, err)

	// The filter matches nothing on a second pass.
	report, err := svc.Run()
	assert.NoError(t, err)
	assert.Equal(t, 0, report.Matched)
	assert.Equal(t, 0, report.Updated)

	doc, err := repo.GetByID(1)
	assert.NoError(t, err)
	assert.Equal(t, "http://localhost:3001/uploads/a.pdf", doc.FileURL)
}

func TestNewServiceTrimsTrailingSlash(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewDocumentRepository(db)

	assert.NoError(t, repo.Create(&models.Document{Name: "contract.pdf", FileURL: "/uploads/a.pdf"}))

	svc, err := NewService(repo, "http://localhost:3001/")
	assert.NoError(t, err)

	_, err = svc.Run()
	assert.NoError(t, err)

	doc, err := repo.GetByID(1)
	assert.NoError(t, err)
	assert.Equal(t, "http://localhost:3001/uploads/a.pdf", doc.FileURL)
}

func TestNewServiceRequiresBaseOrigin(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewDocumentRepository(db)

	_, err := NewService(repo, "   ")
	assert.Error(t, err)
}
