package docurl

import (
	"errors"
	"fmt"
	"strings"

	"github.com/estatefox/estatefox/app/models"
	"github.com/estatefox/estatefox/app/repository"
	"gorm.io/gorm"
)

// Failure records one document whose reference could not be rewritten.
type Failure struct {
	DocumentID uint
	Err        string
}

// Report is the outcome of one normalization pass.
type Report struct {
	Matched  int
	Updated  int
	Failures []Failure
}

// Service rewrites root-relative document references to absolute URLs under a
// configured base origin. Idempotence is structural: the sweep only selects
// rows still matching the relative prefix, so a second run matches nothing.
type Service struct {
	docs       repository.DocumentRepository
	baseOrigin string
}

// NewService creates a normalizer for the given base origin, e.g. the public
// backend URL. The origin comes from configuration, never hard-coded.
func NewService(docs repository.DocumentRepository, baseOrigin string) (*Service, error) {
	origin := strings.TrimRight(strings.TrimSpace(baseOrigin), "/")
	if origin == "" {
		return nil, errors.New("base origin is required")
	}
	return &Service{docs: docs, baseOrigin: origin}, nil
}

// NewServiceFromDB creates a normalizer from a GORM DB handle.
func NewServiceFromDB(db *gorm.DB, baseOrigin string) (*Service, error) {
	return NewService(repository.NewDocumentRepository(db), baseOrigin)
}

// Run rewrites every matching document once. The relative path is assumed
// well-formed, so the new URL is plain concatenation. Per-row failures are
// recorded and the sweep continues.
func (s *Service) Run() (*Report, error) {
	docs, err := s.docs.ListByFileURLPrefix(models.UploadPathPrefix)
	if err != nil {
		return nil, fmt.Errorf("list documents with relative references: %w", err)
	}

	report := &Report{Matched: len(docs)}
	for _, doc := range docs {
		newURL := s.baseOrigin + doc.FileURL
		if err := s.docs.UpdateFileURL(doc.ID, newURL); err != nil {
			report.Failures = append(report.Failures, Failure{DocumentID: doc.ID, Err: err.Error()})
			continue
		}
		report.Updated++
	}

	return report, nil
}
