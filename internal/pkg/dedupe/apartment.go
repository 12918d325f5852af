package dedupe

import (
	"github.com/estatefox/estatefox/app/repository"
	"gorm.io/gorm"
)

// ForApartments binds the engine to the apartment table, keyed by unique_id.
func ForApartments(repo repository.ApartmentRepository) *Engine {
	load := func() ([]Record, error) {
		apartments, err := repo.ListOrderedByID()
		if err != nil {
			return nil, err
		}
		records := make([]Record, 0, len(apartments))
		for _, a := range apartments {
			records = append(records, Record{ID: a.ID, Key: a.UniqueID})
		}
		return records, nil
	}
	return New(load, repo.Delete)
}

// ForApartmentsFromDB is a convenience for CLI wiring.
func ForApartmentsFromDB(db *gorm.DB) *Engine {
	return ForApartments(repository.NewApartmentRepository(db))
}
