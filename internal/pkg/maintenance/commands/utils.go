package commands

import (
	"log"

	"gorm.io/gorm"

	"github.com/estatefox/estatefox/internal/pkg/database"
	"github.com/estatefox/estatefox/internal/pkg/env"
)

// withDatabase loads the environment, opens the store and guarantees the
// connection is released on every exit path of the wrapped command.
func withDatabase(run func(db *gorm.DB) error) error {
	env.SetupEnvFile()
	if err := database.SetupDatabase(); err != nil {
		return err
	}
	defer func() {
		if err := database.Close(); err != nil {
			log.Printf("Failed to close database connection: %v", err)
		}
	}()

	return run(database.DB)
}
