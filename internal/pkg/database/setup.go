package database

import (
	"fmt"
	"log"
	"time"

	"github.com/estatefox/estatefox/app/models"
	"github.com/estatefox/estatefox/internal/pkg/env"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

const maxRetries = 5
const retryDelay = 5 * time.Second

var DB *gorm.DB

// SetupDatabase connects to MySQL using environment-provided credentials and
// migrates the schema. Credentials are never defaulted or logged.
func SetupDatabase() error {
	user, err := env.MustGetEnv("DB_USER")
	if err != nil {
		return err
	}
	password, err := env.MustGetEnv("DB_PASSWORD")
	if err != nil {
		return err
	}
	name, err := env.MustGetEnv("DB_NAME")
	if err != nil {
		return err
	}

	// "user:pass@tcp(127.0.0.1:3306)/dbname?charset=utf8mb4&parseTime=True&loc=Local"
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user,
		password,
		env.GetEnv("DB_HOST", "127.0.0.1"),
		env.GetEnv("DB_PORT", "3306"),
		name,
	)

	for i := 0; i < maxRetries; i++ {
		DB, err = gorm.Open(mysql.New(mysql.Config{
			DSN:                       dsn,   // data source name
			DefaultStringSize:         256,   // default size for string fields
			DisableDatetimePrecision:  true,  // disable datetime precision, which not supported before MySQL 5.6
			DontSupportRenameIndex:    true,  // drop & create when rename index, rename index not supported before MySQL 5.7, MariaDB
			DontSupportRenameColumn:   true,  // `change` when rename column, rename column not supported before MySQL 8, MariaDB
			SkipInitializeWithVersion: false, // auto configure based on currently MySQL version
		}), &gorm.Config{TranslateError: true})
		if err == nil {
			return DB.AutoMigrate(
				&models.User{},
				&models.Subscription{},
				&models.SubscriptionPayment{},
				&models.Apartment{},
				&models.Document{},
			)
		}

		log.Printf("Failed to connect to database (try %d/%d): %v", i+1, maxRetries, err)
		if i < maxRetries-1 {
			log.Printf("Retrying in %v...", retryDelay)
			time.Sleep(retryDelay)
		}
	}

	return err
}

// Close releases the underlying connection. Deferred in every binary so the
// handle is released on success, error and early-return paths alike.
func Close() error {
	if DB == nil {
		return nil
	}
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
