package commands

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/estatefox/estatefox/app/models"
	"github.com/estatefox/estatefox/app/repository"
	"github.com/estatefox/estatefox/internal/pkg/accounts"
	"github.com/estatefox/estatefox/internal/pkg/env"
)

func SeedCmd() *cobra.Command {
	var apartmentCount int

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Recreate the demo account and seed demo apartments",
		Long:  "Deletes and recreates the demo operator account, then creates demo apartment listings. Destructive; only for controlled test/seed environments. The demo credentials come from SEED_DEMO_EMAIL and SEED_DEMO_PASSWORD.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(func(db *gorm.DB) error {
				email, err := env.MustGetEnv("SEED_DEMO_EMAIL")
				if err != nil {
					return err
				}
				password, err := env.MustGetEnv("SEED_DEMO_PASSWORD")
				if err != nil {
					return err
				}

				svc := accounts.NewServiceFromDB(db)
				user, err := svc.RecreateAccount(email, accounts.AccountAttributes{
					Name:     env.GetEnv("SEED_DEMO_NAME", "Demo Operator"),
					Company:  env.GetEnv("SEED_DEMO_COMPANY", "EstateFox Demo"),
					Password: password,
					Role:     models.ROLE_ADMIN,
					Plan:     models.PlanProfessional,
				})
				if err != nil {
					return err
				}
				fmt.Printf("Demo account ready: %s (id %d)\n", user.Email, user.ID)

				apartments := repository.NewFactory(db).GetApartmentRepository()
				for i := 0; i < apartmentCount; i++ {
					apartment := &models.Apartment{
						UniqueID:   "demo-" + uuid.NewString(),
						Title:      fmt.Sprintf("Demo apartment %d", i+1),
						Street:     fmt.Sprintf("Musterstrasse %d", i+1),
						City:       "Berlin",
						PostalCode: "10115",
						RoomCount:  2 + i%3,
						Size:       45.0 + float64(i)*12.5,
						RentCold:   80000 + int64(i)*15000,
						RentWarm:   95000 + int64(i)*15000,
						IsVacant:   true,
					}
					if err := apartments.Create(apartment); err != nil {
						return fmt.Errorf("seed apartment %d: %w", i+1, err)
					}
				}
				fmt.Printf("Seeded %d demo apartment(s)\n", apartmentCount)
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&apartmentCount, "apartments", 5, "number of demo apartments to create")
	return cmd
}
