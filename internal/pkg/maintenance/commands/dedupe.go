package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/estatefox/estatefox/internal/pkg/dedupe"
)

func DedupeApartmentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dedupe-apartments",
		Short: "Collapse duplicate apartment rows sharing a unique_id",
		Long:  "Keeps the earliest-created row per unique_id and deletes the rest one at a time. A duplicate that cannot be deleted is reported and the pass continues with the next group.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(func(db *gorm.DB) error {
				report, err := dedupe.ForApartmentsFromDB(db).Run()
				if err != nil {
					return err
				}
				fmt.Printf("Scanned %d apartment(s): %d duplicate group(s), removed %d, %d failure(s)\n",
					report.Scanned, len(report.Groups), report.Removed, report.Failed)
				for _, group := range report.Groups {
					fmt.Printf("  %s: %d duplicate(s), removed ids %v\n", group.Key, group.Duplicates, group.RemovedIDs)
					for _, f := range group.Failures {
						fmt.Printf("    id %d not removed: %s\n", f.ID, f.Err)
					}
				}
				return nil
			})
		},
	}
}
