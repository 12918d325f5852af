package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/estatefox/estatefox/internal/pkg/docurl"
	"github.com/estatefox/estatefox/internal/pkg/env"
)

func FixDocumentURLsCmd() *cobra.Command {
	var baseOrigin string

	cmd := &cobra.Command{
		Use:   "fix-document-urls",
		Short: "Rewrite root-relative document references to absolute URLs",
		Long:  "Rewrites every document file_url still starting with /uploads/ to an absolute URL under the public backend origin. Safe to run repeatedly: rewritten rows no longer match the filter.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(func(db *gorm.DB) error {
				origin := baseOrigin
				if origin == "" {
					var err error
					origin, err = env.MustGetEnv("PUBLIC_BACKEND_URL")
					if err != nil {
						return err
					}
				}

				svc, err := docurl.NewServiceFromDB(db, origin)
				if err != nil {
					return err
				}
				report, err := svc.Run()
				if err != nil {
					return err
				}
				fmt.Printf("Matched %d document(s), rewrote %d, %d failure(s)\n",
					report.Matched, report.Updated, len(report.Failures))
				for _, f := range report.Failures {
					fmt.Printf("  document %d: %s\n", f.DocumentID, f.Err)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&baseOrigin, "base-origin", "", "base origin for rewritten URLs (defaults to PUBLIC_BACKEND_URL)")
	return cmd
}
