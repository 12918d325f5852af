package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/estatefox/estatefox/internal/pkg/accounts"
)

func ResetEntitlementsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset-entitlements",
		Short: "Reset every account's entitlement fields to the no-subscription state",
		Long:  "Sets subscription status, plan and all entitlement timestamps to null/none for every account in one bulk statement. Used to undo a corrupted billing state across the whole store.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(func(db *gorm.DB) error {
				affected, err := accounts.NewServiceFromDB(db).ResetAllEntitlements()
				if err != nil {
					return err
				}
				fmt.Printf("Reset entitlements on %d account(s)\n", affected)
				return nil
			})
		},
	}
}

func PurgeSubscriptionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "purge-subscriptions",
		Short: "Delete all subscription payments and subscriptions, then reset entitlements",
		Long:  "Deletes SubscriptionPayment rows before Subscription rows so the referential invariant holds, then resets every account's entitlement fields.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(func(db *gorm.DB) error {
				report, err := accounts.NewServiceFromDB(db).PurgeSubscriptions()
				if err != nil {
					return err
				}
				fmt.Printf("Deleted %d payment(s), %d subscription(s); reset entitlements on %d account(s)\n",
					report.PaymentsDeleted, report.SubscriptionsDeleted, report.EntitlementsReset)
				return nil
			})
		},
	}
}

func PurgePendingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "purge-pending",
		Short: "Delete abandoned pending subscriptions and their payments",
		Long:  "Removes subscriptions still in status pending, payments first, so abandoned checkout attempts no longer block a new checkout for the same account. Active and terminal subscriptions are untouched.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(func(db *gorm.DB) error {
				report, err := accounts.NewServiceFromDB(db).PurgePendingSubscriptions()
				if err != nil {
					return err
				}
				fmt.Printf("Scanned %d pending subscription(s): deleted %d with %d payment(s), %d failure(s)\n",
					report.Scanned, report.SubscriptionsDeleted, report.PaymentsDeleted, len(report.Failures))
				for _, f := range report.Failures {
					fmt.Printf("  subscription %d: %s\n", f.SubscriptionID, f.Err)
				}
				return nil
			})
		},
	}
}
