package accounts

// AccountAttributes carries the fields used when an account has to be
// created. The password is the raw credential; only its bcrypt hash is ever
// stored.
type AccountAttributes struct {
	Name     string
	Company  string
	Password string
	Role     string
	Plan     string
}

// PurgeReport summarizes a full subscription purge.
type PurgeReport struct {
	PaymentsDeleted      int64
	SubscriptionsDeleted int64
	EntitlementsReset    int64
}

// SweepFailure records one record that could not be processed during a sweep.
type SweepFailure struct {
	SubscriptionID uint
	Err            string
}

// PendingPurgeReport summarizes a purge of pending subscriptions. Failures
// are enumerated instead of aborting the sweep.
type PendingPurgeReport struct {
	Scanned              int
	PaymentsDeleted      int64
	SubscriptionsDeleted int
	Failures             []SweepFailure
}
