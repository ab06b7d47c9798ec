package config

const (
	// DefaultDatabasePath is the default path for the library database
	DefaultDatabasePath = "./frontdesk.db"

	// DefaultLoanPeriodDays is how long a borrowed item may be kept
	DefaultLoanPeriodDays = 14
)
