package generator

// Config drives the fixture generator volumes and seeding.
type Config struct {
	Users                  int
	AccountsPerUser        int
	TransactionsPerAccount int
	Payees                 int
	// Seed 0 means derive from the clock; any other value makes the output
	// reproducible.
	Seed int64
}

// DefaultConfig returns the baseline dataset shape the automation suite
// expects.
func DefaultConfig() Config {
	return Config{
		Users:                  3,
		AccountsPerUser:        2,
		TransactionsPerAccount: 50,
		Payees:                 5,
	}
}
