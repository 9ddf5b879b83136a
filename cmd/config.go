package cmd

import "time"

// Config carries the environment-driven settings of the service.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	AmqpURL string

	AuthSecret   string
	AuthTokenTTL time.Duration

	// AdminEmail/AdminPassword describe the bootstrap account seeded at
	// startup. Seeding is skipped when either is empty.
	AdminEmail    string
	AdminPassword string

	// OrderRetention is how long soft-deleted orders are kept before the
	// purge job removes them. Zero selects the default.
	OrderRetention time.Duration
}
