package config

// Config holds all configuration for the application.
type Config struct {
	DBName        string
	MigrationsDir string
	Turso         TursoConfig
}

// TursoConfig points at a remote primary database. Both fields empty means
// local-only storage.
type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}
