package config

// Backend kinds understood by the application.
const (
	BackendFirebase = "firebase"
	BackendPostgres = "postgres"
)

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Log      LogConfig      `mapstructure:"log" validate:"required"`
	Backend  BackendConfig  `mapstructure:"backend" validate:"required"`
	Firebase FirebaseConfig `mapstructure:"firebase"`
	Database DatabaseConfig `mapstructure:"database"`
	Auth     AuthConfig     `mapstructure:"auth"`
}

// LogConfig contains logging settings. Logs never go to stdout, which
// belongs to the interactive console.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	// File is an optional path to append JSON logs to. Empty means stderr.
	File string `mapstructure:"file"`
}

// BackendConfig selects which identity provider and document store to use.
type BackendConfig struct {
	Kind string `mapstructure:"kind" validate:"required,oneof=firebase postgres"`
}

// FirebaseConfig contains the service-account settings for the Firebase backend.
type FirebaseConfig struct {
	CredentialsFile string `mapstructure:"credentials_file"`
	// ProjectID overrides the project named in the credentials file.
	ProjectID string `mapstructure:"project_id"`
}

// DatabaseConfig contains the PostgreSQL backend settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"omitempty,url"`
}

// AuthConfig contains sign-in behaviour settings.
type AuthConfig struct {
	// VerifyPassword makes sign-in check the password instead of only
	// looking the account up by email. Not available on the Firebase backend.
	VerifyPassword bool `mapstructure:"verify_password"`
}
