package testdb

import (
	"log/slog"
	"os"
)

// Environment variables consulted by this package.
const (
	EnvCI            = "CI"
	EnvGitHubActions = "GITHUB_ACTIONS"
	EnvGitLabCI      = "GITLAB_CI"
	EnvJenkinsURL    = "JENKINS_URL"
	EnvCircleCI      = "CIRCLECI"

	// EnvTestDatabaseURL is the preferred name for the test database URL.
	EnvTestDatabaseURL = "TASKLIST_TEST_DB_URL"
	EnvDatabaseURL     = "DATABASE_URL"
	// EnvConfigDatabaseURL is the variable the application config reads.
	EnvConfigDatabaseURL = "TASKLIST_DATABASE_URL"
)

// IsCI reports whether the process runs under a known CI provider.
func IsCI() bool {
	for _, name := range []string{EnvCI, EnvGitHubActions, EnvGitLabCI, EnvJenkinsURL, EnvCircleCI} {
		if os.Getenv(name) != "" {
			return true
		}
	}
	return false
}

// DatabaseURL returns the first non-empty test database URL, or "".
func DatabaseURL() string {
	return envWithFallbacks([]string{EnvTestDatabaseURL, EnvDatabaseURL, EnvConfigDatabaseURL}, slog.Default())
}

// envWithFallbacks returns the value of the first set variable in names.
// Falling back past the first name is logged at debug level.
func envWithFallbacks(names []string, logger *slog.Logger) string {
	for i, name := range names {
		if v := os.Getenv(name); v != "" {
			if i > 0 && logger != nil {
				logger.Debug("using fallback database variable",
					slog.String("used_var", name),
					slog.String("preferred_var", names[0]),
				)
			}
			return v
		}
	}
	return ""
}
