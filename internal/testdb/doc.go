// Package testdb provides helpers for tests that run against a real
// PostgreSQL database.
//
// Tests using it are expected to sit behind the integration build tag.
// When no database URL is configured the helpers skip the test locally and
// fail it in CI, so a misconfigured pipeline cannot silently pass.
package testdb
