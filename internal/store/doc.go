// Package store defines interfaces for identity and data persistence.
// These interfaces abstract the backend (Firebase, PostgreSQL) from the
// services, so task and auth rules stay independent of how records are kept.
package store
