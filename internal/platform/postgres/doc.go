// Package postgres provides PostgreSQL implementations of the identity
// provider and document store interfaces defined in internal/store.
//
// The accounts table stands in for an external identity provider and keeps a
// bcrypt hash of each password, so this backend can verify credentials at
// sign-in. The users and tasks tables mirror the records the document store
// backend keeps. The schema is managed by the goose migrations embedded in
// this package; see Migrate.
package postgres
