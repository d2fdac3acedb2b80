// Package session drives the interactive menu loop. It holds the signed-in
// identity for the lifetime of one run and dispatches menu choices to the
// auth and task services.
package session
