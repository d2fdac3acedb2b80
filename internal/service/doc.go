// Package service contains the application's use cases: registering and
// signing in users (AuthService) and managing a user's tasks (TaskService).
// Services depend on the interfaces in internal/store, never on a concrete
// backend, and report failures as errors classified by Kind so the console
// layer can render them without inspecting backend details.
package service
