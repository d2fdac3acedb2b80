// Package firebase implements the identity provider and document store
// interfaces from internal/store on Firebase Authentication and Cloud
// Firestore through the Firebase Admin SDK.
//
// Profiles live in the "users" collection keyed by user ID and tasks in the
// "tasks" collection keyed by task ID. The Admin SDK cannot check passwords,
// so VerifyPassword reports store.ErrUnsupported.
//
// When FIRESTORE_EMULATOR_HOST and FIREBASE_AUTH_EMULATOR_HOST are set the
// SDK talks to the local emulators and no credentials file is required.
package firebase
