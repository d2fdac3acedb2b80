package session

// State is the controller's authentication state.
type State int

const (
	// Anonymous is the initial state: register, sign in or exit.
	Anonymous State = iota
	// Authenticated means a user ID is held and task operations are offered.
	Authenticated
)

// String returns the name of the state.
func (s State) String() string {
	if s == Authenticated {
		return "authenticated"
	}
	return "anonymous"
}

// Session is the process-local identity of the person at the console. The
// zero value is an anonymous session. It is never persisted.
type Session struct {
	UserID string
	Email  string
}

// State reports whether the session holds an identity.
func (s Session) State() State {
	if s.UserID == "" {
		return Anonymous
	}
	return Authenticated
}

// SignedIn returns an authenticated session for userID.
func SignedIn(userID, email string) Session {
	return Session{UserID: userID, Email: email}
}
