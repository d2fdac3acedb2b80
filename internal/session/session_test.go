package session_test

import (
	"testing"

	"github.com/phrazzld/tasklist/internal/session"
	"github.com/stretchr/testify/assert"
)

func TestSessionState(t *testing.T) {
	t.Parallel()

	var s session.Session
	assert.Equal(t, session.Anonymous, s.State())
	assert.Equal(t, "anonymous", s.State().String())

	s = session.SignedIn("uid-1", "a@x.com")
	assert.Equal(t, session.Authenticated, s.State())
	assert.Equal(t, "authenticated", s.State().String())
}
