package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionsAreIsolated(t *testing.T) {
	s := NewSessionStore()
	a := s.NewSession()
	b := s.NewSession()
	require.NotEqual(t, a, b)

	s.Get(a).AddItem(1, "A", 10, "")
	assert.Equal(t, 10.0, s.Get(a).Total())
	assert.True(t, s.Get(b).Empty())
}

func TestGetReturnsSameCartForSession(t *testing.T) {
	s := NewSessionStore()
	id := s.NewSession()
	s.Get(id).AddItem(1, "A", 10, "")
	assert.Equal(t, 1, s.Get(id).Count())
}

func TestDrop(t *testing.T) {
	s := NewSessionStore()
	id := s.NewSession()
	s.Get(id).AddItem(1, "A", 10, "")
	s.Drop(id)
	assert.True(t, s.Get(id).Empty())
}
