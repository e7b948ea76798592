package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AyushAgarwal15/devtinder-cli/internal/models"
)

func TestUserStoreSetGetClear(t *testing.T) {
	s := NewUserStore()
	assert.Nil(t, s.Get())

	s.Set(&models.User{ID: "u1", FirstName: "Ada"})
	require.NotNil(t, s.Get())
	assert.Equal(t, "u1", s.Get().ID)

	s.Clear()
	assert.Nil(t, s.Get())
}

func TestFeedStoreRemoveByID(t *testing.T) {
	s := NewFeedStore()
	s.Set([]models.User{{ID: "a"}, {ID: "b"}, {ID: "c"}})

	s.Remove("b")
	assert.Equal(t, 2, s.Len())
	require.NotNil(t, s.Peek())
	assert.Equal(t, "a", s.Peek().ID)

	s.Remove("a")
	assert.Equal(t, "c", s.Peek().ID)

	s.Remove("c")
	assert.Nil(t, s.Peek())
}

func TestConnectionStoreFindAndRemove(t *testing.T) {
	s := NewConnectionStore()
	s.Set([]models.User{{ID: "a", FirstName: "Ada"}, {ID: "b", FirstName: "Grace"}})

	found := s.Find("b")
	require.NotNil(t, found)
	assert.Equal(t, "Grace", found.FirstName)
	assert.Nil(t, s.Find("zzz"))

	s.Remove("b")
	assert.Nil(t, s.Find("b"))
	assert.Len(t, s.All(), 1)
}

func TestRequestStoreCountAndRemove(t *testing.T) {
	s := NewRequestStore()
	s.Set([]models.ConnectionRequest{{ID: "r1"}, {ID: "r2"}})
	assert.Equal(t, 2, s.Count())

	s.Remove("r1")
	assert.Equal(t, 1, s.Count())

	s.Clear()
	assert.Equal(t, 0, s.Count())
}
