package unionfind

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSingletons(t *testing.T) {
	u := New(4)
	for i := 0; i < 4; i++ {
		assert.Equal(t, i, u.Find(i))
		assert.Equal(t, float32(0), u.Birth(i))
	}
}

func TestLinkTransitivity(t *testing.T) {
	u := New(6)
	u.Link(u.Find(0), u.Find(1))
	u.Link(u.Find(1), u.Find(2))
	u.Link(u.Find(4), u.Find(5))

	assert.Equal(t, u.Find(0), u.Find(2))
	assert.Equal(t, u.Find(1), u.Find(2))
	assert.Equal(t, u.Find(4), u.Find(5))
	assert.NotEqual(t, u.Find(0), u.Find(3))
	assert.NotEqual(t, u.Find(0), u.Find(4))
}

func TestRootBirthIsMinimum(t *testing.T) {
	u := New(4)
	u.SetBirth(0, 0.5)
	u.SetBirth(1, 0.2)
	u.SetBirth(2, 0.9)
	u.SetBirth(3, 0.1)

	u.Link(u.Find(0), u.Find(1))
	root := u.Find(0)
	assert.Equal(t, float32(0.2), u.Birth(root))

	u.Link(u.Find(2), u.Find(3))
	u.Link(u.Find(0), u.Find(2))
	root = u.Find(1)
	assert.Equal(t, float32(0.1), u.Birth(root))
}

func TestLinkSameRootIsNoop(t *testing.T) {
	u := New(3)
	u.Link(u.Find(0), u.Find(1))
	r := u.Find(0)
	u.Link(r, r)
	assert.Equal(t, r, u.Find(1))
}

func TestPathCompression(t *testing.T) {
	// Build a long chain through repeated links; Find must still
	// agree for every pair afterwards.
	const n = 1000
	u := New(n)
	for i := 1; i < n; i++ {
		u.Link(u.Find(i-1), u.Find(i))
	}
	root := u.Find(0)
	for i := 0; i < n; i++ {
		require.Equal(t, root, u.Find(i))
	}
}
