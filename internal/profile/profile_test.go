package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeHandle(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"ada", "@ada"},
		{"@ada", "@ada"},
		{"  @@ada ", "@ada"},
		{"", ""},
		{"@", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeHandle(tt.in))
		})
	}
}

func TestSameHandle(t *testing.T) {
	assert.True(t, SameHandle("Ada", "@ada"))
	assert.False(t, SameHandle("ada", "bob"))
}

func TestNew(t *testing.T) {
	p := New(" Ada ", "Lovelace", "ada")
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "Ada Lovelace", p.DisplayName())
	assert.Equal(t, "@ada", p.Handle)
	assert.False(t, p.Avatar.IsImage())
	assert.Equal(t, DefaultAvatarSymbol, p.Avatar.Symbol)

	other := New("Ada", "Lovelace", "ada")
	assert.NotEqual(t, p.ID, other.ID)
}

func TestIDSet(t *testing.T) {
	var s IDSet
	assert.True(t, s.Add("a"))
	assert.False(t, s.Add("a"), "duplicate insert")
	assert.True(t, s.Add("b"))
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.ContainsAll([]string{"a", "b"}))
	assert.False(t, s.ContainsAll([]string{"a", "c"}))

	c := s.Clone()
	assert.True(t, s.Remove("a"))
	assert.False(t, s.Remove("a"))
	assert.Equal(t, IDSet{"b"}, s)
	assert.Equal(t, IDSet{"a", "b"}, c, "clone is independent")
}
