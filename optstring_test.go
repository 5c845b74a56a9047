package optlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchOpt(t *testing.T) {
	i, ok := matchOpt("a:bcd:ef?", 'd')
	require.True(t, ok)
	assert.EqualValues(t, 4, i)
	assert.True(t, takesValue("a:bcd:ef?", i))

	i, ok = matchOpt("a:bcd:ef?", 'b')
	require.True(t, ok)
	assert.False(t, takesValue("a:bcd:ef?", i))

	_, ok = matchOpt("a:bcd:ef?", ':')
	assert.False(t, ok)

	_, ok = matchOpt("a:bcd:ef?", 'z')
	assert.False(t, ok)

	// Duplicate letters resolve to the first position.
	i, ok = matchOpt("a:ab", 'a')
	require.True(t, ok)
	assert.EqualValues(t, 0, i)

	_, ok = matchOpt("", 'a')
	assert.False(t, ok)
}

func TestForEachOpt(t *testing.T) {
	var letters []byte
	var valued []bool
	forEachOpt("a:bcd:ef?", func(c byte, tv bool) {
		letters = append(letters, c)
		valued = append(valued, tv)
	})
	assert.EqualValues(t, []byte{'a', 'b', 'c', 'd', 'e', 'f', '?'}, letters)
	assert.EqualValues(t, []bool{true, false, false, true, false, false, false}, valued)
}
