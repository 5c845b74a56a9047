package optlist

import (
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	log.SetFlags(log.Lshortfile)
	os.Exit(m.Run())
}

func TestScan(t *testing.T) {
	for _, _case := range []struct {
		args      []string
		optString string
		expected  Options
	}{
		{
			[]string{"prog", "-a", "val", "-bc", "-d42", "-?"},
			"a:bcd:ef?",
			Options{
				{'a', "val", 2},
				{'b', "", NoIndex},
				{'c', "", NoIndex},
				{'d', "42", 4},
				{'?', "", NoIndex},
			},
		},
		{
			// Stacked plain options.
			[]string{"prog", "-bcf"},
			"a:bcd:ef?",
			Options{{'b', "", NoIndex}, {'c', "", NoIndex}, {'f', "", NoIndex}},
		},
		{
			// A value-taker ending the command line is reported valueless.
			[]string{"prog", "-d"},
			"a:bcd:ef?",
			Options{{'d', "", NoIndex}},
		},
		{
			// Unrecognized letters are skipped in place.
			[]string{"prog", "-xb"},
			"a:bcd:ef?",
			Options{{'b', "", NoIndex}},
		},
		{
			[]string{"prog", "-xa"},
			"a:bcd:ef?",
			Options{{'a', "", NoIndex}},
		},
		{
			// A value-taker swallows the rest of its token.
			[]string{"prog", "-da42", "-b"},
			"a:bcd:ef?",
			Options{{'d', "a42", 1}, {'b', "", NoIndex}},
		},
		{
			// The next token is the value even when it looks like an option.
			[]string{"prog", "-d", "-b"},
			"a:bcd:ef?",
			Options{{'d', "-b", 2}},
		},
		{
			// Bare "-" and positionals are dropped.
			[]string{"prog", "-", "file", "-b"},
			"a:bcd:ef?",
			Options{{'b', "", NoIndex}},
		},
		{
			[]string{"prog", "alpha", "beta"},
			"a:bcd:ef?",
			nil,
		},
		{
			[]string{"prog"},
			"a:bcd:ef?",
			nil,
		},
		{
			// Duplicate specification letters: the first position decides.
			[]string{"prog", "-a1", "-a", "2"},
			"a:ab",
			Options{{'a', "1", 1}, {'a', "2", 3}},
		},
	} {
		assert.EqualValues(t, _case.expected, Scan(_case.args, _case.optString), "args: %q", _case.args)
	}
}

func TestScanIdempotent(t *testing.T) {
	args := []string{"prog", "-a", "val", "-bcd", "x"}
	const optString = "a:bcd:ef?"
	assert.EqualValues(t, Scan(args, optString), Scan(args, optString))
}

func TestScanInputsUntouched(t *testing.T) {
	args := []string{"prog", "-d", "val"}
	Scan(args, "d:")
	assert.EqualValues(t, []string{"prog", "-d", "val"}, args)
}

func TestColonNeverMatches(t *testing.T) {
	opts := Scan([]string{"prog", "-:", "-a:"}, "a:bcd:ef?")
	require.Len(t, opts, 1)
	for _, o := range opts {
		assert.NotEqual(t, byte(':'), o.Letter)
	}
	// The ':' after -a is an attached value, not an option.
	assert.EqualValues(t, Options{{'a', ":", 2}}, opts)
}

func TestOptionsHelpers(t *testing.T) {
	opts := Scan([]string{"prog", "-n1", "-v", "-n", "2"}, "n:v")
	v, ok := opts.Get('n')
	require.True(t, ok)
	assert.EqualValues(t, "1", v)
	assert.True(t, opts.Has('v'))
	assert.False(t, opts.Has('x'))
	assert.EqualValues(t, []string{"1", "2"}, opts.Values('n'))
	assert.True(t, opts[0].HasValue())
}
