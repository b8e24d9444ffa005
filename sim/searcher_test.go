package sim

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coregx/thompson/nfa"
)

func TestLiteralSearcher_AhoCorasick(t *testing.T) {
	a := nfa.New()
	require.NoError(t, a.Finalize(alternation(t, a, "needle", "pin")))

	ls, err := NewLiteralSearcher(a, DefaultConfig())
	require.NoError(t, err)
	require.True(t, ls.UsesAhoCorasick())
	assert.Equal(t, []string{"needle", "pin"}, ls.Literals())

	assert.True(t, ls.IsMatch([]byte("haystack with a needle in it")))
	assert.True(t, ls.IsMatch([]byte("pin")))
	assert.False(t, ls.IsMatch([]byte("just hay")))
	assert.False(t, ls.IsMatch(nil))

	start, end, ok := ls.Find([]byte("a needle"))
	require.True(t, ok)
	assert.Equal(t, 2, start)
	assert.Equal(t, 8, end)

	_, _, ok = ls.Find([]byte("nothing here"))
	assert.False(t, ok)
}

func TestLiteralSearcher_AgreesWithSimulation(t *testing.T) {
	a := nfa.New()
	require.NoError(t, a.Finalize(alternation(t, a, "ab", "bc", "日本")))

	ls, err := NewLiteralSearcher(a, DefaultConfig())
	require.NoError(t, err)
	require.True(t, ls.UsesAhoCorasick())

	s, err := New(a)
	require.NoError(t, err)

	for _, h := range []string{"", "a", "xxab", "b c", "bcd", "日", "今日本", "cba"} {
		assert.Equal(t, s.Contains([]byte(h)), ls.IsMatch([]byte(h)), "haystack %q", h)
	}
}

func TestLiteralSearcher_EmptyWord(t *testing.T) {
	a := nfa.New()
	require.NoError(t, a.Finalize(alternation(t, a, "", "x")))

	ls, err := NewLiteralSearcher(a, DefaultConfig())
	require.NoError(t, err)
	assert.False(t, ls.UsesAhoCorasick())
	assert.True(t, ls.IsMatch(nil))
	assert.True(t, ls.IsMatch([]byte("anything")))

	_, _, ok := ls.Find([]byte("x"))
	assert.False(t, ok)
}

func TestLiteralSearcher_EmptyLanguage(t *testing.T) {
	a := nfa.New()
	require.NoError(t, a.Finalize(a.Nothing()))

	ls, err := NewLiteralSearcher(a, DefaultConfig())
	require.NoError(t, err)
	assert.False(t, ls.UsesAhoCorasick())
	assert.Empty(t, ls.Literals())
	assert.False(t, ls.IsMatch([]byte("")))
	assert.False(t, ls.IsMatch([]byte("abc")))
}

func TestLiteralSearcher_InfiniteFallsBack(t *testing.T) {
	// ab*c
	a := nfa.New()
	s, err := a.Star(a.Literal('b'))
	require.NoError(t, err)
	require.NoError(t, a.Finalize(concatAll(t, a, a.Literal('a'), s, a.Literal('c'))))

	ls, err := NewLiteralSearcher(a, DefaultConfig())
	require.NoError(t, err)
	assert.False(t, ls.UsesAhoCorasick())
	assert.Nil(t, ls.Literals())

	assert.True(t, ls.IsMatch([]byte("xxabbbbcxx")))
	assert.True(t, ls.IsMatch([]byte("ac")))
	assert.False(t, ls.IsMatch([]byte("abbb")))
}

func TestLiteralSearcher_InvalidRuneLabel(t *testing.T) {
	// A surrogate has no UTF-8 encoding and must not be searched as U+FFFD.
	a := nfa.New()
	require.NoError(t, a.Finalize(a.Literal(0xD800)))

	lits, ok := Literals(a, DefaultConfig())
	assert.False(t, ok)
	assert.Nil(t, lits)

	ls, err := NewLiteralSearcher(a, DefaultConfig())
	require.NoError(t, err)
	assert.False(t, ls.UsesAhoCorasick())
	assert.False(t, ls.IsMatch([]byte("\uFFFD")))
	assert.False(t, Accepts(a, "\uFFFD"))
}

func TestLiteralSearcher_Errors(t *testing.T) {
	t.Run("not finalized", func(t *testing.T) {
		a := nfa.New()
		a.Literal('a')
		_, err := NewLiteralSearcher(a, DefaultConfig())
		assert.ErrorIs(t, err, ErrNotFinalized)
	})

	t.Run("invalid config", func(t *testing.T) {
		a := nfa.New()
		require.NoError(t, a.Finalize(a.Literal('a')))
		cfg := DefaultConfig()
		cfg.MaxLiterals = 0
		_, err := NewLiteralSearcher(a, cfg)
		var cfgErr *nfa.ConfigError
		require.True(t, errors.As(err, &cfgErr))
		assert.Equal(t, "MaxLiterals", cfgErr.Field)
	})
}
