package thompson

import (
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coregx/thompson/compiler"
	"github.com/coregx/thompson/nfa"
	"github.com/coregx/thompson/sim"
)

// words returns every string over alphabet up to length n.
func words(alphabet string, n int) []string {
	out := []string{""}
	level := []string{""}
	for range n {
		var next []string
		for _, w := range level {
			for _, c := range alphabet {
				next = append(next, w+string(c))
			}
		}
		out = append(out, next...)
		level = next
	}
	return out
}

var stdlibCompatPatterns = []string{
	`a`,
	`abc`,
	`(a|b)*b`,
	`a+b?`,
	`(ab|c){1,2}`,
	`a{2,3}`,
	`(a*)*`,
	`a|ab|abc`,
	`[abc]c*`,
	`(a|)+`,
	`((a|b)(b|c))*`,
	`a*?b+?`,
	`(?:ab)*c`,
	`[^\x00-\x{10FFFF}]`,
	`b{0}`,
	``,
}

func TestCompile_StdlibCompat(t *testing.T) {
	inputs := words("abc", 5)

	for _, pattern := range stdlibCompatPatterns {
		t.Run(pattern, func(t *testing.T) {
			anfa, err := Compile(pattern)
			require.NoError(t, err)
			require.NoError(t, anfa.Validate())
			s, err := sim.New(anfa)
			require.NoError(t, err)

			want := regexp.MustCompile(`^(?:` + pattern + `)$`)
			for _, in := range inputs {
				assert.Equal(t, want.MatchString(in), s.Accepts(in), "pattern %q input %q", pattern, in)
			}
		})
	}
}

func TestCompileDual(t *testing.T) {
	inputs := words("abc", 4)

	for _, pattern := range stdlibCompatPatterns {
		t.Run(pattern, func(t *testing.T) {
			dual, err := CompileDual(pattern)
			require.NoError(t, err)
			require.NoError(t, dual.Err())

			prog, err := Parse(pattern)
			require.NoError(t, err)
			assert.Equal(t, len(prog)+1, dual.Ops(), "every instruction plus finalize")
			assert.Equal(t, dual.Forward().Len()+len(prog), dual.Coverage().Len())

			for _, in := range inputs {
				assert.Equal(t, sim.Accepts(dual.Forward(), in), sim.Accepts(dual.Coverage(), in),
					"pattern %q input %q", pattern, in)
			}
		})
	}
}

func TestCompileDual_Coverage(t *testing.T) {
	dual, err := CompileDual(`ab+`)
	require.NoError(t, err)

	s, err := sim.New(dual.Coverage())
	require.NoError(t, err)
	_, c := dual.Compilers()
	cov, ok := c.(*compiler.Coverage)
	require.True(t, ok)

	// 'a' 'b' 'b' * . .
	steps := cov.Steps()
	require.Len(t, steps, 6)

	// Probes are only reached once the preceding symbols were read: the
	// star (3) and its body (2) need a first b.
	assert.Equal(t, []int{0, 5}, cov.Covered(s.Trace("")))
	assert.Equal(t, []int{0, 1, 4, 5}, cov.Covered(s.Trace("a")))
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, cov.Covered(s.Trace("abb")))
	assert.Equal(t, []int{0, 5}, cov.Covered(s.Trace("b")))
}

func TestCompile_Errors(t *testing.T) {
	_, err := Compile(`a(`)
	var compileErr *CompileError
	require.ErrorAs(t, err, &compileErr)
	assert.Equal(t, `a(`, compileErr.Pattern)
	assert.Contains(t, err.Error(), `compilation failed for pattern "a("`)

	_, err = CompileDual(`^a`)
	assert.ErrorIs(t, err, ErrUnsupported)

	config := DefaultConfig()
	config.Compiler.InitialCapacity = -1
	_, err = CompileWithConfig(`a`, config)
	var configErr *nfa.ConfigError
	assert.ErrorAs(t, err, &configErr)
	_, err = CompileDualWithConfig(`a`, config)
	assert.ErrorAs(t, err, &configErr)
}

func TestMustCompile(t *testing.T) {
	anfa := MustCompile(`colou?r`)
	assert.True(t, sim.Accepts(anfa, "color"))
	assert.True(t, sim.Accepts(anfa, "colour"))
	assert.False(t, sim.Accepts(anfa, "colouur"))

	assert.PanicsWithValue(t,
		"thompson: Compile(`.`): compilation failed for pattern \".\": unsupported regex construct: AnyCharNotNL",
		func() { MustCompile(`.`) })
}

func TestCompileSearcher(t *testing.T) {
	s, err := CompileSearcher(`error|warn(ing)?`, sim.DefaultConfig())
	require.NoError(t, err)
	assert.True(t, s.UsesAhoCorasick())
	assert.Equal(t, []string{"error", "warn", "warning"}, s.Literals())
	assert.True(t, s.IsMatch([]byte("2024-01-01 warning: disk")))
	assert.False(t, s.IsMatch([]byte("2024-01-01 info: ok")))

	s, err = CompileSearcher(`x(ab)*y`, sim.DefaultConfig())
	require.NoError(t, err)
	assert.False(t, s.UsesAhoCorasick())
	assert.True(t, s.IsMatch([]byte("--xababy--")))
	assert.True(t, s.IsMatch([]byte("--xaby--")))
	assert.True(t, s.IsMatch([]byte("--xy--")))
	assert.False(t, s.IsMatch([]byte("--xaay--")))
	assert.False(t, s.IsMatch([]byte("--xba y--")))

	_, err = CompileSearcher(`\d+`, sim.DefaultConfig())
	assert.NoError(t, err)

	cfg := sim.DefaultConfig()
	cfg.MaxVisits = 0
	_, err = CompileSearcher(`a`, cfg)
	var configErr *nfa.ConfigError
	assert.True(t, errors.As(err, &configErr))
}
