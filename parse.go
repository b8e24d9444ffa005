package thompson

import (
	"fmt"
	"regexp/syntax"

	"github.com/coregx/thompson/compiler"
)

// Parse translates a regex pattern into a postfix construction program
// using the default configuration.
//
// Syntax is Perl-compatible (same as Go's stdlib regexp), restricted to
// constructs with an algebraic construction: literals, concatenation,
// alternation, groups, the *, +, ? and {n,m} quantifiers, and small
// character classes. Greedy and lazy quantifiers denote the same language
// and translate identically.
//
// Example:
//
//	prog, err := thompson.Parse(`(a|b)*b`)
//	fmt.Println(prog) // 'a' 'b' | * 'b' .
func Parse(pattern string) (compiler.Program, error) {
	return ParseWithConfig(pattern, DefaultConfig())
}

// ParseWithConfig translates a pattern with custom configuration
func ParseWithConfig(pattern string, config Config) (compiler.Program, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	re, err := syntax.Parse(pattern, syntax.Perl)
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}
	prog, err := translate(re, config)
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}
	return prog, nil
}

// Translate converts an already parsed syntax tree into a program
func Translate(re *syntax.Regexp, config Config) (compiler.Program, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	prog, err := translate(re, config)
	if err != nil {
		return nil, &CompileError{Err: err}
	}
	return prog, nil
}

func translate(re *syntax.Regexp, config Config) (compiler.Program, error) {
	t := &translator{config: config}
	if err := t.emit(re); err != nil {
		return nil, err
	}
	return t.prog, nil
}

// translator emits a post-order walk of a syntax tree.
type translator struct {
	config Config
	prog   compiler.Program
	depth  int
}

func (t *translator) push(op compiler.Op) {
	t.prog = append(t.prog, op)
}

func (t *translator) emit(re *syntax.Regexp) error {
	t.depth++
	if t.depth > t.config.MaxRecursionDepth {
		return ErrTooComplex
	}
	defer func() { t.depth-- }()

	switch re.Op {
	case syntax.OpNoMatch:
		t.push(compiler.NothingOp())
	case syntax.OpEmptyMatch:
		t.push(compiler.EpsilonOp())
	case syntax.OpLiteral:
		if re.Flags&syntax.FoldCase != 0 {
			return fmt.Errorf("%w: case-insensitive literal %q", ErrUnsupported, string(re.Rune))
		}
		t.literal(re.Rune)
	case syntax.OpCharClass:
		return t.charClass(re.Rune)
	case syntax.OpCapture:
		// Groups only delimit; there are no submatches.
		return t.emit(re.Sub[0])
	case syntax.OpConcat:
		return t.fold(re.Sub, compiler.ConcatOp(), compiler.EpsilonOp())
	case syntax.OpAlternate:
		return t.fold(re.Sub, compiler.UnionOp(), compiler.NothingOp())
	case syntax.OpStar:
		if err := t.emit(re.Sub[0]); err != nil {
			return err
		}
		t.push(compiler.StarOp())
	case syntax.OpPlus:
		// x+ = x x*
		if err := t.emit(re.Sub[0]); err != nil {
			return err
		}
		if err := t.emit(re.Sub[0]); err != nil {
			return err
		}
		t.push(compiler.StarOp())
		t.push(compiler.ConcatOp())
	case syntax.OpQuest:
		// x? = x | ε
		if err := t.emit(re.Sub[0]); err != nil {
			return err
		}
		t.push(compiler.EpsilonOp())
		t.push(compiler.UnionOp())
	case syntax.OpRepeat:
		return t.repeat(re.Sub[0], re.Min, re.Max)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupported, re.Op)
	}
	return nil
}

// literal emits the concatenation of runes.
func (t *translator) literal(runes []rune) {
	if len(runes) == 0 {
		t.push(compiler.EpsilonOp())
		return
	}
	for i, r := range runes {
		t.push(compiler.LiteralOp(r))
		if i > 0 {
			t.push(compiler.ConcatOp())
		}
	}
}

// charClass expands a class given as [lo, hi] rune pairs into a union of
// literals. An empty class matches nothing.
func (t *translator) charClass(ranges []rune) error {
	n := 0
	for i := 0; i+1 < len(ranges); i += 2 {
		n += int(ranges[i+1]-ranges[i]) + 1
		if n > t.config.MaxClassSize {
			return fmt.Errorf("%w: character class larger than %d code points", ErrUnsupported, t.config.MaxClassSize)
		}
	}
	if n == 0 {
		t.push(compiler.NothingOp())
		return nil
	}

	first := true
	for i := 0; i+1 < len(ranges); i += 2 {
		for r := ranges[i]; r <= ranges[i+1]; r++ {
			t.push(compiler.LiteralOp(r))
			if !first {
				t.push(compiler.UnionOp())
			}
			first = false
		}
	}
	return nil
}

// fold emits subs joined left to right by join, or empty when there are
// no subs.
func (t *translator) fold(subs []*syntax.Regexp, join, empty compiler.Op) error {
	if len(subs) == 0 {
		t.push(empty)
		return nil
	}
	for i, sub := range subs {
		if err := t.emit(sub); err != nil {
			return err
		}
		if i > 0 {
			t.push(join)
		}
	}
	return nil
}

// repeat expands x{lo,hi} into lo copies of x followed by either x* (hi
// unbounded) or hi-lo copies of x|ε.
func (t *translator) repeat(sub *syntax.Regexp, lo, hi int) error {
	pieces := 0
	join := func() {
		if pieces > 0 {
			t.push(compiler.ConcatOp())
		}
		pieces++
	}

	for range lo {
		if err := t.emit(sub); err != nil {
			return err
		}
		join()
	}
	if hi < 0 {
		if err := t.emit(sub); err != nil {
			return err
		}
		t.push(compiler.StarOp())
		join()
	} else {
		for range hi - lo {
			if err := t.emit(sub); err != nil {
				return err
			}
			t.push(compiler.EpsilonOp())
			t.push(compiler.UnionOp())
			join()
		}
	}

	if pieces == 0 {
		t.push(compiler.EpsilonOp())
	}
	return nil
}
