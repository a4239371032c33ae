package sexpcalc

import (
	"fmt"
	"math/big"
	"regexp"
	"strings"
)

// Kind labels a located subexpression.
type Kind int

const (
	KindInvalid Kind = iota
	KindAdd
	KindMultiply
	KindDigit
)

func (k Kind) String() string {
	switch k {
	case KindAdd:
		return "add"
	case KindMultiply:
		return "multiply"
	case KindDigit:
		return "digit"
	case KindInvalid:
		return "invalid"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

var (
	// flatRe only matches applications whose operands are all integer
	// literals, so the leftmost match is always an innermost one.
	flatRe = regexp.MustCompile(`\((add|multiply)((?:\s[0-9]+)+)\)`)
	intRe  = regexp.MustCompile(`^[0-9]+$`)
)

// MatchFlat reports the span of the leftmost flat application in s.
func MatchFlat(s string) (start, end int, ok bool) {
	loc := flatRe.FindStringIndex(s)
	if loc == nil {
		return 0, 0, false
	}
	return loc[0], loc[1], true
}

// IsInteger reports whether the whole of s is one non-negative integer.
func IsInteger(s string) bool {
	return intRe.MatchString(s)
}

// Match is a span of the working expression selected for reduction.
type Match struct {
	Start int
	End   int
	Text  string
}

// Locate returns the leftmost flat application in expr or, when there is
// none and expr is a bare integer, expr itself.
func Locate(expr string) (Match, bool) {
	if start, end, ok := MatchFlat(expr); ok {
		return Match{Start: start, End: end, Text: expr[start:end]}, true
	}
	if IsInteger(expr) {
		return Match{Start: 0, End: len(expr), Text: expr}, true
	}
	return Match{}, false
}

// Classify labels a result of Locate.
func Classify(m Match, ok bool) Kind {
	if !ok {
		return KindInvalid
	}
	if sub := flatRe.FindStringSubmatch(m.Text); sub != nil && sub[0] == m.Text {
		switch sub[1] {
		case "add":
			return KindAdd
		case "multiply":
			return KindMultiply
		}
	}
	if IsInteger(m.Text) {
		return KindDigit
	}
	return KindInvalid
}

// Operands parses the integer operands of a flat application, or the
// single integer of a digit match.
func (m Match) Operands() ([]*big.Int, error) {
	text := m.Text
	if strings.HasPrefix(text, "(") {
		fields := strings.Fields(text[1 : len(text)-1])
		if len(fields) < 2 {
			return nil, fmt.Errorf("no operands in %q", text)
		}
		text = strings.Join(fields[1:], " ")
	}
	var args []*big.Int
	for _, f := range strings.Fields(text) {
		v, ok := new(big.Int).SetString(f, 10)
		if !ok {
			return nil, fmt.Errorf("invalid integer: %s", f)
		}
		args = append(args, v)
	}
	return args, nil
}
