package sexpcalc

import (
	"math/big"
	"strings"
)

// Rewrite replaces the span of m in expr with the decimal text of v.
func Rewrite(expr string, m Match, v *big.Int) string {
	var b strings.Builder
	b.Grow(len(expr))
	b.WriteString(expr[:m.Start])
	b.WriteString(v.String())
	b.WriteString(expr[m.End:])
	return b.String()
}

// reduce drives the textual strategy: locate, classify, evaluate and
// rewrite until expr is a bare integer or nothing reducible is left.
func (e *Evaluator) reduce(input string) (*big.Int, int, error) {
	expr := input
	// Every rewrite removes one paren pair, so this is never reached on
	// well behaved input.
	budget := strings.Count(expr, "(") + 1
	for steps := 0; steps <= budget; steps++ {
		m, ok := Locate(expr)
		kind := Classify(m, ok)
		switch kind {
		case KindDigit:
			v, _ := new(big.Int).SetString(m.Text, 10)
			return v, steps, nil
		case KindAdd, KindMultiply:
			args, err := m.Operands()
			if err != nil {
				return nil, steps, invalid(input, -1, "%v", err)
			}
			v, err := Apply(kind.String(), args)
			if err != nil {
				return nil, steps, invalid(input, -1, "%v", err)
			}
			expr = Rewrite(expr, m, v)
			e.logger.Debug("reduce", "expr", m.Text, "kind", kind.String(), "value", v.String())
			if e.trace != nil {
				e.trace(expr)
			}
		default:
			return nil, steps, invalid(input, -1, "no reducible expression in %q", expr)
		}
	}
	return nil, budget, limit(input, "reduction did not terminate after %d steps", budget)
}
