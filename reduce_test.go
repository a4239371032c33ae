package sexpcalc

import (
	"errors"
	"math/big"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRewrite(t *testing.T) {
	tests := []struct {
		expr string
		want string
	}{
		{expr: "(add 2 (multiply 2 3))", want: "(add 2 6)"},
		{expr: "(add (multiply 2 3) (multiply 2 3))", want: "(add 6 (multiply 2 3))"},
		{expr: "(add 2 3)", want: "5"},
	}
	for _, test := range tests {
		m, ok := Locate(test.expr)
		if !ok {
			t.Fatalf("no match in %q", test.expr)
		}
		args, err := m.Operands()
		if err != nil {
			t.Fatal(err)
		}
		v, err := Apply(Classify(m, ok).String(), args)
		if err != nil {
			t.Fatal(err)
		}
		if got := Rewrite(test.expr, m, v); got != test.want {
			t.Errorf("want %q for %q but got %q", test.want, test.expr, got)
		}
	}
}

func TestRewriteRemovesOneGroup(t *testing.T) {
	expr := "(multiply (add 1 2) 4 (add 3 (multiply 1 1)))"
	for strings.Contains(expr, "(") {
		before := strings.Count(expr, "(")
		m, ok := Locate(expr)
		if !ok {
			t.Fatalf("no match in %q", expr)
		}
		args, _ := m.Operands()
		v, err := Apply(Classify(m, ok).String(), args)
		if err != nil {
			t.Fatal(err)
		}
		expr = Rewrite(expr, m, v)
		if after := strings.Count(expr, "("); after != before-1 {
			t.Fatalf("want %d groups but got %d in %q", before-1, after, expr)
		}
	}
	if expr != "48" {
		t.Errorf("want 48 but got %q", expr)
	}
}

func TestReduceTrace(t *testing.T) {
	var got []string
	ev := NewEvaluator(WithStrategy(StrategyRewrite), WithTrace(func(expr string) {
		got = append(got, expr)
	}))
	v, err := ev.Evaluate("(add (multiply 2 3) (multiply 4 5))")
	if err != nil {
		t.Fatal(err)
	}
	if v.Int64() != 26 {
		t.Errorf("want 26 but got %v", v)
	}
	want := []string{
		"(add 6 (multiply 4 5))",
		"(add 6 20)",
		"26",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Error(diff)
	}
}

func TestReduceInvalid(t *testing.T) {
	ev := NewEvaluator(WithStrategy(StrategyRewrite))
	for _, input := range []string{"(add 2 (multiply 2 3)", "(subtract 5 3)", "(add 1 2) 3", "((add 1 2))"} {
		v, err := ev.Evaluate(input)
		if !errors.Is(err, ErrInvalidExpression) {
			t.Errorf("want ErrInvalidExpression for %q but got %v, %v", input, v, err)
		}
	}
}

func TestReduceAdjacentOperand(t *testing.T) {
	// The textual rule splices the value into its neighbour.
	v, err := NewEvaluator(WithStrategy(StrategyRewrite)).Evaluate("(add 2(multiply 2 3))")
	if err != nil {
		t.Fatal(err)
	}
	if v.Cmp(big.NewInt(26)) != 0 {
		t.Errorf("want 26 but got %v", v)
	}
}
