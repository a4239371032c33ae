package sexpcalc

import (
	"bytes"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattn/sexpcalc/internal/logging"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{input: "(add 2 3)", want: 5},
		{input: "(multiply 2 3 4)", want: 24},
		{input: "(add 2 (multiply 2 3))", want: 8},
		{input: "(add (multiply 2 3) (multiply 4 5))", want: 26},
		{input: "\t(add 2 3)\n", want: 5},
	}
	for _, s := range strategies {
		ev := NewEvaluator(WithStrategy(s))
		for _, test := range tests {
			got, err := ev.Evaluate(test.input)
			require.NoError(t, err, "%v %q", s, test.input)
			assert.Equal(t, test.want, got.Int64(), "%v %q", s, test.input)
		}
	}
}

func TestEvaluatePackageLevel(t *testing.T) {
	got, err := Evaluate("(add 2 (multiply 2 3))")
	require.NoError(t, err)
	assert.Equal(t, "8", got.String())

	_, err = Evaluate("(subtract 5 3)")
	assert.ErrorIs(t, err, ErrInvalidExpression)
}

func TestEvaluateIntegerFixedPoint(t *testing.T) {
	inputs := []string{"0", "1", "42", "18446744073709551616", strings.Repeat("9", 200)}
	for _, s := range strategies {
		ev := NewEvaluator(WithStrategy(s))
		for _, input := range inputs {
			got, err := ev.Evaluate(input)
			require.NoError(t, err, input)
			assert.Equal(t, input, got.String())

			again, err := ev.Evaluate(got.String())
			require.NoError(t, err, input)
			assert.Equal(t, 0, got.Cmp(again))
		}
	}
}

func TestEvaluateStrategiesAgree(t *testing.T) {
	inputs := []string{
		"(add 1 2 3 4 5 6 7 8 9 10)",
		"(multiply (add 1 2) (add 3 4) (add 5 6))",
		"(add (add (add (add 1 1) 1) 1) 1)",
		"(multiply 12345678901234567890 (add 98765432109876543210 1))",
		"(add 0 (multiply 0 5) 7)",
	}
	tree := NewEvaluator(WithStrategy(StrategyTree))
	rewrite := NewEvaluator(WithStrategy(StrategyRewrite))
	for _, input := range inputs {
		a, err := tree.Evaluate(input)
		require.NoError(t, err, input)
		b, err := rewrite.Evaluate(input)
		require.NoError(t, err, input)
		assert.Equal(t, a.String(), b.String(), input)
	}
}

func TestEvaluateTraceAgrees(t *testing.T) {
	input := "(multiply (add 1 (multiply 2 3)) (add 4 5))"
	traces := map[Strategy][]string{}
	for _, s := range strategies {
		s := s
		ev := NewEvaluator(WithStrategy(s), WithTrace(func(expr string) {
			traces[s] = append(traces[s], expr)
		}))
		_, err := ev.Evaluate(input)
		require.NoError(t, err)
	}
	assert.Equal(t, []string{
		"(multiply (add 1 6) (add 4 5))",
		"(multiply 7 (add 4 5))",
		"(multiply 7 9)",
		"63",
	}, traces[StrategyTree])
	assert.Equal(t, traces[StrategyTree], traces[StrategyRewrite])
}

func TestEvaluateInvalid(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"(add 2 (multiply 2 3)",
		"(add 2 3))",
		"(subtract 5 3)",
		"(add)",
		"(add 2 x)",
		"(add -1 2)",
		"(5)",
		"()",
		")(",
	}
	for _, s := range strategies {
		ev := NewEvaluator(WithStrategy(s))
		for _, input := range inputs {
			got, err := ev.Evaluate(input)
			assert.ErrorIs(t, err, ErrInvalidExpression, "%v %q", s, input)
			assert.Nil(t, got, "%v %q", s, input)
		}
	}
}

func TestEvaluateLimits(t *testing.T) {
	deep := strings.Repeat("(add 1 ", 20) + "1" + strings.Repeat(")", 20)
	for _, s := range strategies {
		_, err := NewEvaluator(WithStrategy(s), WithMaxDepth(10)).Evaluate(deep)
		assert.ErrorIs(t, err, ErrLimitExceeded, s.String())
		assert.ErrorIs(t, err, ErrInvalidExpression, s.String())

		got, err := NewEvaluator(WithStrategy(s), WithMaxDepth(20)).Evaluate(deep)
		require.NoError(t, err, s.String())
		assert.Equal(t, int64(21), got.Int64())

		_, err = NewEvaluator(WithStrategy(s), WithMaxLength(8)).Evaluate("(add 1 2 3)")
		assert.ErrorIs(t, err, ErrLimitExceeded, s.String())
	}
}

func TestEvaluateDeepNesting(t *testing.T) {
	n := DefaultMaxDepth
	deep := strings.Repeat("(add 1 ", n) + "0" + strings.Repeat(")", n)
	for _, s := range strategies {
		got, err := NewEvaluator(WithStrategy(s)).Evaluate(deep)
		require.NoError(t, err, s.String())
		assert.Equal(t, int64(n), got.Int64())
	}
}

func TestEvaluateConcurrent(t *testing.T) {
	ev := NewEvaluator()
	var wg sync.WaitGroup
	errs := make(chan error, 64)
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got, err := ev.Evaluate(fmt.Sprintf("(add %d (multiply %d 2))", i, i))
			if err != nil {
				errs <- err
				return
			}
			if got.Cmp(big.NewInt(int64(3*i))) != 0 {
				errs <- fmt.Errorf("want %d but got %v", 3*i, got)
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}

func TestEvaluateMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	ev := NewEvaluator(WithStrategy(StrategyRewrite), WithMetrics(m), WithMaxDepth(2))

	_, err := ev.Evaluate("(add 2 (multiply 2 3))")
	require.NoError(t, err)
	_, err = ev.Evaluate("(add 2")
	require.Error(t, err)
	_, err = ev.Evaluate("(add 1 (add 1 (add 1 1)))")
	require.Error(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.evaluations.WithLabelValues("rewrite", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.evaluations.WithLabelValues("rewrite", "invalid")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.evaluations.WithLabelValues("rewrite", "limit")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.steps))
}

func TestEvaluateLogs(t *testing.T) {
	var buf bytes.Buffer
	ev := NewEvaluator(WithLogger(logging.New(&buf, -4)))
	_, err := ev.Evaluate("(add 2 (multiply 2 3))")
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "msg=reduce kind=multiply value=6")
	assert.Contains(t, out, "msg=reduce kind=add value=8")
	assert.Contains(t, out, "steps=2 result=8")
}

func TestParseStrategy(t *testing.T) {
	for _, s := range strategies {
		got, err := ParseStrategy(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
	got, err := ParseStrategy("")
	require.NoError(t, err)
	assert.Equal(t, StrategyTree, got)

	_, err = ParseStrategy("regex")
	assert.Error(t, err)
}

func TestErrorMessage(t *testing.T) {
	_, err := NewEvaluator().Evaluate("(add 1 (subtract 3 2))")
	require.Error(t, err)
	assert.Equal(t, "invalid expression: invalid op: subtract (8)", err.Error())

	_, err = NewEvaluator().Evaluate("  ")
	require.Error(t, err)
	assert.Equal(t, "invalid expression: empty expression", err.Error())
}
