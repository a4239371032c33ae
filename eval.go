package sexpcalc

import (
	"fmt"
	"log/slog"
	"math/big"
	"strings"

	"github.com/mattn/sexpcalc/internal/logging"
)

// DefaultMaxLength bounds input size in bytes unless WithMaxLength says
// otherwise.
const DefaultMaxLength = 1 << 20

// Strategy selects how an Evaluator reduces its input.
type Strategy int

const (
	// StrategyTree parses the input once and evaluates the tree bottom-up.
	StrategyTree Strategy = iota
	// StrategyRewrite repeatedly rewrites the leftmost flat application
	// in the text with its value.
	StrategyRewrite
)

func (s Strategy) String() string {
	switch s {
	case StrategyTree:
		return "tree"
	case StrategyRewrite:
		return "rewrite"
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(name) {
	case "", "tree":
		return StrategyTree, nil
	case "rewrite":
		return StrategyRewrite, nil
	}
	return 0, fmt.Errorf("unknown strategy: %q", name)
}

// Evaluator holds settings only. Each call to Evaluate owns its working
// state, so one Evaluator may be used from many goroutines.
type Evaluator struct {
	strategy  Strategy
	maxDepth  int
	maxLength int
	logger    *slog.Logger
	metrics   *Metrics
	trace     func(expr string)
}

type Option func(*Evaluator)

func WithStrategy(s Strategy) Option {
	return func(e *Evaluator) {
		e.strategy = s
	}
}

func WithMaxDepth(n int) Option {
	return func(e *Evaluator) {
		e.maxDepth = n
	}
}

func WithMaxLength(n int) Option {
	return func(e *Evaluator) {
		e.maxLength = n
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(e *Evaluator) {
		if logger != nil {
			e.logger = logger
		}
	}
}

func WithMetrics(m *Metrics) Option {
	return func(e *Evaluator) {
		e.metrics = m
	}
}

// WithTrace registers fn to receive the working expression after every
// reduction. For single-spaced input both strategies report the same
// sequence.
func WithTrace(fn func(expr string)) Option {
	return func(e *Evaluator) {
		e.trace = fn
	}
}

func NewEvaluator(opts ...Option) *Evaluator {
	e := &Evaluator{
		strategy:  StrategyTree,
		maxDepth:  DefaultMaxDepth,
		maxLength: DefaultMaxLength,
		logger:    logging.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var defaultEvaluator = NewEvaluator()

// Evaluate reduces input with the default settings.
func Evaluate(input string) (*big.Int, error) {
	return defaultEvaluator.Evaluate(input)
}

func (e *Evaluator) Strategy() Strategy {
	return e.strategy
}

// Evaluate trims input and reduces it to a single integer. Every failure
// wraps ErrInvalidExpression.
func (e *Evaluator) Evaluate(input string) (*big.Int, error) {
	v, steps, err := e.evaluate(strings.TrimSpace(input))
	if e.metrics != nil {
		e.metrics.observe(e.strategy, steps, err)
	}
	if err != nil {
		e.logger.Debug("evaluate", "input", input, "strategy", e.strategy.String(), "error", err)
		return nil, err
	}
	e.logger.Debug("evaluate", "input", input, "strategy", e.strategy.String(), "steps", steps, "result", v.String())
	return v, nil
}

func (e *Evaluator) evaluate(expr string) (*big.Int, int, error) {
	if expr == "" {
		return nil, 0, invalid(expr, -1, "empty expression")
	}
	if e.maxLength > 0 && len(expr) > e.maxLength {
		return nil, 0, limit(expr, "input length %d exceeds %d", len(expr), e.maxLength)
	}
	if e.maxDepth > 0 {
		if d := depth(expr); d > e.maxDepth {
			return nil, 0, limit(expr, "nesting depth %d exceeds %d", d, e.maxDepth)
		}
	}

	switch e.strategy {
	case StrategyRewrite:
		return e.reduce(expr)
	case StrategyTree:
		return e.reduceTree(expr)
	}
	return nil, 0, fmt.Errorf("%w: %v", ErrInvalidExpression, e.strategy)
}

func (e *Evaluator) reduceTree(expr string) (*big.Int, int, error) {
	maxDepth := e.maxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	root, err := parse(expr, maxDepth)
	if err != nil {
		return nil, 0, err
	}
	steps, err := root.collapse(func(op NodeType, v *big.Int) {
		e.logger.Debug("reduce", "kind", op.String(), "value", v.String())
		if e.trace != nil {
			e.trace(root.String())
		}
	})
	if err != nil {
		return nil, steps, invalid(expr, -1, "%v", err)
	}
	return root.v, steps, nil
}
