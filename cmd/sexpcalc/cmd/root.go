package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/mattn/sexpcalc"
	"github.com/mattn/sexpcalc/internal/config"
	"github.com/mattn/sexpcalc/internal/logging"
)

const (
	invalidMessage = "Invalid Expression. Please try again!"
	usageMessage   = "Please provide 1 argument which contains S-expression to calculate!"
)

// errInvalid is returned once the user has already been told that an
// expression was rejected.
var errInvalid = errors.New("invalid expression")

type options struct {
	configPath string
	strategy   string
	maxDepth   int
	maxLength  int
	logLevel   string
	trace      bool
	listen     string
}

func newRootCmd() *cobra.Command {
	o := &options{}
	root := &cobra.Command{
		Use:   "sexpcalc [expression]",
		Short: "Evaluate add/multiply S-expressions",
		Long: `sexpcalc reduces an S-expression built from add and multiply over
non-negative integers to a single integer.

Examples:
  sexpcalc "(add 2 (multiply 2 3))"      # prints 8
  echo "(multiply 2 3 4)" | sexpcalc     # one expression per line
  sexpcalc                               # interactive prompt on a terminal
  sexpcalc --strategy rewrite --trace "(add (multiply 2 3) (multiply 4 5))"`,
		Version:       "0.1.0",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, o, args)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&o.configPath, "config", "c", "", "YAML configuration file")
	pf.StringVar(&o.strategy, "strategy", sexpcalc.StrategyTree.String(), "reduction strategy: tree or rewrite")
	pf.IntVar(&o.maxDepth, "max-depth", sexpcalc.DefaultMaxDepth, "maximum paren nesting")
	pf.IntVar(&o.maxLength, "max-length", sexpcalc.DefaultMaxLength, "maximum expression length in bytes")
	pf.StringVar(&o.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	pf.BoolVar(&o.trace, "trace", false, "print the working expression after each reduction to stderr")

	root.AddCommand(newReplCmd(o), newSamplesCmd(o), newServeCmd(o))
	return root
}

// Execute runs the command line and exits with 1 for rejected expressions
// and 2 for any other failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		if errors.Is(err, errInvalid) {
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}

// load merges the config file with the flags the user set explicitly.
func (o *options) load(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return cfg, err
	}
	flags := cmd.Flags()
	if flags.Changed("strategy") {
		cfg.Strategy = o.strategy
	}
	if flags.Changed("max-depth") {
		cfg.MaxDepth = o.maxDepth
	}
	if flags.Changed("max-length") {
		cfg.MaxLength = o.maxLength
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	if flags.Changed("trace") {
		cfg.Trace = o.trace
	}
	if flags.Changed("listen") {
		cfg.Listen = o.listen
	}
	return cfg, cfg.Validate()
}

func (o *options) evaluator(cmd *cobra.Command, reg prometheus.Registerer) (*sexpcalc.Evaluator, *slog.Logger, config.Config, error) {
	cfg, err := o.load(cmd)
	if err != nil {
		return nil, nil, cfg, err
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, cfg, err
	}
	logger := logging.New(cmd.ErrOrStderr(), level)

	opts, err := cfg.Options()
	if err != nil {
		return nil, nil, cfg, err
	}
	opts = append(opts, sexpcalc.WithLogger(logger))
	if cfg.Trace {
		errOut := cmd.ErrOrStderr()
		opts = append(opts, sexpcalc.WithTrace(func(expr string) {
			fmt.Fprintln(errOut, "  =>", expr)
		}))
	}
	if reg != nil {
		opts = append(opts, sexpcalc.WithMetrics(sexpcalc.NewMetrics(reg)))
	}
	return sexpcalc.NewEvaluator(opts...), logger, cfg, nil
}

func runRoot(cmd *cobra.Command, o *options, args []string) error {
	ev, logger, _, err := o.evaluator(cmd, nil)
	if err != nil {
		return err
	}

	if len(args) > 0 {
		if len(args) > 1 {
			fmt.Fprintf(cmd.ErrOrStderr(), "First argument %s is considered as S-expression! Other arguments will be ignored!\n", args[0])
		}
		return evalOne(cmd.OutOrStdout(), ev, logger, args[0])
	}

	in := cmd.InOrStdin()
	if isTerminal(in) {
		return repl(in, cmd.OutOrStdout(), ev, logger)
	}
	return evalLines(in, cmd.OutOrStdout(), ev, logger)
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func evalOne(out io.Writer, ev *sexpcalc.Evaluator, logger *slog.Logger, input string) error {
	v, err := ev.Evaluate(input)
	if err != nil {
		logger.Info("rejected expression", "input", input, "error", err)
		fmt.Fprintln(out, invalidMessage)
		return errInvalid
	}
	fmt.Fprintln(out, v)
	return nil
}

// evalLines evaluates every non-blank line of r and fails if any line was
// rejected or if there was nothing to evaluate.
func evalLines(r io.Reader, out io.Writer, ev *sexpcalc.Evaluator, logger *slog.Logger) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), sexpcalc.DefaultMaxLength+1)
	var n int
	var failed bool
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		n++
		if err := evalOne(out, ev, logger, line); err != nil {
			failed = true
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	if n == 0 {
		return errors.New(usageMessage)
	}
	if failed {
		return errInvalid
	}
	return nil
}
