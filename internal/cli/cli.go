// Package cli implements the numeral command.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/govalues/numeral"
)

const usage = `Usage: numeral [-config file] [-json] [-v] [-no-color] <command> [flags] args

Commands:
  eval   [-prec N] <tokens...>             evaluate an expression in Polish notation
  format [-style S] [-devanagari] <number>  group digits in the EN or NP style
  words  [-style S] <number>                spell a number out in English words
  cmp    <a> <b>                            print -1, 0 or 1

A negative number may be given as the last argument of format and words;
elsewhere, put -- before it.
`

// errUsage marks errors caused by wrong command-line arguments.
var errUsage = errors.New("usage")

// Run executes the command described by args and returns the exit status.
func Run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("numeral", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { fmt.Fprint(stderr, usage) }

	var (
		configPath string
		asJSON     bool
		verbose    bool
		noColor    bool
	)
	fs.StringVar(&configPath, "config", "", "path to a YAML config file")
	fs.BoolVar(&asJSON, "json", false, "print results as JSON")
	fs.BoolVar(&verbose, "v", false, "log debug messages")
	fs.BoolVar(&noColor, "no-color", false, "disable colors in error messages")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	logger := newLogger(stderr, verbose)
	defer func() { _ = logger.Sync() }()

	cfg, err := resolveConfig(configPath, logger)
	if err != nil {
		newPrinter(stdout, stderr, false, !noColor).fail(err)
		return 1
	}
	if asJSON {
		cfg.JSON = true
	}
	logger.Debug("config resolved",
		zap.Int("precision", cfg.Precision),
		zap.String("style", cfg.Style),
		zap.String("script", cfg.Script),
		zap.Bool("json", cfg.JSON),
	)

	p := newPrinter(stdout, stderr, cfg.JSON, !noColor)
	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	cmd, rest := fs.Arg(0), fs.Args()[1:]
	logger.Debug("running command", zap.String("command", cmd), zap.Strings("args", rest))

	switch cmd {
	case "eval":
		err = runEval(rest, cfg, p, stderr)
	case "format":
		err = runFormat(rest, cfg, p, stderr)
	case "words":
		err = runWords(rest, cfg, p, stderr)
	case "cmp":
		err = runCmp(rest, p)
	default:
		err = fmt.Errorf("unknown command %q: %w", cmd, errUsage)
	}
	if err != nil {
		logger.Debug("command failed", zap.String("command", cmd), zap.Error(err))
		p.fail(err)
		if errors.Is(err, errUsage) {
			fmt.Fprint(stderr, usage)
			return 2
		}
		return 1
	}
	return 0
}

// resolveConfig loads the config file given by the flag or, failing that,
// by the environment. A missing file named by the environment is not an error.
func resolveConfig(path string, logger *zap.Logger) (Config, error) {
	if path != "" {
		return LoadConfig(path)
	}
	path = os.Getenv(ConfigEnv)
	if path == "" {
		return DefaultConfig(), nil
	}
	cfg, err := LoadConfig(path)
	if errors.Is(err, os.ErrNotExist) {
		logger.Warn("config file not found, using defaults", zap.String("path", path))
		return DefaultConfig(), nil
	}
	return cfg, err
}

func newCommandFlags(name string, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	return fs
}

func runEval(args []string, cfg Config, p *printer, stderr io.Writer) error {
	fs := newCommandFlags("eval", stderr)
	prec := fs.Int("prec", cfg.Precision, "digits after the decimal point")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("eval: %w: %w", errUsage, err)
	}
	d, err := evaluate(fs.Args(), *prec)
	if err != nil {
		return err
	}
	return p.print("eval", joinTokens(fs.Args()), d.String())
}

func runFormat(args []string, cfg Config, p *printer, stderr io.Writer) error {
	fs := newCommandFlags("format", stderr)
	styleName := fs.String("style", cfg.Style, "EN, NP or a BCP 47 language tag")
	script, err := parseScript(cfg.Script)
	if err != nil {
		return err
	}
	deva := fs.Bool("devanagari", script == numeral.Devanagari, "use Devanagari digits")
	if err := fs.Parse(negativeOperand(args, "style")); err != nil {
		return fmt.Errorf("format: %w: %w", errUsage, err)
	}
	d, err := singleNumeral(fs, cfg)
	if err != nil {
		return err
	}
	style, err := numeral.ParseStyle(*styleName)
	if err != nil {
		return err
	}
	script = numeral.Latin
	if *deva {
		script = numeral.Devanagari
	}
	return p.print("format", d.String(), d.Localize(style, script))
}

func runWords(args []string, cfg Config, p *printer, stderr io.Writer) error {
	fs := newCommandFlags("words", stderr)
	styleName := fs.String("style", cfg.Style, "EN, NP or a BCP 47 language tag")
	if err := fs.Parse(negativeOperand(args, "style")); err != nil {
		return fmt.Errorf("words: %w: %w", errUsage, err)
	}
	d, err := singleNumeral(fs, cfg)
	if err != nil {
		return err
	}
	style, err := numeral.ParseStyle(*styleName)
	if err != nil {
		return err
	}
	return p.print("words", d.String(), d.Words(style))
}

func runCmp(args []string, p *printer) error {
	if len(args) != 2 {
		return fmt.Errorf("cmp needs exactly two numbers: %w", errUsage)
	}
	a, err := numeral.Parse(args[0])
	if err != nil {
		return err
	}
	b, err := numeral.Parse(args[1])
	if err != nil {
		return err
	}
	return p.print("cmp", joinTokens(args), strconv.Itoa(a.Cmp(b)))
}

// negativeOperand inserts "--" before a trailing negative numeral, so that
// the flag package does not read it as a flag. Arguments already holding
// "--", or a last value that belongs to one of valueFlags, are left as is.
func negativeOperand(args []string, valueFlags ...string) []string {
	n := len(args)
	if n == 0 {
		return args
	}
	last := args[n-1]
	if len(last) < 2 || last[0] != '-' {
		return args
	}
	if _, err := numeral.Parse(last); err != nil {
		return args
	}
	for _, a := range args[:n-1] {
		if a == "--" {
			return args
		}
	}
	if n > 1 {
		prev := strings.TrimLeft(args[n-2], "-")
		for _, f := range valueFlags {
			if prev == f && args[n-2] != prev {
				return args
			}
		}
	}
	res := make([]string, 0, n+1)
	res = append(res, args[:n-1]...)
	return append(res, "--", last)
}

func singleNumeral(fs *flag.FlagSet, cfg Config) (numeral.Numeral, error) {
	if fs.NArg() != 1 {
		return numeral.Numeral{}, fmt.Errorf("%s needs exactly one number: %w", fs.Name(), errUsage)
	}
	return numeral.ParsePrec(fs.Arg(0), cfg.Precision)
}
