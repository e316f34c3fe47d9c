// Command regforge prints or saves random strings matching patterns.
//
// Usage:
//
//	regforge -re '[a-z]{3,8}@example\.com' -n 5
//	regforge -f patterns.txt -seed 42 -out fixtures_gen.go -pkg fixtures
//	regforge -f patterns.txt -out fixtures_gen.go -watch
//
// Patterns files hold one pattern per line. Blank lines and lines starting
// with '#' are skipped.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/coregx/regforge"
	"github.com/coregx/regforge/random"
)

// arrayFlags collects a repeatable string flag.
type arrayFlags []string

func (a arrayFlags) String() string {
	return strings.Join(a, ", ")
}

func (a *arrayFlags) Set(value string) error {
	*a = append(*a, value)
	return nil
}

type options struct {
	patterns     arrayFlags
	exclude      arrayFlags
	file         string
	count        int
	seed         uint64
	seedSet      bool
	maxUnbounded int
	maxAttempts  int
	out          string
	pkg          string
	varName      string
	watch        bool
	verbose      bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "regforge: %v\n", err)
		return 2
	}

	log := NewLogger(opts.verbose)
	log.SetOutput(stderr)

	if !opts.seedSet {
		opts.seed = random.Seed()
	}
	log.Log("starting", "seed", opts.seed, "count", opts.count)

	config := regforge.DefaultConfig().
		WithMaxUnbounded(opts.maxUnbounded).
		WithMaxAttempts(opts.maxAttempts).
		WithExclude(opts.exclude...)
	cache, err := regforge.NewCache(regforge.DefaultCacheCapacity, config)
	if err != nil {
		fmt.Fprintf(stderr, "regforge: %v\n", err)
		return 2
	}

	g := &generator{opts: opts, cache: cache, log: log, stdout: stdout}
	if err := g.once(); err != nil {
		fmt.Fprintf(stderr, "regforge: %v\n", err)
		return 1
	}
	if !opts.watch {
		return 0
	}

	fw, err := newFileWatcher(opts.file)
	if err != nil {
		fmt.Fprintf(stderr, "regforge: watch %s: %v\n", opts.file, err)
		return 1
	}
	defer fw.Close()

	log.Section("watching " + opts.file)
	err = fw.Run(ctx, g.once, func(err error) {
		log.Warn("regenerate failed", "err", err)
	})
	if err != nil {
		fmt.Fprintf(stderr, "regforge: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	opts := &options{}
	fs := flag.NewFlagSet("regforge", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.Var(&opts.patterns, "re", "pattern to generate from (repeatable)")
	fs.Var(&opts.exclude, "exclude", "word generated strings must not contain (repeatable)")
	fs.StringVar(&opts.file, "f", "", "file with one pattern per line")
	fs.IntVar(&opts.count, "n", 10, "strings to generate per pattern")
	fs.Uint64Var(&opts.seed, "seed", 0, "random seed (default: from the OS)")
	fs.IntVar(&opts.maxUnbounded, "max-unbounded", regforge.DefaultConfig().MaxUnbounded, "bound for *, + and {n,}")
	fs.IntVar(&opts.maxAttempts, "max-attempts", regforge.DefaultConfig().MaxAttempts, "candidates drawn before giving up on -exclude")
	fs.StringVar(&opts.out, "out", "", "write a Go fixture file instead of printing")
	fs.StringVar(&opts.pkg, "pkg", "fixtures", "package name for -out")
	fs.StringVar(&opts.varName, "var", "Fixtures", "variable name for -out")
	fs.BoolVar(&opts.watch, "watch", false, "regenerate -out whenever -f changes")
	fs.BoolVar(&opts.verbose, "v", false, "verbose output")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			opts.seedSet = true
		}
	})
	opts.patterns = append(opts.patterns, fs.Args()...)

	switch {
	case len(opts.patterns) == 0 && opts.file == "":
		return nil, errors.New("no patterns: use -re, -f or positional arguments")
	case opts.count < 0:
		return nil, fmt.Errorf("-n must be >= 0, got %d", opts.count)
	case opts.watch && (opts.file == "" || opts.out == ""):
		return nil, errors.New("-watch requires -f and -out")
	case opts.out != "" && !isIdentifier(opts.varName):
		return nil, fmt.Errorf("-var %q is not a Go identifier", opts.varName)
	}
	return opts, nil
}

// isIdentifier reports whether s is an ASCII Go identifier.
func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}

// generator produces one batch of output per call to once.
type generator struct {
	opts   *options
	cache  *regforge.Cache
	log    *Logger
	stdout io.Writer
}

func (g *generator) once() error {
	patterns := append([]string(nil), g.opts.patterns...)
	if g.opts.file != "" {
		fromFile, err := readPatterns(g.opts.file)
		if err != nil {
			return err
		}
		patterns = append(patterns, fromFile...)
	}

	// Every batch restarts from the seed so unchanged patterns keep their
	// fixtures across regenerations.
	src := random.New(g.opts.seed)

	fixtures := make([]fixture, 0, len(patterns))
	for _, p := range patterns {
		gen, err := g.cache.Get(p)
		if err != nil {
			return err
		}
		values := make([]string, g.opts.count)
		for i := range values {
			if values[i], err = gen.TryGenerate(src); err != nil {
				return err
			}
		}
		fixtures = append(fixtures, fixture{Pattern: p, Values: values})
		g.log.Log("generated", "pattern", p, "count", len(values))
	}

	st := g.cache.Stats()
	g.log.Log("cache", "hits", st.Hits, "compiled", st.Creates, "evicted", st.Evictions)

	if g.opts.out != "" {
		if err := saveFixtures(g.opts.out, g.opts.pkg, g.opts.varName, g.opts.seed, fixtures); err != nil {
			return fmt.Errorf("write %s: %w", g.opts.out, err)
		}
		g.log.Log("wrote fixtures", "path", g.opts.out, "patterns", len(fixtures))
		return nil
	}

	w := bufio.NewWriter(g.stdout)
	for _, fx := range fixtures {
		for _, v := range fx.Values {
			fmt.Fprintln(w, v)
		}
	}
	return w.Flush()
}

// readPatterns returns the non-blank, non-comment lines of path.
func readPatterns(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var patterns []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSuffix(sc.Text(), "\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return patterns, nil
}
