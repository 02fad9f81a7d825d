// treeval - tree value hashing and preview CLI
//
// Usage:
//
//	treeval hash [--seed k0:k1] [file]        Canonical keyed hash of a JSON document
//	treeval preview [--per-item n] [--max-len n] [file]
//	                                          Size-bounded single-line preview
//	treeval flatten [file]                    Two-level flatten of a JSON array of arrays
//	treeval min [file]                        Minimum of a JSON array of scalars
//	treeval max [file]                        Maximum of a JSON array of scalars
//	treeval version                           Print version info
//
// If no file is given, reads from stdin.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/veldtdata/treeval/treeval"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	logger := newLogger()
	defer logger.Sync()

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "hash":
		cmdHash(logger, args)
	case "preview":
		cmdPreview(logger, args)
	case "flatten":
		cmdFlatten(logger, args)
	case "min":
		cmdFold(logger, args, treeval.MinOf)
	case "max":
		cmdFold(logger, args, treeval.MaxOf)
	case "version":
		fmt.Printf("treeval %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "treeval: unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `treeval - tree value hashing and preview

Usage:
  treeval hash [--seed k0:k1] [file]
  treeval preview [--per-item n] [--max-len n] [file]
  treeval flatten [file]
  treeval min [file]
  treeval max [file]
  treeval version

Reads JSON from file or stdin.`)
}

// newLogger builds a stderr-only production logger so command output on
// stdout stays machine-readable.
func newLogger() *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true

	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// readValue parses the JSON document named by the trailing argument, or
// stdin when none is given.
func readValue(logger *zap.Logger, fileArg string) *treeval.Value {
	var input io.Reader = os.Stdin
	source := "stdin"

	if fileArg != "" && fileArg != "-" {
		f, err := os.Open(fileArg)
		if err != nil {
			logger.Fatal("open input", zap.Error(err))
		}
		defer f.Close()
		input = f
		source = fileArg
	}

	data, err := io.ReadAll(input)
	if err != nil {
		logger.Fatal("read input", zap.String("source", source), zap.Error(err))
	}

	v, err := treeval.FromJSON(data)
	if err != nil {
		logger.Fatal("parse input", zap.String("source", source), zap.Error(err))
	}
	return v
}

func fileArgOf(fs *flag.FlagSet) string {
	if fs.NArg() > 0 {
		return fs.Arg(0)
	}
	return ""
}

func cmdHash(logger *zap.Logger, args []string) {
	fs := flag.NewFlagSet("hash", flag.ExitOnError)
	seedSpec := fs.String("seed", "", "hash seed as two hex words k0:k1 (default: stable seed)")
	fs.Parse(args)

	seed := treeval.DefaultSeedStable
	if *seedSpec != "" {
		var err error
		seed, err = parseSeed(*seedSpec)
		if err != nil {
			logger.Fatal("parse seed", zap.String("seed", *seedSpec), zap.Error(err))
		}
	}

	v := readValue(logger, fileArgOf(fs))

	h, err := treeval.Hash(v, seed)
	if err != nil {
		logger.Fatal("hash", zap.Error(err))
	}
	fmt.Printf("%016x\n", h)
}

func cmdPreview(logger *zap.Logger, args []string) {
	fs := flag.NewFlagSet("preview", flag.ExitOnError)
	perItem := fs.Int("per-item", 256, "per-item length budget; negative disables")
	maxLen := fs.Int("max-len", -1, "nested string length budget; negative disables")
	fs.Parse(args)

	v := readValue(logger, fileArgOf(fs))
	fmt.Println(treeval.RenderAbbreviated(v, *perItem, *maxLen))
}

func cmdFlatten(logger *zap.Logger, args []string) {
	fs := flag.NewFlagSet("flatten", flag.ExitOnError)
	fs.Parse(args)

	v := readValue(logger, fileArgOf(fs))
	if v.Kind() != treeval.KindArray {
		logger.Fatal("flatten input must be a JSON array", zap.Stringer("kind", v.Kind()))
	}

	flat, err := treeval.Flatten(v.Elements())
	if err != nil {
		logger.Fatal("flatten", zap.Error(err))
	}
	fmt.Println(flat.Compact())
}

func cmdFold(logger *zap.Logger, args []string, fold func([]*treeval.Value) (*treeval.Value, error)) {
	fs := flag.NewFlagSet("fold", flag.ExitOnError)
	fs.Parse(args)

	v := readValue(logger, fileArgOf(fs))
	if v.Kind() != treeval.KindArray {
		logger.Fatal("fold input must be a JSON array", zap.Stringer("kind", v.Kind()))
	}

	result, err := fold(v.Elements())
	if err != nil {
		logger.Fatal("fold", zap.Error(err))
	}
	fmt.Println(result.Compact())
}

// parseSeed parses "k0:k1" with each word in hex, with or without an 0x
// prefix.
func parseSeed(spec string) (treeval.HashSeed, error) {
	parts := strings.SplitN(spec, ":", 2)
	if len(parts) != 2 {
		return treeval.HashSeed{}, fmt.Errorf("expected k0:k1, got %q", spec)
	}

	k0, err := strconv.ParseUint(strings.TrimPrefix(parts[0], "0x"), 16, 64)
	if err != nil {
		return treeval.HashSeed{}, fmt.Errorf("bad k0: %w", err)
	}
	k1, err := strconv.ParseUint(strings.TrimPrefix(parts[1], "0x"), 16, 64)
	if err != nil {
		return treeval.HashSeed{}, fmt.Errorf("bad k1: %w", err)
	}

	return treeval.HashSeed{K0: k0, K1: k1}, nil
}
