// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"stockholm/internal/version"
)

// Alphabet names accepted by --alphabet.
const (
	AlphabetProtein = "protein"
	AlphabetDNA     = "dna"
	AlphabetRNA     = "rna"
	AlphabetText    = "text"
)

// Options holds all CLI flags and arguments for the stockholm command.
type Options struct {
	// Input
	Files            []string
	RequireSignature bool

	// Parsing
	Alphabet string
	StrictGS bool

	// Output
	Output string
	Header bool // true unless --no-header
	Color  bool

	// App
	Config  string
	Verbose bool
	Quiet   bool
	Version bool

	// Set records which flags the user passed, so config-file values only
	// fill the gaps.
	Set map[string]bool
}

// Usage writes the top-level help text.
func Usage(fs *flag.FlagSet, name string) {
	fmt.Fprintf(fs.Output(),
		`%s: parse Stockholm multiple sequence alignments

Version: %s

Usage: %s [flags] <file.sto|-> [more files...]

`, name, version.Version, name)
	fs.PrintDefaults()
}

// ParseArgs registers and parses all flags, returns an Options struct.
// Positional arguments are the input files; "-" reads stdin.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.StringVar(&opt.Alphabet, "alphabet", AlphabetProtein,
		"sequence alphabet: protein | dna | rna | text [protein]")
	fs.StringVar(&opt.Output, "output", "text",
		"output format: text | json | fasta | pretty [text]")
	fs.BoolVar(&opt.StrictGS, "strict-gs", false,
		"reject repeated #=GS features instead of dropping them [false]")
	fs.BoolVar(&opt.RequireSignature, "require-signature", false,
		"fail unless the first line is the '# STOCKHOLM 1.0' signature [false]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in text output [false]")
	fs.BoolVar(&opt.Color, "color", false, "colorize pretty output [false]")
	fs.StringVar(&opt.Config, "config", "", "path to TOML defaults file (optional)")
	fs.BoolVar(&opt.Verbose, "verbose", false, "enable debug logging [false]")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress warnings [false]")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	opt.Set = setFlags(fs)
	opt.Header = !noHeader
	if opt.Version {
		return opt, nil
	}
	opt.Files = fs.Args()

	if len(opt.Files) == 0 {
		return opt, errors.New("at least one input file is required ('-' for stdin)")
	}
	if err := ValidateAlphabet(opt.Alphabet); err != nil {
		return opt, err
	}
	if err := ValidateOutput(opt.Output); err != nil {
		return opt, err
	}
	return opt, nil
}

// ValidateAlphabet rejects unknown --alphabet values.
func ValidateAlphabet(name string) error {
	switch name {
	case AlphabetProtein, AlphabetDNA, AlphabetRNA, AlphabetText:
		return nil
	}
	return fmt.Errorf("invalid --alphabet %q", name)
}

// ValidateOutput rejects unknown --output values.
func ValidateOutput(name string) error {
	switch name {
	case "text", "json", "fasta", "pretty":
		return nil
	}
	return fmt.Errorf("invalid --output %q", name)
}

func setFlags(fs *flag.FlagSet) map[string]bool {
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}
