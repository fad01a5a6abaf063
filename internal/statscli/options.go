// internal/statscli/options.go
package statscli

import (
	"errors"
	"flag"
	"fmt"

	"stockholm/internal/cli"
	"stockholm/internal/version"
)

// Options holds all CLI flags and arguments for stockholm-stats.
type Options struct {
	Files    []string
	Alphabet string
	Output   string // text | json
	Header   bool
	Version  bool
}

// Usage writes the stats help text.
func Usage(fs *flag.FlagSet, name string) {
	fmt.Fprintf(fs.Output(),
		`%s: summarize Stockholm alignments

Version: %s

Usage: %s [flags] <file.sto|-> [more files...]

`, name, version.Version, name)
	fs.PrintDefaults()
}

// ParseArgs registers and parses the stats flags.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.StringVar(&opt.Alphabet, "alphabet", cli.AlphabetText,
		"sequence alphabet: protein | dna | rna | text [text]")
	fs.StringVar(&opt.Output, "output", "text", "output format: text | json [text]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in text output [false]")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	opt.Header = !noHeader
	if opt.Version {
		return opt, nil
	}
	opt.Files = fs.Args()

	if len(opt.Files) == 0 {
		return opt, errors.New("at least one input file is required ('-' for stdin)")
	}
	if err := cli.ValidateAlphabet(opt.Alphabet); err != nil {
		return opt, err
	}
	if opt.Output != "text" && opt.Output != "json" {
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	return opt, nil
}
