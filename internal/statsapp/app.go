// internal/statsapp/app.go
package statsapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"stockholm-core/msa"
	"stockholm-core/seq"
	"stockholm-core/stockholm"
	"stockholm/internal/cli"
	"stockholm/internal/output"
	"stockholm/internal/runutil"
	"stockholm/internal/statscli"
	"stockholm/internal/version"
	"stockholm/internal/writers"
)

// RunContext prints one summary row per input file.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("stockholm-stats")
	fs.SetOutput(io.Discard)

	opts, err := statscli.ParseArgs(fs, argv)
	if err != nil {
		fs.SetOutput(outw)
		if errors.Is(err, flag.ErrHelp) {
			statscli.Usage(fs, "stockholm-stats")
			_ = outw.Flush()
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		statscli.Usage(fs, "stockholm-stats")
		_ = outw.Flush()
		return 2
	}
	if opts.Version {
		_, _ = fmt.Fprintf(outw, "stockholm-stats version %s\n", version.Version)
		return 0
	}

	construct := constructorFor(opts.Alphabet)
	header := opts.Header
	for _, file := range opts.Files {
		if parent.Err() != nil {
			return 130
		}
		m, err := parseFile(file, construct)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 1
		}
		switch opts.Output {
		case "json":
			err = output.WriteStatsJSON(outw, m, file)
		default:
			err = output.WriteStatsTSV(outw, m, file, header)
			header = false
		}
		if err != nil {
			if writers.IsBrokenPipe(err) {
				return 0
			}
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
	}
	if err := outw.Flush(); err != nil && !writers.IsBrokenPipe(err) {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return 0
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func parseFile(file string, construct stockholm.Constructor) (*msa.MSA, error) {
	rc, err := runutil.Open(file)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	return stockholm.Read(rc, construct)
}

func constructorFor(name string) stockholm.Constructor {
	switch name {
	case cli.AlphabetProtein:
		return seq.Protein
	case cli.AlphabetDNA:
		return seq.DNA
	case cli.AlphabetRNA:
		return seq.RNA
	}
	return seq.Text
}
