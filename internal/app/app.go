// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"stockholm-core/msa"
	"stockholm-core/seq"
	"stockholm-core/stockholm"
	"stockholm/internal/cli"
	"stockholm/internal/config"
	"stockholm/internal/runutil"
	"stockholm/internal/version"
	"stockholm/internal/writers"
)

// RunContext parses every input file and writes the selected rendering to
// stdout. Exit codes: 0 ok, 1 parse failure, 2 usage, 3 write failure,
// 130 cancelled.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("stockholm")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		fs.SetOutput(outw)
		if errors.Is(err, flag.ErrHelp) {
			cli.Usage(fs, "stockholm")
			return flushCode(outw, stderr)
		}
		_, _ = fmt.Fprintln(stderr, err)
		cli.Usage(fs, "stockholm")
		_ = outw.Flush()
		return 2
	}
	if opts.Version {
		_, _ = fmt.Fprintf(outw, "stockholm version %s\n", version.Version)
		return flushCode(outw, stderr)
	}

	logger := newLogger(stderr, &opts)

	construct, err := constructorFor(opts.Alphabet)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	var parseOpts []stockholm.Option
	if opts.StrictGS {
		parseOpts = append(parseOpts, stockholm.WithGSPolicy(stockholm.GSStrict))
	}

	header := opts.Header
	for _, file := range opts.Files {
		if parent.Err() != nil {
			return 130
		}
		m, err := parseFile(file, construct, opts.RequireSignature, logger, parseOpts...)
		if err != nil {
			logger.Error("parse failed", "file", file, "err", err)
			return 1
		}
		logger.Debug("parsed", "file", file, "sequences", m.Len(), "positions", m.Positions())
		p := writers.Payload{MSA: m, Source: file, Header: header, Color: opts.Color}
		if err := writers.Write(opts.Output, outw, p); err != nil {
			if writers.IsBrokenPipe(err) {
				return 0
			}
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
		// One header is enough when concatenating text tables.
		header = false
	}
	return flushCode(outw, stderr)
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func parseFile(file string, construct stockholm.Constructor, requireSig bool,
	logger *log.Logger, parseOpts ...stockholm.Option) (*msa.MSA, error) {
	rc, err := runutil.Open(file)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()

	if ok := stockholm.Sniff(rc); !ok {
		if requireSig {
			return nil, fmt.Errorf("%s: missing %q signature", file, stockholm.Signature)
		}
		logger.Warn("signature line missing", "file", file)
	}
	// The sniffer only looks at the first line; rewind for the real parse.
	if _, err := rc.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	return stockholm.Read(rc, construct, parseOpts...)
}

func constructorFor(name string) (stockholm.Constructor, error) {
	switch name {
	case cli.AlphabetProtein:
		return seq.Protein, nil
	case cli.AlphabetDNA:
		return seq.DNA, nil
	case cli.AlphabetRNA:
		return seq.RNA, nil
	case cli.AlphabetText:
		return seq.Text, nil
	}
	return nil, fmt.Errorf("invalid --alphabet %q", name)
}

// newLogger builds the app logger and, when --config is given, folds the
// file's defaults into opts. The file may set the base log level; --verbose
// and --quiet win over it.
func newLogger(stderr io.Writer, opts *cli.Options) *log.Logger {
	logger := log.NewWithOptions(stderr, log.Options{ReportTimestamp: false, Prefix: "stockholm"})

	level := log.WarnLevel
	if opts.Config != "" {
		f, meta, err := config.Load(opts.Config)
		if err != nil {
			logger.Warn("config ignored", "err", err)
		} else {
			config.Apply(opts, f, meta)
			if meta.IsDefined("log_level") {
				if l, err := log.ParseLevel(f.LogLevel); err == nil {
					level = l
				} else {
					logger.Warn("unknown log_level in config", "provided", f.LogLevel)
				}
			}
		}
	}
	switch {
	case opts.Verbose:
		level = log.DebugLevel
	case opts.Quiet:
		level = log.ErrorLevel
	}
	logger.SetLevel(level)
	return logger
}

func flushCode(outw *bufio.Writer, stderr io.Writer) int {
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return 0
}
