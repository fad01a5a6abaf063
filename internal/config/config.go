// internal/config/config.go
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"stockholm/internal/cli"
)

// File is the optional TOML defaults file for the CLI tools. Every field
// maps to a flag; values apply only where the user did not pass the flag.
type File struct {
	Alphabet         string `toml:"alphabet"`
	Output           string `toml:"output"`
	StrictGS         bool   `toml:"strict_gs"`
	RequireSignature bool   `toml:"require_signature"`
	Color            bool   `toml:"color"`
	LogLevel         string `toml:"log_level"`
}

// Load decodes path and validates the enum fields.
func Load(path string) (File, toml.MetaData, error) {
	var f File
	meta, err := toml.DecodeFile(path, &f)
	if err != nil {
		return File{}, meta, fmt.Errorf("load config %s: %w", path, err)
	}
	if meta.IsDefined("alphabet") {
		if err := cli.ValidateAlphabet(f.Alphabet); err != nil {
			return File{}, meta, fmt.Errorf("config %s: %w", path, err)
		}
	}
	if meta.IsDefined("output") {
		if err := cli.ValidateOutput(f.Output); err != nil {
			return File{}, meta, fmt.Errorf("config %s: %w", path, err)
		}
	}
	return f, meta, nil
}

// Apply merges file values into opts. Flags the user passed win; everything
// the file defines and the user left alone is overridden.
func Apply(opts *cli.Options, f File, meta toml.MetaData) {
	if meta.IsDefined("alphabet") && !opts.Set["alphabet"] {
		opts.Alphabet = f.Alphabet
	}
	if meta.IsDefined("output") && !opts.Set["output"] {
		opts.Output = f.Output
	}
	if meta.IsDefined("strict_gs") && !opts.Set["strict-gs"] {
		opts.StrictGS = f.StrictGS
	}
	if meta.IsDefined("require_signature") && !opts.Set["require-signature"] {
		opts.RequireSignature = f.RequireSignature
	}
	if meta.IsDefined("color") && !opts.Set["color"] {
		opts.Color = f.Color
	}
}
