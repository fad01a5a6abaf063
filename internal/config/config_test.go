package config

import (
	"os"
	"path/filepath"
	"testing"

	"stockholm/internal/cli"
)

func write(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stockholm.toml")
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestLoadAndApply(t *testing.T) {
	path := write(t, "alphabet = \"rna\"\noutput = \"json\"\nstrict_gs = true\n")
	f, meta, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	opts := cli.Options{Alphabet: cli.AlphabetProtein, Output: "text",
		Set: map[string]bool{"output": true}}
	Apply(&opts, f, meta)

	if opts.Alphabet != cli.AlphabetRNA {
		t.Fatalf("alphabet = %q", opts.Alphabet)
	}
	if opts.Output != "text" {
		t.Fatalf("user flag lost to config: %q", opts.Output)
	}
	if !opts.StrictGS {
		t.Fatalf("strict_gs not applied")
	}
}

func TestUndefinedKeysLeaveDefaults(t *testing.T) {
	path := write(t, "color = true\n")
	f, meta, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	opts := cli.Options{Alphabet: cli.AlphabetProtein, Output: "text", Set: map[string]bool{}}
	Apply(&opts, f, meta)
	if opts.Alphabet != cli.AlphabetProtein || opts.Output != "text" || !opts.Color {
		t.Fatalf("opts = %+v", opts)
	}
}

func TestLoadRejectsBadEnum(t *testing.T) {
	path := write(t, "output = \"xml\"\n")
	if _, _, err := Load(path); err == nil {
		t.Fatalf("accepted bad output enum")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
