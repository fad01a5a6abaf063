package stockholm

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"stockholm-core/msa"
	"stockholm-core/seq"
)

const sample = `# STOCKHOLM 1.0
#=GF RA    Deiman BA, Kortlever RM, Pleij CW;
#=GF RL    J Virol 1997;71:5990-5996.
AF035635.1/619-641             UGAGUUCUCGAUCUCUAAAAUCG
M24804.1/82-104                UGAGUUCUCUAUCUCUAAAAUCG
J04373.1/6212-6234             UAAGUUCUCGAUCUUUAAAAUCG
M24803.1/1-23                  UAAGUUCUCGAUCUCUAAAAUCG
#=GC SS_cons                   .AAA....<<<<aaa....>>>>
//
`

func parse(t *testing.T, in string, opts ...Option) *msa.MSA {
	t.Helper()
	m, err := Read(strings.NewReader(in), seq.RNA, opts...)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	return m
}

func parseErr(t *testing.T, in string, opts ...Option) error {
	t.Helper()
	_, err := Read(strings.NewReader(in), seq.Text, opts...)
	if err == nil {
		t.Fatalf("expected error")
	}
	return err
}

func TestReadSample(t *testing.T) {
	m := parse(t, sample)

	if m.Len() != 4 || m.Positions() != 23 {
		t.Fatalf("got %d sequences x %d columns, want 4 x 23", m.Len(), m.Positions())
	}
	wantIndex := []string{
		"AF035635.1/619-641", "M24804.1/82-104",
		"J04373.1/6212-6234", "M24803.1/1-23",
	}
	if !reflect.DeepEqual(m.Index(), wantIndex) {
		t.Fatalf("index = %v", m.Index())
	}
	// The GF split is on single spaces, so runs of padding stay in the value.
	wantMeta := map[string]string{
		"RA": "   Deiman BA, Kortlever RM, Pleij CW;",
		"RL": "   J Virol 1997;71:5990-5996.",
	}
	if !reflect.DeepEqual(m.Metadata, wantMeta) {
		t.Fatalf("metadata = %#v", m.Metadata)
	}
	cons := m.Positional["SS_cons"]
	if string(cons) != ".AAA....<<<<aaa....>>>>" || len(cons) != 23 {
		t.Fatalf("SS_cons = %q", cons)
	}
	if sq, ok := m.Lookup("M24803.1/1-23"); !ok || sq.Chars != "UAAGUUCUCGAUCUCUAAAAUCG" {
		t.Fatalf("lookup M24803.1/1-23 = %v %q", ok, sq.Chars)
	}
}

func TestReadIsRepeatable(t *testing.T) {
	r := strings.NewReader(sample)
	first, err := Read(r, seq.RNA)
	if err != nil {
		t.Fatalf("first read: %v", err)
	}
	if _, err := r.Seek(0, 0); err != nil {
		t.Fatalf("seek: %v", err)
	}
	second, err := Read(r, seq.RNA)
	if err != nil {
		t.Fatalf("second read: %v", err)
	}
	if !reflect.DeepEqual(first.Index(), second.Index()) ||
		!reflect.DeepEqual(first.Metadata, second.Metadata) {
		t.Fatalf("re-parse diverged")
	}
}

func TestGFConcatenatesRepeatedKeys(t *testing.T) {
	m := parse(t, "#=GF K a\n#=GF K b\ns1 ACGU\n//\n")
	if m.Metadata["K"] != "a b" {
		t.Fatalf("K = %q, want %q", m.Metadata["K"], "a b")
	}
}

func TestMarkupBeforeDataIsFine(t *testing.T) {
	// The data pass runs to completion before markup is touched, so markup
	// physically above its data line still finds the record.
	m := parse(t, "#=GR s1 SS ....\n#=GS s1 AC X81\ns1 ACGU\n//\n")
	sq, _ := m.Lookup("s1")
	if string(sq.Positional["SS"]) != "...." {
		t.Fatalf("SS = %q", sq.Positional["SS"])
	}
	if sq.Metadata["AC"] != "X81" {
		t.Fatalf("AC = %q", sq.Metadata["AC"])
	}
}

func TestMarkupUnknownLabelFails(t *testing.T) {
	for _, in := range []string{
		"s1 ACGU\n#=GS ghost AC X\n//\n",
		"s1 ACGU\n#=GR ghost SS ....\n//\n",
	} {
		if err := parseErr(t, in); !errors.Is(err, ErrUndeclaredSequence) {
			t.Fatalf("%q: got %v", in, err)
		}
	}
}

func TestDuplicateDataLabelFails(t *testing.T) {
	err := parseErr(t, "s1 ACGU\ns1 ACGU\n//\n")
	if !errors.Is(err, ErrDuplicateSequenceLabel) {
		t.Fatalf("got %v", err)
	}
}

func TestDuplicateGCFails(t *testing.T) {
	err := parseErr(t, "s1 ACGU\n#=GC SS_cons ....\n#=GC SS_cons ....\n//\n")
	if !errors.Is(err, ErrDuplicateColumnFeature) {
		t.Fatalf("got %v", err)
	}
}

func TestDuplicateGRFails(t *testing.T) {
	err := parseErr(t, "s1 ACGU\n#=GR s1 SS ....\n#=GR s1 SS ....\n//\n")
	if !errors.Is(err, ErrDuplicateSequenceColumnFeature) {
		t.Fatalf("got %v", err)
	}
	// Same feature on two different sequences is allowed.
	m := parse(t, "s1 ACGU\ns2 ACGU\n#=GR s1 SS ....\n#=GR s2 SS ....\n//\n")
	if m.Len() != 2 {
		t.Fatalf("len = %d", m.Len())
	}
}

func TestGSFirstBlockWins(t *testing.T) {
	// Faithful default: once a record holds any metadata, later GS lines
	// for it are dropped, repeats and fresh features alike.
	m := parse(t, "s1 ACGU\n#=GS s1 AC first\n#=GS s1 AC second\n#=GS s1 DE other\n//\n")
	sq, _ := m.Lookup("s1")
	want := map[string]string{"AC": "first"}
	if !reflect.DeepEqual(sq.Metadata, want) {
		t.Fatalf("metadata = %#v", sq.Metadata)
	}
}

func TestGSStrict(t *testing.T) {
	m := parse(t, "s1 ACGU\n#=GS s1 AC first\n#=GS s1 DE other\n//\n",
		WithGSPolicy(GSStrict))
	sq, _ := m.Lookup("s1")
	want := map[string]string{"AC": "first", "DE": "other"}
	if !reflect.DeepEqual(sq.Metadata, want) {
		t.Fatalf("metadata = %#v", sq.Metadata)
	}

	err := parseErr(t, "s1 ACGU\n#=GS s1 AC a\n#=GS s1 AC b\n//\n",
		WithGSPolicy(GSStrict))
	if !errors.Is(err, ErrDuplicateSequenceFeature) {
		t.Fatalf("got %v", err)
	}
}

func TestEmptyAlignment(t *testing.T) {
	for _, in := range []string{
		"",
		"# STOCKHOLM 1.0\n//\n",
		"#=GF ID only-metadata\n//\n",
	} {
		if err := parseErr(t, in); !errors.Is(err, ErrEmptyAlignment) {
			t.Fatalf("%q: got %v", in, err)
		}
	}
}

func TestMalformedLines(t *testing.T) {
	cases := []string{
		"s1 ACGU\n#=GF ID\n//\n",       // GF missing data
		"s1 ACGU\n#=GS s1 AC\n//\n",    // GS missing data
		"s1 ACGU\n#=GR s1 SS\n//\n",    // GR missing columns
		"s1 ACGU\n#=GC SS_cons\n//\n",  // GC missing columns
		"justalabel\n//\n",             // data line without characters
	}
	for _, in := range cases {
		if err := parseErr(t, in); !errors.Is(err, ErrMalformedLine) {
			t.Fatalf("%q: got %v", in, err)
		}
	}
}

func TestExtraDataFieldsIgnored(t *testing.T) {
	m := parse(t, "s1 ACGU trailing junk\n//\n")
	sq, _ := m.Lookup("s1")
	if sq.Chars != "ACGU" {
		t.Fatalf("chars = %q", sq.Chars)
	}
}

func TestConstructorErrorAbortsParse(t *testing.T) {
	_, err := Read(strings.NewReader("s1 ACGXZ9\n//\n"), seq.DNA)
	if err == nil || !strings.Contains(err.Error(), `sequence "s1"`) {
		t.Fatalf("got %v", err)
	}
}

func TestAbsentAnnotationsAreNil(t *testing.T) {
	var gotMeta map[string]string
	var gotPos map[string][]byte
	construct := func(chars string, md map[string]string, pmd map[string][]byte) (seq.Sequence, error) {
		gotMeta, gotPos = md, pmd
		return seq.Text(chars, md, pmd)
	}
	if _, err := Read(strings.NewReader("s1 ACGU\n//\n"), construct); err != nil {
		t.Fatalf("read: %v", err)
	}
	if gotMeta != nil || gotPos != nil {
		t.Fatalf("want nil annotations, got %#v %#v", gotMeta, gotPos)
	}
}
