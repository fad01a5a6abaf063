package writers

import (
	"bytes"
	"sort"
	"strings"
	"testing"

	"stockholm-core/msa"
	"stockholm-core/seq"
)

func sampleMSA(t *testing.T) *msa.MSA {
	t.Helper()
	s1, _ := seq.Text("ACGT", nil, nil)
	m, err := msa.New([]seq.Sequence{s1}, nil, nil, []string{"s1"})
	if err != nil {
		t.Fatalf("msa: %v", err)
	}
	return m
}

func TestRegisteredFormats(t *testing.T) {
	got := Formats()
	sort.Strings(got)
	want := []string{"fasta", "json", "pretty", "text"}
	if len(got) != len(want) {
		t.Fatalf("formats = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("formats = %v, want %v", got, want)
		}
	}
}

func TestWriteDispatch(t *testing.T) {
	p := Payload{MSA: sampleMSA(t), Source: "x.sto", Header: true}
	for _, format := range Formats() {
		var b bytes.Buffer
		if err := Write(format, &b, p); err != nil {
			t.Fatalf("%s: %v", format, err)
		}
		if !strings.Contains(b.String(), "s1") {
			t.Fatalf("%s output missing label:\n%s", format, b.String())
		}
	}
}

func TestUnknownFormat(t *testing.T) {
	err := Write("xml", &bytes.Buffer{}, Payload{MSA: sampleMSA(t)})
	if err == nil || !strings.Contains(err.Error(), "unknown output format") {
		t.Fatalf("got %v", err)
	}
}
