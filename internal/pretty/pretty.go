// internal/pretty/pretty.go
package pretty

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"stockholm-core/msa"
)

// Styles for the rendered block.
var (
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981")).Bold(true)
	headingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7C3AED")).Bold(true)
	featureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF"))
)

// Options control the rendering.
type Options struct {
	// Color toggles lipgloss styling; off, the block is plain text.
	Color bool
	// ShowMetadata includes the alignment and per-sequence metadata blocks.
	ShowMetadata bool
	// Wrap splits the alignment into blocks of at most Wrap columns
	// (0 = single block).
	Wrap int
}

// DefaultOptions is what the CLI starts from.
var DefaultOptions = Options{Color: false, ShowMetadata: true, Wrap: 0}

// Render lays the alignment out as a human-readable block: a heading with
// the counts, optional metadata, then label-padded sequence rows with the
// per-column rows aligned underneath.
func Render(m *msa.MSA, opt Options) string {
	style := func(s lipgloss.Style, v string) string {
		if !opt.Color {
			return v
		}
		return s.Render(v)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", style(headingStyle,
		fmt.Sprintf("alignment: %d sequences x %d columns", m.Len(), m.Positions())))

	if opt.ShowMetadata && len(m.Metadata) > 0 {
		keys := make([]string, 0, len(m.Metadata))
		for k := range m.Metadata {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, "%s %s\n", style(featureStyle, k), strings.TrimSpace(m.Metadata[k]))
		}
	}

	width := labelWidth(m)
	cols := m.Positions()
	step := cols
	if opt.Wrap > 0 && opt.Wrap < cols {
		step = opt.Wrap
	}
	for start := 0; start < cols || cols == 0; start += step {
		end := start + step
		if end > cols {
			end = cols
		}
		for i := 0; i < m.Len(); i++ {
			sq := m.At(i)
			fmt.Fprintf(&b, "%s %s\n",
				style(labelStyle, pad(m.Label(i), width)), sq.Chars[start:end])
			for _, feature := range sortedFeatures(sq.Positional) {
				fmt.Fprintf(&b, "%s %s\n",
					style(mutedStyle, pad("  #"+feature, width)), sq.Positional[feature][start:end])
			}
		}
		for _, feature := range m.PositionalFeatures() {
			fmt.Fprintf(&b, "%s %s\n",
				style(featureStyle, pad("#"+feature, width)), m.Positional[feature][start:end])
		}
		if cols == 0 {
			break
		}
		if end < cols {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func labelWidth(m *msa.MSA) int {
	w := 0
	for i := 0; i < m.Len(); i++ {
		if n := len(m.Label(i)); n > w {
			w = n
		}
		for feature := range m.At(i).Positional {
			if n := len(feature) + 3; n > w {
				w = n
			}
		}
	}
	for feature := range m.Positional {
		if n := len(feature) + 1; n > w {
			w = n
		}
	}
	return w
}

func pad(s string, w int) string {
	if len(s) >= w {
		return s
	}
	return s + strings.Repeat(" ", w-len(s))
}

func sortedFeatures(rows map[string][]byte) []string {
	keys := make([]string, 0, len(rows))
	for k := range rows {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
