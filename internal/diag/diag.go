// Package diag tracks source positions and accumulates the diagnostics
// produced by every pipeline stage. Each compilation run owns exactly one
// Bag; a non-empty Bag halts the pipeline before the next stage runs.
package diag

import (
	"fmt"
	"strings"
)

// Pos is a single location in a source file. Line and Col are 1-based;
// Offset is a 0-based byte index into the source text.
type Pos struct {
	Line   int
	Col    int
	Offset int
	Path   string
}

func (p Pos) String() string {
	return fmt.Sprintf("%s:%d:%d", p.Path, p.Line, p.Col)
}

// Range is a half-open-by-convention span used verbatim in diagnostics;
// Start.Offset <= End.Offset always holds for a well-formed Range.
type Range struct {
	Start Pos
	End   Pos
}

// Diagnostic is one reported problem, anchored to a Range in the source.
type Diagnostic struct {
	Range   Range
	Message string
}

// Bag accumulates diagnostics for a single compilation run. It is not
// safe for concurrent use; Hawk's pipeline is strictly sequential (see
// spec.md §5) so no synchronization is needed.
type Bag struct {
	items []Diagnostic
}

// Add appends a diagnostic covering r with the given message.
func (b *Bag) Add(r Range, format string, args ...any) {
	b.items = append(b.items, Diagnostic{Range: r, Message: fmt.Sprintf(format, args...)})
}

// HasErrors reports whether any diagnostic has been recorded. Every
// diagnostic Hawk produces is fatal at the pipeline boundary (spec.md §7):
// there is no separate warning severity.
func (b *Bag) HasErrors() bool {
	return len(b.items) > 0
}

// Items returns the accumulated diagnostics in report order.
func (b *Bag) Items() []Diagnostic {
	return b.items
}

// Render formats a diagnostic as the four-line block spec.md §6 requires:
// a header line, the offending source line, an indent to the start
// column, and a run of '~' the width of the range.
func Render(d Diagnostic, source string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d:%d - %s\n", d.Range.Start.Line, d.Range.Start.Col, d.Message)

	lines := strings.Split(source, "\n")
	lineIdx := d.Range.Start.Line - 1
	var srcLine string
	if lineIdx >= 0 && lineIdx < len(lines) {
		srcLine = lines[lineIdx]
	}
	sb.WriteString(srcLine)
	sb.WriteByte('\n')

	width := d.Range.End.Offset - d.Range.Start.Offset
	if width < 1 {
		width = 1
	}
	sb.WriteString(strings.Repeat(" ", d.Range.Start.Col-1))
	sb.WriteString(strings.Repeat("~", width))
	return sb.String()
}

// RenderAll formats every diagnostic in the bag, separated by blank lines,
// in the order they were reported.
func RenderAll(b *Bag, source string) string {
	var sb strings.Builder
	for i, d := range b.Items() {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(Render(d, source))
	}
	return sb.String()
}
