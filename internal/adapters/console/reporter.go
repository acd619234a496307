package console

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Reporter implements ports.Reporter by printing status lines to a writer.
// Colors are only emitted when the writer is a color-capable terminal.
type Reporter struct {
	out    io.Writer
	errOut io.Writer
	styles Styles
}

// NewReporter creates a reporter printing steps to out and failures to errOut
func NewReporter(out, errOut io.Writer) *Reporter {
	return &Reporter{
		out:    out,
		errOut: errOut,
		styles: NewStyles(lipgloss.NewRenderer(out)),
	}
}

// OK reports a completed step
func (r *Reporter) OK(format string, args ...any) {
	r.print(r.out, MarkOK, r.styles.OK, format, args...)
}

// New reports that the output changed
func (r *Reporter) New(format string, args ...any) {
	r.print(r.out, MarkNew, r.styles.New, format, args...)
}

// Err reports a failure
func (r *Reporter) Err(format string, args ...any) {
	r.print(r.errOut, MarkErr, r.styles.Err, format, args...)
}

func (r *Reporter) print(w io.Writer, mark string, style lipgloss.Style, format string, args ...any) {
	fmt.Fprintln(w, mark+style.Render(fmt.Sprintf(format, args...)))
}

// Discard is a reporter that drops every line
var Discard = NewReporter(io.Discard, io.Discard)
