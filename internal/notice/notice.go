package notice

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)

	infoPanel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("12")).
			Padding(0, 1)
	successPanel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("10")).
			Padding(0, 1)
	errorPanel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("9")).
			Padding(0, 1)
)

// Printer renders titled status panels to a writer, typically stderr so that
// panels never mix with the review output on stdout.
type Printer struct {
	w io.Writer
}

// New creates a Printer writing to w.
func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Discard returns a Printer that produces no output.
func Discard() *Printer {
	return New(io.Discard)
}

// Info renders a neutral status panel.
func (p *Printer) Info(title, body string) {
	p.render(infoPanel, title, body)
}

// Success renders a completion panel.
func (p *Printer) Success(title, body string) {
	p.render(successPanel, title, body)
}

// Error renders a failure panel.
func (p *Printer) Error(title, body string) {
	p.render(errorPanel, title, body)
}

func (p *Printer) render(panel lipgloss.Style, title, body string) {
	content := titleStyle.Render(title)
	if body != "" {
		content += "\n" + body
	}
	fmt.Fprintln(p.w, panel.Render(content))
}
