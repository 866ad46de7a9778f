package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/critcli/crit/internal/review"
)

// MarkdownWriter emits the review body as-is. The model already answers in
// markdown, so this is the natural default.
type MarkdownWriter struct{}

func (m *MarkdownWriter) Write(w io.Writer, result *review.ReviewResult) error {
	body := result.Markdown
	if !strings.HasSuffix(body, "\n") {
		body += "\n"
	}
	_, err := io.WriteString(w, body)
	return err
}

var captionStyle = lipgloss.NewStyle().Faint(true)

// Caption summarizes the result metadata for display under the review.
func Caption(result *review.ReviewResult) string {
	return captionStyle.Render(fmt.Sprintf(
		"%s · %d input tokens · %d output tokens",
		result.Model, result.InputTokens, result.OutputTokens,
	))
}
