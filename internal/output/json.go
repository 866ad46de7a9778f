package output

import (
	"encoding/json"
	"io"

	"github.com/critcli/crit/internal/review"
)

// JSONWriter emits the full result, metadata included, for scripting.
type JSONWriter struct{}

func (j *JSONWriter) Write(w io.Writer, result *review.ReviewResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
