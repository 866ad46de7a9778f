package review

// ReviewRequest describes one piece of code to review. Only Code is required;
// the metadata fields enrich the prompt when present. Values are never
// mutated after construction.
type ReviewRequest struct {
	Code     string
	Filename string
	Language string
	Notes    string
}

// ReviewResult is produced once per fully successful review. There are no
// partial results: a failed call produces an error and nothing else.
type ReviewResult struct {
	Markdown     string `json:"markdown"`
	Model        string `json:"model"`
	InputTokens  int    `json:"inputTokens"`
	OutputTokens int    `json:"outputTokens"`
}
