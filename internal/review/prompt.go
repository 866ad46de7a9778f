package review

import (
	"fmt"
	"strings"
)

const promptPreamble = `You are reviewing a single code file submitted by a developer. Return your feedback in Markdown with:
1. A concise summary of the code's intent and overall quality.
2. A prioritized list of actionable findings grouped by severity.
3. Specific code references (line numbers if available) and concrete suggestions.
4. Optional improvement ideas if time allows.

Only mention what you directly observe and avoid repeating requirements.
`

const systemInstructions = `You are a senior software engineer. ` +
	`Review a single file at a time. Do not use emojis. ` +
	`Review based on the following metrics: code accuracy, code optimality, security vulnerabilities, standard coding conventions, code quality. ` +
	`Format the response as 5 sections, one per metric. Split each section into 3 categories: Major issues, Minor issues, What it does well. ` +
	`Only include a category if something was found in it; omit categories with nothing to report.`

// BuildPrompt assembles the user prompt sent alongside the system
// instructions. It is deterministic and side-effect-free: the same inputs
// always produce the same prompt.
//
// The code is trimmed and embedded verbatim in a fenced block, tagged with
// the language hint when one is given. Metadata lines appear at most once
// each, in fixed order (filename, language, notes), and only when the field
// is non-empty. Empty or whitespace-only code is rejected with
// ErrInvalidInput.
func BuildPrompt(code, filename, language, notes string) (string, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return "", ErrInvalidInput
	}

	var b strings.Builder
	b.WriteString(promptPreamble)
	b.WriteString("\n")

	if filename != "" {
		fmt.Fprintf(&b, "Filename: %s\n", filename)
	}
	if language != "" {
		fmt.Fprintf(&b, "Language: %s\n", language)
	}
	if notes = strings.TrimSpace(notes); notes != "" {
		fmt.Fprintf(&b, "Submitter notes: %s\n", notes)
	}

	fmt.Fprintf(&b, "Code:\n```%s\n%s\n```", language, code)

	return b.String(), nil
}

// SystemInstructions returns the fixed instruction string that configures
// the reviewer persona and the required response structure.
func SystemInstructions() string {
	return systemInstructions
}
