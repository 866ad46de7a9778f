package review

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/critcli/crit/internal/anthropic"
	"github.com/critcli/crit/internal/notice"
)

const (
	// maxOutputTokens bounds the size of the generated review.
	maxOutputTokens = 2000
	// temperature is zero for deterministic-leaning generation.
	temperature = 0

	emptyResponseText = "The model returned an empty response."
)

// Completer issues a single blocking completion call.
type Completer interface {
	Complete(ctx context.Context, req anthropic.CompletionRequest) (anthropic.CompletionResponse, error)
}

// Service dispatches review requests to a completion service. It is
// constructed once at process start and holds no mutable state between
// requests.
type Service struct {
	completer Completer
	notices   *notice.Printer
	log       zerolog.Logger
}

// NewService creates a Service. A nil notices printer discards status output.
func NewService(completer Completer, notices *notice.Printer, logger zerolog.Logger) *Service {
	if notices == nil {
		notices = notice.Discard()
	}
	return &Service{
		completer: completer,
		notices:   notices,
		log:       logger,
	}
}

// Review builds the prompt for req, issues one blocking call to the
// completion service, and returns the rendered result.
//
// Empty code is rejected with ErrInvalidInput before any network activity.
// Any failure from the service is surfaced as a *ServiceError with the
// underlying message intact; there is no retry. Status notices around the
// call are observability only and not part of the data contract.
func (s *Service) Review(ctx context.Context, req ReviewRequest) (*ReviewResult, error) {
	prompt, err := BuildPrompt(req.Code, req.Filename, req.Language, req.Notes)
	if err != nil {
		return nil, err
	}

	id := uuid.NewString()
	s.notices.Info("Code Review", "Dispatching code review to the model")
	s.log.Debug().
		Str("request_id", id).
		Str("filename", req.Filename).
		Int("prompt_bytes", len(prompt)).
		Msg("dispatching review")

	start := time.Now()
	resp, err := s.completer.Complete(ctx, anthropic.CompletionRequest{
		System:      SystemInstructions(),
		Prompt:      prompt,
		MaxTokens:   maxOutputTokens,
		Temperature: temperature,
	})
	if err != nil {
		s.notices.Error("API Error", err.Error())
		s.log.Debug().Str("request_id", id).Err(err).Msg("review failed")
		return nil, &ServiceError{Err: err}
	}

	markdown := resp.Text
	if strings.TrimSpace(markdown) == "" {
		markdown = emptyResponseText
	}

	result := &ReviewResult{
		Markdown:     markdown,
		Model:        resp.Model,
		InputTokens:  resp.InputTokens,
		OutputTokens: resp.OutputTokens,
	}

	s.notices.Success("Review complete", fmt.Sprintf(
		"Model: %s\nInput tokens: %d\nOutput tokens: %d",
		result.Model, result.InputTokens, result.OutputTokens,
	))
	s.log.Debug().
		Str("request_id", id).
		Dur("elapsed", time.Since(start)).
		Int("input_tokens", result.InputTokens).
		Int("output_tokens", result.OutputTokens).
		Msg("review complete")

	return result, nil
}
