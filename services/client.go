package services

import "context"

// Client is the outbound generation collaborator. Both calls are plain
// text-in/text-out against the model; callers own all post-processing of the
// returned text.
type Client interface {
	// EvaluatePrompt asks the model to score a student prompt. The response
	// is free-form text that usually, but not always, contains JSON.
	EvaluatePrompt(ctx context.Context, prompt, studentName string) (string, error)

	// GenerateHTMLContent asks the model for a self-contained interactive
	// HTML document built from the student's prompt.
	GenerateHTMLContent(ctx context.Context, prompt, studentName string) (string, error)
}
