package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"

	"github.com/aiedap/aiedap-backend/errs"
)

const htmlContentTemplate = `You are an expert at building interactive educational math content.
Create HTML-based educational content from the prompt submitted by student '%s'.

Requirements:
1. A complete HTML document (DOCTYPE, html, head, body)
2. A visual, interactive presentation of the math concept
3. CSS inside a <style> tag
4. JavaScript inside a <script> tag implementing the interactive behavior
5. Responsive design
6. A clean, modern UI

Prompt: %s

Return only the HTML code. No explanations and no Markdown code fences.`

const evaluationTemplate = `You are a math education expert. Judge whether the prompt the student submitted is an appropriate content request grounded in math course material.

Criteria:
1. Relevance to math course material (1-5)
2. Clarity and specificity of the prompt (1-5)
3. Educational value (1-5)
4. Feasibility (1-5)

Student name: %s
Prompt: %s

Respond with JSON in this shape:
{
    "overall_score": 1-5,
    "scores": {
        "relevance": n,
        "clarity": n,
        "educational_value": n,
        "feasibility": n
    },
    "feedback": "short feedback message",
    "suggestions": ["improvement 1", "improvement 2"]
}`

type geminiClient struct {
	model  llms.Model
	logger zerolog.Logger
}

// NewGemini builds a Client backed by the Gemini API through langchaingo.
func NewGemini(ctx context.Context, apiKey, modelName string) (Client, error) {
	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(modelName),
	)
	if err != nil {
		return nil, fmt.Errorf("initializing gemini client: %w", err)
	}
	return &geminiClient{
		model:  llm,
		logger: log.With().Str("serviceName", "geminiClient").Logger(),
	}, nil
}

func (c *geminiClient) GenerateHTMLContent(ctx context.Context, prompt, studentName string) (string, error) {
	out, err := llms.GenerateFromSinglePrompt(ctx, c.model,
		fmt.Sprintf(htmlContentTemplate, studentName, prompt),
		llms.WithTemperature(0.7),
		llms.WithTopP(0.95),
		llms.WithTopK(40),
	)
	if err != nil {
		c.logger.Error().Err(err).Msg("content generation call failed")
		return "", errs.NewGenerationError("content generation", err)
	}
	return stripFences(out), nil
}

func (c *geminiClient) EvaluatePrompt(ctx context.Context, prompt, studentName string) (string, error) {
	out, err := llms.GenerateFromSinglePrompt(ctx, c.model,
		fmt.Sprintf(evaluationTemplate, studentName, prompt))
	if err != nil {
		c.logger.Error().Err(err).Msg("prompt evaluation call failed")
		return "", errs.NewGenerationError("prompt evaluation", err)
	}
	return out, nil
}

// stripFences removes a wrapping Markdown code fence. The model fences its
// output now and then despite instructions not to: drop the opening fence
// line, and the closing one too when the text ends with it.
func stripFences(content string) string {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, "```") {
		return content
	}
	lines := strings.Split(content, "\n")
	if len(lines) > 1 && strings.HasPrefix(lines[len(lines)-1], "```") {
		lines = lines[1 : len(lines)-1]
	} else {
		lines = lines[1:]
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
