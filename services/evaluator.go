package services

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/aiedap/aiedap-backend/models"
)

// jsonObjectPattern grabs the span from the first '{' to the last '}'. A
// heuristic span match, not a grammar: the model wraps its JSON in prose or
// code fences often enough that parsing the whole response strictly is
// useless.
var jsonObjectPattern = regexp.MustCompile(`(?s)\{.*\}`)

// Evaluator scores student prompts through the generation collaborator. It
// never fails: whatever goes wrong upstream, the student gets a usable
// structured result back.
type Evaluator struct {
	client Client
	logger zerolog.Logger
}

func NewEvaluator(client Client) Evaluator {
	return Evaluator{
		client: client,
		logger: log.With().Str("serviceName", "evaluator").Logger(),
	}
}

// defaultEvaluation is both the merge base for parsed model output and the
// fallback when the call or the parse fails.
func defaultEvaluation() models.Evaluation {
	return models.Evaluation{
		OverallScore: 3,
		Scores: models.Scores{
			Relevance:        3,
			Clarity:          3,
			EducationalValue: 3,
			Feasibility:      3,
		},
		Feedback:      "The prompt has been evaluated.",
		Suggestions:   []string{"Try describing the content you want in more detail."},
		IsAppropriate: true,
	}
}

// Evaluate scores a prompt. Parsed fields win over defaults, missing fields
// keep them, and is_appropriate is always recomputed from the overall score
// regardless of what the model claims.
func (e Evaluator) Evaluate(ctx context.Context, prompt, studentName string) models.Evaluation {
	evaluation := defaultEvaluation()

	raw, err := e.client.EvaluatePrompt(ctx, prompt, studentName)
	if err != nil {
		e.logger.Error().Err(err).Msg("evaluation call failed, returning fallback")
		evaluation.Feedback = fmt.Sprintf("An error occurred during evaluation: %v", err)
		evaluation.Suggestions = []string{"Please check your prompt and try again."}
		return evaluation
	}

	if err := parseInto(&evaluation, raw); err != nil {
		e.logger.Warn().Err(err).Msg("no usable evaluation JSON in model response, keeping defaults")
	}

	evaluation.IsAppropriate = evaluation.OverallScore >= 3
	return evaluation
}

// parseInto unmarshals the extracted JSON span over evaluation, so fields the
// model omits keep their current values. The nested scores object merges the
// same way: absent sub-keys keep their defaults. On any parse failure
// evaluation is left untouched.
func parseInto(evaluation *models.Evaluation, raw string) error {
	span := jsonObjectPattern.FindString(raw)
	if span == "" {
		span = strings.TrimSpace(raw)
	}
	merged := *evaluation
	if err := json.Unmarshal([]byte(span), &merged); err != nil {
		return err
	}
	*evaluation = merged
	return nil
}
