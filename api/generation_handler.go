package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/aiedap/aiedap-backend/errs"
	"github.com/aiedap/aiedap-backend/services"
)

type generationHandler struct {
	responder Responder
	logger    zerolog.Logger
	client    services.Client
	evaluator services.Evaluator
}

func newGenerationHandler(client services.Client) generationHandler {
	logger := log.With().Str("handlerName", "generationHandler").Logger()

	return generationHandler{
		responder: NewResponder(logger),
		logger:    logger,
		client:    client,
		evaluator: services.NewEvaluator(client),
	}
}

// evaluatePrompt scores a prompt for pedagogical suitability. The evaluator
// never fails, so past validation this endpoint always returns 200.
func (h generationHandler) evaluatePrompt() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req generationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if req.Prompt == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("prompt"))
			return
		}

		evaluation := h.evaluator.Evaluate(r.Context(), req.Prompt, req.StudentName)

		h.responder.WriteOK(w, evaluationResponse{Success: true, Evaluation: evaluation})
	}
}

// generateContent produces a self-contained interactive HTML document from a
// prompt. Upstream failures surface as a 500 with the wrapped reason.
func (h generationHandler) generateContent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req generationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if req.Prompt == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("prompt"))
			return
		}

		htmlContent, err := h.client.GenerateHTMLContent(r.Context(), req.Prompt, req.StudentName)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteOK(w, htmlContentResponse{Success: true, HTMLContent: htmlContent})
	}
}
