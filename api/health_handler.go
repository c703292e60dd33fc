package api

import (
	"net/http"

	"github.com/rs/zerolog/log"
)

type healthHandler struct {
	responder Responder
}

func newHealthHandler() healthHandler {
	logger := log.With().Str("handlerName", "healthHandler").Logger()
	return healthHandler{responder: NewResponder(logger)}
}

func (h healthHandler) check() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteOK(w, healthResponse{Status: "ok", Message: "Server is running"})
	}
}
