package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-wallet-lock/internal/logger"
	"github.com/MKhiriev/go-wallet-lock/internal/utils"
	"github.com/MKhiriev/go-wallet-lock/models"
)

func (h *Handler) capability(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if _, err := utils.WriteJSON(w, h.agent.Capability(r.Context()), http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.capability").Msg("error writing capability")
	}
}

func (h *Handler) challenge(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.ChallengeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.challenge").Msg("invalid challenge JSON")
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	resp, err := h.agent.Answer(r.Context(), req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.challenge").Msg("error answering challenge")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	if _, err = utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.challenge").Msg("error writing challenge answer")
	}
}
