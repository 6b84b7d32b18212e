package handler

import (
	"errors"
	"net/http"

	"github.com/mwei-dev/CaseSim_Go/internal/trivia"
)

// HandleGetTrivia returns one prefetched trivia card
// @Summary Get trivia
// @Description Pop one prefetched trivia card for the reveal screen
// @Tags trivia
// @Produce json
// @Success 200 {object} trivia.Card
// @Failure 404 {object} ErrorResponse
// @Router /trivia [get]
func HandleGetTrivia(triviaService trivia.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		card, err := triviaService.Next(r.Context())
		if err != nil {
			if errors.Is(err, trivia.ErrNoContent) {
				respondError(w, http.StatusNotFound, ErrMsgGetTriviaFailed)
				return
			}
			respondServiceError(w, r, "get trivia", err)
			return
		}

		respondJSON(w, http.StatusOK, card)
	}
}
