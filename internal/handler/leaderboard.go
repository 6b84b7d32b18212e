package handler

import (
	"net/http"

	"github.com/mwei-dev/CaseSim_Go/internal/logger"
	"github.com/mwei-dev/CaseSim_Go/internal/stats"
)

// HandleGetLeaderboard returns the global ranking
// @Summary Get leaderboard
// @Description Get the top-ranked users; includes the requester's absolute rank when authenticated and ranked beyond the visible entries
// @Tags leaderboard
// @Produce json
// @Success 200 {object} domain.Leaderboard
// @Failure 500 {object} ErrorResponse
// @Router /leaderboard [get]
func HandleGetLeaderboard(statsService stats.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		// Auth is optional here; anonymous requests just get no current_user.
		userID, _ := UserIDFromContext(r.Context())

		board, err := statsService.GetLeaderboard(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, "get leaderboard", err)
			return
		}

		log.Debug("Leaderboard handled", "entries", len(board.Entries))

		respondJSON(w, http.StatusOK, board)
	}
}
