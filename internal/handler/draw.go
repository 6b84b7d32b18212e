package handler

import (
	"net/http"

	"github.com/mwei-dev/CaseSim_Go/internal/domain"
	"github.com/mwei-dev/CaseSim_Go/internal/draw"
	"github.com/mwei-dev/CaseSim_Go/internal/logger"
)

// DrawResponse is the payload for a successful draw. Items holds the full
// reveal sequence; WinningItem duplicates the winning slot for convenience.
type DrawResponse struct {
	Success     bool                  `json:"success"`
	Items       []domain.SequenceItem `json:"items"`
	WinningItem domain.SequenceItem   `json:"winning_item"`
	Stats       domain.UserStats      `json:"stats"`
	Collected   bool                  `json:"collected"`
}

// HandleDraw performs one draw for the authenticated user
// @Summary Perform draw
// @Description Run a weighted draw, returning the reveal sequence and updated stats
// @Tags draw
// @Produce json
// @Security SessionToken
// @Success 200 {object} DrawResponse
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /draw [post]
func HandleDraw(drawService draw.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		userID, ok := UserIDFromContext(r.Context())
		if !ok {
			respondError(w, http.StatusUnauthorized, ErrMsgSessionError)
			return
		}

		result, err := drawService.PerformDraw(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, "draw", err)
			return
		}

		log.Debug("Draw handled", "user_id", userID, "tier", result.WinningTier)

		respondJSON(w, http.StatusOK, DrawResponse{
			Success:     true,
			Items:       result.Items,
			WinningItem: result.WinningItem,
			Stats:       result.StatsAfter,
			Collected:   result.Collected,
		})
	}
}
