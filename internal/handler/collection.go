package handler

import (
	"net/http"

	"github.com/mwei-dev/CaseSim_Go/internal/collection"
	"github.com/mwei-dev/CaseSim_Go/internal/domain"
)

// CollectionsResponse groups the user's kept wins by tier.
type CollectionsResponse struct {
	Success     bool              `json:"success"`
	Collections domain.Collection `json:"collections"`
}

// HandleGetCollections returns the authenticated user's collection
// @Summary Get collections
// @Description Get the user's kept winning draws grouped by tier
// @Tags collection
// @Produce json
// @Security SessionToken
// @Success 200 {object} CollectionsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /collections [get]
func HandleGetCollections(collectionService collection.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := UserIDFromContext(r.Context())
		if !ok {
			respondError(w, http.StatusUnauthorized, ErrMsgSessionError)
			return
		}

		collections, err := collectionService.Fetch(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, "get collections", err)
			return
		}

		respondJSON(w, http.StatusOK, CollectionsResponse{
			Success:     true,
			Collections: collections,
		})
	}
}
