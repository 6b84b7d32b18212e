package handler

import (
	"net/http"

	"github.com/mwei-dev/CaseSim_Go/internal/domain"
	"github.com/mwei-dev/CaseSim_Go/internal/logger"
	"github.com/mwei-dev/CaseSim_Go/internal/user"
)

// RegisterRequest represents the request to register a new user.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50,excludesall=\x00\n\r\t"`
	Password string `json:"password" validate:"required,min=6,max=200"`
}

// RegisterResponse is returned after a successful registration.
type RegisterResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

// LoginRequest represents a login attempt.
type LoginRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the session token and current stats.
type LoginResponse struct {
	Success bool             `json:"success"`
	UserID  string           `json:"user_id"`
	Token   string           `json:"token"`
	Stats   domain.UserStats `json:"stats"`
}

// HandleRegister handles new user registration
// @Summary Register user
// @Description Create a new user account
// @Tags user
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Credentials"
// @Success 201 {object} RegisterResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /user/register [post]
func HandleRegister(userService user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req RegisterRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Register user"); err != nil {
			return
		}

		u, err := userService.Register(r.Context(), req.Username, req.Password)
		if err != nil {
			respondServiceError(w, r, "register", err)
			return
		}

		log.Info("User registered", "user_id", u.ID, "username", u.Username)

		respondJSON(w, http.StatusCreated, RegisterResponse{
			Success: true,
			Message: MsgRegisteredSuccess,
			UserID:  u.ID,
		})
	}
}

// HandleLogin handles user login
// @Summary Log in
// @Description Verify credentials and open a session
// @Tags user
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /user/login [post]
func HandleLogin(userService user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req LoginRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Login"); err != nil {
			return
		}

		session, u, err := userService.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			respondServiceError(w, r, "login", err)
			return
		}

		log.Info("User logged in", "user_id", u.ID)

		respondJSON(w, http.StatusOK, LoginResponse{
			Success: true,
			UserID:  u.ID,
			Token:   session.Token,
			Stats:   u.Stats,
		})
	}
}

// HandleLogout revokes the current session
// @Summary Log out
// @Description Revoke the presented session token
// @Tags user
// @Produce json
// @Security SessionToken
// @Success 200 {object} SuccessResponse
// @Failure 401 {object} ErrorResponse
// @Router /user/logout [post]
func HandleLogout(userService user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := BearerToken(r)
		if token == "" {
			respondError(w, http.StatusUnauthorized, ErrMsgMissingAuthToken)
			return
		}

		if err := userService.Logout(r.Context(), token); err != nil {
			respondServiceError(w, r, "logout", err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Success: true, Message: MsgLoggedOutSuccess})
	}
}
