package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/wisbaq/webfolio-be/internal/auth"
	"github.com/wisbaq/webfolio-be/internal/models"
	"github.com/wisbaq/webfolio-be/internal/services"
)

// AuthHandler handles signup and login requests.
type AuthHandler struct {
	service services.UserServiceProvider
	tokens  *auth.Manager
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service services.UserServiceProvider, tokens *auth.Manager) *AuthHandler {
	return &AuthHandler{service: service, tokens: tokens}
}

// SignupPayload defines the structure for signup requests.
type SignupPayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginPayload defines the structure for login requests.
type LoginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type statusMessage struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Signup handles new user registration.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var payload SignupPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, statusMessage{Success: false, Message: "All fields are required"})
		return
	}

	_, err := h.service.Signup(r.Context(), payload.Name, payload.Email, payload.Password)
	switch {
	case errors.Is(err, models.ErrMissingFields):
		writeJSON(w, http.StatusBadRequest, statusMessage{Success: false, Message: "All fields are required"})
	case errors.Is(err, models.ErrEmailTaken):
		writeJSON(w, http.StatusConflict, statusMessage{Success: false, Message: "Email already exists"})
	case err != nil:
		log.Error().Err(err).Str("email", payload.Email).Msg("Failed to sign up user")
		writeJSON(w, http.StatusInternalServerError, statusMessage{Success: false, Message: "Internal server error"})
	default:
		writeJSON(w, http.StatusCreated, statusMessage{Success: true, Message: "User created successfully"})
	}
}

// Login handles user authentication and token issuance.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload LoginPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid email or password", http.StatusUnauthorized)
		return
	}

	user, err := h.service.Authenticate(r.Context(), payload.Email, payload.Password)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCredentials) {
			// Unknown email and wrong password are deliberately
			// indistinguishable here.
			log.Warn().Str("email", payload.Email).Msg("Failed authentication attempt")
			http.Error(w, "Invalid email or password", http.StatusUnauthorized)
			return
		}
		log.Error().Err(err).Str("email", payload.Email).Msg("Failed to log in user")
		http.Error(w, "Error logging in", http.StatusInternalServerError)
		return
	}

	token, err := h.tokens.Generate(user)
	if err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("Failed to generate token")
		http.Error(w, "Error logging in", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"token": token,
		"name":  user.Name,
		"email": user.Email,
	})
}
