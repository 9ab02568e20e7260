package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	financeErrors "github.com/umcode/SpendTrack/internal/finance/errors"
)

type Handler struct {
	authService Service
}

func NewHandler(authService Service) *Handler {
	return &Handler{
		authService: authService,
	}
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondValidationError(w http.ResponseWriter, validationErr *financeErrors.ValidationError) {
	respondJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
		"message": validationErr.Msg,
		"errors":  validationErr.Fields,
	})
}

func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name                 string `json:"name"`
		Email                string `json:"email"`
		Password             string `json:"password"`
		PasswordConfirmation string `json:"password_confirmation"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]interface{}{
			"message": "Invalid request body",
		})
		return
	}

	newUser, token, err := h.authService.Register(req.Name, req.Email, req.Password, req.PasswordConfirmation)
	if err != nil {
		if validationErr := financeErrors.AsValidationError(err); validationErr != nil {
			respondValidationError(w, validationErr)
			return
		}
		respondJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"message": "Internal server error",
		})
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Registration successful",
		"data": map[string]interface{}{
			"user":  newUser,
			"token": token,
		},
	})
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]interface{}{
			"message": "Invalid request body",
		})
		return
	}

	existingUser, token, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			// Failed logins report as a validation error on the email
			// field, matching the original API contract.
			respondJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
				"message": "The given data was invalid.",
				"errors": map[string][]string{
					"email": {"These credentials do not match our records."},
				},
			})
			return
		}
		respondJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"message": "Internal server error",
		})
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Login successful",
		"data": map[string]interface{}{
			"user":  existingUser,
			"token": token,
		},
	})
}

func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	token, ok := r.Context().Value("accessToken").(string)
	if !ok {
		writeJSONError(w, http.StatusUnauthorized, "Unauthenticated.")
		return
	}

	if err := h.authService.Logout(token); err != nil {
		respondJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"message": "Internal server error",
		})
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Logout successful",
	})
}

func (h *Handler) HandleMe(w http.ResponseWriter, r *http.Request) {
	token, ok := r.Context().Value("accessToken").(string)
	if !ok {
		writeJSONError(w, http.StatusUnauthorized, "Unauthenticated.")
		return
	}

	currentUser, err := h.authService.CurrentUser(token)
	if err != nil {
		if errors.Is(err, ErrInvalidToken) {
			writeJSONError(w, http.StatusUnauthorized, "Unauthenticated.")
			return
		}
		respondJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"message": "Internal server error",
		})
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "User data retrieved successfully",
		"data":    currentUser,
	})
}
