package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/lvasseur/carte-des-talents/internal/session"
	"github.com/lvasseur/carte-des-talents/internal/user"
	"github.com/lvasseur/carte-des-talents/internal/validation"
)

// Handlers gère les requêtes HTTP pour l'authentification
type Handlers struct {
	service        *Service
	sessionManager *session.Manager
}

// NewHandlers crée des nouveaux gestionnaires pour l'authentification
func NewHandlers(service *Service, sessionManager *session.Manager) *Handlers {
	return &Handlers{
		service:        service,
		sessionManager: sessionManager,
	}
}

// RegisterHandler gère l'inscription, avec connexion automatique
func (h *Handlers) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Format de requête invalide")
		return
	}

	if req.Username == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "Username et password sont requis")
		return
	}

	newUser, err := h.service.Register(req)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	// Connexion automatique après inscription
	if _, err := h.sessionManager.CreateSession(w, newUser); err != nil {
		respondError(w, http.StatusInternalServerError, "Erreur lors de la création de la session")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Compte créé avec succès",
		"user":    newUser,
	})
}

// LoginHandler gère la connexion
func (h *Handlers) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Format de requête invalide")
		return
	}

	if req.Username == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "Username et password sont requis")
		return
	}

	u, err := h.service.Login(req)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	if _, err := h.sessionManager.CreateSession(w, u); err != nil {
		respondError(w, http.StatusInternalServerError, "Erreur lors de la création de la session")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Connexion réussie",
		"user":    u,
	})
}

// LogoutHandler gère la déconnexion, sans erreur si déjà déconnecté
func (h *Handlers) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.sessionManager.DestroySession(w, r); err != nil {
		respondError(w, http.StatusInternalServerError, "Erreur lors de la déconnexion")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"message": "Déconnexion réussie",
	})
}

// MeHandler indique si le client est authentifié et avec quel compte
func (h *Handlers) MeHandler(w http.ResponseWriter, r *http.Request) {
	userSession, err := h.sessionManager.GetSession(r)
	if err != nil {
		respondJSON(w, http.StatusOK, map[string]interface{}{
			"authenticated": false,
		})
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"authenticated": true,
		"user": map[string]interface{}{
			"id":       userSession.UserID,
			"username": userSession.Username,
			"role":     userSession.Role,
		},
	})
}

// respondServiceError traduit une erreur du service en réponse HTTP
func respondServiceError(w http.ResponseWriter, err error) {
	var validationErr validation.ValidationError
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		respondError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, user.ErrDuplicateUsername):
		respondError(w, http.StatusBadRequest, "Ce nom d'utilisateur existe déjà")
	case errors.As(err, &validationErr):
		respondError(w, http.StatusBadRequest, validationErr.Message)
	default:
		respondError(w, http.StatusInternalServerError, "Une erreur s'est produite")
	}
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"message": message})
}
