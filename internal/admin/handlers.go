package admin

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"goji.io/pat"

	"github.com/lvasseur/carte-des-talents/internal/auth"
	"github.com/lvasseur/carte-des-talents/internal/models"
	"github.com/lvasseur/carte-des-talents/internal/session"
	"github.com/lvasseur/carte-des-talents/internal/talent"
	"github.com/lvasseur/carte-des-talents/internal/user"
	"github.com/lvasseur/carte-des-talents/internal/validation"
)

// Handlers gère les requêtes HTTP du tableau de bord admin
type Handlers struct {
	talentService *talent.Service
	authService   *auth.Service
}

// NewHandlers crée des nouveaux gestionnaires pour l'administration
func NewHandlers(talentService *talent.Service, authService *auth.Service) *Handlers {
	return &Handlers{
		talentService: talentService,
		authService:   authService,
	}
}

// StatsHandler retourne les statistiques du tableau de bord
func (h *Handlers) StatsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := h.talentService.Stats()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Erreur lors de la récupération des statistiques")
		return
	}

	respondJSON(w, http.StatusOK, stats)
}

// ListTalentsHandler retourne tous les talents, sans filtre de visibilité
func (h *Handlers) ListTalentsHandler(w http.ResponseWriter, r *http.Request) {
	talents, err := h.talentService.ListAll()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Erreur lors de la récupération des talents")
		return
	}

	if talents == nil {
		talents = []*talent.Talent{}
	}
	respondJSON(w, http.StatusOK, talents)
}

// ToggleVerifyHandler bascule le statut de vérification d'un talent
func (h *Handlers) ToggleVerifyHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(pat.Param(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "ID de talent invalide")
		return
	}

	updated, err := h.talentService.ToggleVerified(callerRole(r), id)
	if err != nil {
		switch {
		case errors.Is(err, talent.ErrNotFound):
			respondError(w, http.StatusNotFound, "Talent non trouvé")
		case errors.Is(err, talent.ErrForbidden):
			respondError(w, http.StatusForbidden, err.Error())
		default:
			respondError(w, http.StatusInternalServerError, "Erreur lors de la modification")
		}
		return
	}

	respondJSON(w, http.StatusOK, updated)
}

// ListUsersHandler retourne tous les comptes.
// Le hash du mot de passe n'est jamais sérialisé (tag json "-").
func (h *Handlers) ListUsersHandler(w http.ResponseWriter, r *http.Request) {
	users, err := h.authService.ListUsers()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Erreur lors de la récupération des utilisateurs")
		return
	}

	if users == nil {
		users = []*models.User{}
	}
	respondJSON(w, http.StatusOK, users)
}

// CreateAdminHandler crée un compte administrateur
func (h *Handlers) CreateAdminHandler(w http.ResponseWriter, r *http.Request) {
	h.createUserWithRole(w, r, models.RoleAdmin, "Admin créé avec succès")
}

// CreateUserHandler crée un compte utilisateur simple
func (h *Handlers) CreateUserHandler(w http.ResponseWriter, r *http.Request) {
	h.createUserWithRole(w, r, models.RoleUser, "Utilisateur créé avec succès")
}

func (h *Handlers) createUserWithRole(w http.ResponseWriter, r *http.Request, role models.Role, message string) {
	var req auth.CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Format de requête invalide")
		return
	}

	if req.Username == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "Username et password sont requis")
		return
	}

	newUser, err := h.authService.CreateUser(req.Username, req.Password, role)
	if err != nil {
		var validationErr validation.ValidationError
		switch {
		case errors.Is(err, user.ErrDuplicateUsername):
			respondError(w, http.StatusBadRequest, "Ce nom d'utilisateur existe déjà")
		case errors.As(err, &validationErr):
			respondError(w, http.StatusBadRequest, validationErr.Message)
		default:
			respondError(w, http.StatusInternalServerError, "Erreur lors de la création de l'utilisateur")
		}
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"message": message,
		"user":    newUser,
	})
}

// callerRole extrait le rôle de la session courante
func callerRole(r *http.Request) (role models.Role) {
	if userSession, ok := session.FromContext(r.Context()); ok {
		role = userSession.Role
	}
	return role
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"message": message})
}
