package talent

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/lvasseur/carte-des-talents/internal/models"
	"github.com/lvasseur/carte-des-talents/internal/session"
	"github.com/lvasseur/carte-des-talents/internal/validation"
)

// Handlers gère les requêtes HTTP du répertoire de talents
type Handlers struct {
	service *Service
}

// NewHandlers crée des nouveaux gestionnaires pour le répertoire
func NewHandlers(service *Service) *Handlers {
	return &Handlers{service: service}
}

// ListHandler retourne les talents visibles pour l'appelant.
// Le rôle vient de la session posée dans le contexte par le middleware.
func (h *Handlers) ListHandler(w http.ResponseWriter, r *http.Request) {
	talents, err := h.service.ListVisible(callerRole(r))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Erreur lors de la récupération des talents")
		return
	}

	respondJSON(w, http.StatusOK, nonNil(talents))
}

// CreateHandler enregistre une nouvelle carte de talent
func (h *Handlers) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Format de requête invalide")
		return
	}

	t, err := h.service.Create(req)
	if err != nil {
		var validationErr validation.ValidationError
		if errors.As(err, &validationErr) {
			respondError(w, http.StatusBadRequest, validationErr.Message)
			return
		}
		respondError(w, http.StatusInternalServerError, "Erreur lors de l'enregistrement du talent")
		return
	}

	respondJSON(w, http.StatusCreated, t)
}

// SkillsHandler retourne le nuage de compétences calculé sur l'ensemble
// visible pour l'appelant
func (h *Handlers) SkillsHandler(w http.ResponseWriter, r *http.Request) {
	talents, err := h.service.ListVisible(callerRole(r))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Erreur lors de la récupération des talents")
		return
	}

	respondJSON(w, http.StatusOK, SkillFrequency(talents))
}

// SearchHandler filtre l'ensemble visible selon les critères de la requête
func (h *Handlers) SearchHandler(w http.ResponseWriter, r *http.Request) {
	talents, err := h.service.ListVisible(callerRole(r))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Erreur lors de la récupération des talents")
		return
	}

	query := r.URL.Query()
	filter := SearchFilter{
		Skill:        query.Get("skill"),
		Language:     query.Get("language"),
		Availability: query.Get("availability"),
		VerifiedOnly: query.Get("verified_only") == "true",
	}

	respondJSON(w, http.StatusOK, nonNil(Search(talents, filter)))
}

// callerRole extrait le rôle de la session courante
func callerRole(r *http.Request) (role models.Role) {
	if userSession, ok := session.FromContext(r.Context()); ok {
		role = userSession.Role
	}
	return role
}

// nonNil garantit un tableau JSON plutôt que null pour une liste vide
func nonNil(talents []*Talent) []*Talent {
	if talents == nil {
		return []*Talent{}
	}
	return talents
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"message": message})
}
