package talent

import (
	"errors"

	"github.com/lvasseur/carte-des-talents/internal/metrics"
	"github.com/lvasseur/carte-des-talents/internal/models"
	"github.com/lvasseur/carte-des-talents/internal/validation"
)

// ErrForbidden est retourné quand un non-admin tente une vérification
var ErrForbidden = errors.New("accès refusé : droits administrateur requis")

// Service porte la logique métier des cartes de talents
type Service struct {
	repo    Repository
	metrics *metrics.Metrics
}

// NewService crée un nouveau service de talents
func NewService(repo Repository, m *metrics.Metrics) *Service {
	return &Service{repo: repo, metrics: m}
}

// ListVisible retourne les talents visibles pour le rôle donné
func (s *Service) ListVisible(role models.Role) ([]*Talent, error) {
	return s.repo.List(VisibleFilter(role))
}

// ListAll retourne tous les talents, sans filtre de visibilité.
// Réservé au tableau de bord admin.
func (s *Service) ListAll() ([]*Talent, error) {
	return s.repo.List(Filter{})
}

// GetByID récupère un talent par son ID
func (s *Service) GetByID(id int) (*Talent, error) {
	return s.repo.GetByID(id)
}

// Create valide et enregistre une nouvelle carte de talent.
// Le statut de vérification est toujours forcé à false, quelle que soit
// la valeur soumise par le client.
func (s *Service) Create(req CreateRequest) (*Talent, error) {
	if err := validation.ValidateFullName(req.FullName); err != nil {
		return nil, err
	}
	if err := validation.ValidateAvailability(req.Availability); err != nil {
		return nil, err
	}

	t := &Talent{
		FullName:     req.FullName,
		Organization: req.Organization,
		Skills:       emptyIfNil(req.Skills),
		Passions:     emptyIfNil(req.Passions),
		Languages:    emptyIfNil(req.Languages),
		Projects:     emptyIfNil(req.Projects),
		Availability: req.Availability,
		Verified:     false,
	}

	if err := s.repo.Create(t); err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.TalentsCreated.Inc()
	}

	return t, nil
}

// ToggleVerified inverse le statut de vérification d'un talent.
// Seul un admin peut vérifier ou dé-vérifier une carte.
func (s *Service) ToggleVerified(role models.Role, id int) (*Talent, error) {
	if role != models.RoleAdmin {
		return nil, ErrForbidden
	}

	t, err := s.repo.ToggleVerified(id)
	if err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.VerificationsToggled.Inc()
	}

	return t, nil
}

// Stats retourne les compteurs de vérification pour le tableau de bord admin
func (s *Service) Stats() (Stats, error) {
	return s.repo.CountByVerification()
}

func emptyIfNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
