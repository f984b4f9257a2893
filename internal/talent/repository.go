package talent

import "errors"

// ErrNotFound est retourné quand aucun talent ne correspond à l'ID
var ErrNotFound = errors.New("talent non trouvé")

// Stats regroupe les compteurs de vérification pour le tableau de bord admin
type Stats struct {
	Total      int `json:"totalTalents"`
	Verified   int `json:"verifiedTalents"`
	Unverified int `json:"unverifiedTalents"`
}

// Repository interface pour accéder aux cartes de talents
type Repository interface {
	// List retourne les talents correspondant au filtre, les plus récents en premier
	List(filter Filter) ([]*Talent, error)
	GetByID(id int) (*Talent, error)
	Create(t *Talent) error
	// SetVerified positionne le drapeau de vérification en une seule écriture
	SetVerified(id int, verified bool) (*Talent, error)
	// ToggleVerified inverse le drapeau de vérification en une seule écriture
	// atomique, sans fenêtre lecture-puis-écriture
	ToggleVerified(id int) (*Talent, error)
	CountByVerification() (Stats, error)
}
