package user

import (
	"errors"

	"github.com/lvasseur/carte-des-talents/internal/models"
)

// ErrNotFound est retourné quand aucun utilisateur ne correspond
var ErrNotFound = errors.New("utilisateur non trouvé")

// ErrDuplicateUsername est retourné quand le nom d'utilisateur existe déjà
// (la comparaison est insensible à la casse)
var ErrDuplicateUsername = errors.New("ce nom d'utilisateur existe déjà")

// Repository interface pour accéder aux comptes utilisateur
type Repository interface {
	Create(user *models.User) error
	GetByID(id int) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	List() ([]*models.User, error)
}
