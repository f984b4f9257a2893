package auth

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/lvasseur/carte-des-talents/internal/models"
	"github.com/lvasseur/carte-des-talents/internal/user"
	"github.com/lvasseur/carte-des-talents/internal/validation"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials est retourné quand la connexion échoue.
// Le message ne précise volontairement pas si c'est le nom d'utilisateur
// ou le mot de passe qui est en cause, pour éviter l'énumération de comptes.
var ErrInvalidCredentials = errors.New("nom d'utilisateur ou mot de passe incorrect")

// serv d'authentification
type Service struct {
	userRepo user.Repository
}

// cree un nouveau service d'auth
func NewService(userRepo user.Repository) *Service {
	return &Service{userRepo: userRepo}
}

// data pour l'inscription et la connexion
type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register inscrit un nouvel utilisateur.
// Le rôle est toujours "user" : l'auto-inscription ne peut jamais donner admin.
func (s *Service) Register(req CredentialsRequest) (*models.User, error) {
	return s.CreateUser(req.Username, req.Password, models.RoleUser)
}

// CreateUser crée un compte avec le rôle donné
func (s *Service) CreateUser(username, password string, role models.Role) (*models.User, error) {
	if err := validation.ValidateUsername(username); err != nil {
		return nil, err
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, err
	}

	// hash du mdp
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("erreur lors du hachage du mot de passe: %w", err)
	}

	// Le nom d'utilisateur est stocké en minuscules, l'unicité est
	// insensible à la casse
	newUser := &models.User{
		Username: strings.ToLower(strings.TrimSpace(username)),
		Password: string(hashedPassword),
		Role:     role,
	}

	if err := s.userRepo.Create(newUser); err != nil {
		return nil, err
	}

	return newUser, nil
}

// Login connecte un utilisateur
func (s *Service) Login(req CredentialsRequest) (*models.User, error) {
	u, err := s.userRepo.GetByUsername(req.Username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	// verif le mdp
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return u, nil
}

// ListUsers récupère tous les comptes, les plus récents en premier
func (s *Service) ListUsers() ([]*models.User, error) {
	return s.userRepo.List()
}

// EnsureAdmin crée le compte administrateur par défaut s'il n'existe pas encore
func (s *Service) EnsureAdmin(username, password string) error {
	_, err := s.userRepo.GetByUsername(username)
	if err == nil {
		return nil // admin deja present
	}
	if !errors.Is(err, user.ErrNotFound) {
		return fmt.Errorf("erreur lors de la vérification du compte admin: %w", err)
	}

	if _, err := s.CreateUser(username, password, models.RoleAdmin); err != nil {
		return fmt.Errorf("erreur lors de la création du compte admin: %w", err)
	}

	log.Printf("Compte admin créé (username=%s) — changez le mot de passe par défaut", username)
	return nil
}
