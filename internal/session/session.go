package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/lvasseur/carte-des-talents/internal/models"
)

// Durée de vie d'une session
const Lifetime = 24 * time.Hour

// Session représente une session utilisateur.
//
// Role est une copie du rôle de l'utilisateur au moment de la connexion :
// un changement de rôle ultérieur ne modifie pas les sessions déjà émises,
// qui restent valables avec leur rôle d'origine jusqu'à expiration.
type Session struct {
	UserID    int
	Username  string
	Role      models.Role
	ExpiresAt time.Time
}

// Manager gère les sessions utilisateur en mémoire
type Manager struct {
	CookieName string

	mu       sync.RWMutex
	sessions map[string]Session
}

// NewManager crée un nouveau gestionnaire de session
func NewManager(cookieName string) *Manager {
	return &Manager{
		CookieName: cookieName,
		sessions:   make(map[string]Session),
	}
}

// CreateSession crée une nouvelle session pour un utilisateur et pose le cookie
func (m *Manager) CreateSession(w http.ResponseWriter, user *models.User) (string, error) {
	// Générer un token de session
	sessionToken, err := generateRandomToken(32)
	if err != nil {
		return "", fmt.Errorf("erreur lors de la génération du token de session: %w", err)
	}

	session := Session{
		UserID:    user.ID,
		Username:  user.Username,
		Role:      user.Role,
		ExpiresAt: time.Now().Add(Lifetime),
	}

	m.mu.Lock()
	m.sessions[sessionToken] = session
	m.mu.Unlock()

	cookie := http.Cookie{
		Name:     m.CookieName,
		Value:    sessionToken,
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		Path:     "/",
		SameSite: http.SameSiteStrictMode,
	}
	http.SetCookie(w, &cookie)

	return sessionToken, nil
}

// GetSession récupère une session à partir d'une requête
func (m *Manager) GetSession(r *http.Request) (*Session, error) {
	cookie, err := r.Cookie(m.CookieName)
	if err != nil {
		return nil, fmt.Errorf("pas de session trouvée")
	}

	return m.GetByToken(cookie.Value)
}

// GetByToken récupère une session à partir de son token.
// L'expiration est vérifiée paresseusement : une session expirée est
// supprimée au moment où elle est consultée.
func (m *Manager) GetByToken(token string) (*Session, error) {
	m.mu.RLock()
	session, exists := m.sessions[token]
	m.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("session invalide")
	}

	if time.Now().After(session.ExpiresAt) {
		m.mu.Lock()
		delete(m.sessions, token)
		m.mu.Unlock()
		return nil, fmt.Errorf("session expirée")
	}

	return &session, nil
}

// DestroySession détruit une session. L'opération est idempotente :
// détruire une session absente n'est pas une erreur.
func (m *Manager) DestroySession(w http.ResponseWriter, r *http.Request) error {
	cookie, err := r.Cookie(m.CookieName)
	if err != nil {
		return nil // Pas de session à détruire
	}

	m.mu.Lock()
	delete(m.sessions, cookie.Value)
	m.mu.Unlock()

	// Expirer le cookie
	expiredCookie := http.Cookie{
		Name:     m.CookieName,
		Value:    "",
		Expires:  time.Now().Add(-1 * time.Hour),
		HttpOnly: true,
		Path:     "/",
		SameSite: http.SameSiteStrictMode,
	}
	http.SetCookie(w, &expiredCookie)

	return nil
}

// Clé pour stocker la session dans le contexte
type sessionKeyType struct{}

var sessionKey = sessionKeyType{}

// WithSession ajoute une session au contexte
func WithSession(ctx context.Context, session *Session) context.Context {
	return context.WithValue(ctx, sessionKey, session)
}

// FromContext récupère la session du contexte
func FromContext(ctx context.Context) (*Session, bool) {
	session, ok := ctx.Value(sessionKey).(*Session)
	return session, ok
}

// generateRandomToken génère un token aléatoire de la taille spécifiée
func generateRandomToken(length int) (string, error) {
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}
