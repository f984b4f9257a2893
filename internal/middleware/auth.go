package middleware

import (
	"net/http"

	"github.com/lvasseur/carte-des-talents/internal/models"
	"github.com/lvasseur/carte-des-talents/internal/session"
)

// AuthMiddleware vérifie l'authentification des appelants.
// Chaque requête est autorisée indépendamment en re-résolvant la session :
// aucun verrou ni état n'est conservé entre deux requêtes.
type AuthMiddleware struct {
	sessionManager *session.Manager
}

// NewAuthMiddleware crée un nouveau middleware d'authentification
func NewAuthMiddleware(sessionManager *session.Manager) *AuthMiddleware {
	return &AuthMiddleware{sessionManager: sessionManager}
}

// RequireAuth refuse les requêtes sans session valide et pose la session
// dans le contexte pour les handlers suivants
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userSession, err := m.sessionManager.GetSession(r)
		if err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"message": "Authentification requise"}`))
			return
		}

		ctx := session.WithSession(r.Context(), userSession)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin refuse les requêtes dont la session n'a pas le rôle admin.
// Le rôle vérifié est celui copié dans la session à la connexion.
func (m *AuthMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return m.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userSession, ok := session.FromContext(r.Context())
		if !ok || userSession.Role != models.RoleAdmin {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte(`{"message": "Accès refusé : droits administrateur requis"}`))
			return
		}

		next.ServeHTTP(w, r)
	}))
}
