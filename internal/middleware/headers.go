package middleware

import (
	"net/http"
	"strings"
)

// SecurityHeaders ajoute les en-têtes de sécurité et une protection
// basique contre le CSRF sur les requêtes modifiantes
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isModifyingRequest(r) {
			// Vérifier l'origine pour une protection basique
			origin := r.Header.Get("Origin")
			if origin != "" && !strings.Contains(origin, r.Host) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusForbidden)
				w.Write([]byte(`{"message": "Origine invalide"}`))
				return
			}
		}

		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")

		next.ServeHTTP(w, r)
	})
}

// isModifyingRequest vérifie si c'est une requête qui modifie des données
func isModifyingRequest(r *http.Request) bool {
	return r.Method == "POST" || r.Method == "PUT" || r.Method == "DELETE" || r.Method == "PATCH"
}
