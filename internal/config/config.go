package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config contient la configuration globale de l'application
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Admin    AdminConfig
	Session  SessionConfig
}

// ServerConfig contient la configuration du serveur web
type ServerConfig struct {
	Port string
}

// DatabaseConfig contient la configuration de la base de données
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// AdminConfig contient les identifiants du compte admin créé au démarrage
type AdminConfig struct {
	Username string
	Password string
}

// SessionConfig contient la configuration des sessions
type SessionConfig struct {
	CookieName string
}

// Load charge la configuration depuis les variables d'environnement
func Load() (*Config, error) {
	// Charger les variables d'environnement depuis .env si présent
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     getEnv("DB_NAME", "carte_des_talents"),
		},
		Admin: AdminConfig{
			Username: getEnv("ADMIN_USERNAME", "admin"),
			Password: getEnv("ADMIN_PASSWORD", "admin"),
		},
		Session: SessionConfig{
			CookieName: getEnv("SESSION_COOKIE", "cdt_session"),
		},
	}

	return config, nil
}

// getEnv retourne la variable d'environnement ou la valeur par défaut
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
