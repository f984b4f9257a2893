package database

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/lvasseur/carte-des-talents/internal/config"
	_ "github.com/lib/pq" // Driver PostgreSQL
)

// RunMigrations exécute les scripts de migration pour créer/mettre à jour les tables
func RunMigrations(db *sql.DB) error {
	migrationFiles := []string{
		"internal/database/migrations/create_users_table.sql",
		"internal/database/migrations/create_talents_table.sql",
	}

	for _, file := range migrationFiles {
		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("erreur lors de la lecture du fichier de migration %s: %w", file, err)
		}

		if _, err := db.Exec(string(content)); err != nil {
			return fmt.Errorf("erreur lors de l'exécution de la migration %s: %w", file, err)
		}
	}

	return nil
}

// Connect établit une connexion à la base de données
func Connect(cfg config.DatabaseConfig) (*sql.DB, error) {
	connStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("erreur d'ouverture de connexion à la base de données: %w", err)
	}

	// Vérifier la connexion
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("erreur de ping à la base de données: %w", err)
	}

	return db, nil
}
