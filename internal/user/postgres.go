package user

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"
	"github.com/lvasseur/carte-des-talents/internal/models"
)

// PostgresRepository est l'implémentation PostgreSQL du Repository
type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository crée un nouveau repository utilisateur
func NewPostgresRepository(db *sql.DB) Repository {
	return &PostgresRepository{db: db}
}

// Create ajoute un nouvel utilisateur dans la base de données
func (r *PostgresRepository) Create(user *models.User) error {
	query := `
        INSERT INTO users (username, password, role)
        VALUES ($1, $2, $3)
        RETURNING id, created_at
    `

	err := r.db.QueryRow(
		query,
		user.Username,
		user.Password,
		user.Role,
	).Scan(&user.ID, &user.CreatedAt)

	if err != nil {
		// 23505 = violation de contrainte d'unicité (index sur LOWER(username))
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return ErrDuplicateUsername
		}
		return fmt.Errorf("erreur lors de la création de l'utilisateur: %w", err)
	}

	return nil
}

// GetByID récupère un utilisateur par son ID
func (r *PostgresRepository) GetByID(id int) (*models.User, error) {
	query := `
        SELECT id, username, password, role, created_at
        FROM users
        WHERE id = $1
    `

	user := &models.User{}
	err := r.db.QueryRow(query, id).Scan(
		&user.ID,
		&user.Username,
		&user.Password,
		&user.Role,
		&user.CreatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return user, nil
}

// GetByUsername récupère un utilisateur par son nom, sans tenir compte de la casse
func (r *PostgresRepository) GetByUsername(username string) (*models.User, error) {
	query := `
        SELECT id, username, password, role, created_at
        FROM users
        WHERE LOWER(username) = LOWER($1)
    `

	user := &models.User{}
	err := r.db.QueryRow(query, username).Scan(
		&user.ID,
		&user.Username,
		&user.Password,
		&user.Role,
		&user.CreatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return user, nil
}

// List récupère tous les utilisateurs, les plus récents en premier
func (r *PostgresRepository) List() ([]*models.User, error) {
	query := `
        SELECT id, username, password, role, created_at
        FROM users
        ORDER BY created_at DESC
    `

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("erreur lors de la récupération des utilisateurs: %w", err)
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user := &models.User{}
		if err := rows.Scan(
			&user.ID,
			&user.Username,
			&user.Password,
			&user.Role,
			&user.CreatedAt,
		); err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return users, rows.Err()
}
