package talent

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"
)

// PostgresRepository est l'implémentation PostgreSQL du Repository
type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository crée un nouveau repository de talents
func NewPostgresRepository(db *sql.DB) Repository {
	return &PostgresRepository{db: db}
}

const talentColumns = `id, full_name, organization, skills, passions, languages, projects, availability, verified, created_at`

// List récupère les talents correspondant au filtre, les plus récents en premier
func (r *PostgresRepository) List(filter Filter) ([]*Talent, error) {
	query := `SELECT ` + talentColumns + ` FROM talents`
	var args []interface{}

	if filter.Verified != nil {
		query += ` WHERE verified = $1`
		args = append(args, *filter.Verified)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erreur lors de la récupération des talents: %w", err)
	}
	defer rows.Close()

	var talents []*Talent
	for rows.Next() {
		t, err := scanTalent(rows)
		if err != nil {
			return nil, err
		}
		talents = append(talents, t)
	}

	return talents, rows.Err()
}

// GetByID récupère un talent par son ID
func (r *PostgresRepository) GetByID(id int) (*Talent, error) {
	row := r.db.QueryRow(`SELECT `+talentColumns+` FROM talents WHERE id = $1`, id)

	t, err := scanTalent(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return t, nil
}

// Create ajoute une nouvelle carte de talent
func (r *PostgresRepository) Create(t *Talent) error {
	query := `
        INSERT INTO talents (full_name, organization, skills, passions, languages, projects, availability, verified)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id, created_at
    `

	err := r.db.QueryRow(
		query,
		t.FullName,
		t.Organization,
		pq.Array(t.Skills),
		pq.Array(t.Passions),
		pq.Array(t.Languages),
		pq.Array(t.Projects),
		t.Availability,
		t.Verified,
	).Scan(&t.ID, &t.CreatedAt)

	if err != nil {
		return fmt.Errorf("erreur lors de l'enregistrement du talent: %w", err)
	}

	return nil
}

// SetVerified positionne le drapeau de vérification.
// Une seule instruction UPDATE : pas de lecture préalable.
func (r *PostgresRepository) SetVerified(id int, verified bool) (*Talent, error) {
	row := r.db.QueryRow(
		`UPDATE talents SET verified = $1 WHERE id = $2 RETURNING `+talentColumns,
		verified, id,
	)

	t, err := scanTalent(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("erreur lors de la modification du talent: %w", err)
	}

	return t, nil
}

// ToggleVerified inverse le drapeau de vérification.
// L'inversion se fait dans l'UPDATE lui-même : deux admins qui basculent
// en même temps ne peuvent pas se perdre une mise à jour.
func (r *PostgresRepository) ToggleVerified(id int) (*Talent, error) {
	row := r.db.QueryRow(
		`UPDATE talents SET verified = NOT verified WHERE id = $1 RETURNING `+talentColumns,
		id,
	)

	t, err := scanTalent(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("erreur lors de la modification du talent: %w", err)
	}

	return t, nil
}

// CountByVerification compte les talents par statut de vérification
func (r *PostgresRepository) CountByVerification() (Stats, error) {
	query := `
        SELECT COUNT(*),
               COUNT(*) FILTER (WHERE verified),
               COUNT(*) FILTER (WHERE NOT verified)
        FROM talents
    `

	var stats Stats
	if err := r.db.QueryRow(query).Scan(&stats.Total, &stats.Verified, &stats.Unverified); err != nil {
		return Stats{}, fmt.Errorf("erreur lors de la récupération des statistiques: %w", err)
	}

	return stats, nil
}

// scanner couvre sql.Row et sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanTalent(row scanner) (*Talent, error) {
	t := &Talent{}
	err := row.Scan(
		&t.ID,
		&t.FullName,
		&t.Organization,
		pq.Array(&t.Skills),
		pq.Array(&t.Passions),
		pq.Array(&t.Languages),
		pq.Array(&t.Projects),
		&t.Availability,
		&t.Verified,
		&t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	// Les listes sortent du store comme des slices jamais nulles
	if t.Skills == nil {
		t.Skills = []string{}
	}
	if t.Passions == nil {
		t.Passions = []string{}
	}
	if t.Languages == nil {
		t.Languages = []string{}
	}
	if t.Projects == nil {
		t.Projects = []string{}
	}

	return t, nil
}
