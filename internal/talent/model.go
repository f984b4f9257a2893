package talent

import (
	"encoding/json"
	"strings"
	"time"
)

// Talent représente une carte de talent du répertoire.
// Les profils sont anonymes : aucune clé ne relie un talent au compte
// qui l'a soumis.
type Talent struct {
	ID           int       `json:"id"`
	FullName     string    `json:"fullName"`
	Organization string    `json:"organization"`
	Skills       []string  `json:"skills"`
	Passions     []string  `json:"passions"`
	Languages    []string  `json:"languages"`
	Projects     []string  `json:"projects"`
	Availability string    `json:"availability"`
	Verified     bool      `json:"verified"`
	CreatedAt    time.Time `json:"createdAt"`
}

// TagList est une liste de tags qui accepte en entrée soit un tableau
// JSON, soit une chaîne séparée par des virgules ("Go, Rust")
type TagList []string

func (l *TagList) UnmarshalJSON(data []byte) error {
	items, err := unmarshalFlexibleList(data, ",")
	if err != nil {
		return err
	}
	*l = items
	return nil
}

// ProjectList est une liste de descriptions de projets qui accepte en
// entrée soit un tableau JSON, soit une chaîne multi-lignes
type ProjectList []string

func (l *ProjectList) UnmarshalJSON(data []byte) error {
	items, err := unmarshalFlexibleList(data, "\n")
	if err != nil {
		return err
	}
	*l = items
	return nil
}

// unmarshalFlexibleList décode un tableau JSON ou découpe une chaîne sur
// le séparateur donné, en ignorant les éléments vides
func unmarshalFlexibleList(data []byte, sep string) ([]string, error) {
	var items []string
	if err := json.Unmarshal(data, &items); err == nil {
		return trimList(items), nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return trimList(strings.Split(raw, sep)), nil
}

func trimList(items []string) []string {
	var out []string
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// CreateRequest contient les champs soumis pour une nouvelle carte.
// Un éventuel champ "verified" envoyé par le client est ignoré : le
// statut de vérification n'est jamais accepté depuis l'extérieur.
type CreateRequest struct {
	FullName     string      `json:"fullName"`
	Organization string      `json:"organization"`
	Skills       TagList     `json:"skills"`
	Passions     TagList     `json:"passions"`
	Languages    TagList     `json:"languages"`
	Projects     ProjectList `json:"projects"`
	Availability string      `json:"availability"`
}
