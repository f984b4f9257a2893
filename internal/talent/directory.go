package talent

import (
	"sort"
	"strings"
)

// Fonctions pures d'agrégation et de recherche sur un ensemble de talents
// déjà filtré par la politique de visibilité. Aucune d'entre elles ne
// touche au store : n'importe quelle couche de rendu peut les consommer.

// SkillCount associe une compétence (en minuscules) à son nombre d'occurrences
type SkillCount struct {
	Skill string `json:"skill"`
	Count int    `json:"count"`
}

// SkillFrequency compte les occurrences de chaque compétence sur l'ensemble
// des talents, sans tenir compte de la casse. Le résultat est trié par
// nombre décroissant, les égalités gardant l'ordre de première apparition.
func SkillFrequency(talents []*Talent) []SkillCount {
	counts := make(map[string]int)
	var order []string

	for _, t := range talents {
		for _, skill := range t.Skills {
			key := strings.ToLower(skill)
			if _, seen := counts[key]; !seen {
				order = append(order, key)
			}
			counts[key]++
		}
	}

	result := make([]SkillCount, 0, len(order))
	for _, skill := range order {
		result = append(result, SkillCount{Skill: skill, Count: counts[skill]})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Count > result[j].Count
	})

	return result
}

// ProfilesForSkill retourne les talents dont une compétence correspond
// exactement (pas de sous-chaîne) à celle demandée, sans tenir compte de
// la casse
func ProfilesForSkill(talents []*Talent, skill string) []*Talent {
	want := strings.ToLower(skill)

	var result []*Talent
	for _, t := range talents {
		for _, s := range t.Skills {
			if strings.ToLower(s) == want {
				result = append(result, t)
				break
			}
		}
	}

	return result
}

// SearchFilter contient les critères de recherche du répertoire.
// Un champ vide est toujours satisfait.
type SearchFilter struct {
	Skill        string
	Language     string
	Availability string
	VerifiedOnly bool
}

// Search filtre les talents selon les critères donnés. Tous les critères
// sont cumulatifs : un talent doit tous les satisfaire pour être retenu.
func Search(talents []*Talent, filter SearchFilter) []*Talent {
	var result []*Talent
	for _, t := range talents {
		if !matchesSearch(t, filter) {
			continue
		}
		result = append(result, t)
	}
	return result
}

func matchesSearch(t *Talent, filter SearchFilter) bool {
	if filter.Skill != "" && !containsSubstring(t.Skills, filter.Skill) {
		return false
	}
	if filter.Language != "" && !containsSubstring(t.Languages, filter.Language) {
		return false
	}
	if filter.Availability != "" && t.Availability != filter.Availability {
		return false
	}
	if filter.VerifiedOnly && !t.Verified {
		return false
	}
	return true
}

// containsSubstring indique si un des éléments contient le terme, sans
// tenir compte de la casse
func containsSubstring(items []string, term string) bool {
	term = strings.ToLower(term)
	for _, item := range items {
		if strings.Contains(strings.ToLower(item), term) {
			return true
		}
	}
	return false
}
