package talent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkillFrequency(t *testing.T) {
	talents := []*Talent{
		{FullName: "A", Skills: []string{"Go", "RUST"}},
		{FullName: "B", Skills: []string{"go"}},
	}

	freq := SkillFrequency(talents)

	require.Len(t, freq, 2)
	assert.Equal(t, SkillCount{Skill: "go", Count: 2}, freq[0])
	assert.Equal(t, SkillCount{Skill: "rust", Count: 1}, freq[1])
}

func TestSkillFrequencyTiesKeepFirstSeenOrder(t *testing.T) {
	talents := []*Talent{
		{Skills: []string{"python", "go"}},
		{Skills: []string{"go", "python", "rust"}},
	}

	freq := SkillFrequency(talents)

	require.Len(t, freq, 3)
	// python et go sont à égalité, python est apparue en premier
	assert.Equal(t, "python", freq[0].Skill)
	assert.Equal(t, "go", freq[1].Skill)
	assert.Equal(t, "rust", freq[2].Skill)
}

func TestSkillFrequencyEmpty(t *testing.T) {
	assert.Empty(t, SkillFrequency(nil))
	assert.Empty(t, SkillFrequency([]*Talent{{FullName: "A"}}))
}

func TestProfilesForSkill(t *testing.T) {
	talents := []*Talent{
		{FullName: "A", Skills: []string{"Go", "Rust"}},
		{FullName: "B", Skills: []string{"golang"}},
		{FullName: "C", Skills: []string{"GO"}},
	}

	result := ProfilesForSkill(talents, "go")

	// correspondance exacte, pas de sous-chaîne : "golang" ne passe pas
	require.Len(t, result, 2)
	assert.Equal(t, "A", result[0].FullName)
	assert.Equal(t, "C", result[1].FullName)
}

func TestSearch(t *testing.T) {
	talents := []*Talent{
		{FullName: "Jane", Skills: []string{"Go", "Rust"}, Languages: []string{"Français"}, Availability: "projets", Verified: true},
		{FullName: "Paul", Skills: []string{"Python"}, Languages: []string{"Anglais"}, Availability: "aide"},
		{FullName: "Lisa", Skills: []string{"Golang"}, Languages: []string{"français", "anglais"}, Availability: "projets"},
	}

	tests := []struct {
		name   string
		filter SearchFilter
		want   []string
	}{
		{
			name:   "filtre vide retourne tout",
			filter: SearchFilter{},
			want:   []string{"Jane", "Paul", "Lisa"},
		},
		{
			name:   "competence par sous-chaine insensible a la casse",
			filter: SearchFilter{Skill: "go"},
			want:   []string{"Jane", "Lisa"},
		},
		{
			name:   "langue par sous-chaine",
			filter: SearchFilter{Language: "FRAN"},
			want:   []string{"Jane", "Lisa"},
		},
		{
			name:   "disponibilite par correspondance exacte",
			filter: SearchFilter{Availability: "aide"},
			want:   []string{"Paul"},
		},
		{
			name:   "verifies uniquement",
			filter: SearchFilter{VerifiedOnly: true},
			want:   []string{"Jane"},
		},
		{
			name:   "les criteres sont cumulatifs",
			filter: SearchFilter{Skill: "go", Availability: "projets", VerifiedOnly: true},
			want:   []string{"Jane"},
		},
		{
			name:   "aucun resultat",
			filter: SearchFilter{Skill: "cobol"},
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Search(talents, tt.filter)

			var names []string
			for _, talent := range result {
				names = append(names, talent.FullName)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}
