package talent

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvasseur/carte-des-talents/internal/models"
	"github.com/lvasseur/carte-des-talents/internal/validation"
)

// -------- fake repo --------

type fakeRepo struct {
	talents map[int]*Talent
	nextID  int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{talents: make(map[int]*Talent), nextID: 1}
}

func (f *fakeRepo) List(filter Filter) ([]*Talent, error) {
	var result []*Talent
	for _, t := range f.talents {
		if filter.Verified != nil && t.Verified != *filter.Verified {
			continue
		}
		result = append(result, t)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (f *fakeRepo) GetByID(id int) (*Talent, error) {
	t, ok := f.talents[id]
	if !ok {
		return nil, ErrNotFound
	}
	return t, nil
}

func (f *fakeRepo) Create(t *Talent) error {
	t.ID = f.nextID
	t.CreatedAt = time.Now().Add(time.Duration(f.nextID) * time.Second)
	f.nextID++
	f.talents[t.ID] = t
	return nil
}

func (f *fakeRepo) SetVerified(id int, verified bool) (*Talent, error) {
	t, ok := f.talents[id]
	if !ok {
		return nil, ErrNotFound
	}
	t.Verified = verified
	return t, nil
}

func (f *fakeRepo) ToggleVerified(id int) (*Talent, error) {
	t, ok := f.talents[id]
	if !ok {
		return nil, ErrNotFound
	}
	t.Verified = !t.Verified
	return t, nil
}

func (f *fakeRepo) CountByVerification() (Stats, error) {
	var stats Stats
	for _, t := range f.talents {
		stats.Total++
		if t.Verified {
			stats.Verified++
		} else {
			stats.Unverified++
		}
	}
	return stats, nil
}

// -------- tests --------

func TestCreateForcesVerifiedFalse(t *testing.T) {
	service := NewService(newFakeRepo(), nil)

	created, err := service.Create(CreateRequest{FullName: "Jane Doe", Skills: TagList{"Go", "Rust"}})
	require.NoError(t, err)

	assert.False(t, created.Verified)
	assert.Equal(t, []string{"Go", "Rust"}, created.Skills)
	assert.NotZero(t, created.ID)
}

func TestCreateDefaultsListsToEmpty(t *testing.T) {
	service := NewService(newFakeRepo(), nil)

	created, err := service.Create(CreateRequest{FullName: "Jane Doe"})
	require.NoError(t, err)

	assert.Equal(t, []string{}, created.Skills)
	assert.Equal(t, []string{}, created.Passions)
	assert.Equal(t, []string{}, created.Languages)
	assert.Equal(t, []string{}, created.Projects)
}

func TestCreateRequiresFullName(t *testing.T) {
	service := NewService(newFakeRepo(), nil)

	_, err := service.Create(CreateRequest{FullName: "   "})

	var validationErr validation.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "fullName", validationErr.Field)
}

func TestCreateRejectsUnknownAvailability(t *testing.T) {
	service := NewService(newFakeRepo(), nil)

	_, err := service.Create(CreateRequest{FullName: "Jane Doe", Availability: "week-ends"})

	var validationErr validation.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "availability", validationErr.Field)
}

func TestCreateAcceptsKnownAvailabilities(t *testing.T) {
	service := NewService(newFakeRepo(), nil)

	for _, availability := range []string{"", "projets", "aide", "mentorat"} {
		_, err := service.Create(CreateRequest{FullName: "Jane Doe", Availability: availability})
		assert.NoError(t, err, "availability %q", availability)
	}
}

func TestListVisibleHidesVerifiedFromUsers(t *testing.T) {
	repo := newFakeRepo()
	service := NewService(repo, nil)

	visible, err := service.Create(CreateRequest{FullName: "Visible"})
	require.NoError(t, err)
	hidden, err := service.Create(CreateRequest{FullName: "Cachée"})
	require.NoError(t, err)

	_, err = service.ToggleVerified(models.RoleAdmin, hidden.ID)
	require.NoError(t, err)

	forUser, err := service.ListVisible(models.RoleUser)
	require.NoError(t, err)
	require.Len(t, forUser, 1)
	assert.Equal(t, visible.ID, forUser[0].ID)

	forAdmin, err := service.ListVisible(models.RoleAdmin)
	require.NoError(t, err)
	assert.Len(t, forAdmin, 2)
}

func TestToggleVerifiedForbiddenForNonAdmins(t *testing.T) {
	repo := newFakeRepo()
	service := NewService(repo, nil)

	created, err := service.Create(CreateRequest{FullName: "Jane Doe"})
	require.NoError(t, err)

	_, err = service.ToggleVerified(models.RoleUser, created.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = service.ToggleVerified("", created.ID)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestToggleVerifiedTwiceRestoresState(t *testing.T) {
	repo := newFakeRepo()
	service := NewService(repo, nil)

	created, err := service.Create(CreateRequest{FullName: "Jane Doe"})
	require.NoError(t, err)

	once, err := service.ToggleVerified(models.RoleAdmin, created.ID)
	require.NoError(t, err)
	assert.True(t, once.Verified)

	twice, err := service.ToggleVerified(models.RoleAdmin, created.ID)
	require.NoError(t, err)
	assert.False(t, twice.Verified)
}

func TestToggleVerifiedUnknownID(t *testing.T) {
	service := NewService(newFakeRepo(), nil)

	_, err := service.ToggleVerified(models.RoleAdmin, 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateRoundTrip(t *testing.T) {
	repo := newFakeRepo()
	service := NewService(repo, nil)

	created, err := service.Create(CreateRequest{
		FullName:     "Jane Doe",
		Organization: "Lycée Pasteur",
		Skills:       TagList{"Go", "Rust"},
		Passions:     TagList{"musique"},
		Languages:    TagList{"Français"},
		Projects:     ProjectList{"Atelier robotique"},
		Availability: "mentorat",
	})
	require.NoError(t, err)

	// relu par son ID, le talent porte exactement les champs soumis
	fetched, err := service.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, fetched)
	assert.Equal(t, "Lycée Pasteur", fetched.Organization)
	assert.Equal(t, "mentorat", fetched.Availability)
	assert.False(t, fetched.Verified)
}

func TestStats(t *testing.T) {
	repo := newFakeRepo()
	service := NewService(repo, nil)

	for i := 0; i < 3; i++ {
		created, err := service.Create(CreateRequest{FullName: "Talent"})
		require.NoError(t, err)
		if i == 0 {
			_, err = service.ToggleVerified(models.RoleAdmin, created.ID)
			require.NoError(t, err)
		}
	}

	stats, err := service.Stats()
	require.NoError(t, err)
	assert.Equal(t, Stats{Total: 3, Verified: 1, Unverified: 2}, stats)
}
