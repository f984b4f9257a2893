package talent

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvasseur/carte-des-talents/internal/models"
	"github.com/lvasseur/carte-des-talents/internal/session"
)

func postTalent(handlers *Handlers, body string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodPost, "/api/talents", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handlers.CreateHandler(w, r)
	return w
}

func TestCreateHandlerIgnoresClientVerifiedFlag(t *testing.T) {
	handlers := NewHandlers(NewService(newFakeRepo(), nil))

	w := postTalent(handlers, `{"fullName":"Jane Doe","skills":"Go, Rust","verified":true}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var created Talent
	require.NoError(t, json.NewDecoder(w.Body).Decode(&created))
	assert.False(t, created.Verified, "le statut soumis par le client est ignoré")
	assert.Equal(t, []string{"Go", "Rust"}, created.Skills)
}

func TestCreateHandlerRequiresFullName(t *testing.T) {
	handlers := NewHandlers(NewService(newFakeRepo(), nil))

	w := postTalent(handlers, `{"organization":"Lycée Pasteur"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "fullName est requis")
}

func TestCreateHandlerBadJSON(t *testing.T) {
	handlers := NewHandlers(NewService(newFakeRepo(), nil))

	w := postTalent(handlers, `{`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListHandlerUsesSessionRole(t *testing.T) {
	repo := newFakeRepo()
	service := NewService(repo, nil)
	handlers := NewHandlers(service)

	_, err := service.Create(CreateRequest{FullName: "Non vérifiée"})
	require.NoError(t, err)
	verified, err := service.Create(CreateRequest{FullName: "Vérifiée"})
	require.NoError(t, err)
	_, err = service.ToggleVerified(models.RoleAdmin, verified.ID)
	require.NoError(t, err)

	listFor := func(role models.Role) string {
		r := httptest.NewRequest(http.MethodGet, "/api/talents", nil)
		if role != "" {
			ctx := session.WithSession(r.Context(), &session.Session{UserID: 1, Role: role})
			r = r.WithContext(ctx)
		}
		w := httptest.NewRecorder()
		handlers.ListHandler(w, r)
		require.Equal(t, http.StatusOK, w.Code)
		return w.Body.String()
	}

	userBody := listFor(models.RoleUser)
	assert.Contains(t, userBody, "Non vérifiée")
	assert.NotContains(t, userBody, `"Vérifiée"`)

	adminBody := listFor(models.RoleAdmin)
	assert.Contains(t, adminBody, "Non vérifiée")
	assert.Contains(t, adminBody, "Vérifiée")
}

func TestListHandlerReturnsEmptyArray(t *testing.T) {
	handlers := NewHandlers(NewService(newFakeRepo(), nil))

	r := httptest.NewRequest(http.MethodGet, "/api/talents", nil)
	w := httptest.NewRecorder()
	handlers.ListHandler(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]\n", w.Body.String())
}

func TestSkillsHandler(t *testing.T) {
	repo := newFakeRepo()
	service := NewService(repo, nil)
	handlers := NewHandlers(service)

	_, err := service.Create(CreateRequest{FullName: "A", Skills: TagList{"Go", "go", "RUST"}})
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodGet, "/api/talents/skills", nil)
	w := httptest.NewRecorder()
	handlers.SkillsHandler(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	var freq []SkillCount
	require.NoError(t, json.NewDecoder(w.Body).Decode(&freq))
	assert.Equal(t, []SkillCount{{Skill: "go", Count: 2}, {Skill: "rust", Count: 1}}, freq)
}

func TestSearchHandler(t *testing.T) {
	repo := newFakeRepo()
	service := NewService(repo, nil)
	handlers := NewHandlers(service)

	_, err := service.Create(CreateRequest{FullName: "Jane", Skills: TagList{"Go"}, Availability: "projets"})
	require.NoError(t, err)
	_, err = service.Create(CreateRequest{FullName: "Paul", Skills: TagList{"Python"}, Availability: "aide"})
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodGet, "/api/talents/search?skill=go&availability=projets", nil)
	w := httptest.NewRecorder()
	handlers.SearchHandler(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Jane")
	assert.NotContains(t, w.Body.String(), "Paul")
}
