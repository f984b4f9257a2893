package talent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvasseur/carte-des-talents/internal/models"
)

func TestVisibleFilterAdmin(t *testing.T) {
	filter := VisibleFilter(models.RoleAdmin)
	assert.Nil(t, filter.Verified, "un admin voit tous les talents")
}

func TestVisibleFilterUser(t *testing.T) {
	filter := VisibleFilter(models.RoleUser)
	require.NotNil(t, filter.Verified)
	assert.False(t, *filter.Verified, "un user ne voit que les talents non vérifiés")
}

func TestVisibleFilterUnauthenticated(t *testing.T) {
	// rôle absent : même visibilité qu'un user simple
	filter := VisibleFilter("")
	require.NotNil(t, filter.Verified)
	assert.False(t, *filter.Verified)
}
