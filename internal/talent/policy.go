package talent

import "github.com/lvasseur/carte-des-talents/internal/models"

// Filter restreint les talents retournés par le store.
// Verified à nil signifie "tous les talents".
type Filter struct {
	Verified *bool
}

// VisibleFilter calcule le filtre de visibilité pour un rôle donné.
//
// Un admin voit tous les talents. Tout autre appelant ne voit que les
// talents non vérifiés : une carte validée quitte le listing général et
// n'est plus visible que via le tableau de bord admin.
func VisibleFilter(role models.Role) Filter {
	if role == models.RoleAdmin {
		return Filter{}
	}
	unverified := false
	return Filter{Verified: &unverified}
}
