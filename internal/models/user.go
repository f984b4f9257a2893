package models

import "time"

// Role représente le rôle d'un compte dans le système
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User représente un compte utilisateur du système
type User struct {
	ID        int       `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"-"` // Ne jamais exposer le hash du mot de passe
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// IsAdmin indique si le compte a le rôle administrateur
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
