package validation

import (
	"fmt"
	"strings"
)

// Règles de validation
const (
	MinPasswordLength = 3
	MaxPasswordLength = 72 // limite bcrypt
	MaxUsernameLength = 30
	MaxFullNameLength = 255
)

// Valeurs autorisées pour la disponibilité d'un talent
var Availabilities = []string{"", "projets", "aide", "mentorat"}

// ValidationError représente une erreur de validation
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateUsername valide un nom d'utilisateur
func ValidateUsername(username string) error {
	username = strings.TrimSpace(username)

	if username == "" {
		return ValidationError{Field: "username", Message: "le nom d'utilisateur est obligatoire"}
	}

	if len(username) > MaxUsernameLength {
		return ValidationError{Field: "username", Message: fmt.Sprintf("le nom d'utilisateur doit contenir au maximum %d caractères", MaxUsernameLength)}
	}

	return nil
}

// ValidatePassword valide un mot de passe
func ValidatePassword(password string) error {
	if password == "" {
		return ValidationError{Field: "password", Message: "le mot de passe est obligatoire"}
	}

	if len(password) < MinPasswordLength {
		return ValidationError{Field: "password", Message: fmt.Sprintf("le mot de passe doit contenir au moins %d caractères", MinPasswordLength)}
	}

	if len(password) > MaxPasswordLength {
		return ValidationError{Field: "password", Message: fmt.Sprintf("le mot de passe doit contenir au maximum %d caractères", MaxPasswordLength)}
	}

	return nil
}

// ValidateFullName valide le nom complet d'un talent
func ValidateFullName(fullName string) error {
	if strings.TrimSpace(fullName) == "" {
		return ValidationError{Field: "fullName", Message: "fullName est requis"}
	}

	if len(fullName) > MaxFullNameLength {
		return ValidationError{Field: "fullName", Message: fmt.Sprintf("fullName doit contenir au maximum %d caractères", MaxFullNameLength)}
	}

	return nil
}

// ValidateAvailability vérifie que la disponibilité fait partie des valeurs autorisées
func ValidateAvailability(availability string) error {
	for _, a := range Availabilities {
		if availability == a {
			return nil
		}
	}
	return ValidationError{Field: "availability", Message: "disponibilité invalide (valeurs autorisées: projets, aide, mentorat)"}
}
