package services

import (
	"errors"
	"fmt"

	"github.com/sjperalta/scolarite-api/internal/models"
	"github.com/sjperalta/scolarite-api/internal/repository"
)

// Common service errors
var (
	ErrNotFound           = errors.New("enregistrement introuvable")
	ErrConflict           = errors.New("enregistrement en conflit")
	ErrInvalidCredentials = errors.New("identifiants incorrects")
	ErrAccountDisabled    = errors.New("compte désactivé")
	ErrInvalidState       = errors.New("transition d'état invalide")
	ErrValidation         = models.ErrValidation
)

// translate maps repository errors onto the service sentinels
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case repository.IsNotFound(err):
		return fmt.Errorf("%w", ErrNotFound)
	case errors.Is(err, repository.ErrDuplicate):
		return fmt.Errorf("%w: %v", ErrConflict, err)
	}
	return err
}

// conflict builds an ErrConflict with a readable message
func conflict(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConflict, fmt.Sprintf(format, args...))
}

// notFound builds an ErrNotFound naming the missing entity
func notFound(entity string, id uint) error {
	return fmt.Errorf("%w: %s %d", ErrNotFound, entity, id)
}
