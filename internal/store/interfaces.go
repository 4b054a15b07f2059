package store

import (
	"context"

	"github.com/MKhiriev/go-spellbook/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// CharacterRepository persists characters. An account has no row of its
// own, so account-level reads and deletes go through the character rows.
type CharacterRepository interface {
	// ListUsernames returns every distinct username owning at least one character.
	ListUsernames(ctx context.Context) ([]string, error)
	// ListCharacters returns all character rows of username.
	ListCharacters(ctx context.Context, username string) ([]models.Character, error)
	// ListCharacterKeys returns the snake_name of every character of username.
	ListCharacterKeys(ctx context.Context, username string) ([]string, error)
	// CreateCharacter inserts character and returns the stored row.
	CreateCharacter(ctx context.Context, character models.Character) (models.Character, error)
	// GetCharacter returns one row or [ErrCharacterNotFound].
	GetCharacter(ctx context.Context, username, snakeName string) (models.Character, error)
	// UpdateCharacter applies update atomically.
	UpdateCharacter(ctx context.Context, username, snakeName string, update models.CharacterUpdate) error
	// DeleteCharacter removes one row. Deleting a missing row is not an error.
	DeleteCharacter(ctx context.Context, username, snakeName string) error
	// DeleteAccount removes every row of username and returns how many were removed.
	DeleteAccount(ctx context.Context, username string) (int64, error)
}
