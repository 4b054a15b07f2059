package service

import (
	"context"

	"github.com/MKhiriev/go-spellbook/internal/session"
	"github.com/MKhiriev/go-spellbook/models"
)

// AccountService drives the account lifecycle of a session.
// Every method holds the session lock for its whole duration.
type AccountService interface {
	// ListUsers returns the persisted usernames and merges them into the
	// shared username mirror.
	ListUsers(ctx context.Context) ([]string, error)

	// CreateAccount makes username a new draft account and activates it.
	CreateAccount(ctx context.Context, s *session.Session, username string) (models.Account, error)

	// Login activates an existing account and returns its characters.
	Login(ctx context.Context, s *session.Session, username string) ([]models.Character, error)

	// Logout leaves the active account.
	Logout(ctx context.Context, s *session.Session) (models.Account, error)

	// DeleteAccount removes the active account with all its characters.
	DeleteAccount(ctx context.Context, s *session.Session) (models.Account, error)
}

// CharacterService drives the characters of the active account.
type CharacterService interface {
	CreateCharacter(ctx context.Context, s *session.Session, properName, snakeName string) (models.Character, error)
	SelectCharacter(ctx context.Context, s *session.Session, snakeName string) (models.Character, error)

	// UpdateCharacter applies update to the active character in one write.
	UpdateCharacter(ctx context.Context, s *session.Session, update models.CharacterUpdate) error

	DeleteCharacter(ctx context.Context, s *session.Session) (models.DeletedCharacter, error)
}

// SpellService is the read-only view of the reference spell API.
type SpellService interface {
	GetSpell(ctx context.Context, key string) (models.Spell, error)
	ListSpells(ctx context.Context, filter models.SpellFilter) (models.APIReferenceList, error)
	GetClass(ctx context.Context, key string) (models.Class, error)
	ListClassSpells(ctx context.Context, key string) (models.APIReferenceList, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
