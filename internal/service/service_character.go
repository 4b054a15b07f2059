// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-spellbook/internal/logger"
	"github.com/MKhiriev/go-spellbook/internal/session"
	"github.com/MKhiriev/go-spellbook/internal/store"
	"github.com/MKhiriev/go-spellbook/internal/validators"
	"github.com/MKhiriev/go-spellbook/models"
)

// characterService implements CharacterService over the active account of a
// session.
//
// The session's character keys are a cache of storage. They are corrected on
// every write path that reveals a divergence:
//   - a duplicate key on insert reloads the keys from storage;
//   - a row missing on select or update drops the key.
type characterService struct {
	characterRepository store.CharacterRepository
	validator           validators.Validator

	logger *logger.Logger
}

func NewCharacterService(characterRepository store.CharacterRepository, validator validators.Validator, logger *logger.Logger) CharacterService {
	return &characterService{
		characterRepository: characterRepository,
		validator:           validator,
		logger:              logger,
	}
}

// CreateCharacter inserts a character with the default attributes under the
// active account and selects it.
//
// Returns:
//   - ErrMissingParameters if either name is empty;
//   - ErrNoActiveAccount if the session has no active account;
//   - ErrCharacterExists if snakeName is already used in the account;
//   - ErrStorage if the insert fails.
func (c *characterService) CreateCharacter(ctx context.Context, s *session.Session, properName, snakeName string) (models.Character, error) {
	log := logger.FromContext(ctx)

	s.Lock()
	defer s.Unlock()

	username, _ := s.ActiveAccount()
	character := models.NewCharacter(username, snakeName, properName)
	if err := c.validator.Validate(ctx, character, validators.FieldProperName, validators.FieldSnakeName); err != nil {
		return models.Character{}, fmt.Errorf("%w: %w", ErrMissingParameters, err)
	}
	if username == "" {
		return models.Character{}, ErrNoActiveAccount
	}
	if s.HasCharacterKey(snakeName) {
		return models.Character{}, ErrCharacterExists
	}

	// pinned before the insert so that no other session can discard the
	// account while its first row is being written
	s.PinUsername(username)

	created, err := c.characterRepository.CreateCharacter(ctx, character)
	if errors.Is(err, store.ErrCharacterAlreadyExists) {
		// the key was persisted behind this session's back
		c.reloadCharacterKeys(ctx, s, username)
		return models.Character{}, ErrCharacterExists
	}
	if err != nil {
		log.Err(err).Str("func", "*characterService.CreateCharacter").
			Str("username", username).
			Str("snake_name", snakeName).
			Msg("error creating character")
		return models.Character{}, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	s.AddCharacterKey(snakeName)
	s.ActivateCharacter(snakeName)

	return created, nil
}

// SelectCharacter makes snakeName the active character and returns its row.
func (c *characterService) SelectCharacter(ctx context.Context, s *session.Session, snakeName string) (models.Character, error) {
	log := logger.FromContext(ctx)

	if snakeName == "" {
		return models.Character{}, ErrMissingParameters
	}

	s.Lock()
	defer s.Unlock()

	username, ok := s.ActiveAccount()
	if !ok {
		return models.Character{}, ErrNoActiveAccount
	}
	if !s.HasCharacterKey(snakeName) {
		return models.Character{}, ErrCharacterNotFound
	}

	character, err := c.characterRepository.GetCharacter(ctx, username, snakeName)
	if errors.Is(err, store.ErrCharacterNotFound) {
		log.Warn().Str("func", "*characterService.SelectCharacter").
			Str("username", username).
			Str("snake_name", snakeName).
			Msg("known character key has no row, dropping it")
		s.RemoveCharacterKey(snakeName)
		return models.Character{}, ErrCharacterNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*characterService.SelectCharacter").
			Str("username", username).
			Str("snake_name", snakeName).
			Msg("error retrieving character")
		return models.Character{}, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	s.ActivateCharacter(snakeName)

	return character, nil
}

// UpdateCharacter writes every present field of update to the active
// character at once. Empty border color and class values are skipped.
//
// Returns:
//   - ErrInvalidCharacterUpdate if no field is present or a value is malformed;
//   - ErrNoActiveCharacter if no character is selected;
//   - ErrCharacterLocked if the character is locked and update changes the
//     spells without unlocking it;
//   - ErrStorage if the write fails. The row is left unchanged.
func (c *characterService) UpdateCharacter(ctx context.Context, s *session.Session, update models.CharacterUpdate) error {
	log := logger.FromContext(ctx)

	if err := c.validator.Validate(ctx, update); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCharacterUpdate, err)
	}

	s.Lock()
	defer s.Unlock()

	username, _ := s.ActiveAccount()
	snakeName, ok := s.ActiveCharacter()
	if !ok {
		return ErrNoActiveCharacter
	}

	err := c.characterRepository.UpdateCharacter(ctx, username, snakeName, update.WithoutBlanks())
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrCharacterLocked):
		return ErrCharacterLocked
	case errors.Is(err, store.ErrCharacterNotFound):
		s.RemoveCharacterKey(snakeName)
		return ErrCharacterNotFound
	default:
		log.Err(err).Str("func", "*characterService.UpdateCharacter").
			Str("username", username).
			Str("snake_name", snakeName).
			Msg("error saving character")
		return fmt.Errorf("%w: %w", ErrStorage, err)
	}
}

// DeleteCharacter removes the active character. After the last character is
// removed the session sees no persisted character, but the username stays
// pinned and is not discarded as a draft.
func (c *characterService) DeleteCharacter(ctx context.Context, s *session.Session) (models.DeletedCharacter, error) {
	log := logger.FromContext(ctx)

	s.Lock()
	defer s.Unlock()

	username, _ := s.ActiveAccount()
	snakeName, ok := s.ActiveCharacter()
	if !ok {
		return models.DeletedCharacter{}, ErrNoActiveCharacter
	}

	if err := c.characterRepository.DeleteCharacter(ctx, username, snakeName); err != nil {
		log.Err(err).Str("func", "*characterService.DeleteCharacter").
			Str("username", username).
			Str("snake_name", snakeName).
			Msg("error deleting character")
		return models.DeletedCharacter{}, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	s.RemoveCharacterKey(snakeName)

	return models.DeletedCharacter{Character: snakeName, Username: username}, nil
}

// reloadCharacterKeys replaces the cached keys of username with the
// persisted ones. A failed read leaves the cache as it is.
func (c *characterService) reloadCharacterKeys(ctx context.Context, s *session.Session, username string) {
	log := logger.FromContext(ctx)

	keys, err := c.characterRepository.ListCharacterKeys(ctx, username)
	if err != nil {
		log.Err(err).Str("func", "*characterService.reloadCharacterKeys").Str("username", username).Msg("error reloading character keys")
		return
	}
	s.ReplaceCharacterKeys(keys)
}
