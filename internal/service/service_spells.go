package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-spellbook/internal/adapter"
	"github.com/MKhiriev/go-spellbook/internal/logger"
	"github.com/MKhiriev/go-spellbook/internal/validators"
	"github.com/MKhiriev/go-spellbook/models"
)

type spellService struct {
	spellAPI  adapter.SpellAPIAdapter
	validator validators.Validator

	logger *logger.Logger
}

func NewSpellService(spellAPI adapter.SpellAPIAdapter, validator validators.Validator, logger *logger.Logger) SpellService {
	return &spellService{
		spellAPI:  spellAPI,
		validator: validator,
		logger:    logger,
	}
}

func (s *spellService) GetSpell(ctx context.Context, key string) (models.Spell, error) {
	if err := s.validator.Validate(ctx, key); err != nil {
		return models.Spell{}, fmt.Errorf("%w: %w", ErrInvalidSpellQuery, err)
	}

	spell, err := s.spellAPI.GetSpell(ctx, key)
	if err != nil {
		return models.Spell{}, s.mapAdapterError(ctx, err, ErrSpellNotFound, "*spellService.GetSpell")
	}
	return spell, nil
}

func (s *spellService) ListSpells(ctx context.Context, filter models.SpellFilter) (models.APIReferenceList, error) {
	if err := s.validator.Validate(ctx, filter); err != nil {
		return models.APIReferenceList{}, fmt.Errorf("%w: %w", ErrInvalidSpellQuery, err)
	}

	spells, err := s.spellAPI.ListSpells(ctx, filter)
	if err != nil {
		return models.APIReferenceList{}, s.mapAdapterError(ctx, err, ErrSpellNotFound, "*spellService.ListSpells")
	}
	return spells, nil
}

func (s *spellService) GetClass(ctx context.Context, key string) (models.Class, error) {
	if err := s.validator.Validate(ctx, key); err != nil {
		return models.Class{}, fmt.Errorf("%w: %w", ErrInvalidSpellQuery, err)
	}

	class, err := s.spellAPI.GetClass(ctx, key)
	if err != nil {
		return models.Class{}, s.mapAdapterError(ctx, err, ErrClassNotFound, "*spellService.GetClass")
	}
	return class, nil
}

func (s *spellService) ListClassSpells(ctx context.Context, key string) (models.APIReferenceList, error) {
	if err := s.validator.Validate(ctx, key); err != nil {
		return models.APIReferenceList{}, fmt.Errorf("%w: %w", ErrInvalidSpellQuery, err)
	}

	spells, err := s.spellAPI.ListClassSpells(ctx, key)
	if err != nil {
		return models.APIReferenceList{}, s.mapAdapterError(ctx, err, ErrClassNotFound, "*spellService.ListClassSpells")
	}
	return spells, nil
}

// mapAdapterError turns an upstream 404 into notFound and every other
// upstream failure into ErrReferenceUnavailable.
func (s *spellService) mapAdapterError(ctx context.Context, err, notFound error, fn string) error {
	if errors.Is(err, adapter.ErrNotFound) {
		return notFound
	}

	logger.FromContext(ctx).Err(err).Str("func", fn).Msg("reference api request failed")
	return fmt.Errorf("%w: %w", ErrReferenceUnavailable, err)
}
