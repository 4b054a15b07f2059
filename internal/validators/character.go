package validators

import (
	"context"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-spellbook/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldUsername   = "username"
	FieldSnakeName  = "snake_name"
	FieldProperName = "proper_name"

	// FieldUpdatePresent requires at least one field of a CharacterUpdate.
	FieldUpdatePresent = "update_present"
	FieldLocked        = "locked"
	FieldSpells        = "spells"

	FieldSpellLevel = "level"

	// FieldReferenceKey validates a reference API key (spell or class index).
	FieldReferenceKey = "reference_key"
)

const (
	MinSpellLevel = 0
	MaxSpellLevel = 9
)

var referenceKeyPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// CharacterValidator implements the Validator interface for characters,
// character updates, spell filters and reference keys.
type CharacterValidator struct{}

func NewCharacterValidator() Validator {
	return &CharacterValidator{}
}

// Validate dispatches on the dynamic type of obj.
//
// Supported types:
//   - models.Character / *models.Character (creation input)
//   - models.CharacterUpdate / *models.CharacterUpdate
//   - models.SpellFilter / *models.SpellFilter
//   - string, validated as a reference key
//
// Returns ErrUnsupportedType if obj does not match any known type.
func (v *CharacterValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Character:
		return v.validateCharacter(ctx, value, fields...)
	case *models.Character:
		return v.validateCharacter(ctx, *value, fields...)

	case models.CharacterUpdate:
		return v.validateCharacterUpdate(ctx, value, fields...)
	case *models.CharacterUpdate:
		return v.validateCharacterUpdate(ctx, *value, fields...)

	case models.SpellFilter:
		return v.validateSpellFilter(ctx, value, fields...)
	case *models.SpellFilter:
		return v.validateSpellFilter(ctx, *value, fields...)

	case string:
		return v.validateReferenceKey(ctx, value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateCharacter checks a character about to be created.
//
// Default validated fields: Username, SnakeName, ProperName.
func (v *CharacterValidator) validateCharacter(_ context.Context, character models.Character, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldSnakeName, FieldProperName}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if character.Username == "" {
				return ErrEmptyUsername
			}
		case FieldSnakeName:
			if character.SnakeName == "" {
				return ErrEmptySnakeName
			}
		case FieldProperName:
			if character.ProperName == "" {
				return ErrEmptyProperName
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateCharacterUpdate checks a partial character update.
//
// Default validated fields: presence, locked, spells.
func (v *CharacterValidator) validateCharacterUpdate(_ context.Context, update models.CharacterUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUpdatePresent, FieldLocked, FieldSpells}
	}

	for _, f := range fields {
		switch f {
		case FieldUpdatePresent:
			if update.IsEmpty() {
				return ErrNoFieldsToUpdate
			}
		case FieldLocked:
			if update.Locked != nil && *update.Locked != models.LockedTrue && *update.Locked != models.LockedFalse {
				return ErrInvalidLockedValue
			}
		case FieldSpells:
			if update.Spells != nil && !isValidSpellList(*update.Spells) {
				return ErrInvalidSpellList
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CharacterValidator) validateSpellFilter(_ context.Context, filter models.SpellFilter, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSpellLevel}
	}

	for _, f := range fields {
		switch f {
		case FieldSpellLevel:
			if filter.Level != nil && (*filter.Level < MinSpellLevel || *filter.Level > MaxSpellLevel) {
				return ErrInvalidSpellLevel
			}
			if filter.School != "" && !referenceKeyPattern.MatchString(filter.School) {
				return ErrInvalidReferenceKey
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CharacterValidator) validateReferenceKey(_ context.Context, key string, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldReferenceKey}
	}

	for _, f := range fields {
		switch f {
		case FieldReferenceKey:
			if !referenceKeyPattern.MatchString(key) {
				return ErrInvalidReferenceKey
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// isValidSpellList accepts "" or keys joined by the spell separator.
func isValidSpellList(spells string) bool {
	if spells == "" {
		return true
	}
	for _, key := range strings.Split(spells, models.SpellSeparator) {
		if !referenceKeyPattern.MatchString(key) {
			return false
		}
	}
	return true
}
