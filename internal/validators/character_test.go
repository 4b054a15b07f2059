// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-spellbook/models"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestNewCharacterValidator(t *testing.T) {
	require.NotNil(t, NewCharacterValidator())
}

// ---------------------------------------------------------------------------
// Dispatch
// ---------------------------------------------------------------------------

func TestValidate_Dispatch(t *testing.T) {
	v := NewCharacterValidator()
	ctx := context.Background()

	character := models.NewCharacter("wizard1", "gandalf", "Gandalf")
	assert.NoError(t, v.Validate(ctx, character))
	assert.NoError(t, v.Validate(ctx, &character))

	update := models.CharacterUpdate{Class: strPtr("wizard")}
	assert.NoError(t, v.Validate(ctx, update))
	assert.NoError(t, v.Validate(ctx, &update))

	assert.NoError(t, v.Validate(ctx, models.SpellFilter{Level: intPtr(3)}))
	assert.NoError(t, v.Validate(ctx, "fire-bolt"))

	assert.ErrorIs(t, v.Validate(ctx, 42), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, character, "nope"), ErrUnknownField)
}

// ---------------------------------------------------------------------------
// Character
// ---------------------------------------------------------------------------

func TestValidateCharacter(t *testing.T) {
	v := NewCharacterValidator()
	ctx := context.Background()

	tests := []struct {
		name      string
		character models.Character
		wantErr   error
	}{
		{name: "valid", character: models.NewCharacter("u", "k", "K")},
		{name: "no username", character: models.NewCharacter("", "k", "K"), wantErr: ErrEmptyUsername},
		{name: "no key", character: models.NewCharacter("u", "", "K"), wantErr: ErrEmptySnakeName},
		{name: "no name", character: models.NewCharacter("u", "k", ""), wantErr: ErrEmptyProperName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.character)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateCharacter_FieldScoping(t *testing.T) {
	v := NewCharacterValidator()
	// only the key is checked
	assert.NoError(t, v.Validate(context.Background(), models.Character{SnakeName: "k"}, FieldSnakeName))
}

// ---------------------------------------------------------------------------
// CharacterUpdate
// ---------------------------------------------------------------------------

func TestValidateCharacterUpdate(t *testing.T) {
	v := NewCharacterValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		update  models.CharacterUpdate
		wantErr error
	}{
		{name: "spells", update: models.CharacterUpdate{Spells: strPtr("fire-bolt,light")}},
		{name: "empty spells", update: models.CharacterUpdate{Spells: strPtr("")}},
		{name: "empty border color is present", update: models.CharacterUpdate{BorderColor: strPtr("")}},
		{name: "locked true", update: models.CharacterUpdate{Locked: strPtr("true")}},
		{name: "nothing", update: models.CharacterUpdate{}, wantErr: ErrNoFieldsToUpdate},
		{name: "locked yes", update: models.CharacterUpdate{Locked: strPtr("yes")}, wantErr: ErrInvalidLockedValue},
		{name: "spells with space", update: models.CharacterUpdate{Spells: strPtr("fire-bolt, light")}, wantErr: ErrInvalidSpellList},
		{name: "trailing comma", update: models.CharacterUpdate{Spells: strPtr("light,")}, wantErr: ErrInvalidSpellList},
		{name: "upper case", update: models.CharacterUpdate{Spells: strPtr("Light")}, wantErr: ErrInvalidSpellList},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.update)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ---------------------------------------------------------------------------
// SpellFilter / reference keys
// ---------------------------------------------------------------------------

func TestValidateSpellFilter(t *testing.T) {
	v := NewCharacterValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.SpellFilter{}))
	assert.NoError(t, v.Validate(ctx, models.SpellFilter{Level: intPtr(0)}))
	assert.NoError(t, v.Validate(ctx, models.SpellFilter{Level: intPtr(9), School: "evocation"}))
	assert.ErrorIs(t, v.Validate(ctx, models.SpellFilter{Level: intPtr(10)}), ErrInvalidSpellLevel)
	assert.ErrorIs(t, v.Validate(ctx, models.SpellFilter{Level: intPtr(-1)}), ErrInvalidSpellLevel)
	assert.ErrorIs(t, v.Validate(ctx, models.SpellFilter{School: "../admin"}), ErrInvalidReferenceKey)
}

func TestValidateReferenceKey(t *testing.T) {
	v := NewCharacterValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, "acid-arrow"))
	assert.NoError(t, v.Validate(ctx, "wizard"))
	assert.ErrorIs(t, v.Validate(ctx, ""), ErrInvalidReferenceKey)
	assert.ErrorIs(t, v.Validate(ctx, "spells/../x"), ErrInvalidReferenceKey)
}
