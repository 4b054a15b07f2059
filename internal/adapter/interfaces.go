// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client of the public reference spell API
// (a dnd5eapi.co compatible REST service).
//
// The primary abstraction is [SpellAPIAdapter], which decouples the service
// layer from the transport. Error values defined in errors.go are mapped from
// HTTP status codes by mapHTTPError so that callers can use [errors.Is]
// (e.g. [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-spellbook/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/spell_api_adapter_mock.go -package=mock

// SpellAPIAdapter reads the reference spell API. It never writes to it.
type SpellAPIAdapter interface {
	// GetSpell fetches spells/{key}.
	GetSpell(ctx context.Context, key string) (models.Spell, error)

	// ListSpells fetches spells filtered by level and/or school.
	ListSpells(ctx context.Context, filter models.SpellFilter) (models.APIReferenceList, error)

	// GetClass fetches classes/{key}.
	GetClass(ctx context.Context, key string) (models.Class, error)

	// ListClassSpells fetches classes/{key}/spells.
	ListClassSpells(ctx context.Context, key string) (models.APIReferenceList, error)
}
