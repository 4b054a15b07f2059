// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks user-supplied spellbook input before it reaches
// storage or the reference API.
//
// One [Validator] handles every input type: new characters, partial character
// updates, spell filters and reference keys. Callers may name the fields to
// check; unnamed fields are then ignored.
package validators

import "context"

// Validator validates obj, restricted to fields when any are given.
// The returned error wraps one of the package sentinels.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
