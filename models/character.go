// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

const (
	// DefaultBorderColor is the border color given to every newly created character.
	DefaultBorderColor = "gold"
	// LockedTrue and LockedFalse are the only two values the locked column holds.
	LockedTrue  = "true"
	LockedFalse = "false"
	// SpellSeparator delimits spell keys inside the spells column.
	SpellSeparator = ","
)

// Character is a single persisted row of the accounts table: one character
// owned by one account. The pair (Username, SnakeName) identifies it.
type Character struct {
	// Username is the owning account.
	Username string `json:"username"`

	// SnakeName is the normalized character key, unique per account.
	SnakeName string `json:"snake_name"`

	// ProperName is the human-readable display name.
	ProperName string `json:"proper_name"`

	// BorderColor is the spellbook border color (CSS color name or hex code).
	BorderColor string `json:"border_color"`

	// Spells is the comma-delimited list of spell keys, or nil when no
	// spell list was ever saved.
	Spells *string `json:"spells"`

	// Class is the reference API class key, or nil when unset.
	Class *string `json:"class"`

	// Locked is the string-typed lock flag: "true" or "false".
	Locked string `json:"locked"`
}

// NewCharacter returns a character row carrying the creation defaults.
func NewCharacter(username, snakeName, properName string) Character {
	return Character{
		Username:    username,
		SnakeName:   snakeName,
		ProperName:  properName,
		BorderColor: DefaultBorderColor,
		Locked:      LockedFalse,
	}
}

// IsLocked reports whether the spell selection of the character is locked.
func (c Character) IsLocked() bool {
	return c.Locked == LockedTrue
}

// SpellKeys splits the stored spell list into individual keys.
// A nil or empty list yields nil.
func (c Character) SpellKeys() []string {
	if c.Spells == nil || *c.Spells == "" {
		return nil
	}
	return strings.Split(*c.Spells, SpellSeparator)
}

// TableName returns the name of the database table
// associated with the Character model.
func (c Character) TableName() string {
	return "accounts"
}

// DeletedCharacter identifies a character that was just removed.
type DeletedCharacter struct {
	Character string `json:"character"`
	Username  string `json:"username"`
}
