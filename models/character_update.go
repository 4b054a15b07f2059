package models

// CharacterUpdate is a partial update of the active character.
// Only non-nil fields are written; all of them in a single statement.
type CharacterUpdate struct {
	// Spells replaces the comma-delimited spell list. An empty string is a
	// legitimate value (an emptied spellbook) and is written as-is.
	Spells *string `json:"spells,omitempty"`

	// BorderColor replaces the border color.
	BorderColor *string `json:"border_color,omitempty"`

	// Class replaces the class key.
	Class *string `json:"class,omitempty"`

	// Locked replaces the lock flag ("true" or "false").
	Locked *string `json:"locked,omitempty"`
}

// IsEmpty reports whether no field at all was provided.
func (u CharacterUpdate) IsEmpty() bool {
	return u.Spells == nil && u.BorderColor == nil && u.Class == nil && u.Locked == nil
}

// Unlocks reports whether the update explicitly clears the lock flag.
func (u CharacterUpdate) Unlocks() bool {
	return u.Locked != nil && *u.Locked == LockedFalse
}

// WithoutBlanks returns a copy of u where empty BorderColor and Class are
// dropped. Those two columns never receive an empty value.
func (u CharacterUpdate) WithoutBlanks() CharacterUpdate {
	if u.BorderColor != nil && *u.BorderColor == "" {
		u.BorderColor = nil
	}
	if u.Class != nil && *u.Class == "" {
		u.Class = nil
	}
	return u
}
