package models

// APIReference is a short link to an entry of the reference spell API.
type APIReference struct {
	Index string `json:"index"`
	Name  string `json:"name"`
	URL   string `json:"url"`
}

// APIReferenceList is the list envelope returned by the reference API for
// filtered listings (spells by level or school, spells of a class).
type APIReferenceList struct {
	Count   int            `json:"count"`
	Results []APIReference `json:"results"`
}

// Spell is the subset of a reference API spell that the spellbook renders.
type Spell struct {
	Index         string         `json:"index"`
	Name          string         `json:"name"`
	Desc          []string       `json:"desc"`
	HigherLevel   []string       `json:"higher_level,omitempty"`
	Range         string         `json:"range"`
	Components    []string       `json:"components"`
	Material      string         `json:"material,omitempty"`
	Ritual        bool           `json:"ritual"`
	Duration      string         `json:"duration"`
	Concentration bool           `json:"concentration"`
	CastingTime   string         `json:"casting_time"`
	Level         int            `json:"level"`
	School        APIReference   `json:"school"`
	Classes       []APIReference `json:"classes,omitempty"`
	URL           string         `json:"url"`
}

// Class is the subset of a reference API character class that the
// spellbook shows next to a character.
type Class struct {
	Index  string `json:"index"`
	Name   string `json:"name"`
	HitDie int    `json:"hit_die"`
	Spells string `json:"spells,omitempty"`
	URL    string `json:"url"`
}

// SpellFilter narrows a spell listing. Zero fields are not sent.
type SpellFilter struct {
	// Level is the spell level 0..9; nil means any level.
	Level *int
	// School is the school of magic key (e.g. "evocation").
	School string
}
