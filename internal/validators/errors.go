package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyUsername       = errors.New("username is required")
	ErrEmptySnakeName      = errors.New("character key is required")
	ErrEmptyProperName     = errors.New("character name is required")
	ErrNoFieldsToUpdate    = errors.New("at least one field must be provided for update")
	ErrInvalidLockedValue  = errors.New(`locked must be "true" or "false"`)
	ErrInvalidSpellList    = errors.New("spells must be a comma-separated list of spell keys")
	ErrInvalidSpellLevel   = errors.New("spell level must be between 0 and 9")
	ErrInvalidReferenceKey = errors.New("invalid reference key")
)
