package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-spellbook/models"
)

const accountsTable = "accounts"

var characterColumns = []string{
	"username",
	"snake_name",
	"proper_name",
	"border_color",
	"spells",
	"class",
	"locked",
}

func (db *DB) buildListUsernamesQuery() sq.SelectBuilder {
	return db.builder.
		Select("DISTINCT username").
		From(accountsTable).
		OrderBy("username")
}

func (db *DB) buildListCharactersQuery(username string) sq.SelectBuilder {
	return db.builder.
		Select(characterColumns...).
		From(accountsTable).
		Where(sq.Eq{"username": username}).
		OrderBy("snake_name")
}

func (db *DB) buildListCharacterKeysQuery(username string) sq.SelectBuilder {
	return db.builder.
		Select("snake_name").
		From(accountsTable).
		Where(sq.Eq{"username": username}).
		OrderBy("snake_name")
}

func (db *DB) buildSelectCharacterQuery(username, snakeName string) sq.SelectBuilder {
	return db.builder.
		Select(characterColumns...).
		From(accountsTable).
		Where(sq.Eq{"username": username, "snake_name": snakeName})
}

// buildSelectLockQuery reads the lock flag of one row. On PostgreSQL the row
// stays locked until the surrounding transaction ends. SQLite transactions
// hold the database write lock from BEGIN on (see sqliteDSN).
func (db *DB) buildSelectLockQuery(username, snakeName string) sq.SelectBuilder {
	query := db.builder.
		Select("locked").
		From(accountsTable).
		Where(sq.Eq{"username": username, "snake_name": snakeName})
	if db.dialect == DialectPostgres {
		query = query.Suffix("FOR UPDATE")
	}
	return query
}

func (db *DB) buildInsertCharacterQuery(character models.Character) sq.InsertBuilder {
	return db.builder.
		Insert(accountsTable).
		Columns(characterColumns...).
		Values(
			character.Username,
			character.SnakeName,
			character.ProperName,
			character.BorderColor,
			character.Spells,
			character.Class,
			character.Locked,
		)
}

// buildUpdateCharacterQuery writes every non-nil field of update in one
// statement. ok is false when there is nothing to write.
func (db *DB) buildUpdateCharacterQuery(username, snakeName string, update models.CharacterUpdate) (query sq.UpdateBuilder, ok bool) {
	query = db.builder.Update(accountsTable)

	if update.Spells != nil {
		query = query.Set("spells", *update.Spells)
		ok = true
	}
	if update.BorderColor != nil {
		query = query.Set("border_color", *update.BorderColor)
		ok = true
	}
	if update.Class != nil {
		query = query.Set("class", *update.Class)
		ok = true
	}
	if update.Locked != nil {
		query = query.Set("locked", *update.Locked)
		ok = true
	}

	return query.Where(sq.Eq{"username": username, "snake_name": snakeName}), ok
}

func (db *DB) buildDeleteCharacterQuery(username, snakeName string) sq.DeleteBuilder {
	return db.builder.
		Delete(accountsTable).
		Where(sq.Eq{"username": username, "snake_name": snakeName})
}

func (db *DB) buildDeleteAccountQuery(username string) sq.DeleteBuilder {
	return db.builder.
		Delete(accountsTable).
		Where(sq.Eq{"username": username})
}

func scanCharacter(row Scanner, character *models.Character) error {
	return row.Scan(
		&character.Username,
		&character.SnakeName,
		&character.ProperName,
		&character.BorderColor,
		&character.Spells,
		&character.Class,
		&character.Locked,
	)
}
