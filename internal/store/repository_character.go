package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-spellbook/internal/logger"
	"github.com/MKhiriev/go-spellbook/models"
)

// characterRepository is the SQL-backed implementation of
// [CharacterRepository] over the "accounts" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type characterRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCharacterRepository constructs a [CharacterRepository] backed by the
// provided database connection and logger.
func NewCharacterRepository(db *DB, logger *logger.Logger) CharacterRepository {
	logger.Debug().Msg("creating character repository")
	return &characterRepository{
		db:     db,
		logger: logger,
	}
}

func (r *characterRepository) ListUsernames(ctx context.Context) ([]string, error) {
	log := logger.FromContext(ctx)

	usernames := make([]string, 0)
	err := r.db.QueryAll(ctx, r.db.buildListUsernamesQuery(), func(row Scanner) error {
		var username string
		if err := row.Scan(&username); err != nil {
			return err
		}
		usernames = append(usernames, username)
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*characterRepository.ListUsernames").Msg("error listing usernames")
		return nil, err
	}

	return usernames, nil
}

func (r *characterRepository) ListCharacters(ctx context.Context, username string) ([]models.Character, error) {
	log := logger.FromContext(ctx)

	characters := make([]models.Character, 0)
	err := r.db.QueryAll(ctx, r.db.buildListCharactersQuery(username), func(row Scanner) error {
		var character models.Character
		if err := scanCharacter(row, &character); err != nil {
			return err
		}
		characters = append(characters, character)
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*characterRepository.ListCharacters").Str("username", username).Msg("error listing characters")
		return nil, err
	}

	return characters, nil
}

func (r *characterRepository) ListCharacterKeys(ctx context.Context, username string) ([]string, error) {
	log := logger.FromContext(ctx)

	keys := make([]string, 0)
	err := r.db.QueryAll(ctx, r.db.buildListCharacterKeysQuery(username), func(row Scanner) error {
		var key string
		if err := row.Scan(&key); err != nil {
			return err
		}
		keys = append(keys, key)
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*characterRepository.ListCharacterKeys").Str("username", username).Msg("error listing character keys")
		return nil, err
	}

	return keys, nil
}

// CreateCharacter inserts character as given and returns it.
//
// Error handling:
//   - primary key violation → [ErrCharacterAlreadyExists].
//   - any other driver-level error → returned wrapped.
func (r *characterRepository) CreateCharacter(ctx context.Context, character models.Character) (models.Character, error) {
	log := logger.FromContext(ctx)

	_, err := r.db.Execute(ctx, r.db.buildInsertCharacterQuery(character))
	if err != nil {
		if errors.Is(err, ErrUniqueViolation) {
			log.Warn().Str("func", "*characterRepository.CreateCharacter").
				Str("username", character.Username).
				Str("snake_name", character.SnakeName).
				Msg("character already exists")
			return models.Character{}, fmt.Errorf("%w: %w", ErrCharacterAlreadyExists, err)
		}
		log.Err(err).Str("func", "*characterRepository.CreateCharacter").Msg("error inserting character")
		return models.Character{}, err
	}

	log.Info().Str("func", "*characterRepository.CreateCharacter").
		Str("username", character.Username).
		Str("snake_name", character.SnakeName).
		Msg("character created")

	return character, nil
}

func (r *characterRepository) GetCharacter(ctx context.Context, username, snakeName string) (models.Character, error) {
	log := logger.FromContext(ctx)

	var character models.Character
	err := r.db.QueryOne(ctx, r.db.buildSelectCharacterQuery(username, snakeName), func(row Scanner) error {
		return scanCharacter(row, &character)
	})
	if errors.Is(err, ErrNoRows) {
		return models.Character{}, ErrCharacterNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*characterRepository.GetCharacter").
			Str("username", username).
			Str("snake_name", snakeName).
			Msg("error selecting character")
		return models.Character{}, err
	}

	return character, nil
}

// UpdateCharacter applies all fields of update in one transaction.
//
// The lock flag is read inside the same transaction: when the stored row is
// locked and update carries spells without unlocking, nothing is written and
// [ErrCharacterLocked] is returned. A missing row yields [ErrCharacterNotFound].
func (r *characterRepository) UpdateCharacter(ctx context.Context, username, snakeName string, update models.CharacterUpdate) error {
	log := logger.FromContext(ctx)

	err := r.db.InTx(ctx, func(tx *Tx) error {
		var locked string
		err := tx.QueryOne(ctx, r.db.buildSelectLockQuery(username, snakeName), func(row Scanner) error {
			return row.Scan(&locked)
		})
		if errors.Is(err, ErrNoRows) {
			return ErrCharacterNotFound
		}
		if err != nil {
			return err
		}

		if locked == models.LockedTrue && update.Spells != nil && !update.Unlocks() {
			return ErrCharacterLocked
		}

		query, ok := r.db.buildUpdateCharacterQuery(username, snakeName, update)
		if !ok {
			return nil
		}

		if _, err = tx.Execute(ctx, query); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*characterRepository.UpdateCharacter").
			Str("username", username).
			Str("snake_name", snakeName).
			Msg("error updating character")
		return err
	}

	log.Info().Str("func", "*characterRepository.UpdateCharacter").
		Str("username", username).
		Str("snake_name", snakeName).
		Msg("character updated")

	return nil
}

func (r *characterRepository) DeleteCharacter(ctx context.Context, username, snakeName string) error {
	log := logger.FromContext(ctx)

	affected, err := r.db.Execute(ctx, r.db.buildDeleteCharacterQuery(username, snakeName))
	if err != nil {
		log.Err(err).Str("func", "*characterRepository.DeleteCharacter").Msg("error deleting character")
		return err
	}

	log.Info().Str("func", "*characterRepository.DeleteCharacter").
		Str("username", username).
		Str("snake_name", snakeName).
		Int64("rows", affected).
		Msg("character deleted")

	return nil
}

func (r *characterRepository) DeleteAccount(ctx context.Context, username string) (int64, error) {
	log := logger.FromContext(ctx)

	affected, err := r.db.Execute(ctx, r.db.buildDeleteAccountQuery(username))
	if err != nil {
		log.Err(err).Str("func", "*characterRepository.DeleteAccount").Msg("error deleting account rows")
		return 0, err
	}

	log.Info().Str("func", "*characterRepository.DeleteAccount").
		Str("username", username).
		Int64("rows", affected).
		Msg("account deleted")

	return affected, nil
}
