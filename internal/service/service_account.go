package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-spellbook/internal/logger"
	"github.com/MKhiriev/go-spellbook/internal/session"
	"github.com/MKhiriev/go-spellbook/internal/store"
	"github.com/MKhiriev/go-spellbook/models"
)

// accountService implements AccountService.
//
// An account has no row of its own: it is a username in the shared mirror
// until its first character is persisted. Such an account is a draft, and a
// draft is discarded when the session moves away from it.
type accountService struct {
	characterRepository store.CharacterRepository

	// usernames is the mirror shared by every session.
	usernames *session.KnownSet

	logger *logger.Logger
}

func NewAccountService(characterRepository store.CharacterRepository, usernames *session.KnownSet, logger *logger.Logger) AccountService {
	return &accountService{
		characterRepository: characterRepository,
		usernames:           usernames,
		logger:              logger,
	}
}

// ListUsers reads the distinct persisted usernames and pins them in the
// mirror. Draft accounts already present in the mirror are kept.
func (a *accountService) ListUsers(ctx context.Context) ([]string, error) {
	log := logger.FromContext(ctx)

	usernames, err := a.characterRepository.ListUsernames(ctx)
	if err != nil {
		log.Err(err).Str("func", "*accountService.ListUsers").Msg("error listing usernames")
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	a.usernames.Pin(usernames...)

	return usernames, nil
}

// CreateAccount registers username in the mirror and makes it the active
// draft account. The previously active account is discarded if it was a
// draft.
//
// Returns:
//   - ErrMissingParameters if username is empty;
//   - ErrUsernameTaken if the username is already known.
func (a *accountService) CreateAccount(ctx context.Context, s *session.Session, username string) (models.Account, error) {
	log := logger.FromContext(ctx)

	if username == "" {
		return models.Account{}, ErrMissingParameters
	}

	s.Lock()
	defer s.Unlock()

	if !s.NoteUsername(username) {
		log.Debug().Str("func", "*accountService.CreateAccount").Str("username", username).Msg("username already taken")
		return models.Account{}, ErrUsernameTaken
	}

	if draft, ok := s.DiscardDraft(); ok {
		log.Info().Str("func", "*accountService.CreateAccount").Str("draft", draft).Msg("draft account discarded")
	}
	s.ActivateAccount(username, nil)

	log.Info().Str("func", "*accountService.CreateAccount").Str("username", username).Msg("account created")

	return models.Account{Username: username}, nil
}

// Login switches the session to username and returns its character rows.
// On any failure the session stays where it was: unlike a switch that
// succeeds, a rejected login does not discard the current draft account.
//
// Returns:
//   - ErrMissingParameters if username is empty;
//   - ErrAlreadyLoggedIn if username is the active account;
//   - ErrAccountNotFound if username is not a known username;
//   - ErrStorage if the characters cannot be read.
func (a *accountService) Login(ctx context.Context, s *session.Session, username string) ([]models.Character, error) {
	log := logger.FromContext(ctx)

	if username == "" {
		return nil, ErrMissingParameters
	}

	s.Lock()
	defer s.Unlock()

	if active, ok := s.ActiveAccount(); ok && active == username {
		return nil, ErrAlreadyLoggedIn
	}
	if !s.KnowsUsername(username) {
		log.Debug().Str("func", "*accountService.Login").Str("username", username).Msg("unknown username")
		return nil, ErrAccountNotFound
	}

	characters, err := a.characterRepository.ListCharacters(ctx, username)
	if err != nil {
		log.Err(err).Str("func", "*accountService.Login").Str("username", username).Msg("error opening account")
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	keys := make([]string, 0, len(characters))
	for _, character := range characters {
		keys = append(keys, character.SnakeName)
	}
	if len(keys) > 0 {
		s.PinUsername(username)
	}

	if draft, ok := s.DiscardDraft(); ok {
		log.Info().Str("func", "*accountService.Login").Str("draft", draft).Msg("draft account discarded")
	}
	s.ActivateAccount(username, keys)

	log.Info().Str("func", "*accountService.Login").
		Str("username", username).
		Int("characters", len(characters)).
		Msg("logged into account")

	return characters, nil
}

func (a *accountService) Logout(ctx context.Context, s *session.Session) (models.Account, error) {
	log := logger.FromContext(ctx)

	s.Lock()
	defer s.Unlock()

	username, ok := s.ActiveAccount()
	if !ok {
		return models.Account{}, ErrNoActiveAccount
	}

	if draft, ok := s.DiscardDraft(); ok {
		log.Info().Str("func", "*accountService.Logout").Str("draft", draft).Msg("draft account discarded")
	}
	s.DeactivateAccount()

	log.Info().Str("func", "*accountService.Logout").Str("username", username).Msg("logged out of account")

	return models.Account{Username: username}, nil
}

// DeleteAccount deletes every row of the active account and forgets its
// username. Deleting a draft account deletes zero rows and succeeds.
func (a *accountService) DeleteAccount(ctx context.Context, s *session.Session) (models.Account, error) {
	log := logger.FromContext(ctx)

	s.Lock()
	defer s.Unlock()

	username, ok := s.ActiveAccount()
	if !ok {
		return models.Account{}, ErrNoActiveAccount
	}

	rows, err := a.characterRepository.DeleteAccount(ctx, username)
	if err != nil {
		log.Err(err).Str("func", "*accountService.DeleteAccount").Str("username", username).Msg("error deleting account")
		return models.Account{}, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	s.ForgetUsername(username)
	s.DeactivateAccount()

	log.Info().Str("func", "*accountService.DeleteAccount").
		Str("username", username).
		Int64("characters", rows).
		Msg("account deleted")

	return models.Account{Username: username}, nil
}
