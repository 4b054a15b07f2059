// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import "sync"

// Session is the state of one browser session.
//
// Invariants:
//   - activeCharacter is set only while activeAccount is set;
//   - characterKeys holds the keys persisted under activeAccount as of the
//     last account switch or character create/delete;
//   - hasPersistedCharacter is false while this session has seen no
//     persisted character under activeAccount;
//   - activeAccount, while set, is held in the shared usernames.
type Session struct {
	mu sync.Mutex

	id        string
	usernames *KnownSet

	activeAccount         string
	activeCharacter       string
	characterKeys         *KnownSet
	hasPersistedCharacter bool
}

func newSession(id string, usernames *KnownSet) *Session {
	return &Session{
		id:            id,
		usernames:     usernames,
		characterKeys: NewKnownSet(),
	}
}

// New returns a detached session sharing usernames. Sessions served over
// HTTP come from a [Manager]; New is meant for tools and tests.
func New(id string, usernames *KnownSet) *Session {
	return newSession(id, usernames)
}

// Lock takes the session for the duration of one operation.
func (s *Session) Lock() { s.mu.Lock() }

// Unlock releases the session.
func (s *Session) Unlock() { s.mu.Unlock() }

func (s *Session) ID() string { return s.id }

// NoteUsername adds name to the known usernames and reports whether it was
// absent.
func (s *Session) NoteUsername(name string) bool {
	return s.usernames.Add(name)
}

// ForgetUsername removes name from the known usernames.
func (s *Session) ForgetUsername(name string) {
	s.usernames.Remove(name)
}

// KnowsUsername reports whether name is a known username.
func (s *Session) KnowsUsername(name string) bool {
	return s.usernames.Contains(name)
}

// PinUsername marks name as an account with rows in storage. A pinned
// username is never discarded as a draft.
func (s *Session) PinUsername(name string) {
	s.usernames.Pin(name)
}

// ActivateAccount makes name the active account with the given persisted
// character keys. The active character is cleared.
func (s *Session) ActivateAccount(name string, characterKeys []string) {
	if s.activeAccount != name {
		s.releaseAccount()
		s.usernames.Hold(name)
	}
	s.activeAccount = name
	s.activeCharacter = ""
	s.characterKeys.Replace(characterKeys)
	s.hasPersistedCharacter = len(characterKeys) > 0
}

// DiscardDraft evicts the active account from the known usernames when it
// is a draft, and returns the evicted name. An account is a draft when this
// session saw no persisted character under it, the username is not pinned
// and no other session has it active. DiscardDraft does not change the
// active account itself.
func (s *Session) DiscardDraft() (string, bool) {
	if s.activeAccount == "" || s.hasPersistedCharacter {
		return "", false
	}
	if !s.usernames.Evict(s.activeAccount) {
		return "", false
	}
	return s.activeAccount, true
}

// ActivateCharacter selects key. It reports false, and changes nothing, when
// there is no active account or key is not a known character key.
func (s *Session) ActivateCharacter(key string) bool {
	if s.activeAccount == "" || !s.characterKeys.Contains(key) {
		return false
	}
	s.activeCharacter = key
	s.hasPersistedCharacter = true
	return true
}

func (s *Session) DeactivateCharacter() {
	s.activeCharacter = ""
}

func (s *Session) DeactivateAccount() {
	s.releaseAccount()
	s.activeAccount = ""
	s.activeCharacter = ""
	s.characterKeys.Replace(nil)
	s.hasPersistedCharacter = false
}

// Expire is the transition run when the session is dropped for idleness:
// a draft account is discarded and the session is emptied.
func (s *Session) Expire() {
	s.DiscardDraft()
	s.DeactivateAccount()
}

// AddCharacterKey records a newly persisted character of the active account.
func (s *Session) AddCharacterKey(key string) {
	s.characterKeys.Add(key)
	s.hasPersistedCharacter = true
}

// RemoveCharacterKey forgets key. Removing the last key turns the active
// account back into a draft; removing the active character deselects it.
func (s *Session) RemoveCharacterKey(key string) {
	s.characterKeys.Remove(key)
	if s.activeCharacter == key {
		s.activeCharacter = ""
	}
	s.hasPersistedCharacter = s.characterKeys.Len() > 0
}

// ReplaceCharacterKeys resynchronizes the character keys with storage.
func (s *Session) ReplaceCharacterKeys(keys []string) {
	s.characterKeys.Replace(keys)
	if s.activeCharacter != "" && !s.characterKeys.Contains(s.activeCharacter) {
		s.activeCharacter = ""
	}
	s.hasPersistedCharacter = len(keys) > 0
}

func (s *Session) HasCharacterKey(key string) bool {
	return s.characterKeys.Contains(key)
}

func (s *Session) CharacterKeys() []string {
	return s.characterKeys.Items()
}

// ActiveAccount returns the active account and whether one is set.
func (s *Session) ActiveAccount() (string, bool) {
	return s.activeAccount, s.activeAccount != ""
}

// ActiveCharacter returns the active character key and whether one is set.
func (s *Session) ActiveCharacter() (string, bool) {
	return s.activeCharacter, s.activeCharacter != ""
}

func (s *Session) HasPersistedCharacter() bool {
	return s.hasPersistedCharacter
}

func (s *Session) releaseAccount() {
	if s.activeAccount != "" {
		s.usernames.Release(s.activeAccount)
	}
}
