// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the client-facing message strings written by the
// spellbook HTTP handlers.
//
// The Msg*Failed constants are the generic per-operation bodies sent with a
// 500 response. Storage and reference-API detail never reaches the client;
// it is only logged.
package app

// Per-operation failure bodies.
const (
	MsgUsersFailed           = "Server error. User compilation failed."
	MsgCreateAccountFailed   = "Server error encountered while creating this account."
	MsgOpenAccountFailed     = "Server error encountered while trying to open account."
	MsgLogoutFailed          = "Server error encountered while logging out."
	MsgDeleteFailed          = "Server error encountered while attempting to delete this character."
	MsgCreateCharacterFailed = "Server error encountered while creating this character."
	MsgGetCharacterFailed    = "Server error encountered while attempting to retrieve character."
	MsgSaveCharacterFailed   = "Server error encountered while attempting to save this character."
	MsgReferenceFailed       = "Server error encountered while reading the spell reference."
)

// Rejection bodies sent with 4xx responses.
const (
	MsgMissingParameters   = "Missing required parameters."
	MsgInvalidLocked       = `Locked must be "true" or "false".`
	MsgInvalidSpellList    = "Spells must be a comma-separated list of spell keys."
	MsgInvalidSpellLevel   = "Spell level must be an integer between 0 and 9."
	MsgInvalidReferenceKey = "Invalid spell or class name."

	MsgNotLoggedIn     = "Not logged into an account."
	MsgNoCharacter     = "No character selected."
	MsgUsernameTaken   = "Account with that username already exists. Please try something else."
	MsgAlreadyLoggedIn = "Already logged into that account."
	MsgNoSuchAccount   = "No account with that username exists."
	MsgCharacterExists = "Character with that name already exists in your account. Please try another name."
	MsgNoSuchCharacter = "Character with that name does not exist."
	MsgCharacterLocked = "Character is locked. Unlock it before changing its spells."
	MsgNoSuchSpell     = "No spell with that name exists."
	MsgNoSuchClass     = "No class with that name exists."
	MsgReferenceDown   = "Spell reference is unavailable. Please try again later."
	MsgInvalidRequest  = "Invalid request."
	MsgConflict        = "Request conflicts with existing data."
	MsgRepeatedState   = "Request repeats the current state."
	MsgNotFound        = "Requested data does not exist."
	MsgInvalidBody     = "Invalid request body."
	MsgCharacterSaved  = "Character update successful."
)
