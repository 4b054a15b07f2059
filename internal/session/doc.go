// Package session holds the server-side state of browser sessions.
//
// A [Session] tracks the active account, the active character and the
// character keys persisted under the active account. The set of known
// usernames is shared by every session and lives in the [Manager] as a
// [KnownSet].
//
// Session methods do not lock by themselves: the caller takes the lock with
// [Session.Lock] for the whole operation it performs, so that a multi-step
// transition is observed atomically by other requests of the same session.
package session
