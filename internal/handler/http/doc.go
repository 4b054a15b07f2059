// Package http implements the HTTP surface of the spellbook.
//
// It maps the legacy browser routes (/newaccount, /login/{username},
// /savecharacter, ...) and the read-only spell reference routes under /api
// onto the service layer. Every request carries a trace id and is access
// logged. Account and character routes additionally resolve the caller's
// session from a signed cookie before the handler runs.
package http
