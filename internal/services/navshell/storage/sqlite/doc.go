// Package sqlite provides the SQLite-backed navshell store for users and web
// sessions.
package sqlite
