// Package store persists named templates and the undo history in SQLite so
// templates and committed batches survive across CLI invocations. The rename
// engine itself owns no persisted state; this package is the application-side
// collaborator that feeds it.
package store
