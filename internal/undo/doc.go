// Package undo records committed rename batches and reverses the most recent
// one on request. The stack is last-in-first-undone; there is no redo.
package undo
