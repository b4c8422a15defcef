// Package services defines the shared error taxonomy for the rename engine.
// Errors are tagged with sentinel markers so callers can classify failures
// without inspecting message text.
package services
