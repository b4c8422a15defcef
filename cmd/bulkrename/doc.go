// Package main hosts the bulkrename CLI entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into preview,
// apply, and undo passes over the rename engine, plus template and history
// maintenance against the SQLite store. It centralizes configuration
// resolution, store access, the apply/undo file lock, and structured logging
// setup so subcommands can focus on user experience instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
