// Package textutil sanitizes generated filenames. Templates can produce
// arbitrary text through literal and date blocks, including path separators
// that would move a file out of its directory; the sanitizer keeps every
// target a plain filename.
package textutil
