// Package template models block-based naming templates and expands them into
// target filenames for an ordered batch of files.
package template
