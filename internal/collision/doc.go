// Package collision resolves naming conflicts between a desired rename target
// and files already present on disk.
package collision
