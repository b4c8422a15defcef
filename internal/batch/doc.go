// Package batch plans and executes staged rename batches. A batch moves every
// entry to a uniquely named temp path in its own directory before committing
// to final names, so renames within the batch can reorder freely and any
// failure can be rolled back.
package batch
