// Package filelist maintains the ordered set of files a rename pass operates
// on. Order is significant: number blocks count along it, so the list offers
// explicit reorder operations plus a natural sort that keeps file2 ahead of
// file10.
package filelist
