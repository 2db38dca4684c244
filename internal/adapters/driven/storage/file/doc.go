// Package file persists saved aliases as a TOML document:
//
//	[saved]
//	smile = "😀"
//	alpha = "α"
//
// Writes go through a temp file and rename, so an interrupted save
// leaves the previous document in place.
package file
