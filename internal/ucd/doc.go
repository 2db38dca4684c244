// Package ucd reads character names out of Unicode Character Database
// sources and turns them into raw name → code point associations.
//
// Supported sources:
//
//   - UnicodeData.txt (and the trimmed "CODE;NAME" tables derived from it)
//   - NameAliases.txt
//   - ucd.all.flat.xml
//
// Any of them may be gzip, zstd or zip compressed; see Open.
// The associations returned are unordered and may contain duplicate
// names. index.SortDedup turns them into a buildable table.
package ucd
