// Package file provides the TOML configuration store.
//
// The configuration lives in config.toml inside the runepick config
// directory (see ConfigDir). Nested tables are exposed as dotted keys:
//
//	[search]
//	limit = 20
//
// is read with GetInt("search.limit").
package file
