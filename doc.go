// Package celes maps between the representations of an ISO 3166-1 country:
// the three digit numeric code, the alpha-2 and alpha-3 letter codes, the
// official long name and common informal aliases.
//
// The whole data set is compiled in. There is no I/O, no configuration and no
// mutable state: the table is built once and every lookup is a read against
// it, so the package is safe for concurrent use.
//
// A country can be resolved from any single representation:
//
//	us, _ := celes.FromAlpha2("us")
//	de, _ := celes.FromValue(276)
//	gb, _ := celes.FromAlias("Scotland")
//	fr, _ := celes.FromName("France")
//
// If the representation at hand is not known in advance, FromString accepts
// any of them and tries numeric code, alpha-2, alpha-3, alias and long name
// in that order:
//
//	c, _ := celes.FromString("USA")     // alpha-3
//	c, _ = celes.FromString("840")      // numeric
//	c, _ = celes.FromString("America")  // alias
//
// All lookups are case-insensitive, and names and aliases additionally ignore
// spaces and underscores, so "aland_islands", "AlandIslands" and
// "ALAND ISLANDS" resolve identically. A query that matches nothing fails
// with an error wrapping ErrNotFound; lookups never fail in any other way.
package celes
