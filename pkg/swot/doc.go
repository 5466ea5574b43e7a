// Package swot holds the data model shared by every part of swotboard.
//
// # Overview
//
// A SWOT analysis is four ordered lists of labeled items, one per
// [Category]. Items are produced by [ParseList] from free-form user text and
// always carry a label of the form "{Prefix}{index}", e.g. "S1" or "T3":
//
//	items := swot.ParseList("• Strong brand\n- Loyal customers", swot.Strengths)
//	items[0].String() // "S1: Strong brand"
//
// The whole analysis is a [Set], replaced wholesale whenever the user
// regenerates; it is never edited in place.
//
// # Strategies
//
// The TOWS confrontation matrix pairs every strength and weakness with every
// opportunity and threat. A pairing is addressed by a [Key] such as "S1-O2"
// and its free-form note lives in [Strategies], the one mapping that both the
// interactive grid and the raster export read. Keys are positional: when a
// list shrinks, notes for indices that no longer exist stay in the mapping
// but are not reachable from the grid (see [Strategies.Orphans]).
//
// # Grid Dimensions
//
// [Dims] derives the matrix size from a Set. Empty categories are sized as
// [DefaultCount] placeholder rows or columns so the grid is never degenerate.
package swot
