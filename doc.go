// Package phpdoctype holds the data model shared by every subsystem of
// the analyzer: the canonical type-expression string, fix records,
// parse results, and the declaration-time Scope/Artifact/Comment shapes
// that the lexer, parser, hierarchy oracle, comparator, and walker all
// pass around. Keeping these in one leaf package is what lets the rest
// of the tree import each other without cycles.
package phpdoctype
