// Package predicate implements the timegraph's predicate algebra: the small
// vocabulary of temporal-relation stems ("before", "during", "between", ...),
// the strictness suffixes that qualify them, and the operations used by the
// graph package to build, decompose, invert, and combine them.
//
// A predicate string has the form "stem", "stem-s1", or "stem-s1-s2", where
// s1 and s2 are strictness digits for the first and second underlying point
// relation respectively. Split and Build move between the string form and a
// structured Predicate; Inverse and CombineStrict implement the algebraic
// operations entry/query algorithms need.
package predicate
