// Package concordance builds a word to line numbers index of a text file.
//
// Two probing tables back a Concordance: a set of stop words that are never
// indexed, and a map from every other word to the ascending, duplicate free
// list of lines it appears on. The report lists the words alphabetically, one
// per line, formatted as
//
//	word: 1 4 9
package concordance
