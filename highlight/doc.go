// Package highlight classifies the characters of a single line into
// highlight categories for colorized terminal rendering.
//
// The annotator is line-local: it carries no state from one line to the next,
// so a string or comment left open at the end of a line does not continue on
// the following line. Results are indexed by rune (code point).
package highlight
