package highlight

import "unicode"

// Line classifies every rune of text and returns one Type per rune.
//
// Recognizers run in a fixed priority order at each position: character
// literal, line comment, primary keyword, secondary keyword, string literal,
// number. The first that matches consumes its runes; a position nothing
// matches is None.
func Line(text string, opts Options) []Type {
	l := lexer{chars: []rune(text), opts: opts}
	l.out = make([]Type, len(l.chars))

	for i := 0; i < len(l.chars); {
		if n := l.character(i); n > 0 {
			i += n
			continue
		}
		if l.comment(i) {
			break
		}
		if n := l.keyword(i, opts.PrimaryKeywords, PrimaryKeyword); n > 0 {
			i += n
			continue
		}
		if n := l.keyword(i, opts.SecondaryKeywords, SecondaryKeyword); n > 0 {
			i += n
			continue
		}
		if n := l.str(i); n > 0 {
			i += n
			continue
		}
		if n := l.number(i); n > 0 {
			i += n
			continue
		}
		l.out[i] = None
		i++
	}
	return l.out
}

// IsSeparator reports whether r delimits words and numbers: punctuation,
// symbols and whitespace.
func IsSeparator(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSymbol(r) || unicode.IsSpace(r)
}

type lexer struct {
	chars []rune
	out   []Type
	opts  Options
}

func (l *lexer) stamp(start, end int, t Type) int {
	for i := start; i < end; i++ {
		l.out[i] = t
	}
	return end - start
}

// afterSeparator reports whether the rune before i is a separator, treating
// the start of the line as one.
func (l *lexer) afterSeparator(i int) bool {
	return i == 0 || IsSeparator(l.chars[i-1])
}

func (l *lexer) character(i int) int {
	if !l.opts.Characters || l.chars[i] != '\'' || i+1 >= len(l.chars) {
		return 0
	}
	closing := i + 2
	if l.chars[i+1] == '\\' {
		closing = i + 3
	}
	if closing >= len(l.chars) || l.chars[closing] != '\'' {
		return 0
	}
	return l.stamp(i, closing+1, Character)
}

func (l *lexer) comment(i int) bool {
	if !l.opts.Comments || l.chars[i] != '/' || i+1 >= len(l.chars) || l.chars[i+1] != '/' {
		return false
	}
	l.stamp(i, len(l.chars), Comment)
	return true
}

func (l *lexer) keyword(i int, words []string, t Type) int {
	if len(words) == 0 || !l.afterSeparator(i) {
		return 0
	}
	for _, w := range words {
		wr := []rune(w)
		end := i + len(wr)
		if len(wr) == 0 || end > len(l.chars) {
			continue
		}
		if string(l.chars[i:end]) != w {
			continue
		}
		if end < len(l.chars) && !IsSeparator(l.chars[end]) {
			continue
		}
		return l.stamp(i, end, t)
	}
	return 0
}

func (l *lexer) str(i int) int {
	if !l.opts.Strings || l.chars[i] != '"' {
		return 0
	}
	j := i + 1
	for j < len(l.chars) {
		switch l.chars[j] {
		case '\\':
			j += 2
			continue
		case '"':
			return l.stamp(i, j+1, String)
		}
		j++
	}
	return l.stamp(i, len(l.chars), String)
}

func (l *lexer) number(i int) int {
	if !l.opts.Numbers || !isDigit(l.chars[i]) || !l.afterSeparator(i) {
		return 0
	}
	j := i + 1
	for j < len(l.chars) && (isDigit(l.chars[j]) || l.chars[j] == '.') {
		j++
	}
	return l.stamp(i, j, Number)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
