package highlight

import "github.com/muesli/termenv"

// Type is the highlight category of one character.
type Type uint8

const (
	None Type = iota
	Number
	Match
	String
	Character
	Comment
	PrimaryKeyword
	SecondaryKeyword
)

func (t Type) String() string {
	switch t {
	case None:
		return "none"
	case Number:
		return "number"
	case Match:
		return "match"
	case String:
		return "string"
	case Character:
		return "character"
	case Comment:
		return "comment"
	case PrimaryKeyword:
		return "primary-keyword"
	case SecondaryKeyword:
		return "secondary-keyword"
	default:
		return "unknown"
	}
}

// Color returns the foreground color used for t.
func (t Type) Color() termenv.Color {
	switch t {
	case Number:
		return termenv.RGBColor("#dca3a3")
	case Match:
		return termenv.RGBColor("#268bd2")
	case String:
		return termenv.RGBColor("#d33682")
	case Character:
		return termenv.RGBColor("#6c71c4")
	case Comment:
		return termenv.RGBColor("#859900")
	case PrimaryKeyword:
		return termenv.RGBColor("#b58900")
	case SecondaryKeyword:
		return termenv.RGBColor("#2aa198")
	default:
		return termenv.NoColor{}
	}
}

// Reset restores the terminal's default attributes.
const Reset = termenv.CSI + termenv.ResetSeq + "m"

// Sequence returns the escape sequence that switches the foreground to t's
// color. None maps to Reset.
func Sequence(t Type) string {
	if t == None {
		return Reset
	}
	return termenv.CSI + t.Color().Sequence(false) + "m"
}

// Options selects which categories the annotator recognizes.
type Options struct {
	Numbers    bool
	Strings    bool
	Characters bool
	Comments   bool

	PrimaryKeywords   []string
	SecondaryKeywords []string
}
