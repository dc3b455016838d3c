package filetype

import "github.com/iw2rmb/quire/highlight"

func Rust() FileType {
	return FileType{
		Name:       "Rust",
		Extensions: []string{".rs"},
		Options: highlight.Options{
			Numbers:    true,
			Strings:    true,
			Characters: true,
			Comments:   true,
			PrimaryKeywords: []string{
				"as", "break", "const", "continue", "crate", "else", "enum", "extern",
				"false", "fn", "for", "if", "impl", "in", "let", "loop", "match", "mod",
				"move", "mut", "pub", "ref", "return", "self", "Self", "static", "struct",
				"super", "trait", "true", "type", "unsafe", "use", "where", "while",
				"dyn", "abstract", "become", "box", "do", "final", "macro", "override",
				"priv", "typeof", "unsized", "virtual", "yield", "async", "await", "try",
			},
			SecondaryKeywords: []string{
				"bool", "char", "i8", "i16", "i32", "i64", "isize",
				"u8", "u16", "u32", "u64", "usize", "f32", "f64",
			},
		},
	}
}

func Go() FileType {
	return FileType{
		Name:       "Go",
		Extensions: []string{".go"},
		Options: highlight.Options{
			Numbers:    true,
			Strings:    true,
			Characters: true,
			Comments:   true,
			PrimaryKeywords: []string{
				"break", "case", "chan", "const", "continue", "default", "defer", "else",
				"fallthrough", "for", "func", "go", "goto", "if", "import", "interface",
				"map", "package", "range", "return", "select", "struct", "switch", "type",
				"var", "true", "false", "nil", "iota",
			},
			SecondaryKeywords: []string{
				"any", "bool", "byte", "complex64", "complex128", "error", "float32",
				"float64", "int", "int8", "int16", "int32", "int64", "rune", "string",
				"uint", "uint8", "uint16", "uint32", "uint64", "uintptr",
			},
		},
	}
}

func C() FileType {
	return FileType{
		Name:       "C",
		Extensions: []string{".c", ".h"},
		Options: highlight.Options{
			Numbers:    true,
			Strings:    true,
			Characters: true,
			Comments:   true,
			PrimaryKeywords: []string{
				"auto", "break", "case", "const", "continue", "default", "do", "else",
				"enum", "extern", "for", "goto", "if", "inline", "register", "restrict",
				"return", "sizeof", "static", "struct", "switch", "typedef", "union",
				"volatile", "while",
			},
			SecondaryKeywords: []string{
				"char", "double", "float", "int", "long", "short", "signed", "unsigned",
				"void", "_Bool",
			},
		},
	}
}
