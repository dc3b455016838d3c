package filetype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect_Builtin(t *testing.T) {
	r := Builtin()

	cases := []struct {
		fileName string
		want     string
	}{
		{fileName: "main.rs", want: "Rust"},
		{fileName: "src/lib.RS", want: "Rust"},
		{fileName: "main.go", want: "Go"},
		{fileName: "x.h", want: "C"},
		{fileName: "notes.txt", want: defaultName},
		{fileName: "Makefile", want: defaultName},
		{fileName: "", want: defaultName},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, r.Detect(tc.fileName).Name, "Detect(%q)", tc.fileName)
	}
}

func TestDetect_NilRegistryAndDefault(t *testing.T) {
	var r *Registry
	ft := r.Detect("main.rs")
	assert.Equal(t, Default().Name, ft.Name)
	assert.Empty(t, ft.Extensions)

	opts := ft.HighlightingOptions()
	assert.False(t, opts.Numbers || opts.Strings || opts.Characters || opts.Comments)
	assert.Empty(t, opts.PrimaryKeywords)
	assert.Empty(t, opts.SecondaryKeywords)
}

func TestRegister_OverridesBuiltin(t *testing.T) {
	r := Builtin()
	r.Register(FileType{Name: "Rusty", Extensions: []string{".rs"}})

	assert.Equal(t, "Rusty", r.Detect("a.rs").Name)
	assert.Equal(t, "Go", r.Detect("a.go").Name)
	require.Len(t, r.Types(), 4)
	assert.Equal(t, "Rusty", r.Types()[0].Name)
}

func TestBuiltin_EnablesAllCategories(t *testing.T) {
	for _, ft := range Builtin().Types() {
		opts := ft.HighlightingOptions()
		assert.True(t, opts.Numbers && opts.Strings && opts.Characters && opts.Comments, ft.Name)
		assert.NotEmpty(t, opts.PrimaryKeywords, ft.Name)
		assert.NotEmpty(t, opts.SecondaryKeywords, ft.Name)
		assert.NotEqual(t, defaultName, ft.Name)
	}
}
