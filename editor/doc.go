// Package editor provides a Bubble Tea component that edits a
// buffer.Document.
//
// The package owns keypress dispatch, scrolling, the status and message bars,
// and the save-as and incremental search prompts. All text state lives in the
// document.
package editor
