package editor

import (
	"log/slog"
	"time"

	"github.com/iw2rmb/quire/buffer"
)

const defaultMessageTTL = 5 * time.Second

// Config configures the editor Model.
type Config struct {
	// Document to edit. Nil starts an empty, unnamed document.
	Document *buffer.Document

	Style  Style
	KeyMap KeyMap

	// MessageTTL is how long status messages stay visible. Default: 5s.
	MessageTTL time.Duration

	// Message is shown in the message bar on start.
	Message string

	// OnChange is called after every keypress that mutated the document.
	OnChange func(ChangeEvent)

	Logger *slog.Logger
	// Now overrides the clock used for message expiry.
	Now func() time.Time
}

func (c Config) normalized() Config {
	if c.Document == nil {
		c.Document = buffer.New(buffer.Options{Logger: c.Logger})
	}
	if c.KeyMap.isZero() {
		c.KeyMap = DefaultKeyMap()
	}
	if c.MessageTTL <= 0 {
		c.MessageTTL = defaultMessageTTL
	}
	if c.Logger == nil {
		c.Logger = slog.New(slog.DiscardHandler)
	}
	if c.Now == nil {
		c.Now = time.Now
	}
	return c
}
