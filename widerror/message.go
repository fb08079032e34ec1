package widerror

import (
	"fmt"

	"github.com/bytedance/sonic"
)

// Tags of the Message wire form.
const (
	messageTagDefault = "Default"
	messageTagI18n    = "I18n"
)

// Message is the human-facing description of an error: either
// ready-to-display text or an opaque localization key to be resolved by
// an external lookup. The zero value is empty display text.
//
// On the wire a Message is a single-key tagged object, {"Default":"..."}
// or {"I18n":"..."}.
type Message struct {
	i18n bool
	text string
}

// DefaultMessage returns a Message carrying ready-to-display text.
func DefaultMessage(text string) Message {
	return Message{text: text}
}

// I18nMessage returns a Message carrying a localization key. Resolving
// the key is the caller's concern.
func I18nMessage(key string) Message {
	return Message{i18n: true, text: key}
}

// IsI18n reports whether the message is a localization key.
func (m Message) IsI18n() bool { return m.i18n }

// Text returns the display text, or the localization key for an i18n
// message.
func (m Message) Text() string { return m.text }

// String renders display text verbatim and prefixes localization keys so
// an unresolved key is recognizable in logs.
func (m Message) String() string {
	if m.i18n {
		return "i18n:" + m.text
	}
	return m.text
}

// MarshalJSON encodes the tagged single-key object form.
func (m Message) MarshalJSON() ([]byte, error) {
	tag := messageTagDefault
	if m.i18n {
		tag = messageTagI18n
	}
	return sonic.Marshal(map[string]string{tag: m.text})
}

// UnmarshalJSON decodes the tagged object form. Anything other than a
// single recognized tag is rejected.
func (m *Message) UnmarshalJSON(data []byte) error {
	var raw map[string]string
	if err := sonic.Unmarshal(data, &raw); err != nil {
		return &DecodeError{Field: "message", err: fmt.Errorf("%w: %v", ErrMalformedRecord, err)}
	}
	if len(raw) != 1 {
		return &DecodeError{Field: "message", err: fmt.Errorf("%w: expected exactly one variant tag, got %d", ErrMalformedRecord, len(raw))}
	}
	for tag, text := range raw {
		switch tag {
		case messageTagDefault:
			*m = DefaultMessage(text)
		case messageTagI18n:
			*m = I18nMessage(text)
		default:
			return &DecodeError{Field: "message", err: fmt.Errorf("%w: message variant %q", ErrUnknownDiscriminant, tag)}
		}
	}
	return nil
}
