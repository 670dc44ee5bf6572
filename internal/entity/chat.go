package entity

import (
	"time"
)

type ChatContext uint8

const (
	ContextNone ChatContext = iota
	ContextProductSearch
	ContextRepairBooking
)

var chatContextNames = map[ChatContext]string{
	ContextNone:          "none",
	ContextProductSearch: "product_search",
	ContextRepairBooking: "repair_booking",
}

func (c ChatContext) String() string {
	name, ok := chatContextNames[c]
	if !ok {
		return "none"
	}
	return name
}

// ParseChatContext falls back to ContextNone for anything unrecognized so a
// corrupt snapshot never blocks a conversation from loading.
func ParseChatContext(s string) ChatContext {
	for ctx, name := range chatContextNames {
		if name == s {
			return ctx
		}
	}
	return ContextNone
}

func (c ChatContext) MarshalJSON() ([]byte, error) {
	return []byte(`"` + c.String() + `"`), nil
}

func (c *ChatContext) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	*c = ParseChatContext(s)
	return nil
}

// ChatMessage is immutable once appended to a transcript.
type ChatMessage struct {
	Text      string    `json:"text"`
	IsBot     bool      `json:"isBot"`
	Timestamp time.Time `json:"timestamp"`
}

// SessionSnapshot is the full persisted state of one conversation. It is
// owned by the chat repository; handlers never write it directly.
type SessionSnapshot struct {
	Messages   []ChatMessage `json:"messages"`
	UserName   string        `json:"userName"`
	Context    ChatContext   `json:"context"`
	LastActive time.Time     `json:"lastActive"`
}

func NewSessionSnapshot(welcome ChatMessage) SessionSnapshot {
	return SessionSnapshot{
		Messages:   []ChatMessage{welcome},
		UserName:   "",
		Context:    ContextNone,
		LastActive: welcome.Timestamp,
	}
}
