package chat

import (
	"time"

	"StorefrontGolang/internal/entity"
)

type SendMessageRequest struct {
	Text     string `json:"text" validate:"max=1000"`
	UserName string `json:"user_name,omitempty" validate:"omitempty,max=100"`
}

// TurnResponse is the bot half of one turn. Persisted reports whether the
// snapshot write succeeded; a failed write never fails the turn.
type TurnResponse struct {
	Message      entity.ChatMessage `json:"message"`
	QuickReplies []string           `json:"quick_replies"`
	Context      string             `json:"context"`
	Persisted    bool               `json:"persisted"`
}

type HistoryResponse struct {
	Messages     []entity.ChatMessage `json:"messages"`
	QuickReplies []string             `json:"quick_replies"`
	Context      string               `json:"context"`
	UserName     string               `json:"user_name,omitempty"`
	LastActive   time.Time            `json:"last_active"`
}

type ClearHistoryResponse struct {
	Messages     []entity.ChatMessage `json:"messages"`
	QuickReplies []string             `json:"quick_replies"`
	Context      string               `json:"context"`
	Persisted    bool                 `json:"persisted"`
}

// ExportSnapshot is the human-readable download shape, pretty-printed.
type ExportSnapshot struct {
	ExportedAt    time.Time            `json:"exportedAt"`
	TotalMessages int                  `json:"totalMessages"`
	UserName      string               `json:"userName,omitempty"`
	Context       string               `json:"context"`
	LastActive    time.Time            `json:"lastActive"`
	Messages      []entity.ChatMessage `json:"messages"`
}

type ExportResult struct {
	FileName string
	Data     []byte
}

type ExportUploadResponse struct {
	FileName string `json:"file_name"`
	URL      string `json:"url"`
}

type CategoryRequest struct {
	Name     string   `json:"name" validate:"required,max=50"`
	Keywords []string `json:"keywords" validate:"required,min=1,dive,required,max=50"`
	Listing  string   `json:"listing,omitempty" validate:"omitempty,max=2000"`
}

type SelectorTestRequest struct {
	Text    string `json:"text" validate:"required,min=1,max=500"`
	Context string `json:"context,omitempty"`
}

type SelectorTestResponse struct {
	Input        string   `json:"input"`
	CleanedText  string   `json:"cleaned_text"`
	Context      string   `json:"context"`
	Response     string   `json:"response"`
	QuickReplies []string `json:"quick_replies"`
	NextContext  string   `json:"next_context"`
}

type SuggestionsResponse struct {
	QuickReplies []string `json:"quick_replies"`
}
