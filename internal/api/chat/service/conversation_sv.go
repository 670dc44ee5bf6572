package chatService

import (
	"context"
	"strings"
	"time"

	"StorefrontGolang/internal/api/chat"
	"StorefrontGolang/internal/entity"
	"StorefrontGolang/pkg/bot"
	contextPkg "StorefrontGolang/pkg/context"

	"github.com/sirupsen/logrus"
)

// SubmitMessage processes one conversation turn: append the user message,
// wait out the thinking delay, run the selector, append the bot message and
// persist the snapshot. A persistence failure is reported in the result but
// never fails the turn; a selector fault degrades to a fixed apology.
func (s *chatService) SubmitMessage(ctx context.Context, conversationID string, req chat.SendMessageRequest) (*chat.TurnResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, chat.ErrEmptyMessage
	}

	lock := s.lockConversation(conversationID)
	lock.Lock()
	defer lock.Unlock()

	snapshot, loadErr := s.chatRepo.LoadSnapshot(ctx, conversationID)
	if loadErr != nil {
		s.log.WithFields(logrus.Fields{
			"request_id":      requestID,
			"conversation_id": conversationID,
			"error":           loadErr.Error(),
		}).Warn("Recovered conversation from default snapshot")
	}

	now := time.Now()
	snapshot.Messages = append(snapshot.Messages, entity.ChatMessage{
		Text:      req.Text,
		IsBot:     false,
		Timestamp: now,
	})
	if req.UserName != "" {
		snapshot.UserName = req.UserName
	}

	// Bounded pause driving the typing indicator. No cancellation
	// semantics: a torn-down caller just discards the eventual reply.
	if wait := s.delay(); wait > 0 {
		time.Sleep(wait)
	}

	contextStore := bot.NewContextStore(snapshot.Context)
	reply := s.computeReply(requestID, conversationID, text, contextStore.Get())
	contextStore.Set(reply.NextContext)

	botMessage := entity.ChatMessage{
		Text:      reply.Text,
		IsBot:     true,
		Timestamp: time.Now(),
	}
	snapshot.Messages = append(snapshot.Messages, botMessage)
	snapshot.Context = contextStore.Get()
	snapshot.LastActive = botMessage.Timestamp

	persisted := true
	if err := s.chatRepo.SaveSnapshot(ctx, conversationID, snapshot); err != nil {
		// next turn's write is the implicit retry
		persisted = false
		s.log.WithFields(logrus.Fields{
			"request_id":      requestID,
			"conversation_id": conversationID,
			"error":           err.Error(),
		}).Warn("Failed to persist conversation turn")
	}

	return &chat.TurnResponse{
		Message:      botMessage,
		QuickReplies: reply.QuickReplies,
		Context:      snapshot.Context.String(),
		Persisted:    persisted,
	}, nil
}

// computeReply shields the turn from selector faults: any panic while
// picking a response becomes the fixed apology with the context and quick
// replies left unchanged.
func (s *chatService) computeReply(requestID, conversationID, text string, active entity.ChatContext) (reply bot.Reply) {
	defer func() {
		if r := recover(); r != nil {
			s.log.WithFields(logrus.Fields{
				"request_id":      requestID,
				"conversation_id": conversationID,
				"panic":           r,
			}).Error("Response selection failed, sending apology")
			reply = bot.Reply{
				Text:         bot.ApologyText,
				QuickReplies: bot.DefaultQuickReplies(),
				NextContext:  active,
			}
		}
	}()

	return s.selector.Respond(text, active)
}

func (s *chatService) GetHistory(ctx context.Context, conversationID string) (*chat.HistoryResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	snapshot, loadErr := s.chatRepo.LoadSnapshot(ctx, conversationID)
	if loadErr != nil {
		s.log.WithFields(logrus.Fields{
			"request_id":      requestID,
			"conversation_id": conversationID,
			"error":           loadErr.Error(),
		}).Warn("Recovered conversation from default snapshot")
	}

	// quick replies are regenerated every turn and never persisted, so a
	// reloaded widget starts from the default set
	return &chat.HistoryResponse{
		Messages:     snapshot.Messages,
		QuickReplies: bot.DefaultQuickReplies(),
		Context:      snapshot.Context.String(),
		UserName:     snapshot.UserName,
		LastActive:   snapshot.LastActive,
	}, nil
}

// ClearHistory replaces the transcript with a single seeded welcome message
// and resets the context, regardless of prior state.
func (s *chatService) ClearHistory(ctx context.Context, conversationID string) (*chat.ClearHistoryResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	lock := s.lockConversation(conversationID)
	lock.Lock()
	defer lock.Unlock()

	snapshot := entity.NewSessionSnapshot(bot.WelcomeMessage(time.Now()))

	persisted := true
	if err := s.chatRepo.SaveSnapshot(ctx, conversationID, snapshot); err != nil {
		persisted = false
		s.log.WithFields(logrus.Fields{
			"request_id":      requestID,
			"conversation_id": conversationID,
			"error":           err.Error(),
		}).Warn("Failed to persist cleared conversation")
	}

	return &chat.ClearHistoryResponse{
		Messages:     snapshot.Messages,
		QuickReplies: bot.DefaultQuickReplies(),
		Context:      snapshot.Context.String(),
		Persisted:    persisted,
	}, nil
}

func (s *chatService) DefaultQuickReplies() []string {
	return bot.DefaultQuickReplies()
}
