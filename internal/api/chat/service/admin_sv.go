package chatService

import (
	"context"
	"errors"

	"StorefrontGolang/internal/api/chat"
	"StorefrontGolang/internal/entity"
	"StorefrontGolang/pkg/bot"
	contextPkg "StorefrontGolang/pkg/context"

	"github.com/sirupsen/logrus"
)

func (s *chatService) ListCategories(ctx context.Context) []bot.Category {
	return s.selector.Taxonomy().Categories()
}

// AddCategory appends a category to the live taxonomy. New categories join
// the end of the table, so existing first-match behavior never shifts.
func (s *chatService) AddCategory(ctx context.Context, req chat.CategoryRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	err := s.selector.Taxonomy().AddCategory(bot.Category{
		Name:     req.Name,
		Keywords: req.Keywords,
		Listing:  req.Listing,
	})
	if err != nil {
		if errors.Is(err, bot.ErrCategoryExists) {
			return chat.ErrCategoryExists
		}
		return err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"category":   req.Name,
		"keywords":   len(req.Keywords),
	}).Info("Category added to taxonomy")

	return nil
}

func (s *chatService) ListIntents(ctx context.Context) []bot.Intent {
	return s.selector.Intents()
}

// TestSelector dry-runs the decision table on a text without touching any
// conversation state.
func (s *chatService) TestSelector(ctx context.Context, req chat.SelectorTestRequest) *chat.SelectorTestResponse {
	active := entity.ParseChatContext(req.Context)
	reply := s.selector.Respond(req.Text, active)

	return &chat.SelectorTestResponse{
		Input:        req.Text,
		CleanedText:  bot.CleanText(req.Text),
		Context:      active.String(),
		Response:     reply.Text,
		QuickReplies: reply.QuickReplies,
		NextContext:  reply.NextContext.String(),
	}
}
