package chatService

import (
	"context"
	"sync"

	"StorefrontGolang/internal/api/chat"
	chatRepository "StorefrontGolang/internal/api/chat/repository"
	"StorefrontGolang/pkg/bot"
	"StorefrontGolang/pkg/s3"
	"StorefrontGolang/pkg/utils"

	"github.com/sirupsen/logrus"
)

type IChatService interface {
	SubmitMessage(ctx context.Context, conversationID string, req chat.SendMessageRequest) (*chat.TurnResponse, error)
	GetHistory(ctx context.Context, conversationID string) (*chat.HistoryResponse, error)
	ClearHistory(ctx context.Context, conversationID string) (*chat.ClearHistoryResponse, error)

	ExportTranscript(ctx context.Context, conversationID string) (*chat.ExportResult, error)
	UploadExport(ctx context.Context, conversationID string) (*chat.ExportUploadResponse, error)

	DefaultQuickReplies() []string

	ListCategories(ctx context.Context) []bot.Category
	AddCategory(ctx context.Context, req chat.CategoryRequest) error
	ListIntents(ctx context.Context) []bot.Intent
	TestSelector(ctx context.Context, req chat.SelectorTestRequest) *chat.SelectorTestResponse
}

type chatService struct {
	log      *logrus.Logger
	chatRepo chatRepository.Repository
	selector bot.ISelector
	s3Client s3.ItfS3
	utils    utils.IUtils
	delay    DelayPolicy

	// one mutex per conversation so concurrent submits never interleave a
	// turn; transcript order stays deterministic
	turnLocks sync.Map
}

func New(
	log *logrus.Logger,
	chatRepo chatRepository.Repository,
	selector bot.ISelector,
	s3Client s3.ItfS3,
	utilsPkg utils.IUtils,
	delay DelayPolicy,
) IChatService {
	if delay == nil {
		delay = NoDelay()
	}

	return &chatService{
		log:      log,
		chatRepo: chatRepo,
		selector: selector,
		s3Client: s3Client,
		utils:    utilsPkg,
		delay:    delay,
	}
}

func (s *chatService) lockConversation(conversationID string) *sync.Mutex {
	lock, _ := s.turnLocks.LoadOrStore(conversationID, &sync.Mutex{})
	return lock.(*sync.Mutex)
}
