package chatService

import (
	"context"
	"time"

	"StorefrontGolang/internal/api/chat"
	"StorefrontGolang/internal/entity"
	contextPkg "StorefrontGolang/pkg/context"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

// ExportTranscript builds the point-in-time download blob for a
// conversation: pretty-printed JSON with a message count and export
// timestamp, plus the date-stamped suggested filename.
func (s *chatService) ExportTranscript(ctx context.Context, conversationID string) (*chat.ExportResult, error) {
	requestID := contextPkg.GetRequestID(ctx)

	snapshot, loadErr := s.chatRepo.LoadSnapshot(ctx, conversationID)
	if loadErr != nil {
		s.log.WithFields(logrus.Fields{
			"request_id":      requestID,
			"conversation_id": conversationID,
			"error":           loadErr.Error(),
		}).Warn("Exporting recovered default snapshot")
	}

	now := time.Now()
	data, err := exportSnapshot(snapshot, now)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id":      requestID,
			"conversation_id": conversationID,
			"error":           err.Error(),
		}).Error("Failed to serialize export")
		return nil, err
	}

	return &chat.ExportResult{
		FileName: s.utils.ExportFileName(now),
		Data:     data,
	}, nil
}

// UploadExport stores the export blob and returns a presigned download URL.
func (s *chatService) UploadExport(ctx context.Context, conversationID string) (*chat.ExportUploadResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if s.s3Client == nil {
		return nil, chat.ErrExportNotConfigured
	}

	result, err := s.ExportTranscript(ctx, conversationID)
	if err != nil {
		return nil, err
	}

	location, err := s.s3Client.UploadExport(result.FileName, result.Data)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id":      requestID,
			"conversation_id": conversationID,
			"error":           err.Error(),
		}).Error("Failed to upload export")
		return nil, chat.ErrExportUploadFailed
	}

	url, err := s.s3Client.PresignUrl(location)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id":      requestID,
			"conversation_id": conversationID,
			"error":           err.Error(),
		}).Error("Failed to presign export URL")
		return nil, chat.ErrExportUploadFailed
	}

	return &chat.ExportUploadResponse{
		FileName: result.FileName,
		URL:      url,
	}, nil
}

// exportSnapshot is a pure function over the snapshot; it never mutates it.
func exportSnapshot(snapshot entity.SessionSnapshot, exportedAt time.Time) ([]byte, error) {
	export := chat.ExportSnapshot{
		ExportedAt:    exportedAt,
		TotalMessages: len(snapshot.Messages),
		UserName:      snapshot.UserName,
		Context:       snapshot.Context.String(),
		LastActive:    snapshot.LastActive,
		Messages:      snapshot.Messages,
	}

	return jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(export, "", "  ")
}
