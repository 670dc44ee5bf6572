package chat

import "StorefrontGolang/pkg/response"

var (
	ErrEmptyMessage        = response.NewError(400, "empty message")
	ErrConversationMissing = response.NewError(400, "conversation id is required")
	ErrCategoryExists      = response.NewError(409, "category already exists")
	ErrExportUploadFailed  = response.NewError(502, "failed to upload export")
	ErrExportNotConfigured = response.NewError(503, "export storage is not configured")
	ErrInvalidContextName  = response.NewError(400, "unknown context name")
)
