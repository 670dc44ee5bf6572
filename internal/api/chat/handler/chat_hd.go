package chatHandler

import (
	"errors"
	"fmt"
	"time"

	"StorefrontGolang/internal/api/chat"
	contextPkg "StorefrontGolang/pkg/context"
	"StorefrontGolang/pkg/handlerUtil"
	"StorefrontGolang/pkg/log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *ChatHandler) SubmitMessage(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 30*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	conversationID := ctx.Params("conversation_id")
	if conversationID == "" {
		return errHandler.Handle(ctx, requestID, chat.ErrConversationMissing, ctx.Path(), "submit_message")
	}

	var req chat.SendMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("invalid request body"), ctx.Path())
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	h.log.WithFields(log.Fields{
		"request_id":      requestID,
		"conversation_id": conversationID,
	}).Debug("Processing chat message")

	response, err := h.chatService.SubmitMessage(c, conversationID, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "submit_message")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, response)
	}
}

func (h *ChatHandler) GetHistory(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	conversationID := ctx.Params("conversation_id")
	if conversationID == "" {
		return errHandler.Handle(ctx, requestID, chat.ErrConversationMissing, ctx.Path(), "get_history")
	}

	response, err := h.chatService.GetHistory(c, conversationID)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_history")
	}

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, response)
}

func (h *ChatHandler) ClearHistory(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	conversationID := ctx.Params("conversation_id")
	if conversationID == "" {
		return errHandler.Handle(ctx, requestID, chat.ErrConversationMissing, ctx.Path(), "clear_history")
	}

	h.log.WithFields(log.Fields{
		"request_id":      requestID,
		"conversation_id": conversationID,
	}).Info("Clearing conversation history")

	response, err := h.chatService.ClearHistory(c, conversationID)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "clear_history")
	}

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, response)
}

// ExportTranscript streams the transcript download. With ?upload=true the
// blob is stored instead and a presigned URL is returned.
func (h *ChatHandler) ExportTranscript(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 30*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	conversationID := ctx.Params("conversation_id")
	if conversationID == "" {
		return errHandler.Handle(ctx, requestID, chat.ErrConversationMissing, ctx.Path(), "export_transcript")
	}

	if ctx.QueryBool("upload") {
		response, err := h.chatService.UploadExport(c, conversationID)
		if err != nil {
			return errHandler.Handle(ctx, requestID, err, ctx.Path(), "export_transcript")
		}
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, response)
	}

	result, err := h.chatService.ExportTranscript(c, conversationID)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "export_transcript")
	}

	ctx.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", result.FileName))
	return ctx.Status(fiber.StatusOK).Send(result.Data)
}

func (h *ChatHandler) GetSuggestions(ctx *fiber.Ctx) error {
	errHandler := handlerUtil.New(h.log)

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, chat.SuggestionsResponse{
		QuickReplies: h.chatService.DefaultQuickReplies(),
	})
}
