package chatHandler

import (
	"errors"
	"time"

	"StorefrontGolang/internal/api/chat"
	contextPkg "StorefrontGolang/pkg/context"
	"StorefrontGolang/pkg/handlerUtil"
	jwtPkg "StorefrontGolang/pkg/jwt"
	"StorefrontGolang/pkg/log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *ChatHandler) GetCategories(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	errHandler := handlerUtil.New(h.log)

	if _, err := jwtPkg.GetStaffLoginData(ctx); err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	c := contextPkg.FromFiberCtx(ctx)
	return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{
		"categories": h.chatService.ListCategories(c),
	})
}

func (h *ChatHandler) CreateCategory(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	staff, err := jwtPkg.GetStaffLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	var req chat.CategoryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("invalid request body"), ctx.Path())
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.chatService.AddCategory(c, req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "create_category")
	}

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"staff_id":   staff.ID,
		"category":   req.Name,
	}).Info("Category created")

	return errHandler.HandleSuccess(ctx, fiber.StatusCreated, fiber.Map{
		"message": "Category created",
	})
}

func (h *ChatHandler) GetIntents(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	errHandler := handlerUtil.New(h.log)

	if _, err := jwtPkg.GetStaffLoginData(ctx); err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	c := contextPkg.FromFiberCtx(ctx)
	return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{
		"intents": h.chatService.ListIntents(c),
	})
}

// TestSelector dry-runs the decision table without touching a conversation.
func (h *ChatHandler) TestSelector(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	errHandler := handlerUtil.New(h.log)

	if _, err := jwtPkg.GetStaffLoginData(ctx); err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	var req chat.SelectorTestRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("invalid request body"), ctx.Path())
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	c := contextPkg.FromFiberCtx(ctx)
	return errHandler.HandleSuccess(ctx, fiber.StatusOK, h.chatService.TestSelector(c, req))
}
