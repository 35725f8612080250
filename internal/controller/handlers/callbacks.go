package handlers

import (
	"context"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandleCallbackQuery routes inline-keyboard presses by data prefix.
func (h *Handlers) HandleCallbackQuery(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.CallbackQuery == nil {
		return
	}

	callback := update.CallbackQuery
	action, payload, _ := strings.Cut(callback.Data, ":")

	h.logger.Info("Callback received",
		zap.String("action", action),
		zap.Int64("telegram_id", callback.From.ID))

	switch action {
	case CallbackRegistroRol:
		h.handleRegistroRolCallback(ctx, b, callback, payload)
	case CallbackHorarioDay:
		h.handleHorarioDayCallback(ctx, b, callback, payload)
	case CallbackHorarioDel:
		h.handleHorarioDelCallback(ctx, b, callback, payload)
	case CallbackHorarioBack:
		h.handleHorarioBackCallback(ctx, b, callback)
	case CallbackHorarioSave:
		h.handleHorarioSaveCallback(ctx, b, callback)
	case CallbackHorarioCancel:
		h.handleHorarioCancelCallback(ctx, b, callback)
	case CallbackTutoriaProf:
		h.handleTutoriaProfCallback(ctx, b, callback, payload)
	case CallbackSolicitudOK:
		h.handleSolicitudCallback(ctx, b, callback, payload, true)
	case CallbackSolicitudNo:
		h.handleSolicitudCallback(ctx, b, callback, payload, false)
	default:
		h.answerCallback(ctx, b, callback.ID, "")
	}
}

// callbackChatID extracts the originating chat. Falls back to the
// sender's private chat when the message is inaccessible.
func callbackChatID(callback *models.CallbackQuery) int64 {
	if callback.Message.Message != nil {
		return callback.Message.Message.Chat.ID
	}
	return callback.From.ID
}
