package handlers

import (
	"context"
	"errors"

	"github.com/Velasco-A/Sistema-de-tutorias-UGR-mediante-Telegram/internal/model"
	"github.com/Velasco-A/Sistema-de-tutorias-UGR-mediante-Telegram/internal/schedule"
	"github.com/Velasco-A/Sistema-de-tutorias-UGR-mediante-Telegram/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// sendText sends a plain text reply, logging delivery failures.
func (h *Handlers) sendText(ctx context.Context, b *bot.Bot, chatID int64, text string) {
	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   text,
	})
	if err != nil {
		h.logger.Error("Failed to send message",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
	}
}

// sendMarkdown sends a Markdown-formatted reply.
func (h *Handlers) sendMarkdown(ctx context.Context, b *bot.Bot, chatID int64, text string) {
	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    chatID,
		Text:      text,
		ParseMode: models.ParseModeMarkdown,
	})
	if err != nil {
		h.logger.Error("Failed to send message",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
	}
}

// answerCallback acknowledges a callback query, optionally with a toast.
func (h *Handlers) answerCallback(ctx context.Context, b *bot.Bot, callbackID, text string) {
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
		Text:            text,
	})
}

// requireUser resolves the sender or asks them to /start first.
func (h *Handlers) requireUser(ctx context.Context, b *bot.Bot, chatID, telegramID int64) (*model.User, bool) {
	user, err := h.userService.GetByTelegramID(ctx, telegramID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			h.sendText(ctx, b, chatID, "❗ Primero debes iniciar el bot con /start")
		} else {
			h.logger.Error("Failed to resolve user", zap.Error(err))
			h.sendText(ctx, b, chatID, "❌ Ha ocurrido un error. Inténtalo más tarde.")
		}
		return nil, false
	}
	return user, true
}

// requireTeacher resolves the sender and checks the teacher role.
func (h *Handlers) requireTeacher(ctx context.Context, b *bot.Bot, chatID, telegramID int64) (*model.User, bool) {
	user, ok := h.requireUser(ctx, b, chatID, telegramID)
	if !ok {
		return nil, false
	}

	if !user.IsTeacher() {
		h.sendText(ctx, b, chatID, "⚠️ Esta funcionalidad está disponible solo para profesores.")
		return nil, false
	}

	return user, true
}

// slotErrorMessage maps slot validation errors onto re-prompt texts.
func slotErrorMessage(err error) string {
	switch {
	case errors.Is(err, schedule.ErrInvalidFormat):
		return "❌ Formato no válido. Escribe la franja como HH:MM-HH:MM, por ejemplo 09:00-11:00."
	case errors.Is(err, schedule.ErrInvalidRange):
		return "❌ Hora fuera de rango. Usa horas entre 00:00 y 23:59."
	case errors.Is(err, schedule.ErrInvalidOrder):
		return "❌ La hora de inicio debe ser anterior a la de fin."
	case errors.Is(err, schedule.ErrDuplicateSlot):
		return "❌ Esa franja ya existe para ese día."
	case errors.Is(err, schedule.ErrOverlapConflict):
		return "❌ La franja se solapa con otra existente. Elige otro tramo."
	default:
		return "❌ No se pudo añadir la franja."
	}
}
