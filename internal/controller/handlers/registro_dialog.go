package handlers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Velasco-A/Sistema-de-tutorias-UGR-mediante-Telegram/internal/controller/state"
	"github.com/Velasco-A/Sistema-de-tutorias-UGR-mediante-Telegram/internal/model"
	"github.com/Velasco-A/Sistema-de-tutorias-UGR-mediante-Telegram/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandleRegistro starts email verification for the sender.
func (h *Handlers) HandleRegistro(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	chatID := update.Message.Chat.ID
	user, ok := h.requireUser(ctx, b, chatID, update.Message.From.ID)
	if !ok {
		return
	}

	if user.Registered {
		h.sendText(ctx, b, chatID, fmt.Sprintf("✅ Ya estás registrado con el correo %s.", user.Email))
		return
	}

	h.stateManager.SetState(user.TelegramID, state.StateRegisterEmail)

	h.sendText(ctx, b, chatID,
		"📧 Verificación de identidad\n\n"+
			"Escribe tu correo institucional de la UGR "+
			"(termina en @ugr.es o @correo.ugr.es).\n\n"+
			"Para cancelar usa /cancelar")
}

// handleRegisterEmailStep validates the claimed address and issues the
// verification token.
func (h *Handlers) handleRegisterEmailStep(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID := update.Message.Chat.ID
	telegramID := update.Message.From.ID
	email := strings.TrimSpace(update.Message.Text)

	user, ok := h.requireUser(ctx, b, chatID, telegramID)
	if !ok {
		h.stateManager.ClearState(telegramID)
		return
	}

	token, err := h.userService.BeginEmailVerification(ctx, user.ID, email)
	if err != nil {
		if errors.Is(err, service.ErrInvalidEmail) {
			h.sendText(ctx, b, chatID,
				"❌ Ese correo no parece institucional. Debe terminar en @ugr.es o @correo.ugr.es.\n\nInténtalo de nuevo:")
			return
		}
		h.logger.Error("Failed to begin verification", zap.Error(err))
		h.sendText(ctx, b, chatID, "❌ Ha ocurrido un error. Inténtalo más tarde.")
		h.stateManager.ClearState(telegramID)
		return
	}

	// Token delivery to the address happens out of band; the dialog only
	// waits for it to come back.
	h.logger.Info("Verification token issued",
		zap.Int64("user_id", user.ID),
		zap.String("token", token))

	h.stateManager.SetState(telegramID, state.StateRegisterToken)

	h.sendText(ctx, b, chatID,
		"📬 Te hemos enviado un código de verificación a "+email+".\n\n"+
			"Pégalo aquí para completar el registro.")
}

// handleRegisterTokenStep checks the token and, on success, asks for the
// user's role.
func (h *Handlers) handleRegisterTokenStep(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID := update.Message.Chat.ID
	telegramID := update.Message.From.ID

	user, ok := h.requireUser(ctx, b, chatID, telegramID)
	if !ok {
		h.stateManager.ClearState(telegramID)
		return
	}

	verified, err := h.userService.ConfirmEmail(ctx, user.ID, update.Message.Text)
	if err != nil {
		h.logger.Error("Failed to confirm email", zap.Error(err))
		h.sendText(ctx, b, chatID, "❌ Ha ocurrido un error. Inténtalo más tarde.")
		h.stateManager.ClearState(telegramID)
		return
	}

	if !verified {
		h.sendText(ctx, b, chatID, "❌ El código no es válido. Revisa el correo e inténtalo de nuevo:")
		return
	}

	h.stateManager.ClearState(telegramID)

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   "✅ Correo verificado. ¿Cuál es tu perfil?",
		ReplyMarkup: &models.InlineKeyboardMarkup{InlineKeyboard: [][]models.InlineKeyboardButton{{
			{Text: "🎓 Estudiante", CallbackData: CallbackRegistroRol + ":" + string(model.RoleStudent)},
			{Text: "👩‍🏫 Profesor", CallbackData: CallbackRegistroRol + ":" + string(model.RoleTeacher)},
		}}},
	})
}

// handleRegistroRolCallback stores the chosen role.
func (h *Handlers) handleRegistroRolCallback(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, payload string) {
	chatID := callbackChatID(callback)
	user, ok := h.requireUser(ctx, b, chatID, callback.From.ID)
	if !ok {
		h.answerCallback(ctx, b, callback.ID, "")
		return
	}

	role := model.UserRole(payload)
	if err := h.userService.SetRole(ctx, user.ID, role); err != nil {
		h.logger.Error("Failed to set role", zap.Error(err))
		h.answerCallback(ctx, b, callback.ID, "❌ No se pudo guardar el perfil")
		return
	}

	h.answerCallback(ctx, b, callback.ID, "✅ Perfil guardado")

	if role == model.RoleTeacher {
		h.sendText(ctx, b, chatID,
			"👩‍🏫 Registro completado como profesor.\n\n"+
				"Configura tu horario de tutorías con /mihorario para que "+
				"los estudiantes puedan solicitarte tutorías.")
	} else {
		h.sendText(ctx, b, chatID,
			"🎓 Registro completado como estudiante.\n\n"+
				"Usa /tutoria para solicitar una tutoría.")
	}
}
