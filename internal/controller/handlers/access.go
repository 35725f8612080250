package handlers

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Velasco-A/Sistema-de-tutorias-UGR-mediante-Telegram/internal/controller/formatting"
	"github.com/Velasco-A/Sistema-de-tutorias-UGR-mediante-Telegram/internal/controller/state"
	"github.com/Velasco-A/Sistema-de-tutorias-UGR-mediante-Telegram/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

func requestKeyboard(requestID int64) *models.InlineKeyboardMarkup {
	return &models.InlineKeyboardMarkup{InlineKeyboard: [][]models.InlineKeyboardButton{{
		{Text: "✅ Aprobar", CallbackData: fmt.Sprintf("%s:%d", CallbackSolicitudOK, requestID)},
		{Text: "❌ Rechazar", CallbackData: fmt.Sprintf("%s:%d", CallbackSolicitudNo, requestID)},
	}}}
}

// handleTutoriaProfCallback records the chosen teacher and asks for the
// request message.
func (h *Handlers) handleTutoriaProfCallback(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, payload string) {
	chatID := callbackChatID(callback)
	telegramID := callback.From.ID

	teacherID, err := strconv.ParseInt(payload, 10, 64)
	if err != nil {
		h.answerCallback(ctx, b, callback.ID, "")
		return
	}

	h.stateManager.SetState(telegramID, state.StateAccessMessage)
	h.stateManager.SetData(telegramID, dataKeyTeacherID, teacherID)

	h.answerCallback(ctx, b, callback.ID, "")
	h.sendText(ctx, b, chatID,
		"💬 Escribe un mensaje breve para el profesor "+
			"(qué asignatura y qué duda quieres tratar).\n\n"+
			"Para cancelar usa /cancelar")
}

// handleAccessMessageStep files the tutoring request. Outside the
// teacher's office hours the student gets the published schedule back
// instead of a pending request.
func (h *Handlers) handleAccessMessageStep(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID := update.Message.Chat.ID
	telegramID := update.Message.From.ID
	message := strings.TrimSpace(update.Message.Text)

	if len(message) > accessMessageMaxLength {
		h.sendText(ctx, b, chatID,
			fmt.Sprintf("❌ El mensaje es demasiado largo (máximo %d caracteres). Inténtalo de nuevo:", accessMessageMaxLength))
		return
	}

	student, ok := h.requireUser(ctx, b, chatID, telegramID)
	if !ok {
		h.stateManager.ClearState(telegramID)
		return
	}

	teacherValue, ok := h.stateManager.GetData(telegramID, dataKeyTeacherID)
	if !ok {
		h.stateManager.ClearState(telegramID)
		h.sendText(ctx, b, chatID, "La solicitud ha caducado, vuelve a empezar con /tutoria.")
		return
	}
	teacherID := teacherValue.(int64)

	h.stateManager.ClearState(telegramID)

	req, err := h.accessService.RequestTutoring(ctx, student.ID, teacherID, message)
	if err != nil {
		h.handleRequestError(ctx, b, chatID, teacherID, err)
		return
	}

	h.sendText(ctx, b, chatID,
		fmt.Sprintf("✅ Solicitud #%d enviada. Te avisaremos cuando el profesor responda.", req.ID))

	h.notifyTeacher(ctx, b, req.ID, student.FullName(), student.Email, teacherID, message)
}

// handleRequestError maps workflow failures onto user guidance.
func (h *Handlers) handleRequestError(ctx context.Context, b *bot.Bot, chatID, teacherID int64, err error) {
	switch {
	case errors.Is(err, service.ErrOutsideOfficeHours):
		w, loadErr := h.scheduleService.Load(ctx, teacherID)
		if loadErr != nil {
			h.logger.Warn("Failed to load schedule for refusal message", zap.Error(loadErr))
		}
		h.sendMarkdown(ctx, b, chatID,
			"⏰ *No es horario de tutorías*\n\n"+
				"El profesor atiende solicitudes en este horario:\n\n"+
				formatting.FormatSchedule(w)+"\n\n"+
				"Vuelve a intentarlo dentro de esas franjas.")
	case errors.Is(err, service.ErrNotRegistered):
		h.sendText(ctx, b, chatID, "❗ Debes verificar tu correo UGR con /registro antes de solicitar tutorías.")
	case errors.Is(err, service.ErrDuplicateRequest):
		h.sendText(ctx, b, chatID, "ℹ️ Ya tienes una solicitud pendiente con este profesor.")
	case errors.Is(err, service.ErrNotATeacher), errors.Is(err, service.ErrUserNotFound):
		h.sendText(ctx, b, chatID, "❌ Ese profesor ya no está disponible.")
	default:
		h.logger.Error("Failed to create tutoring request", zap.Error(err))
		h.sendText(ctx, b, chatID, "❌ No se pudo enviar la solicitud. Inténtalo más tarde.")
	}
}

// notifyTeacher pushes the new request to the teacher's chat with
// approve/reject buttons.
func (h *Handlers) notifyTeacher(ctx context.Context, b *bot.Bot, requestID int64, studentName, studentEmail string, teacherID int64, message string) {
	teacher, err := h.userService.GetByID(ctx, teacherID)
	if err != nil {
		h.logger.Error("Failed to notify teacher",
			zap.Int64("teacher_id", teacherID),
			zap.Error(err))
		return
	}

	text := fmt.Sprintf(
		"🔔 Nueva solicitud de tutoría #%d\n\n"+
			"👤 Estudiante: %s\n"+
			"📧 Correo: %s\n"+
			"💬 Mensaje: %s",
		requestID, studentName, studentEmail, message,
	)

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      teacher.TelegramID,
		Text:        text,
		ReplyMarkup: requestKeyboard(requestID),
	})
}

// handleSolicitudCallback resolves a request from the teacher's buttons.
func (h *Handlers) handleSolicitudCallback(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, payload string, approve bool) {
	chatID := callbackChatID(callback)

	requestID, err := strconv.ParseInt(payload, 10, 64)
	if err != nil {
		h.answerCallback(ctx, b, callback.ID, "")
		return
	}

	teacher, ok := h.requireTeacher(ctx, b, chatID, callback.From.ID)
	if !ok {
		h.answerCallback(ctx, b, callback.ID, "")
		return
	}

	req, err := h.accessService.Resolve(ctx, teacher.ID, requestID, approve, "")
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRequestResolved):
			h.answerCallback(ctx, b, callback.ID, "Esta solicitud ya fue respondida")
		case errors.Is(err, service.ErrNotRequestOwner), errors.Is(err, service.ErrRequestNotFound):
			h.answerCallback(ctx, b, callback.ID, "Solicitud no encontrada")
		default:
			h.logger.Error("Failed to resolve request", zap.Error(err))
			h.answerCallback(ctx, b, callback.ID, "❌ Ha ocurrido un error")
		}
		return
	}

	display := formatting.GetRequestStatusDisplay(req.Status)
	h.answerCallback(ctx, b, callback.ID, display.Emoji+" "+display.Text)

	// Tell the student the outcome.
	student, err := h.userService.GetByID(ctx, req.StudentID)
	if err != nil {
		h.logger.Error("Failed to notify student",
			zap.Int64("student_id", req.StudentID),
			zap.Error(err))
		return
	}

	if req.IsApproved() {
		h.sendText(ctx, b, student.TelegramID,
			fmt.Sprintf("✅ El profesor %s ha aceptado tu solicitud #%d. Ya puedes empezar la tutoría.",
				teacher.FullName(), req.ID))
	} else {
		h.sendText(ctx, b, student.TelegramID,
			fmt.Sprintf("❌ El profesor %s ha rechazado tu solicitud #%d.",
				teacher.FullName(), req.ID))
	}
}
