package handlers

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/Velasco-A/Sistema-de-tutorias-UGR-mediante-Telegram/internal/controller/formatting"
	"github.com/Velasco-A/Sistema-de-tutorias-UGR-mediante-Telegram/internal/controller/render"
	"github.com/Velasco-A/Sistema-de-tutorias-UGR-mediante-Telegram/internal/controller/state"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandleStart registers the sender and shows the welcome text.
func (h *Handlers) HandleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	from := update.Message.From
	user, err := h.userService.RegisterUser(ctx, from.ID, from.FirstName, from.LastName)
	if err != nil {
		h.logger.Error("Failed to register user", zap.Error(err))
		h.sendText(ctx, b, update.Message.Chat.ID, "❌ Ha ocurrido un error al registrarte. Inténtalo más tarde.")
		return
	}

	welcome := fmt.Sprintf(
		"👋 ¡Hola, %s!\n\n"+
			"Bienvenido al sistema de tutorías de la UGR.\n\n"+
			"Comandos disponibles:\n"+
			"/registro - Verificar tu correo UGR\n"+
			"/tutoria - Solicitar una tutoría\n"+
			"/ayuda - Ver la ayuda\n\n"+
			"Para profesores:\n"+
			"/mihorario - Configurar horario de tutorías\n"+
			"/verhorario - Ver tu horario actual\n"+
			"/solicitudes - Solicitudes pendientes",
		user.FirstName,
	)

	h.sendText(ctx, b, update.Message.Chat.ID, welcome)
}

// HandleAyuda shows the command reference.
func (h *Handlers) HandleAyuda(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	help := "📚 Ayuda del sistema de tutorías:\n\n" +
		"Para estudiantes:\n" +
		"/registro - Verificar tu correo UGR\n" +
		"/tutoria - Solicitar tutoría a un profesor\n\n" +
		"Para profesores:\n" +
		"/mihorario - Editar horario de tutorías\n" +
		"/verhorario - Ver tu horario actual\n" +
		"/solicitudes - Revisar solicitudes pendientes\n\n" +
		"/cancelar - Cancelar la operación en curso\n\n" +
		"Las solicitudes de tutoría solo se aceptan dentro del " +
		"horario publicado por cada profesor."

	h.sendText(ctx, b, update.Message.Chat.ID, help)
}

// HandleCancelar aborts any dialog in progress.
func (h *Handlers) HandleCancelar(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	telegramID := update.Message.From.ID
	if h.stateManager.GetState(telegramID) == state.StateNone {
		h.sendText(ctx, b, update.Message.Chat.ID, "No hay ninguna operación en curso.")
		return
	}

	h.stateManager.ClearState(telegramID)
	h.sendText(ctx, b, update.Message.Chat.ID, "✅ Operación cancelada. Los cambios no guardados se han descartado.")
}

// HandleVerHorario shows the teacher their published office hours, as
// text and as a rendered week grid.
func (h *Handlers) HandleVerHorario(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	chatID := update.Message.Chat.ID
	user, ok := h.requireTeacher(ctx, b, chatID, update.Message.From.ID)
	if !ok {
		return
	}

	w, err := h.scheduleService.Load(ctx, user.ID)
	if err != nil {
		h.logger.Error("Failed to load schedule",
			zap.Int64("teacher_id", user.ID),
			zap.Error(err))
		h.sendText(ctx, b, chatID, "❌ No se pudo cargar tu horario. Inténtalo más tarde.")
		return
	}

	h.sendMarkdown(ctx, b, chatID, "🗓 *Tu horario de tutorías*\n\n"+formatting.FormatSchedule(w))

	if w.IsEmpty() {
		return
	}

	imageData, err := render.WeekImage(w)
	if err != nil {
		h.logger.Error("Failed to render week image", zap.Error(err))
		return
	}

	b.SendPhoto(ctx, &bot.SendPhotoParams{
		ChatID: chatID,
		Photo:  &models.InputFileUpload{Filename: "horario.png", Data: bytes.NewReader(imageData)},
	})
}

// HandleSolicitudes lists the teacher's pending tutoring requests with
// approve/reject buttons.
func (h *Handlers) HandleSolicitudes(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	chatID := update.Message.Chat.ID
	user, ok := h.requireTeacher(ctx, b, chatID, update.Message.From.ID)
	if !ok {
		return
	}

	requests, err := h.accessService.PendingRequests(ctx, user.ID)
	if err != nil {
		h.logger.Error("Failed to list pending requests", zap.Error(err))
		h.sendText(ctx, b, chatID, "❌ No se pudieron cargar las solicitudes.")
		return
	}

	if len(requests) == 0 {
		h.sendText(ctx, b, chatID, "✅ No tienes solicitudes pendientes.")
		return
	}

	for _, req := range requests {
		student, err := h.userService.GetByID(ctx, req.StudentID)
		if err != nil {
			h.logger.Warn("Skipping request with unknown student",
				zap.Int64("request_id", req.ID),
				zap.Error(err))
			continue
		}

		text := fmt.Sprintf(
			"⏳ Solicitud #%d\n\n"+
				"👤 Estudiante: %s\n"+
				"📧 Correo: %s\n"+
				"💬 Mensaje: %s",
			req.ID, student.FullName(), student.Email, req.Message,
		)

		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:      chatID,
			Text:        text,
			ReplyMarkup: requestKeyboard(req.ID),
		})
	}
}

// HandleTutoria starts the student flow: pick a teacher to request.
func (h *Handlers) HandleTutoria(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	chatID := update.Message.Chat.ID
	user, ok := h.requireUser(ctx, b, chatID, update.Message.From.ID)
	if !ok {
		return
	}

	if !user.Registered {
		h.sendText(ctx, b, chatID, "❗ Debes verificar tu correo UGR con /registro antes de solicitar tutorías.")
		return
	}

	teachers, err := h.userService.GetRegisteredTeachers(ctx)
	if err != nil {
		h.logger.Error("Failed to list teachers", zap.Error(err))
		h.sendText(ctx, b, chatID, "❌ No se pudo cargar la lista de profesores.")
		return
	}

	if len(teachers) == 0 {
		h.sendText(ctx, b, chatID, "ℹ️ Todavía no hay profesores registrados.")
		return
	}

	var rows [][]models.InlineKeyboardButton
	for _, teacher := range teachers {
		rows = append(rows, []models.InlineKeyboardButton{{
			Text:         teacher.FullName(),
			CallbackData: fmt.Sprintf("%s:%d", CallbackTutoriaProf, teacher.ID),
		}})
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        "👩‍🏫 Elige el profesor al que quieres solicitar una tutoría:",
		ReplyMarkup: &models.InlineKeyboardMarkup{InlineKeyboard: rows},
	})
}

// HandleTextMessage routes free text into the active dialog step.
func (h *Handlers) HandleTextMessage(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}

	// Commands are handled by their own registered handlers.
	if strings.HasPrefix(update.Message.Text, "/") {
		return
	}

	telegramID := update.Message.From.ID

	switch h.stateManager.GetState(telegramID) {
	case state.StateRegisterEmail:
		h.handleRegisterEmailStep(ctx, b, update)
	case state.StateRegisterToken:
		h.handleRegisterTokenStep(ctx, b, update)
	case state.StateHorarioSlot:
		h.handleHorarioSlotStep(ctx, b, update)
	case state.StateAccessMessage:
		h.handleAccessMessageStep(ctx, b, update)
	}
}
