package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/Velasco-A/Sistema-de-tutorias-UGR-mediante-Telegram/internal/controller/formatting"
	"github.com/Velasco-A/Sistema-de-tutorias-UGR-mediante-Telegram/internal/controller/state"
	"github.com/Velasco-A/Sistema-de-tutorias-UGR-mediante-Telegram/internal/schedule"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// The editing keyboard only offers working days; weekends can still be
// read back from legacy records but are never produced here.
var editableDays = []schedule.Weekday{
	schedule.Lunes, schedule.Martes, schedule.Miercoles, schedule.Jueves, schedule.Viernes,
}

// HandleMiHorario starts the office-hours editing dialog: the persisted
// schedule is loaded once as a draft and only written back on save.
func (h *Handlers) HandleMiHorario(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	chatID := update.Message.Chat.ID
	user, ok := h.requireTeacher(ctx, b, chatID, update.Message.From.ID)
	if !ok {
		return
	}

	draft, err := h.scheduleService.BeginEdit(ctx, user.ID)
	if err != nil {
		h.logger.Error("Failed to load schedule draft",
			zap.Int64("teacher_id", user.ID),
			zap.Error(err))
		h.sendText(ctx, b, chatID, "❌ No se pudo cargar tu horario. Inténtalo más tarde.")
		return
	}

	telegramID := update.Message.From.ID
	h.stateManager.SetState(telegramID, state.StateHorarioDay)
	h.stateManager.SetData(telegramID, dataKeyDraft, draft)

	h.logger.Info("Schedule edit started",
		zap.Int64("teacher_id", user.ID),
		zap.Bool("empty", draft.IsEmpty()))

	h.sendDayMenu(ctx, b, chatID, draft)
}

// sendDayMenu shows the draft and the day-selection keyboard.
func (h *Handlers) sendDayMenu(ctx context.Context, b *bot.Bot, chatID int64, draft *schedule.Weekly) {
	var rows [][]models.InlineKeyboardButton
	for _, day := range editableDays {
		label := day.String()
		if slots := draft.SlotsFor(day); len(slots) > 0 {
			label = fmt.Sprintf("%s (%d)", day, len(slots))
		}
		rows = append(rows, []models.InlineKeyboardButton{{
			Text:         label,
			CallbackData: fmt.Sprintf("%s:%d", CallbackHorarioDay, int(day)),
		}})
	}
	rows = append(rows, []models.InlineKeyboardButton{
		{Text: "💾 Guardar", CallbackData: CallbackHorarioSave},
		{Text: "❌ Cancelar", CallbackData: CallbackHorarioCancel},
	})

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text: "🗓 Edición del horario de tutorías\n\n" +
			formatting.FormatSchedule(draft) + "\n\n" +
			"Elige un día para gestionar sus franjas. Los cambios no se " +
			"guardan hasta pulsar 💾 Guardar.",
		ReplyMarkup: &models.InlineKeyboardMarkup{InlineKeyboard: rows},
	})
}

// handleHorarioDayCallback opens the slot menu for the chosen day.
func (h *Handlers) handleHorarioDayCallback(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, payload string) {
	telegramID := callback.From.ID
	chatID := callbackChatID(callback)

	draft, ok := h.draftFromSession(telegramID)
	if !ok {
		h.answerCallback(ctx, b, callback.ID, "La edición ha caducado, usa /mihorario")
		return
	}

	day, ok := parseWeekdayIndex(payload)
	if !ok {
		h.answerCallback(ctx, b, callback.ID, "")
		return
	}

	h.stateManager.SetData(telegramID, dataKeyDay, int(day))
	h.stateManager.SetState(telegramID, state.StateHorarioSlot)

	h.answerCallback(ctx, b, callback.ID, "")
	h.sendSlotMenu(ctx, b, chatID, draft, day)
}

// sendSlotMenu shows the day's slots with delete buttons and prompts for
// a new slot.
func (h *Handlers) sendSlotMenu(ctx context.Context, b *bot.Bot, chatID int64, draft *schedule.Weekly, day schedule.Weekday) {
	var rows [][]models.InlineKeyboardButton
	for _, slot := range draft.SlotsFor(day) {
		rows = append(rows, []models.InlineKeyboardButton{{
			Text:         "🗑 " + slot.String(),
			CallbackData: fmt.Sprintf("%s:%d:%s", CallbackHorarioDel, int(day), slot),
		}})
	}
	rows = append(rows, []models.InlineKeyboardButton{
		{Text: "⬅️ Días", CallbackData: CallbackHorarioBack},
		{Text: "💾 Guardar", CallbackData: CallbackHorarioSave},
	})

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text: fmt.Sprintf(
			"📆 %s — franjas: %s\n\n"+
				"Escribe una franja nueva como HH:MM-HH:MM (por ejemplo 09:00-11:00) "+
				"o pulsa 🗑 para quitar una existente.",
			day, formatting.FormatDaySlots(draft, day)),
		ReplyMarkup: &models.InlineKeyboardMarkup{InlineKeyboard: rows},
	})
}

// handleHorarioSlotStep validates the typed slot and adds it to the draft.
func (h *Handlers) handleHorarioSlotStep(ctx context.Context, b *bot.Bot, update *models.Update) {
	telegramID := update.Message.From.ID
	chatID := update.Message.Chat.ID

	draft, ok := h.draftFromSession(telegramID)
	if !ok {
		h.stateManager.ClearState(telegramID)
		h.sendText(ctx, b, chatID, "La edición ha caducado, usa /mihorario para empezar de nuevo.")
		return
	}

	dayValue, ok := h.stateManager.GetData(telegramID, dataKeyDay)
	if !ok {
		h.stateManager.SetState(telegramID, state.StateHorarioDay)
		h.sendDayMenu(ctx, b, chatID, draft)
		return
	}
	day := schedule.Weekday(dayValue.(int))

	slot, err := schedule.ParseSlot(strings.TrimSpace(update.Message.Text))
	if err == nil {
		err = h.scheduleService.AddSlot(draft, day, slot)
	}
	if err != nil {
		h.sendText(ctx, b, chatID, slotErrorMessage(err))
		return
	}

	h.logger.Info("Slot added to draft",
		zap.Int64("telegram_id", telegramID),
		zap.String("day", day.String()),
		zap.String("slot", slot.String()))

	h.sendText(ctx, b, chatID, fmt.Sprintf("✅ Añadida %s el %s.", slot, day))
	h.sendSlotMenu(ctx, b, chatID, draft, day)
}

// handleHorarioDelCallback removes a slot from the draft.
func (h *Handlers) handleHorarioDelCallback(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, payload string) {
	telegramID := callback.From.ID
	chatID := callbackChatID(callback)

	draft, ok := h.draftFromSession(telegramID)
	if !ok {
		h.answerCallback(ctx, b, callback.ID, "La edición ha caducado, usa /mihorario")
		return
	}

	dayText, slotText, found := strings.Cut(payload, ":")
	if !found {
		h.answerCallback(ctx, b, callback.ID, "")
		return
	}

	day, ok := parseWeekdayIndex(dayText)
	if !ok {
		h.answerCallback(ctx, b, callback.ID, "")
		return
	}

	slot, err := schedule.ParseSlot(slotText)
	if err != nil {
		h.answerCallback(ctx, b, callback.ID, "")
		return
	}

	h.scheduleService.RemoveSlot(draft, day, slot)
	h.answerCallback(ctx, b, callback.ID, "🗑 Franja eliminada")
	h.sendSlotMenu(ctx, b, chatID, draft, day)
}

// handleHorarioBackCallback returns to the day selection menu.
func (h *Handlers) handleHorarioBackCallback(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery) {
	telegramID := callback.From.ID

	draft, ok := h.draftFromSession(telegramID)
	if !ok {
		h.answerCallback(ctx, b, callback.ID, "La edición ha caducado, usa /mihorario")
		return
	}

	h.stateManager.SetState(telegramID, state.StateHorarioDay)
	h.answerCallback(ctx, b, callback.ID, "")
	h.sendDayMenu(ctx, b, callbackChatID(callback), draft)
}

// handleHorarioSaveCallback persists the draft as a whole.
func (h *Handlers) handleHorarioSaveCallback(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery) {
	telegramID := callback.From.ID
	chatID := callbackChatID(callback)

	draft, ok := h.draftFromSession(telegramID)
	if !ok {
		h.answerCallback(ctx, b, callback.ID, "La edición ha caducado, usa /mihorario")
		return
	}

	user, ok := h.requireTeacher(ctx, b, chatID, telegramID)
	if !ok {
		h.answerCallback(ctx, b, callback.ID, "")
		return
	}

	if err := h.scheduleService.Commit(ctx, user.ID, draft); err != nil {
		h.logger.Error("Failed to commit schedule",
			zap.Int64("teacher_id", user.ID),
			zap.Error(err))
		h.answerCallback(ctx, b, callback.ID, "❌ No se pudo guardar")
		h.sendText(ctx, b, chatID, "❌ No se pudo guardar el horario. Tus cambios siguen en el borrador, vuelve a intentarlo.")
		return
	}

	h.stateManager.ClearState(telegramID)
	h.answerCallback(ctx, b, callback.ID, "💾 Horario guardado")
	h.sendMarkdown(ctx, b, chatID, "✅ *Horario guardado*\n\n"+formatting.FormatSchedule(draft))
}

// handleHorarioCancelCallback discards the draft.
func (h *Handlers) handleHorarioCancelCallback(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery) {
	h.stateManager.ClearState(callback.From.ID)
	h.answerCallback(ctx, b, callback.ID, "Edición cancelada")
	h.sendText(ctx, b, callbackChatID(callback), "❌ Edición cancelada. No se ha guardado ningún cambio.")
}

// draftFromSession recovers the schedule draft of the active edit.
func (h *Handlers) draftFromSession(telegramID int64) (*schedule.Weekly, bool) {
	value, ok := h.stateManager.GetData(telegramID, dataKeyDraft)
	if !ok {
		return nil, false
	}
	draft, ok := value.(*schedule.Weekly)
	return draft, ok
}

func parseWeekdayIndex(payload string) (schedule.Weekday, bool) {
	if len(payload) != 1 || payload[0] < '0' || payload[0] > '6' {
		return 0, false
	}
	return schedule.Weekday(payload[0] - '0'), true
}
