package controller

import (
	"context"

	"github.com/Velasco-A/Sistema-de-tutorias-UGR-mediante-Telegram/internal/controller/handlers"
	"github.com/Velasco-A/Sistema-de-tutorias-UGR-mediante-Telegram/internal/controller/state"
	"github.com/Velasco-A/Sistema-de-tutorias-UGR-mediante-Telegram/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

type BotController struct {
	bot          *bot.Bot
	handlers     *handlers.Handlers
	stateManager *state.Manager
	logger       *zap.Logger
}

func NewBotController(
	botInstance *bot.Bot,
	userService *service.UserService,
	scheduleService *service.ScheduleService,
	accessService *service.AccessService,
	logger *zap.Logger,
) *BotController {
	stateManager := state.NewManager()

	cmdHandlers := handlers.NewHandlers(
		userService,
		scheduleService,
		accessService,
		stateManager,
		logger,
	)

	return &BotController{
		bot:          botInstance,
		handlers:     cmdHandlers,
		stateManager: stateManager,
		logger:       logger,
	}
}

// StateManager exposes the dialog sessions for background maintenance.
func (c *BotController) StateManager() *state.Manager {
	return c.stateManager
}

// RegisterHandlers wires every command, dialog and callback handler.
func (c *BotController) RegisterHandlers(ctx context.Context) error {
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypeExact, c.handlers.HandleStart)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/ayuda", bot.MatchTypeExact, c.handlers.HandleAyuda)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/registro", bot.MatchTypeExact, c.handlers.HandleRegistro)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/tutoria", bot.MatchTypeExact, c.handlers.HandleTutoria)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/cancelar", bot.MatchTypeExact, c.handlers.HandleCancelar)

	// Comandos para profesores
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/mihorario", bot.MatchTypeExact, c.handlers.HandleMiHorario)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/verhorario", bot.MatchTypeExact, c.handlers.HandleVerHorario)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/solicitudes", bot.MatchTypeExact, c.handlers.HandleSolicitudes)

	// Free text feeds the dialog state machine.
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "", bot.MatchTypePrefix, c.handlers.HandleTextMessage)

	// Inline keyboard presses.
	c.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "", bot.MatchTypePrefix, c.handlers.HandleCallbackQuery)

	return c.setCommands(ctx)
}

// setCommands publishes the command menu.
func (c *BotController) setCommands(ctx context.Context) error {
	commands := []models.BotCommand{
		{Command: "start", Description: "🚀 Empezar a usar el bot"},
		{Command: "registro", Description: "📧 Verificar tu correo UGR"},
		{Command: "tutoria", Description: "📚 Solicitar una tutoría"},
		{Command: "mihorario", Description: "🗓 Editar horario de tutorías (profesor)"},
		{Command: "verhorario", Description: "👀 Ver tu horario (profesor)"},
		{Command: "solicitudes", Description: "⏳ Solicitudes pendientes (profesor)"},
		{Command: "cancelar", Description: "❌ Cancelar la operación en curso"},
		{Command: "ayuda", Description: "❓ Ayuda"},
	}

	_, err := c.bot.SetMyCommands(ctx, &bot.SetMyCommandsParams{
		Commands: commands,
	})

	if err != nil {
		c.logger.Error("Failed to set bot commands", zap.Error(err))
		return err
	}

	c.logger.Info("✅ Bot commands menu set")
	return nil
}

// Start runs the long-polling loop until the context is cancelled.
func (c *BotController) Start(ctx context.Context) error {
	c.logger.Info("Starting bot...")
	c.bot.Start(ctx)
	return nil
}
