package handlers

import (
	"github.com/Velasco-A/Sistema-de-tutorias-UGR-mediante-Telegram/internal/controller/state"
	"github.com/Velasco-A/Sistema-de-tutorias-UGR-mediante-Telegram/internal/service"
	"go.uber.org/zap"
)

// Handlers bundles the dependencies every command and dialog step needs.
type Handlers struct {
	userService     *service.UserService
	scheduleService *service.ScheduleService
	accessService   *service.AccessService
	stateManager    *state.Manager
	logger          *zap.Logger
}

// NewHandlers wires the command handlers.
func NewHandlers(
	userService *service.UserService,
	scheduleService *service.ScheduleService,
	accessService *service.AccessService,
	stateManager *state.Manager,
	logger *zap.Logger,
) *Handlers {
	return &Handlers{
		userService:     userService,
		scheduleService: scheduleService,
		accessService:   accessService,
		stateManager:    stateManager,
		logger:          logger,
	}
}
