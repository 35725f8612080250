package formatting

import (
	"github.com/Velasco-A/Sistema-de-tutorias-UGR-mediante-Telegram/internal/model"
)

// StatusDisplay pairs an emoji with the user-facing status text.
type StatusDisplay struct {
	Emoji string
	Text  string
}

// GetRequestStatusDisplay maps a request status onto its display form.
func GetRequestStatusDisplay(status string) StatusDisplay {
	switch status {
	case model.RequestStatusPending:
		return StatusDisplay{Emoji: "⏳", Text: "Pendiente"}
	case model.RequestStatusApproved:
		return StatusDisplay{Emoji: "✅", Text: "Aprobada"}
	case model.RequestStatusRejected:
		return StatusDisplay{Emoji: "❌", Text: "Rechazada"}
	default:
		return StatusDisplay{Emoji: "❔", Text: "Desconocido"}
	}
}
