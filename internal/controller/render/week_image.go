package render

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/Velasco-A/Sistema-de-tutorias-UGR-mediante-Telegram/internal/schedule"
	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
)

// Layout constants
const (
	imageWidth     = 1000
	imageHeight    = 640
	headerHeight   = 60
	leftLabelWidth = 70
	dayPaddingX    = 6
	minHourSpan    = 4
)

// Color scheme
var (
	bgColor       = color.RGBA{245, 246, 248, 255}
	gridLineColor = color.NRGBA{170, 175, 180, 255}
	evenDayColor  = color.NRGBA{240, 240, 240, 255}
	oddDayColor   = color.NRGBA{226, 228, 230, 255}
	labelColor    = color.RGBA{80, 85, 90, 255}
	slotColor     = color.RGBA{133, 193, 85, 230}
	slotTextColor = color.RGBA{20, 24, 28, 255}
)

// WeekImage draws the office-hours week as a PNG grid, one column per
// day, green blocks for tutoring slots.
func WeekImage(w *schedule.Weekly) ([]byte, error) {
	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetFontFace(basicfont.Face7x13)

	dc.SetColor(bgColor)
	dc.Clear()

	minHour, maxHour := hourBounds(w)
	hours := maxHour - minHour

	colWidth := float64(imageWidth-leftLabelWidth) / float64(len(schedule.AllWeekdays))
	rowHeight := float64(imageHeight-headerHeight) / float64(hours)

	// Day columns with alternating background and header label.
	for i, day := range schedule.AllWeekdays {
		x := float64(leftLabelWidth) + float64(i)*colWidth

		if i%2 == 0 {
			dc.SetColor(evenDayColor)
		} else {
			dc.SetColor(oddDayColor)
		}
		dc.DrawRectangle(x, headerHeight, colWidth, float64(imageHeight-headerHeight))
		dc.Fill()

		dc.SetColor(labelColor)
		dc.DrawStringAnchored(day.String(), x+colWidth/2, headerHeight/2, 0.5, 0.5)
	}

	// Hour lines and labels.
	for h := 0; h <= hours; h++ {
		y := float64(headerHeight) + float64(h)*rowHeight

		dc.SetColor(gridLineColor)
		dc.SetLineWidth(1)
		dc.DrawLine(leftLabelWidth, y, imageWidth, y)
		dc.Stroke()

		if h < hours {
			dc.SetColor(labelColor)
			dc.DrawStringAnchored(fmt.Sprintf("%02d:00", minHour+h), leftLabelWidth/2, y+rowHeight/2, 0.5, 0.5)
		}
	}

	// Slot blocks.
	for i, day := range schedule.AllWeekdays {
		x := float64(leftLabelWidth) + float64(i)*colWidth

		for _, slot := range w.SlotsFor(day) {
			startY := minuteToY(slot.StartMinute(), minHour, rowHeight)
			endY := minuteToY(slot.EndMinute(), minHour, rowHeight)

			dc.SetColor(slotColor)
			dc.DrawRoundedRectangle(x+dayPaddingX, startY, colWidth-2*dayPaddingX, endY-startY, 4)
			dc.Fill()

			dc.SetColor(slotTextColor)
			dc.DrawStringAnchored(slot.String(), x+colWidth/2, (startY+endY)/2, 0.5, 0.5)
		}
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode week image: %w", err)
	}
	return buf.Bytes(), nil
}

// hourBounds picks the displayed hour range: the slots' span padded by an
// hour each side, or a working-day default when the schedule is empty.
func hourBounds(w *schedule.Weekly) (int, int) {
	minHour, maxHour := 24, 0
	for _, day := range schedule.AllWeekdays {
		for _, slot := range w.SlotsFor(day) {
			if h := slot.StartMinute() / 60; h < minHour {
				minHour = h
			}
			if h := (slot.EndMinute() + 59) / 60; h > maxHour {
				maxHour = h
			}
		}
	}

	if minHour > maxHour {
		return 8, 20
	}

	if minHour > 0 {
		minHour--
	}
	if maxHour < 24 {
		maxHour++
	}
	if maxHour-minHour < minHourSpan {
		maxHour = minHour + minHourSpan
	}
	if maxHour > 24 {
		minHour -= maxHour - 24
		maxHour = 24
	}
	return minHour, maxHour
}

func minuteToY(minute, minHour int, rowHeight float64) float64 {
	return float64(headerHeight) + float64(minute-minHour*60)/60*rowHeight
}
