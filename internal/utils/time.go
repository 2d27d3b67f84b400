package utils

import (
	"fmt"
	"time"
)

var SPLoc *time.Location

func init() {
	var err error
	SPLoc, err = time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		panic("Failed to load São Paulo location " + err.Error())
	}
}

// FormatSaoPaulo returns the provided time formatted in São Paulo local time.
func FormatSaoPaulo(t time.Time) string {
	return t.In(SPLoc).Format(time.RFC1123)
}

// FormatClock renders a second count as HH:MM:SS for the session timer.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d:%02d", seconds/3600, seconds%3600/60, seconds%60)
}
