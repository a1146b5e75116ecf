package schedule

import (
	"fmt"
	"time"
)

// ParseHM converte "HH:MM" em minutos desde meia-noite.
func ParseHM(hm string) (int, error) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatHM converte minutos desde meia-noite em "HH:MM".
func FormatHM(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

func isValidHM(hm string) bool {
	_, err := ParseHM(hm)
	return err == nil
}
