package location

import (
	"strings"

	"marketplace/internal/entities"
)

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

// isValidHours пустой слот допустим только для закрытого дня.
func isValidHours(hours [entities.DaySlots]entities.DayHours) bool {
	for _, day := range hours {
		if !day.IsOpen {
			continue
		}
		if !isValidClock(day.Open) || !isValidClock(day.Close) {
			return false
		}
	}
	return true
}

// isValidClock время в формате HH:MM.
func isValidClock(clock string) bool {
	if len(clock) != 5 || clock[2] != ':' {
		return false
	}

	hh := clock[:2]
	mm := clock[3:]
	for _, char := range hh + mm {
		if char < '0' || char > '9' {
			return false
		}
	}

	hours := int(hh[0]-'0')*10 + int(hh[1]-'0')
	minutes := int(mm[0]-'0')*10 + int(mm[1]-'0')
	return hours < 24 && minutes < 60
}
