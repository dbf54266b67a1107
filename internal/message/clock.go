package message

import (
	"fmt"
	"strconv"
	"strings"
)

// To12Hour converts "HH:MM" to a 12-hour clock with an AM/PM suffix. The
// minutes are passed through as given. Anything after the minutes, such as a
// " (IST)" zone note, is kept after the suffix.
func To12Hour(time24 string) string {
	hourStr, rest, ok := strings.Cut(time24, ":")
	if !ok {
		return time24
	}
	hour, err := strconv.Atoi(strings.TrimSpace(hourStr))
	if err != nil {
		return time24
	}
	minute, note, _ := strings.Cut(rest, " ")

	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	hour %= 12
	if hour == 0 {
		hour = 12
	}

	out := fmt.Sprintf("%d:%s %s", hour, minute, suffix)
	if note = strings.TrimSpace(note); note != "" {
		out += " " + note
	}
	return out
}
