package timepicker

import (
	"strconv"
	"strings"
)

func parseIntDefault(s string, def int) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

// wrap brings h and mi back into a day, carrying minutes into hours.
func wrap(h, mi int) (int, int) {
	for mi < 0 {
		mi += 60
		h--
	}
	for mi >= 60 {
		mi -= 60
		h++
	}
	for h < 0 {
		h += 24
	}
	for h >= 24 {
		h -= 24
	}
	return h, mi
}

func fmt2(n int) string {
	if n < 0 {
		n = 0
	}
	if n > 99 {
		n = 99
	}
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
