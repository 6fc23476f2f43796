// Package locale holds the text tables the calendar renders titles and
// headers from.
package locale

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// Texts is one language's calendar vocabulary.
type Texts struct {
	Months      [12]string
	MonthsShort [12]string
	// Weekdays are two-letter headers starting on Sunday.
	Weekdays [7]string
	// TitleDate formats the DATE view title; %[1]s is the month name and
	// %[2]d the year.
	TitleDate string
	// TitleMonth formats the MONTH view title from the year.
	TitleMonth string
	// TitleYear formats the YEAR view title from the first and last year.
	TitleYear string
	Today     string
	Time      string
}

// Month returns the full name of m.
func (t Texts) Month(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return t.Months[m-1]
}

// MonthShort returns the abbreviated name of m.
func (t Texts) MonthShort(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return t.MonthsShort[m-1]
}

var (
	mu     sync.RWMutex
	tables = map[string]Texts{
		"en": {
			Months:      [12]string{"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"},
			MonthsShort: [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
			Weekdays:    [7]string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"},
			TitleDate:   "%[1]s %[2]d",
			TitleMonth:  "%d",
			TitleYear:   "%d - %d",
			Today:       "Today",
			Time:        "Time",
		},
		"ko": {
			Months:      [12]string{"1월", "2월", "3월", "4월", "5월", "6월", "7월", "8월", "9월", "10월", "11월", "12월"},
			MonthsShort: [12]string{"1월", "2월", "3월", "4월", "5월", "6월", "7월", "8월", "9월", "10월", "11월", "12월"},
			Weekdays:    [7]string{"일", "월", "화", "수", "목", "금", "토"},
			TitleDate:   "%[2]d년 %[1]s",
			TitleMonth:  "%d년",
			TitleYear:   "%d - %d",
			Today:       "오늘",
			Time:        "시간",
		},
	}
)

// UnknownLanguageError is returned for a key with no registered table.
type UnknownLanguageError struct {
	Key string
}

func (e *UnknownLanguageError) Error() string {
	return fmt.Sprintf("unknown language %q (known: %s)", e.Key, strings.Join(Languages(), ", "))
}

// Lookup returns the table registered for key. Keys are case-insensitive.
// An empty key means "en".
func Lookup(key string) (Texts, error) {
	k := strings.ToLower(strings.TrimSpace(key))
	if k == "" {
		k = "en"
	}
	mu.RLock()
	defer mu.RUnlock()
	t, ok := tables[k]
	if !ok {
		return Texts{}, &UnknownLanguageError{Key: key}
	}
	return t, nil
}

// Register adds or replaces the table for key.
func Register(key string, t Texts) {
	mu.Lock()
	defer mu.Unlock()
	tables[strings.ToLower(strings.TrimSpace(key))] = t
}

// Languages lists the registered keys, sorted.
func Languages() []string {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]string, 0, len(tables))
	for k := range tables {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
