package locale

import (
	"errors"
	"testing"
	"time"
)

func TestLookup(t *testing.T) {
	en, err := Lookup("")
	if err != nil {
		t.Fatalf("default lookup: %v", err)
	}
	if en.Month(time.March) != "March" || en.MonthShort(time.December) != "Dec" {
		t.Fatalf("unexpected english table: %+v", en)
	}
	ko, err := Lookup(" KO ")
	if err != nil {
		t.Fatalf("ko lookup: %v", err)
	}
	if ko.Weekdays[0] != "일" {
		t.Fatalf("unexpected korean weekday %q", ko.Weekdays[0])
	}
}

func TestLookup_Unknown(t *testing.T) {
	_, err := Lookup("xx")
	var ule *UnknownLanguageError
	if !errors.As(err, &ule) || ule.Key != "xx" {
		t.Fatalf("expected UnknownLanguageError, got %v", err)
	}
}

func TestRegister(t *testing.T) {
	en, _ := Lookup("en")
	en.Today = "Now"
	Register("en-test", en)
	got, err := Lookup("EN-TEST")
	if err != nil || got.Today != "Now" {
		t.Fatalf("registered table not found: %v %+v", err, got)
	}
	found := false
	for _, k := range Languages() {
		if k == "en-test" {
			found = true
		}
	}
	if !found {
		t.Fatalf("Languages() missing registered key")
	}
}
