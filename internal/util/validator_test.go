package util

import (
	"reflect"
	"strings"
	"testing"
)

const okPassword = "password1"

func TestValidateCredentials_AcceptsGoodInput(t *testing.T) {
	if errs := ValidateCredentials("abc123", okPassword); len(errs) != 0 {
		t.Errorf("ValidateCredentials(abc123) = %v, want no errors", errs)
	}
}

func TestValidateCredentials_Username(t *testing.T) {
	cases := []struct {
		name     string
		username string
		wantErr  string
	}{
		{"empty", "", "Username cannot be empty."},
		{"whitespace only", "   ", "Username cannot be empty."},
		{"too short", "ab", "at least 3 characters"},
		{"too long (11 chars)", "abcdefghijk", "at maximum of 10 characters"},
		{"bad characters", "ab!", "letters and numbers"},
		{"unicode rejected", "abcñ", "letters and numbers"},
	}

	for _, tc := range cases {
		errs := ValidateCredentials(tc.username, okPassword)
		if len(errs) == 0 {
			t.Errorf("%s: ValidateCredentials(%q) accepted, want error", tc.name, tc.username)
			continue
		}
		if !strings.Contains(errs[0], tc.wantErr) {
			t.Errorf("%s: first error = %q, want mention of %q", tc.name, errs[0], tc.wantErr)
		}
	}
}

func TestValidateCredentials_Password(t *testing.T) {
	cases := []struct {
		name     string
		password string
		wantOK   bool
	}{
		{"length 7 rejected", strings.Repeat("p", 7), false},
		{"length 8 accepted", strings.Repeat("p", 8), true},
		{"length 70 accepted", strings.Repeat("p", 70), true},
		{"length 71 rejected", strings.Repeat("p", 71), false},
		{"empty rejected", "", false},
	}

	for _, tc := range cases {
		errs := ValidateCredentials("abc123", tc.password)
		if ok := len(errs) == 0; ok != tc.wantOK {
			t.Errorf("%s: errors = %v, want ok=%v", tc.name, errs, tc.wantOK)
		}
	}
}

// 多条违规必须按固定顺序累积
func TestValidateCredentials_AccumulatesInOrder(t *testing.T) {
	errs := ValidateCredentials("", "")
	want := []string{"Username cannot be empty.", "Password cannot be empty."}
	if !reflect.DeepEqual(errs, want) {
		t.Errorf("ValidateCredentials(\"\", \"\") = %v, want %v", errs, want)
	}
}

func TestValidateCredentials_Deterministic(t *testing.T) {
	first := ValidateCredentials("a!", "short")
	second := ValidateCredentials("a!", "short")
	if !reflect.DeepEqual(first, second) {
		t.Errorf("same input produced different error lists: %v vs %v", first, second)
	}
}

func TestValidateCredentials_TrimsUsername(t *testing.T) {
	if errs := ValidateCredentials("  abc123  ", okPassword); len(errs) != 0 {
		t.Errorf("surrounding whitespace should be trimmed before checks, got %v", errs)
	}
}
