package util

import (
	"regexp"
	"strings"
)

// 用户名规则：仅字母、数字
var usernameRe = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

const (
	UsernameMinLen = 3
	UsernameMaxLen = 10
	PasswordMinLen = 8
	PasswordMaxLen = 70
)

// ValidateCredentials checks a raw username/password pair and returns the
// list of violated rules, in a fixed order. An empty slice means the input
// is acceptable. The function has no side effects; the caller keeps its own
// copy of the trimmed username for storage.
func ValidateCredentials(username, password string) []string {
	errs := []string{}

	username = strings.TrimSpace(username)

	if username == "" {
		errs = append(errs, "Username cannot be empty.")
	}
	if username != "" && len(username) < UsernameMinLen {
		errs = append(errs, "Username must be at least 3 characters long.")
	}
	if username != "" && len(username) > UsernameMaxLen {
		errs = append(errs, "Username must be at maximum of 10 characters.")
	}
	if username != "" && !usernameRe.MatchString(username) {
		errs = append(errs, "Username can only contain letters and numbers.")
	}

	if password == "" {
		errs = append(errs, "Password cannot be empty.")
	}
	if password != "" && len(password) < PasswordMinLen {
		errs = append(errs, "Password must be at least 8 characters long.")
	}
	if password != "" && len(password) > PasswordMaxLen {
		errs = append(errs, "Password must be at maximum of 70 characters.")
	}

	return errs
}
