package domain

import (
	"errors"
	"log/slog"
)

// Email is an in-flight email address. Construction only checks presence;
// uniqueness is the store's job.
type Email string

func NewEmail(s string) (Email, error) {
	if s == "" {
		return "", errors.New("email is empty")
	}
	return Email(s), nil
}

func (e Email) String() string { return string(e) }

// Password is an in-flight plaintext password. It renders as [REDACTED]
// through fmt and slog so a stray log line cannot leak it.
type Password string

func NewPassword(s string) (Password, error) {
	if s == "" {
		return "", errors.New("password is empty")
	}
	return Password(s), nil
}

func (Password) String() string { return "[REDACTED]" }

func (Password) LogValue() slog.Value { return slog.StringValue("[REDACTED]") }
