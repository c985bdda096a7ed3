package errs

import (
	"errors"
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return cr.Wrapf(err, format, args...)
}

func New(msg string) error {
	return cr.New(msg)
}

// Mark tags err so that errors.Is(err, markErr) holds while keeping the original chain.
// A nil err yields markErr itself.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return &marked{cause: cr.Mark(err, markErr), mark: markErr}
}

// marked exposes the mark to the standard errors.Is as well as to cr.Is.
type marked struct {
	cause error
	mark  error
}

func (m *marked) Error() string { return m.cause.Error() }

func (m *marked) Unwrap() error { return m.cause }

func (m *marked) Is(target error) bool {
	return target == m.mark || errors.Is(m.mark, target)
}

// Message is the caller-facing text of err: a specific sentinel mark wins over the
// low-level cause, a bare class mark keeps the cause.
func Message(err error) string {
	var m *marked
	if errors.As(err, &m) {
		if _, ok := m.mark.(*classified); ok {
			return m.mark.Error()
		}
		if inner := errors.Unwrap(m.cause); inner != nil {
			return Message(inner)
		}
		return m.cause.Error()
	}
	return err.Error()
}

type classified struct {
	msg   string
	class error
}

func (e *classified) Error() string { return e.msg }

func (e *classified) Is(target error) bool { return target == e.class }

// Define creates a sentinel that also matches its class under errors.Is.
func Define(class error, msg string) error {
	return &classified{msg: msg, class: class}
}

// ClassOf reports which of the given classes err belongs to, or nil.
func ClassOf(err error, classes ...error) error {
	for _, c := range classes {
		if errors.Is(err, c) {
			return c
		}
	}
	return nil
}

func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	s := fmt.Sprintf("%+v", err)
	lines := strings.Split(s, "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
