package tui

import (
	"io"

	"go.uber.org/zap"
)

// Theme holds the prefixes the session puts in front of printed messages.
type Theme struct {
	InfoPrefix    string
	ErrorPrefix   string
	SuccessPrefix string
}

// Option configures a Session.
type Option func(*Session)

// WithPromptDriver overrides the prompt driver used by the session.
func WithPromptDriver(driver PromptDriver) Option {
	return func(s *Session) {
		if driver != nil {
			s.driver = driver
		}
	}
}

// WithOutput sets where the default driver prints messages.
func WithOutput(out io.Writer) Option {
	return func(s *Session) {
		s.out = out
	}
}

// WithTheme applies optional message prefixes.
func WithTheme(theme Theme) Option {
	return func(s *Session) {
		s.theme = theme
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}
