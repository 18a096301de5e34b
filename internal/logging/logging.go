// Package logging wires up structured logging for the token service using
// zerolog loggers that carry warn/error distinctions as structured fields
// instead of format strings.
package logging

import (
	"io"
	"math/big"
	"os"

	"github.com/rs/zerolog"
)

// New builds a zerolog.Logger writing to w in the given level, defaulting
// to a human-readable console writer on stderr when w is nil.
func New(level string, w io.Writer) zerolog.Logger {
	if w == nil {
		w = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}

// Component returns a child logger tagged with a component field, the way
// each package in the service should identify itself in shared output.
func Component(base zerolog.Logger, name string) zerolog.Logger {
	return base.With().Str("component", name).Logger()
}

// EventSink adapts a zerolog.Logger to token.EventSink, so index updates,
// transfers, and earning enrollment changes are logged as structured
// fields rather than dropped on the floor.
type EventSink struct {
	log zerolog.Logger
}

// NewEventSink builds an EventSink logging under the given base logger's
// "event" component.
func NewEventSink(base zerolog.Logger) EventSink {
	return EventSink{log: Component(base, "event")}
}

func (s EventSink) IndexUpdated(currentIndex *big.Int, rate uint32) {
	s.log.Info().
		Str("index", currentIndex.String()).
		Uint32("rate_bp", rate).
		Msg("index updated")
}

func (s EventSink) StartedEarning(account string) {
	s.log.Info().Str("account", account).Msg("started earning")
}

func (s EventSink) StoppedEarning(account string) {
	s.log.Info().Str("account", account).Msg("stopped earning")
}

func (s EventSink) Transfer(from, to string, amount *big.Int) {
	s.log.Info().
		Str("from", from).
		Str("to", to).
		Str("amount", amount.String()).
		Msg("transfer")
}
