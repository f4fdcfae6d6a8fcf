// Package log provides logging utilities.
package log

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/golang-cz/devslog"
	"github.com/phsym/console-slog"
	slogformatter "github.com/samber/slog-formatter"
)

var newHandler = slogformatter.NewFormatterHandler(
	slogformatter.ErrorFormatter("error"),
)

// Def is a default logger. Advisory warnings raised while parsing
// PKCS#11 URIs are emitted through it unless overridden per call.
var Def = slog.New(newHandler(
	console.NewHandler(os.Stderr, &console.HandlerOptions{
		Level:      slog.LevelWarn,
		TimeFormat: time.RFC3339Nano,
	}),
))

// Dev is a developer logger.
var Dev = slog.New(newHandler(
	devslog.NewHandler(os.Stderr, &devslog.Options{
		HandlerOptions: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
		SortKeys:   true,
		TimeFormat: time.RFC3339Nano,
	}),
))

type noopHandler struct{}

func (noopHandler) Enabled(context.Context, slog.Level) bool { return false }

func (noopHandler) Handle(context.Context, slog.Record) error { return nil }

func (h noopHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h noopHandler) WithGroup(string) slog.Handler { return h }

// Noop is a noop logger.
var Noop = slog.New(noopHandler{})
