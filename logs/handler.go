package logs

import (
	"context"
	"log/slog"
)

type tickKeyType struct{}

var TickKey tickKeyType

// WithTick attaches the current tick number to the context. Handler
// adds it to every record logged under that context.
func WithTick(ctx context.Context, tick int64) context.Context {
	return context.WithValue(ctx, TickKey, tick)
}

type Handler struct {
	slog.Handler
}

func (h *Handler) Handle(ctx context.Context, record slog.Record) error {
	if v := ctx.Value(TickKey); v != nil {
		record.Add("tick", v.(int64))
	}
	return h.Handler.Handle(ctx, record)
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Handler{
		Handler: h.Handler.WithAttrs(attrs),
	}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{
		Handler: h.Handler.WithGroup(name),
	}
}
