// Package cli contains the cobra commands for the opsdeck binary.
// Commands are thin: they parse flags and arguments, build a context
// carrying the actor name, and delegate to the wired services.
package cli

import (
	"context"

	"github.com/example/opsdeck/internal/config"
	"github.com/example/opsdeck/internal/ctxutil"
)

// NewContext returns a context carrying the actor from config. Every
// mutating command goes through here so log entries get stamped.
func NewContext() context.Context {
	ctx := context.Background()
	cfg, err := config.Load()
	if err != nil || cfg.Actor == "" {
		return ctx
	}
	return ctxutil.WithActor(ctx, cfg.Actor)
}
