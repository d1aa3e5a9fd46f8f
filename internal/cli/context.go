package cli

import (
	"context"

	"github.com/thenoetrevino/aftercare/internal/app"
	"github.com/thenoetrevino/aftercare/internal/config"
)

type contextKey string

const appKey contextKey = "app"

// WithApp returns a context that makes GetCLIFromContext reuse application
// instead of opening the database. Tests use it to run commands against an
// in-memory store.
func WithApp(ctx context.Context, application *app.App) context.Context {
	return context.WithValue(ctx, appKey, application)
}

// GetCLIFromContext returns a CLI for the command context, opening the
// database unless an App was attached with WithApp
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if application, ok := ctx.Value(appKey).(*app.App); ok && application != nil {
		return &CLI{
			App:    application,
			Config: config.Default(),
			ctx:    ctx,
		}, nil
	}
	return NewCLI(ctx)
}
