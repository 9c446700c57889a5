package apperr

import (
	"context"

	"github.com/m-mizutani/ctxlog"
)

// Handle funnels an application error to the context logger
func Handle(ctx context.Context, err error) {
	logger := ctxlog.From(ctx)
	logger.Error("application error", "error", err)
}
