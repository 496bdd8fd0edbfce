package lazylist

import (
	"context"

	"go.llib.dev/frameless/pkg/env"
	"go.llib.dev/frameless/pkg/logger"
	"go.llib.dev/frameless/pkg/logging"
)

// RenderLimitEnvKey is the environment variable that overrides the default RenderLimit.
const RenderLimitEnvKey = "LAZYLIST_RENDER_LIMIT"

const defaultRenderLimit = 250

// RenderLimit is the maximum number of elements String renders from a List declared Infinite.
var RenderLimit = defaultRenderLimit

func init() {
	if limit, ok := lookupRenderLimit(); ok {
		RenderLimit = limit
	}
}

func lookupRenderLimit() (int, bool) {
	limit, ok, err := env.Lookup[int](RenderLimitEnvKey)
	if err != nil {
		logger.Warn(context.Background(), "invalid render limit, using the default",
			logging.Field("key", RenderLimitEnvKey),
			logging.ErrField(err))
		return 0, false
	}
	if !ok || limit <= 0 {
		return 0, false
	}
	return limit, true
}
