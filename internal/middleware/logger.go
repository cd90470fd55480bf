package middleware

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/userhub/backend/pkg/errorx"
	"github.com/userhub/backend/pkg/router"
	"github.com/userhub/backend/pkg/xcontext"
)

func Logger() router.CloserFunc {
	return func(ctx context.Context) {
		req := xcontext.HTTPRequest(ctx)
		if req == nil {
			return
		}

		info := fmt.Sprintf("%s | %s %s | %s",
			xcontext.RequestID(ctx), req.Method, req.URL.Path, time.Since(xcontext.StartTime(ctx)))

		if err := xcontext.Error(ctx); err != nil {
			var errx errorx.Error
			if errors.As(err, &errx) {
				xcontext.Logger(ctx).Warnf("%s | %d", info, errx.Code)
			} else {
				xcontext.Logger(ctx).Errorf("%s | %d", info, -1)
			}
		} else {
			xcontext.Logger(ctx).Infof("%s", info)
		}
	}
}
