package middleware

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/userhub/backend/internal/common"
	"github.com/userhub/backend/pkg/errorx"
	"github.com/userhub/backend/pkg/router"
	"github.com/userhub/backend/pkg/xcontext"
)

func Prometheus() router.CloserFunc {
	return func(ctx context.Context) {
		req := xcontext.HTTPRequest(ctx)
		if req == nil {
			return
		}

		code := 0
		if err := xcontext.Error(ctx); err != nil {
			var errx errorx.Error
			if errors.As(err, &errx) {
				code = int(errx.Code)
			} else {
				code = -1
			}
		}

		path := req.URL.Path
		common.PromCounters[common.HTTPRequestTotal].
			WithLabelValues(path, fmt.Sprint(code)).Inc()
		common.PromHistograms[common.HTTPRequestDurationSeconds].
			WithLabelValues(path, fmt.Sprint(code)).
			Observe(time.Since(xcontext.StartTime(ctx)).Seconds())
	}
}
