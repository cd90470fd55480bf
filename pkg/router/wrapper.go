package router

import (
	"context"
	"net/http"
	"time"

	"github.com/userhub/backend/pkg/xcontext"
)

func handle[Request, Response any](
	root *Router,
	method, pattern string,
	handler HandlerFunc[Request, Response],
) {
	befores := append([]MiddlewareFunc{}, root.befores...)
	closers := append([]CloserFunc{}, root.closers...)

	root.mux.HandleFunc(method+" "+pattern, func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		ctx = xcontext.WithHTTPRequest(ctx, r)
		ctx = xcontext.WithHTTPWriter(ctx, w)
		ctx = xcontext.WithConfigs(ctx, root.cfg)
		ctx = xcontext.WithLogger(ctx, root.logger)
		ctx = xcontext.WithDB(ctx, root.db)
		ctx = xcontext.WithTokenEngine(ctx, root.tokenEngine)
		ctx = xcontext.WithStartTime(ctx, time.Now())

		ctx, err := func() (context.Context, error) {
			for _, middleware := range befores {
				var err error
				if ctx, err = middleware(ctx); err != nil {
					return ctx, err
				}
			}

			var req Request
			if err := bindRequest(r, &req); err != nil {
				return ctx, err
			}

			resp, err := handler(ctx, &req)
			if err != nil {
				return ctx, err
			}

			writeResponse(ctx, w, method, resp)
			return ctx, nil
		}()

		if err != nil {
			writeError(ctx, w, err)
		}

		ctx = xcontext.WithError(ctx, err)
		for _, closer := range closers {
			closer(ctx)
		}
	})
}
