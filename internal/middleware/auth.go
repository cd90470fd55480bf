package middleware

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/userhub/backend/pkg/router"
	"github.com/userhub/backend/pkg/xcontext"
)

// Identity captures pass-through auth metadata (bearer token, x-api-key,
// x-user-id) into the context. Nothing is enforced: an invalid or missing
// token never rejects the request, it only leaves the caller anonymous.
func Identity() router.MiddlewareFunc {
	return func(ctx context.Context) (context.Context, error) {
		requestID := uuid.NewString()
		ctx = xcontext.WithRequestID(ctx, requestID)
		if w := xcontext.HTTPWriter(ctx); w != nil {
			w.Header().Set("X-Request-Id", requestID)
		}

		r := xcontext.HTTPRequest(ctx)
		if r == nil {
			return ctx, nil
		}

		if key := r.Header.Get("X-Api-Key"); key != "" {
			ctx = xcontext.WithAPIKey(ctx, key)
		}

		if userID := r.Header.Get("X-User-Id"); userID != "" {
			ctx = xcontext.WithRequestUserID(ctx, userID)
		}

		auth, token, found := strings.Cut(r.Header.Get("Authorization"), " ")
		if found && auth == "Bearer" {
			if engine := xcontext.TokenEngine(ctx); engine != nil {
				if info, err := engine.Verify(token); err == nil && info.ID != "" {
					ctx = xcontext.WithRequestUserID(ctx, info.ID)
				}
			}
		}

		return ctx, nil
	}
}
