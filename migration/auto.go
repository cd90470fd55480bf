package migration

import (
	"context"

	"github.com/userhub/backend/internal/entity"
	"github.com/userhub/backend/pkg/xcontext"
)

// AutoMigrate creates or alters the tables to match the entities. Ran at
// startup; there is no versioned migration tooling here.
func AutoMigrate(ctx context.Context) error {
	return xcontext.DB(ctx).AutoMigrate(
		&entity.User{},
	)
}
