package testutil

import (
	"context"

	"github.com/userhub/backend/internal/entity"
	"github.com/userhub/backend/internal/repository"
)

var (
	User1 = entity.User{
		Base:  entity.Base{ID: 1},
		Name:  "John Doe",
		Email: "john@example.com",
		Age:   30,
		Bio:   "Software Developer",
	}

	User2 = entity.User{
		Base:  entity.Base{ID: 2},
		Name:  "Jane Smith",
		Email: "jane@example.com",
		Age:   25,
		Bio:   "Data Scientist",
	}

	User3 = entity.User{
		Base:  entity.Base{ID: 3},
		Name:  "Bob Johnson",
		Email: "bob@example.com",
		Age:   35,
		Bio:   "Product Manager",
	}
)

// FixtureContext is MockContext plus the sample users.
func FixtureContext() context.Context {
	ctx := MockContext()
	InsertUsers(ctx)
	return ctx
}

func InsertUsers(ctx context.Context) {
	userRepo := repository.NewUserRepository()
	for _, user := range []entity.User{User1, User2, User3} {
		user := user
		if err := userRepo.Create(ctx, &user); err != nil {
			panic(err)
		}
	}
}
