package domain

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/mcnijman/go-emailaddress"
	"github.com/userhub/backend/internal/entity"
	"github.com/userhub/backend/internal/model"
	"github.com/userhub/backend/internal/repository"
	"github.com/userhub/backend/pkg/errorx"
	"github.com/userhub/backend/pkg/xcontext"
	"gorm.io/gorm"
)

const (
	maxNameLength  = 100
	maxEmailLength = 255
	maxBioLength   = 500
	maxAge         = 150
)

type UserDomain interface {
	Create(ctx context.Context, req *model.CreateUserRequest) (*model.CreateUserResponse, error)
	Get(ctx context.Context, req *model.GetUserRequest) (*model.GetUserResponse, error)
	GetList(ctx context.Context, req *model.GetUsersRequest) (*model.GetUsersResponse, error)
	Update(ctx context.Context, req *model.UpdateUserRequest) (*model.UpdateUserResponse, error)
	Patch(ctx context.Context, req *model.PatchUserRequest) (*model.PatchUserResponse, error)
	Delete(ctx context.Context, req *model.DeleteUserRequest) (*model.DeleteUserResponse, error)
	Search(ctx context.Context, req *model.SearchUsersRequest) (*model.SearchUsersResponse, error)
}

type userDomain struct {
	userRepo repository.UserRepository
}

func NewUserDomain(userRepo repository.UserRepository) UserDomain {
	return &userDomain{
		userRepo: userRepo,
	}
}

func (d *userDomain) Create(
	ctx context.Context, req *model.CreateUserRequest,
) (*model.CreateUserResponse, error) {
	if err := checkName(req.Name); err != nil {
		return nil, err
	}

	if err := checkEmail(req.Email); err != nil {
		return nil, err
	}

	if err := checkAge(req.Age); err != nil {
		return nil, err
	}

	if err := checkBio(req.Bio); err != nil {
		return nil, err
	}

	if err := d.checkEmailNotTaken(ctx, req.Email); err != nil {
		return nil, err
	}

	now := time.Now()
	user := &entity.User{
		Base:  entity.Base{CreatedAt: now, UpdatedAt: now},
		Name:  req.Name,
		Email: req.Email,
		Age:   req.Age,
		Bio:   req.Bio,
	}

	if err := d.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errorx.New(errorx.AlreadyExists, "Email already registered")
		}

		xcontext.Logger(ctx).Errorf("Cannot create user: %v", err)
		return nil, errorx.Unknown
	}

	resp := model.CreateUserResponse(convertUser(user))
	return &resp, nil
}

func (d *userDomain) Get(
	ctx context.Context, req *model.GetUserRequest,
) (*model.GetUserResponse, error) {
	user, err := d.getByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	resp := model.GetUserResponse(convertUser(user))
	return &resp, nil
}

func (d *userDomain) GetList(
	ctx context.Context, req *model.GetUsersRequest,
) (*model.GetUsersResponse, error) {
	apiCfg := xcontext.Configs(ctx).ApiServer
	if req.Limit == 0 {
		req.Limit = apiCfg.DefaultLimit
	}

	if req.Limit < 0 {
		return nil, errorx.New(errorx.BadRequest, "Limit must be positive")
	}

	if req.Limit > apiCfg.MaxLimit {
		return nil, errorx.New(errorx.BadRequest, "Exceed the maximum of limit (%d)", apiCfg.MaxLimit)
	}

	if req.Skip < 0 {
		return nil, errorx.New(errorx.BadRequest, "Skip must be non-negative")
	}

	if req.MinAge != nil && *req.MinAge < 0 {
		return nil, errorx.New(errorx.BadRequest, "Minimum age must be non-negative")
	}

	if req.MaxAge != nil && *req.MaxAge < 0 {
		return nil, errorx.New(errorx.BadRequest, "Maximum age must be non-negative")
	}

	if req.MinAge != nil && req.MaxAge != nil && *req.MinAge > *req.MaxAge {
		return nil, errorx.New(errorx.BadRequest, "Minimum age cannot exceed maximum age")
	}

	users, err := d.userRepo.GetList(ctx, repository.GetListUserFilter{
		Name:   req.Name,
		MinAge: req.MinAge,
		MaxAge: req.MaxAge,
		Offset: req.Skip,
		Limit:  req.Limit,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get user list: %v", err)
		return nil, errorx.Unknown
	}

	resp := make(model.GetUsersResponse, 0, len(users))
	for i := range users {
		resp = append(resp, convertUser(&users[i]))
	}

	return &resp, nil
}

func (d *userDomain) Update(
	ctx context.Context, req *model.UpdateUserRequest,
) (*model.UpdateUserResponse, error) {
	if err := checkName(req.Name); err != nil {
		return nil, err
	}

	if err := checkEmail(req.Email); err != nil {
		return nil, err
	}

	if err := checkAge(req.Age); err != nil {
		return nil, err
	}

	if err := checkBio(req.Bio); err != nil {
		return nil, err
	}

	user, err := d.getByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	// Keeping the current email is never a conflict; only an email owned by
	// a different live user is.
	if req.Email != user.Email {
		if err := d.checkEmailNotTaken(ctx, req.Email); err != nil {
			return nil, err
		}
	}

	user.Name = req.Name
	user.Email = req.Email
	user.Age = req.Age
	user.Bio = req.Bio
	user.UpdatedAt = time.Now()

	if err := d.userRepo.UpdateByID(ctx, req.ID, user); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "User not found")
		}

		// The pre-check can lose to a concurrent insert with the same email.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errorx.New(errorx.AlreadyExists, "Email already registered")
		}

		xcontext.Logger(ctx).Errorf("Cannot update user %d: %v", req.ID, err)
		return nil, errorx.Unknown
	}

	resp := model.UpdateUserResponse(convertUser(user))
	return &resp, nil
}

func (d *userDomain) Patch(
	ctx context.Context, req *model.PatchUserRequest,
) (*model.PatchUserResponse, error) {
	user, err := d.getByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if err := checkName(*req.Name); err != nil {
			return nil, err
		}
		user.Name = *req.Name
	}

	if req.Email != nil {
		if err := checkEmail(*req.Email); err != nil {
			return nil, err
		}

		if *req.Email != user.Email {
			if err := d.checkEmailNotTaken(ctx, *req.Email); err != nil {
				return nil, err
			}
		}
		user.Email = *req.Email
	}

	if req.Age != nil {
		if err := checkAge(*req.Age); err != nil {
			return nil, err
		}
		user.Age = *req.Age
	}

	if req.Bio != nil {
		if err := checkBio(*req.Bio); err != nil {
			return nil, err
		}
		user.Bio = *req.Bio
	}

	user.UpdatedAt = time.Now()

	if err := d.userRepo.UpdateByID(ctx, req.ID, user); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "User not found")
		}

		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errorx.New(errorx.AlreadyExists, "Email already registered")
		}

		xcontext.Logger(ctx).Errorf("Cannot patch user %d: %v", req.ID, err)
		return nil, errorx.Unknown
	}

	resp := model.PatchUserResponse(convertUser(user))
	return &resp, nil
}

func (d *userDomain) Delete(
	ctx context.Context, req *model.DeleteUserRequest,
) (*model.DeleteUserResponse, error) {
	if req.ID <= 0 {
		return nil, errorx.New(errorx.BadRequest, "Invalid user id")
	}

	if err := d.userRepo.DeleteByID(ctx, req.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "User not found")
		}

		xcontext.Logger(ctx).Errorf("Cannot delete user %d: %v", req.ID, err)
		return nil, errorx.Unknown
	}

	return &model.DeleteUserResponse{}, nil
}

func (d *userDomain) Search(
	ctx context.Context, req *model.SearchUsersRequest,
) (*model.SearchUsersResponse, error) {
	if strings.TrimSpace(req.Term) == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty search term")
	}

	users, err := d.userRepo.Search(ctx, req.Term)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot search users: %v", err)
		return nil, errorx.Unknown
	}

	resp := make(model.SearchUsersResponse, 0, len(users))
	for i := range users {
		resp = append(resp, convertUser(&users[i]))
	}

	return &resp, nil
}

func (d *userDomain) getByID(ctx context.Context, id int64) (*entity.User, error) {
	if id <= 0 {
		return nil, errorx.New(errorx.BadRequest, "Invalid user id")
	}

	user, err := d.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "User not found")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user %d: %v", id, err)
		return nil, errorx.Unknown
	}

	return user, nil
}

func (d *userDomain) checkEmailNotTaken(ctx context.Context, email string) error {
	_, err := d.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return errorx.New(errorx.AlreadyExists, "Email already registered")
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		xcontext.Logger(ctx).Errorf("Cannot check email existence: %v", err)
		return errorx.Unknown
	}

	return nil
}

func checkName(name string) error {
	if name == "" {
		return errorx.New(errorx.BadRequest, "Not allow empty name")
	}

	if len(name) > maxNameLength {
		return errorx.New(errorx.BadRequest, "Exceed the maximum name length (%d)", maxNameLength)
	}

	return nil
}

func checkEmail(email string) error {
	if email == "" {
		return errorx.New(errorx.BadRequest, "Not allow empty email")
	}

	if len(email) > maxEmailLength {
		return errorx.New(errorx.BadRequest, "Exceed the maximum email length (%d)", maxEmailLength)
	}

	if _, err := emailaddress.Parse(email); err != nil {
		return errorx.New(errorx.BadRequest, "Invalid email address")
	}

	return nil
}

func checkAge(age int) error {
	if age < 0 {
		return errorx.New(errorx.BadRequest, "Age must be non-negative")
	}

	if age > maxAge {
		return errorx.New(errorx.BadRequest, "Exceed the maximum age (%d)", maxAge)
	}

	return nil
}

func checkBio(bio string) error {
	if len(bio) > maxBioLength {
		return errorx.New(errorx.BadRequest, "Exceed the maximum bio length (%d)", maxBioLength)
	}

	return nil
}
