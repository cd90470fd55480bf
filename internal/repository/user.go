package repository

import (
	"context"
	"strings"

	"github.com/userhub/backend/internal/entity"
	"github.com/userhub/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type GetListUserFilter struct {
	Name   string
	MinAge *int
	MaxAge *int
	Offset int
	Limit  int
}

type UserRepository interface {
	Create(ctx context.Context, data *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetList(ctx context.Context, filter GetListUserFilter) ([]entity.User, error)
	UpdateByID(ctx context.Context, id int64, data *entity.User) error
	DeleteByID(ctx context.Context, id int64) error
	Search(ctx context.Context, term string) ([]entity.User, error)
	Count(ctx context.Context) (int64, error)
}

type userRepository struct {
}

func NewUserRepository() UserRepository {
	return &userRepository{}
}

func (r *userRepository) Create(ctx context.Context, data *entity.User) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	var record entity.User
	if err := xcontext.DB(ctx).Where("id=?", id).Take(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var record entity.User
	if err := xcontext.DB(ctx).Where("email=?", email).Take(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *userRepository) GetList(ctx context.Context, filter GetListUserFilter) ([]entity.User, error) {
	tx := xcontext.DB(ctx)

	if filter.Name != "" {
		tx = tx.Where("LOWER(name) LIKE ?", pattern(filter.Name))
	}

	if filter.MinAge != nil {
		tx = tx.Where("age >= ?", *filter.MinAge)
	}

	if filter.MaxAge != nil {
		tx = tx.Where("age <= ?", *filter.MaxAge)
	}

	var result []entity.User
	err := tx.Order("id ASC").Offset(filter.Offset).Limit(filter.Limit).Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

// UpdateByID writes every mutable column of data in a single statement. The
// caller decides what data holds, so both full and partial updates end up
// here with a fully merged record.
func (r *userRepository) UpdateByID(ctx context.Context, id int64, data *entity.User) error {
	updateMap := map[string]any{
		"name":       data.Name,
		"email":      data.Email,
		"age":        data.Age,
		"bio":        data.Bio,
		"updated_at": data.UpdatedAt,
	}

	tx := xcontext.DB(ctx).Model(&entity.User{}).Where("id=?", id).Updates(updateMap)
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *userRepository) DeleteByID(ctx context.Context, id int64) error {
	tx := xcontext.DB(ctx).Where("id=?", id).Delete(&entity.User{})
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *userRepository) Search(ctx context.Context, term string) ([]entity.User, error) {
	var result []entity.User
	err := xcontext.DB(ctx).
		Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", pattern(term), pattern(term)).
		Order("id ASC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *userRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := xcontext.DB(ctx).Model(&entity.User{}).Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

func pattern(term string) string {
	return "%" + strings.ToLower(term) + "%"
}
