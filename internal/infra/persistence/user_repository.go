package persistence

import (
	"context"
	"errors"

	"github.com/Blawness/pkp-studio/internal/domain/entity"
	"github.com/Blawness/pkp-studio/internal/domain/repository"
	"github.com/Blawness/pkp-studio/internal/infra/pagination"
	"github.com/google/uuid"
)

type UserRepository struct {
	db *DB
}

var _ repository.UserRepository = (*UserRepository)(nil)

func NewUserRepository(db *DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	if err := r.db.Write(ctx).Create(user).Error; err != nil {
		return translateUnique(err, map[string]uniqueField{
			"uq_users_email": {field: "email", value: user.Email},
		})
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (entity.User, error) {
	var user entity.User
	if err := r.db.Read(ctx).First(&user, "id = ?", id).Error; err != nil {
		return entity.User{}, translateNotFound(err)
	}
	return user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (entity.User, error) {
	var user entity.User
	if err := r.db.Read(ctx).First(&user, "email = ?", email).Error; err != nil {
		return entity.User{}, translateNotFound(err)
	}
	return user, nil
}

func (r *UserRepository) ExistsEmail(ctx context.Context, email string, excludeID uuid.UUID) (bool, error) {
	var count int64
	query := r.db.Read(ctx).Model(&entity.User{}).Where("email = ?", email)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *UserRepository) Update(ctx context.Context, user *entity.User) error {
	result := r.db.Write(ctx).Model(&entity.User{}).Where("id = ?", user.ID).Updates(map[string]any{
		"name":     user.Name,
		"email":    user.Email,
		"role":     user.Role,
		"password": user.Password,
	})
	if result.Error != nil {
		return translateUnique(result.Error, map[string]uniqueField{
			"uq_users_email": {field: "email", value: user.Email},
		})
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *UserRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	return r.db.Write(ctx).Delete(&entity.User{}, "id = ?", id).Error
}

func (r *UserRepository) ListCursor(ctx context.Context, limit int, cursor string) ([]entity.User, error) {
	var users []entity.User
	if limit <= 0 {
		limit = 50
	}

	query := r.db.Read(ctx).
		Limit(limit).
		Order("created_at DESC").
		Order("id DESC")

	if cursor != "" {
		cursorTime, cursorID, err := pagination.Decode(cursor)
		if err != nil {
			if errors.Is(err, pagination.ErrInvalidCursor) {
				return nil, repository.ErrInvalidCursor
			}
			return nil, err
		}
		query = query.Where("(created_at < ?) OR (created_at = ? AND id < ?)", cursorTime, cursorTime, cursorID)
	}

	if err := query.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.Read(ctx).Model(&entity.User{}).Count(&count).Error
	return count, err
}

func (r *UserRepository) CountByRole(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		Role  string
		Count int64
	}
	err := r.db.Read(ctx).Model(&entity.User{}).
		Select("role, COUNT(*) AS count").
		Group("role").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, row := range rows {
		out[row.Role] = row.Count
	}
	return out, nil
}
