package repository

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/mohammadpnp/staff-admin/internal/domain/staff"
	"github.com/mohammadpnp/staff-admin/internal/infrastructure/db/models"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindByUsernameAnyState includes soft-deleted rows in the lookup. There is
// no lock or unique-constraint retry around the lookup-then-write sequence;
// concurrent imports can race on the same username.
func (r *UserRepository) FindByUsernameAnyState(ctx context.Context, username string) (domain.UsernameMatch, error) {
	var row models.User

	err := r.db.WithContext(ctx).Unscoped().
		Where("username = ?", username).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UsernameMatch{State: domain.MatchNone}, nil
		}
		return domain.UsernameMatch{}, fmt.Errorf("find user by username: %w", err)
	}

	state := domain.MatchActive
	if row.DeletedAt.Valid {
		state = domain.MatchSoftDeleted
	}
	return domain.UsernameMatch{State: state, User: toDomainUser(row)}, nil
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	row := models.User{
		Username:     user.Username,
		Name:         user.Name,
		Gender:       user.Gender,
		DepartmentID: user.DepartmentID,
		Password:     user.PasswordHash,
		Title:        user.Title,
		Mobile:       user.Mobile,
		Email:        user.Email,
		ADTag:        user.ADTag,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	user.ID = row.ID
	return nil
}

// Resurrect clears deleted_at on the existing row and overwrites its columns
// with the merged values. The row keeps its id.
func (r *UserRepository) Resurrect(ctx context.Context, user *domain.User) error {
	result := r.db.WithContext(ctx).Unscoped().
		Model(&models.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"username":      user.Username,
			"name":          user.Name,
			"gender":        user.Gender,
			"department_id": user.DepartmentID,
			"password":      user.PasswordHash,
			"title":         user.Title,
			"mobile":        user.Mobile,
			"email":         user.Email,
			"ad_tag":        user.ADTag,
			"deleted_at":    nil,
		})
	if result.Error != nil {
		return fmt.Errorf("resurrect user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) SoftDeleteDirectoryUsersExcept(ctx context.Context, keep []string) (int64, error) {
	query := r.db.WithContext(ctx).Where("ad_tag = ?", 1)
	if len(keep) > 0 {
		query = query.Where("username NOT IN ?", keep)
	}
	result := query.Delete(&models.User{})
	if result.Error != nil {
		return 0, fmt.Errorf("soft delete directory users: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *UserRepository) GetDetail(ctx context.Context, id int64) (*domain.UserDetail, error) {
	var row models.User

	err := r.db.WithContext(ctx).
		Preload("Department").
		Preload("Roles").
		First(&row, "users.id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user detail: %w", err)
	}

	detail := toDetail(row)
	return &detail, nil
}

func (r *UserRepository) List(ctx context.Context, filter domain.UserListFilter) ([]domain.UserDetail, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.User{}).
		Joins("LEFT JOIN departments ON departments.id = users.department_id")

	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		query = query.Where(
			"users.name LIKE ? OR users.gender LIKE ? OR users.title LIKE ? OR users.mobile LIKE ? OR users.email LIKE ? OR departments.name LIKE ?",
			pattern, pattern, pattern, pattern, pattern, pattern,
		)
	}
	if filter.DepartmentID > 0 {
		query = query.Where("users.department_id = ?", filter.DepartmentID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}

	var rows []models.User
	err := query.
		Preload("Department").
		Preload("Roles").
		Order("users.id").
		Offset((filter.Page - 1) * filter.PageSize).
		Limit(filter.PageSize).
		Find(&rows).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}

	details := make([]domain.UserDetail, 0, len(rows))
	for _, row := range rows {
		details = append(details, toDetail(row))
	}
	return details, total, nil
}

func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	result := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"name":          user.Name,
			"gender":        user.Gender,
			"department_id": user.DepartmentID,
			"password":      user.PasswordHash,
			"title":         user.Title,
			"mobile":        user.Mobile,
			"email":         user.Email,
		})
	if result.Error != nil {
		return fmt.Errorf("update user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) SoftDelete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.User{}, id)
	if result.Error != nil {
		return fmt.Errorf("soft delete user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) SelectList(ctx context.Context, query string) ([]domain.SelectOption, error) {
	var rows []models.User

	q := r.db.WithContext(ctx).Model(&models.User{}).Select("id", "name").Order("id")
	if query != "" {
		q = q.Where("name LIKE ?", "%"+query+"%")
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("user select list: %w", err)
	}

	options := make([]domain.SelectOption, 0, len(rows))
	for _, row := range rows {
		options = append(options, domain.SelectOption{ID: row.ID, Text: row.Name})
	}
	return options, nil
}

func toDomainUser(row models.User) domain.User {
	return domain.User{
		ID:           row.ID,
		Username:     row.Username,
		Name:         row.Name,
		Gender:       row.Gender,
		DepartmentID: row.DepartmentID,
		PasswordHash: row.Password,
		Title:        row.Title,
		Mobile:       row.Mobile,
		Email:        row.Email,
		ADTag:        row.ADTag,
	}
}

func toDetail(row models.User) domain.UserDetail {
	roles := make([]string, 0, len(row.Roles))
	for _, role := range row.Roles {
		roles = append(roles, role.Name)
	}
	return domain.UserDetail{
		User:           toDomainUser(row),
		DepartmentName: row.Department.Name,
		Roles:          roles,
		Deleted:        row.DeletedAt.Valid,
	}
}
