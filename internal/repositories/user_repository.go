package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"careercenter_backend/internal/models"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

// PublicUser - срез колонок users для списка модератора
type PublicUser struct {
	ID        string    `json:"id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	UserType  string    `json:"user_type"`
	CreatedAt time.Time `json:"created_at"`
}

type UserRepository interface {
	FindByEmail(email string) (*models.User, error)
	Create(user *models.User) error
	FindAllPublic() ([]PublicUser, error)
	FindPublicByType(userType string) ([]PublicUser, error)
	CountByType() (map[string]int64, error)
	CountAll() (int64, error)
}

type UserRepositoryImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) Create(user *models.User) error {
	var existing models.User
	if err := r.db.Where("email = ?", user.Email).First(&existing).Error; err == nil {
		return ErrUserAlreadyExists
	}
	return r.db.Create(user).Error
}

func (r *UserRepositoryImpl) FindAllPublic() ([]PublicUser, error) {
	var users []PublicUser
	err := r.db.Model(&models.User{}).
		Select("id, full_name, email, user_type, created_at").
		Order("created_at DESC").
		Find(&users).Error
	return users, err
}

func (r *UserRepositoryImpl) FindPublicByType(userType string) ([]PublicUser, error) {
	var users []PublicUser
	err := r.db.Model(&models.User{}).
		Select("id, full_name, email, user_type, created_at").
		Where("user_type = ?", userType).
		Order("created_at DESC").
		Find(&users).Error
	return users, err
}

func (r *UserRepositoryImpl) CountByType() (map[string]int64, error) {
	type row struct {
		UserType string
		Total    int64
	}
	var rows []row
	err := r.db.Model(&models.User{}).
		Select("user_type, COUNT(*) AS total").
		Group("user_type").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, rw := range rows {
		counts[rw.UserType] = rw.Total
	}
	return counts, nil
}

func (r *UserRepositoryImpl) CountAll() (int64, error) {
	var total int64
	err := r.db.Model(&models.User{}).Count(&total).Error
	return total, err
}
