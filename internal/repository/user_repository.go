package repository

import (
	"table_order/internal/models"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	GetByRole(role models.UserRole) ([]models.User, error)
	GetAll() ([]models.User, error)
	CreateSessionEvent(event *models.SessionEvent) error
	GetSessionEvents(userID uint) ([]models.SessionEvent, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *userRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.db.Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByRole(role models.UserRole) ([]models.User, error) {
	var users []models.User
	err := r.db.Where("role = ?", role).Order("username").Find(&users).Error
	return users, err
}

func (r *userRepository) GetAll() ([]models.User, error) {
	var users []models.User
	err := r.db.Order("role, username").Find(&users).Error
	return users, err
}

func (r *userRepository) CreateSessionEvent(event *models.SessionEvent) error {
	return r.db.Create(event).Error
}

func (r *userRepository) GetSessionEvents(userID uint) ([]models.SessionEvent, error) {
	var events []models.SessionEvent
	err := r.db.Where("user_id = ?", userID).Order("created_at, id").Find(&events).Error
	return events, err
}
