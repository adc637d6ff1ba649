package services

import (
	"errors"
	"fmt"
	"log"
	"table_order/internal/models"
	"table_order/internal/repository"
	"time"

	"github.com/samber/lo"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Presence tracks which staff members are currently logged in.
type Presence interface {
	SetPresence(role string, userID uint, ttl time.Duration) error
	ClearPresence(role string, userID uint) error
	OnlineUsers(role string) ([]uint, error)
}

type StaffPresence struct {
	models.User
	Online bool `json:"online"`
}

type UserService interface {
	CreateUser(user *models.User, password string) error
	GetUserByID(id uint) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	// Authenticate checks the password and that the account holds the role.
	Authenticate(username, password string, role models.UserRole) (*models.User, error)
	RecordLogin(user *models.User, remoteAddr string) error
	RecordLogout(userID uint, role models.UserRole, remoteAddr string) error
	GetStaffPresence() ([]StaffPresence, error)
	GetSessionEvents(userID uint) ([]models.SessionEvent, error)
}

type userService struct {
	userRepo    repository.UserRepository
	presence    Presence
	presenceTTL time.Duration
}

func NewUserService(userRepo repository.UserRepository, presence Presence, presenceTTL time.Duration) UserService {
	return &userService{userRepo: userRepo, presence: presence, presenceTTL: presenceTTL}
}

func (s *userService) CreateUser(user *models.User, password string) error {
	if user.Username == "" || password == "" {
		return fmt.Errorf("%w: username and password are required", ErrInvalidInput)
	}
	switch user.Role {
	case models.RoleCook, models.RoleWaiter, models.RoleAdmin:
	default:
		return fmt.Errorf("%w: unknown role %q", ErrInvalidInput, user.Role)
	}

	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hashedPassword)
	user.IsActive = true

	return s.userRepo.Create(user)
}

func (s *userService) GetUserByID(id uint) (*models.User, error) {
	return s.userRepo.GetByID(id)
}

func (s *userService) GetUserByUsername(username string) (*models.User, error) {
	return s.userRepo.GetByUsername(username)
}

func (s *userService) Authenticate(username, password string, role models.UserRole) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if !user.IsActive || user.Role != role {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *userService) RecordLogin(user *models.User, remoteAddr string) error {
	if err := s.recordEvent(user.ID, user.Role, models.SessionLogin, remoteAddr); err != nil {
		return err
	}
	if err := s.presence.SetPresence(string(user.Role), user.ID, s.presenceTTL); err != nil {
		log.Printf("Warning: failed to set presence for user %d: %v", user.ID, err)
	}
	return nil
}

func (s *userService) RecordLogout(userID uint, role models.UserRole, remoteAddr string) error {
	if err := s.recordEvent(userID, role, models.SessionLogout, remoteAddr); err != nil {
		return err
	}
	if err := s.presence.ClearPresence(string(role), userID); err != nil {
		log.Printf("Warning: failed to clear presence for user %d: %v", userID, err)
	}
	return nil
}

func (s *userService) recordEvent(userID uint, role models.UserRole, kind models.SessionEventKind, remoteAddr string) error {
	event := &models.SessionEvent{
		UserID:     userID,
		Role:       role,
		Kind:       kind,
		RemoteAddr: remoteAddr,
	}
	if err := s.userRepo.CreateSessionEvent(event); err != nil {
		return fmt.Errorf("failed to record %s event: %w", kind, err)
	}
	return nil
}

func (s *userService) GetStaffPresence() ([]StaffPresence, error) {
	users, err := s.userRepo.GetAll()
	if err != nil {
		return nil, err
	}
	online := map[uint]bool{}
	for _, role := range []models.UserRole{models.RoleCook, models.RoleWaiter, models.RoleAdmin} {
		ids, err := s.presence.OnlineUsers(string(role))
		if err != nil {
			return nil, err
		}
		for _, id := range ids {
			online[id] = true
		}
	}
	return lo.Map(users, func(user models.User, _ int) StaffPresence {
		return StaffPresence{User: user, Online: online[user.ID]}
	}), nil
}

func (s *userService) GetSessionEvents(userID uint) ([]models.SessionEvent, error) {
	return s.userRepo.GetSessionEvents(userID)
}
