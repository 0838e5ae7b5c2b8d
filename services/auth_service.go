package services

import (
	"strings"
	"time"

	"github.com/Misheck-bot/transport-system-sub001/entity"
	"github.com/Misheck-bot/transport-system-sub001/repository"
	"github.com/Misheck-bot/transport-system-sub001/utils"

	"golang.org/x/crypto/bcrypt"
)

// AuthService handles registration, login and profiles.
type AuthService struct {
	userRepo  *repository.UserRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(repo *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		userRepo:  repo,
		jwtSecret: secret,
		jwtTTL:    ttl,
	}
}

type RegisterInput struct {
	Email         string
	Password      string
	FirstName     string
	LastName      string
	PhoneNumber   string
	LicenseNumber string
	LicenseClass  string
}

// Register creates a driver account. Emails are unique
// case-insensitively, so the lowercased form is what gets stored.
func (s *AuthService) Register(in RegisterInput) (*entity.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	count, err := s.userRepo.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Email:         email,
		Password:      string(hashed),
		FirstName:     strings.TrimSpace(in.FirstName),
		LastName:      strings.TrimSpace(in.LastName),
		PhoneNumber:   strings.TrimSpace(in.PhoneNumber),
		Role:          entity.RoleDriver,
		Status:        entity.UserActive,
		LicenseNumber: strings.TrimSpace(in.LicenseNumber),
		LicenseClass:  strings.TrimSpace(in.LicenseClass),
	}

	if err := s.userRepo.Create(user); err != nil {
		// a concurrent registration can slip past the count check;
		// the unique index catches it here
		if isDuplicateKey(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}

// Login checks credentials and issues a session token. No lockout, no
// attempt counters; a bad email and a bad password are the same error.
func (s *AuthService) Login(email, password string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.ID, user.Role, user.IsVerified, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

func (s *AuthService) GetProfile(userID uint) (*entity.User, error) {
	return s.userRepo.FindByID(userID)
}

// UpdateProfile updates the caller's own record. Email and role are
// not settable here.
func (s *AuthService) UpdateProfile(userID uint, updates map[string]any) (*entity.User, error) {
	delete(updates, "email")
	delete(updates, "role")
	if err := s.userRepo.Update(userID, updates); err != nil {
		return nil, err
	}
	return s.userRepo.FindByID(userID)
}
