package services

import (
	"errors"
	"regexp"
	"time"

	"devconnect/config"
	"devconnect/models"
	"devconnect/repositories"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Password policy: at least 8 characters, ASCII letters and digits
// only, with at least one of each.
var (
	passwordCharset = regexp.MustCompile(`^[A-Za-z0-9]{8,}$`)
	passwordLetter  = regexp.MustCompile(`[A-Za-z]`)
	passwordDigit   = regexp.MustCompile(`[0-9]`)
)

// invalidCredentialsMessage is shared by the unknown-nickname and
// wrong-password branches so login failures cannot be used to probe
// which nicknames exist.
const invalidCredentialsMessage = "Invalid nickname or password"

type AuthService interface {
	Register(req models.RegisterRequest) (*models.AuthResponse, error)
	Login(req models.LoginRequest) (*models.AuthResponse, error)
	GetUserByID(id uint) (*models.User, error)
}

type authService struct {
	userRepo repositories.UserRepository
	jwtCfg   config.JWTConfig
}

func NewAuthService(userRepo repositories.UserRepository, jwtCfg config.JWTConfig) AuthService {
	return &authService{userRepo: userRepo, jwtCfg: jwtCfg}
}

func (s *authService) Register(req models.RegisterRequest) (*models.AuthResponse, error) {
	if req.FirstName == "" || req.LastName == "" || req.Nickname == "" ||
		req.Email == "" || req.Password == "" || req.ConfirmPassword == "" || req.Role == "" {
		return nil, models.ErrorValidation{Message: "All fields are required"}
	}
	if req.Password != req.ConfirmPassword {
		return nil, models.ErrorValidation{Message: "Passwords do not match"}
	}
	if !validPassword(req.Password) {
		return nil, models.ErrorValidation{Message: "Password must be at least 8 characters and contain letters and digits"}
	}
	if !req.Role.IsValid() {
		return nil, models.ErrorValidation{Message: "Invalid role"}
	}

	// Pre-checks give the caller a field-specific message, nickname
	// first. The unique indexes behind Create close the race two
	// concurrent registrations would otherwise win together.
	if _, err := s.userRepo.GetByNickname(req.Nickname); err == nil {
		return nil, models.ErrorConflict{Message: "Nickname already taken"}
	}
	if _, err := s.userRepo.GetByEmail(req.Email); err == nil {
		return nil, models.ErrorConflict{Message: "Email already taken"}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.ErrorInternalServer{Message: "Failed to hash password"}
	}

	user := &models.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Nickname:  req.Nickname,
		Email:     req.Email,
		Password:  string(hashedPassword),
		Role:      req.Role,
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.ErrorConflict{Message: "Nickname or email already taken"}
		}
		return nil, models.ErrorInternalServer{Message: "Failed to create user"}
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, models.ErrorInternalServer{Message: "Failed to generate token"}
	}

	return &models.AuthResponse{Token: token, User: *user}, nil
}

func (s *authService) Login(req models.LoginRequest) (*models.AuthResponse, error) {
	if req.Nickname == "" || req.Password == "" {
		return nil, models.ErrorValidation{Message: "Nickname and password are required"}
	}

	user, err := s.userRepo.GetByNickname(req.Nickname)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorUnauthorized{Message: invalidCredentialsMessage}
		}
		return nil, models.ErrorInternalServer{Message: "Failed to load user"}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, models.ErrorUnauthorized{Message: invalidCredentialsMessage}
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, models.ErrorInternalServer{Message: "Failed to generate token"}
	}

	return &models.AuthResponse{Token: token, User: *user}, nil
}

func (s *authService) GetUserByID(id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "User not found"}
		}
		return nil, models.ErrorInternalServer{Message: "Failed to load user"}
	}
	return user, nil
}

func (s *authService) generateToken(user *models.User) (string, error) {
	now := time.Now()

	claims := jwt.MapClaims{
		"id":       user.ID,
		"nickname": user.Nickname,
		"role":     user.Role,
		"exp":      now.Add(s.jwtCfg.ExpireTime).Unix(),
		"iat":      now.Unix(),
		"nbf":      now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.jwtCfg.Secret))
}

func validPassword(password string) bool {
	return passwordCharset.MatchString(password) &&
		passwordLetter.MatchString(password) &&
		passwordDigit.MatchString(password)
}
