package services

import (
	"errors"
	"os"
	"regexp"
	"time"

	"github.com/bugtrack-simple/dto"
	"github.com/bugtrack-simple/models"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var usernameRegex = regexp.MustCompile(`^[A-Za-z0-9_-]{3,20}$`)

const minPasswordLen = 6

// AuthService handles signup, login and token issuance
type AuthService struct {
	userRepo UserRepository
}

// NewAuthService creates a new auth service instance
func NewAuthService(userRepo UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// Signup creates a new user account. It does not issue a session; the
// client logs in afterwards.
func (s *AuthService) Signup(req dto.SignupRequest) (models.User, error) {
	if !usernameRegex.MatchString(req.Username) {
		return models.User{}, models.NewValidationError("username must be 3-20 characters of letters, numbers, dashes or underscores")
	}
	if len(req.Password) < minPasswordLen {
		return models.User{}, models.NewValidationError("password must be at least 6 characters")
	}
	if !models.ValidRole(req.Role) {
		return models.User{}, models.NewValidationError("role must be manager, team_leader or developer")
	}

	taken, err := s.userRepo.ExistsByUsername(req.Username)
	if err != nil {
		return models.User{}, err
	}
	if taken {
		return models.User{}, models.NewConflictError("username is already taken")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Username: req.Username,
		Password: string(hashedPassword),
		Role:     req.Role,
	}
	return s.userRepo.Create(user)
}

// Login verifies the credentials and returns a signed bearer token
func (s *AuthService) Login(req dto.LoginRequest) (dto.AuthResponse, error) {
	user, err := s.userRepo.FindByUsername(req.Username)
	if err != nil {
		return dto.AuthResponse{}, models.NewAuthError("invalid username or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return dto.AuthResponse{}, models.NewAuthError("invalid username or password")
	}

	token, err := GenerateToken(user)
	if err != nil {
		return dto.AuthResponse{}, err
	}

	user.Password = ""
	return dto.AuthResponse{Token: token, User: user}, nil
}

// GenerateToken generates a new JWT token for a user
func GenerateToken(user models.User) (string, error) {
	secretKey := os.Getenv("JWT_SECRET")
	if secretKey == "" {
		return "", errors.New("JWT_SECRET not set in environment")
	}

	claims := dto.TokenClaims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secretKey))
}

// ValidateToken validates a JWT token and returns claims if valid
func ValidateToken(tokenString string) (*dto.TokenClaims, error) {
	secretKey := os.Getenv("JWT_SECRET")
	if secretKey == "" {
		return nil, errors.New("JWT_SECRET not set in environment")
	}

	token, err := jwt.ParseWithClaims(tokenString, &dto.TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(*dto.TokenClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
