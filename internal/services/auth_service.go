package services

import (
	"errors"
	"fmt"
	"time"

	"pasar/internal/models"
	"pasar/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// TokenUser is the identity carried inside a bearer token. It reflects
// the user at issuance time; role changes after issuance are only
// visible to routes that re-load the user (see middleware.RequireRole).
type TokenUser struct {
	ID        string
	Name      string
	Role      string
	CreatedAt time.Time
}

// AuthService handles token issuance/verification, password hashing and
// the register/login flows.
type AuthService struct {
	userRepo  repositories.UserRepository
	jwtSecret []byte
}

// AuthResult is returned by Register and Login: the user (public shape)
// plus a freshly issued token.
type AuthResult struct {
	User  models.PublicUser `json:"user"`
	Token string            `json:"token"`
}

// NewAuthService creates a new AuthService. The signing secret is
// required; an empty secret is a configuration error and the caller is
// expected to abort startup.
func NewAuthService(userRepo repositories.UserRepository, jwtSecret string) (*AuthService, error) {
	if jwtSecret == "" {
		return nil, errors.New("jwt secret is not configured")
	}
	return &AuthService{
		userRepo:  userRepo,
		jwtSecret: []byte(jwtSecret),
	}, nil
}

// GenerateToken signs the user's identity into a bearer token. Tokens
// carry no expiry: they stay valid until the signing secret changes.
func (s *AuthService) GenerateToken(user *models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":    user.ID,
		"name":       user.Name,
		"role":       user.Role,
		"created_at": user.CreatedAt.Unix(),
		"iat":        time.Now().Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken parses and verifies a bearer token, returning the
// identity it carries.
func (s *AuthService) ValidateToken(tokenString string) (*TokenUser, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	user := &TokenUser{}
	if id, ok := claims["user_id"].(string); ok {
		user.ID = id
	}
	if name, ok := claims["name"].(string); ok {
		user.Name = name
	}
	if role, ok := claims["role"].(string); ok {
		user.Role = role
	}
	if createdAt, ok := claims["created_at"].(float64); ok {
		user.CreatedAt = time.Unix(int64(createdAt), 0)
	}
	if user.ID == "" {
		return nil, ErrInvalidToken
	}
	return user, nil
}

// Register creates a new account with the default role, hashes the
// password and issues a token. Name uniqueness is pre-checked; the
// database constraint backs the check against concurrent registration.
func (s *AuthService) Register(name, password string) (*AuthResult, error) {
	if existing, err := s.userRepo.GetByName(name); err == nil && existing != nil {
		return nil, ErrAlreadyExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:     name,
		Password: string(hashed),
		Role:     models.RoleUser,
	}
	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	token, err := s.GenerateToken(user)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: user.Public(), Token: token}, nil
}

// Login authenticates by name or email and issues a token. The lookup
// key is whichever of the two is non-empty, name taking precedence.
func (s *AuthService) Login(name, email, password string) (*AuthResult, error) {
	var (
		user *models.User
		err  error
	)
	if name != "" {
		user, err = s.userRepo.GetByName(name)
	} else {
		user, err = s.userRepo.GetByEmail(email)
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrWrongPassword
	}

	token, err := s.GenerateToken(user)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: user.Public(), Token: token}, nil
}
