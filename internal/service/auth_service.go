package service

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"

	"github.com/mdhnkumar/faculty-econtent/internal/model"
	"github.com/mdhnkumar/faculty-econtent/internal/store"
	"github.com/mdhnkumar/faculty-econtent/pkg/apperror"
)

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string           `json:"token"`
	User  model.PublicUser `json:"user"`
}

type AuthService interface {
	// Login verifies credentials and issues a signed bearer token. Unknown
	// email and wrong password fail identically so accounts cannot be
	// enumerated.
	Login(ctx context.Context, input LoginInput, clientIP string) (*LoginResponse, error)
	// FindUserByID resolves a token subject back to a user.
	FindUserByID(ctx context.Context, id string) (*model.User, error)
}

type authService struct {
	store       store.Store
	redisClient *redis.Client
	secret      []byte
	tokenTTL    time.Duration
	loginLimit  time.Duration
}

func NewAuthService(st store.Store, redisClient *redis.Client, secret string, tokenTTL, loginLimit time.Duration) AuthService {
	return &authService{
		store:       st,
		redisClient: redisClient,
		secret:      []byte(secret),
		tokenTTL:    tokenTTL,
		loginLimit:  loginLimit,
	}
}

var errInvalidCredentials = apperror.New(http.StatusUnauthorized, "invalid credentials", nil)

func (s *authService) Login(ctx context.Context, input LoginInput, clientIP string) (*LoginResponse, error) {
	if s.loginLimit > 0 {
		allowed, err := CheckAndSetRateLimit(ctx, s.redisClient, clientIP, "login", s.loginLimit)
		if err != nil {
			return nil, err
		}
		if !allowed {
			return nil, apperror.ErrRateLimitExceeded
		}
	}

	user, err := s.findUserByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, errInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, errInvalidCredentials
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   user.ID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{Token: token, User: user.Public()}, nil
}

func (s *authService) FindUserByID(ctx context.Context, id string) (*model.User, error) {
	doc, err := s.store.Get(ctx, store.Users, id)
	if err != nil {
		return nil, err
	}
	var user model.User
	if err := store.Decode(doc, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// findUserByEmail is a case-sensitive exact match, a linear pass over the
// users collection. The collection holds a handful of seeded accounts.
func (s *authService) findUserByEmail(ctx context.Context, email string) (*model.User, error) {
	docs, err := s.store.List(ctx, store.Users)
	if err != nil {
		return nil, err
	}
	users, err := store.DecodeAll[model.User](docs)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email {
			return &users[i], nil
		}
	}
	return nil, apperror.ErrNotFound
}
