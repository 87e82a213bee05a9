package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/detailing-scheduler/internal/domain/user"
	"github.com/BruksfildServices01/detailing-scheduler/internal/httperr"
	"github.com/BruksfildServices01/detailing-scheduler/internal/models"
)

const RoleAdmin = "admin"

type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// UserID reads the numeric id carried in the subject.
func (c *Claims) UserID() (uint, error) {
	id, err := strconv.ParseUint(c.Subject, 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

type Service struct {
	repo   user.Repository
	secret []byte
	ttl    time.Duration
	cost   int
	now    func() time.Time
}

func NewService(repo user.Repository, secret string, ttl time.Duration) *Service {
	return &Service{
		repo:   repo,
		secret: []byte(secret),
		ttl:    ttl,
		cost:   bcrypt.DefaultCost,
		now:    time.Now,
	}
}

// --------- Login ---------

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      *models.User
}

func (s *Service) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	u, err := s.repo.GetUserByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("invalid_credentials")
		}
		return nil, fmt.Errorf("load user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, httperr.ErrBusiness("invalid_credentials")
	}

	token, exp, err := s.IssueToken(u)
	if err != nil {
		return nil, err
	}

	return &LoginResult{Token: token, ExpiresAt: exp, User: u}, nil
}

// --------- Bootstrap ---------

// EnsureAdmin creates the admin account on first start. An existing account
// keeps its password.
func (s *Service) EnsureAdmin(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil
	}

	_, err := s.repo.GetUserByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("load admin: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	return s.repo.CreateUser(ctx, &models.User{
		Username:     username,
		PasswordHash: string(hashed),
	})
}

// --------- JWT ---------

func (s *Service) IssueToken(u *models.User) (string, time.Time, error) {
	now := s.now()
	exp := now.Add(s.ttl)

	claims := Claims{
		Username: u.Username,
		Role:     RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(u.ID), 10),
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}

	return token, exp, nil
}

func (s *Service) ParseToken(raw string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid {
		return nil, httperr.ErrBusiness("invalid_token")
	}

	return claims, nil
}
