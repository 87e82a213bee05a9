package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/detailing-scheduler/internal/httperr"
	"github.com/BruksfildServices01/detailing-scheduler/internal/models"
)

type memUsers struct {
	users []models.User
	err   error
}

func (r *memUsers) GetUser(_ context.Context, id uint) (*models.User, error) {
	for i := range r.users {
		if r.users[i].ID == id {
			return &r.users[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memUsers) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	for i := range r.users {
		if r.users[i].Username == username {
			return &r.users[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memUsers) CreateUser(_ context.Context, u *models.User) error {
	u.ID = uint(len(r.users) + 1)
	r.users = append(r.users, *u)
	return nil
}

func newTestService(repo *memUsers) *Service {
	s := NewService(repo, "test-secret", time.Hour)
	s.cost = bcrypt.MinCost
	return s
}

func TestEnsureAdminThenLogin(t *testing.T) {
	repo := &memUsers{}
	s := newTestService(repo)
	ctx := context.Background()

	require.NoError(t, s.EnsureAdmin(ctx, "admin", "s3cret!"))
	require.NoError(t, s.EnsureAdmin(ctx, "admin", "other"))
	require.Len(t, repo.users, 1)

	res, err := s.Login(ctx, " admin ", "s3cret!")
	require.NoError(t, err)
	assert.Equal(t, "admin", res.User.Username)

	claims, err := s.ParseToken(res.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, RoleAdmin, claims.Role)

	id, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, uint(1), id)
}

func TestEnsureAdminSkipsWithoutCredentials(t *testing.T) {
	repo := &memUsers{}
	require.NoError(t, newTestService(repo).EnsureAdmin(context.Background(), "", ""))
	assert.Empty(t, repo.users)
}

func TestEnsureAdminStoreFailure(t *testing.T) {
	repo := &memUsers{err: errors.New("db down")}
	err := newTestService(repo).EnsureAdmin(context.Background(), "admin", "pw")
	assert.Error(t, err)
}

func TestLoginInvalidCredentials(t *testing.T) {
	repo := &memUsers{}
	s := newTestService(repo)
	require.NoError(t, s.EnsureAdmin(context.Background(), "admin", "right"))

	_, err := s.Login(context.Background(), "admin", "wrong")
	assert.True(t, httperr.IsBusiness(err, "invalid_credentials"))

	_, err = s.Login(context.Background(), "nobody", "right")
	assert.True(t, httperr.IsBusiness(err, "invalid_credentials"))
}

func TestParseTokenRejectsExpiredAndForeign(t *testing.T) {
	s := newTestService(&memUsers{})
	u := &models.User{ID: 1, Username: "admin"}

	issued := time.Date(2026, 10, 15, 8, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return issued }
	token, exp, err := s.IssueToken(u)
	require.NoError(t, err)
	assert.Equal(t, issued.Add(time.Hour), exp)

	s.now = func() time.Time { return issued.Add(2 * time.Hour) }
	_, err = s.ParseToken(token)
	assert.True(t, httperr.IsBusiness(err, "invalid_token"))

	s.now = func() time.Time { return issued }
	other := NewService(&memUsers{}, "another-secret", time.Hour)
	_, err = other.ParseToken(token)
	assert.True(t, httperr.IsBusiness(err, "invalid_token"))

	none := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "1"})
	raw, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = s.ParseToken(raw)
	assert.True(t, httperr.IsBusiness(err, "invalid_token"))
}
