package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-shop-api/internal/config"
	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/internal/mock"
	"github.com/MKhiriev/go-shop-api/internal/store"
	"github.com/MKhiriev/go-shop-api/internal/utils"
	"github.com/MKhiriev/go-shop-api/internal/validators"
	"github.com/MKhiriev/go-shop-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func testAppConfig() config.App {
	return config.App{
		TokenSignKey:     "test-sign-key",
		TokenIssuer:      "go-shop-api-test",
		TokenDuration:    time.Hour,
		PasswordHashCost: bcrypt.MinCost,
	}
}

// newTestAuthSvc builds an authService over a mocked UserRepository with a
// frozen clock.
func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (*authService, *mock.MockUserRepository) {
	t.Helper()
	repo := mock.NewMockUserRepository(ctrl)

	svc := NewAuthService(repo, testAppConfig(), logger.Nop()).(*authService)
	svc.now = func() time.Time { return fixedNow }

	return svc, repo
}

func validRegisterRequest() models.RegisterRequest {
	return models.RegisterRequest{
		Username:  "alice",
		Password:  "s3cret-pass",
		Email:     "alice@example.com",
		FirstName: "Alice",
		LastName:  "Liddell",
	}
}

// ── RegisterUser ─────────────────────────────────────────────────────────────

func TestAuthService_RegisterUser_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()
	req := validRegisterRequest()

	repo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (int64, error) {
			assert.Equal(t, "alice", u.Username)
			assert.Equal(t, "alice@example.com", u.Email)
			assert.Equal(t, "Alice", u.FirstName)
			assert.Equal(t, "Liddell", u.LastName)
			assert.Equal(t, fixedNow, u.DateJoined)
			assert.NotEqual(t, req.Password, u.Password, "password must be hashed")
			assert.NoError(t, utils.CheckPassword(u.Password, req.Password))
			return 7, nil
		},
	)

	id, err := svc.RegisterUser(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
}

func TestAuthService_RegisterUser_UsernameTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().CreateUser(ctx, gomock.Any()).Return(int64(0), store.ErrUsernameAlreadyExists)

	_, err := svc.RegisterUser(ctx, validRegisterRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, store.ErrUsernameAlreadyExists)

	var fieldErrors validators.FieldErrors
	require.ErrorAs(t, err, &fieldErrors)
	assert.Equal(t, []string{"A user with that username already exists."}, fieldErrors["username"])
}

func TestAuthService_RegisterUser_PasswordTooLong(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthSvc(t, ctrl)

	req := validRegisterRequest()
	req.Password = strings.Repeat("p", 73)

	_, err := svc.RegisterUser(context.Background(), req)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	var fieldErrors validators.FieldErrors
	require.ErrorAs(t, err, &fieldErrors)
	assert.Contains(t, fieldErrors, "password")
}

func TestAuthService_RegisterUser_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()
	dbErr := errors.New("connection reset")

	repo.EXPECT().CreateUser(ctx, gomock.Any()).Return(int64(0), dbErr)

	_, err := svc.RegisterUser(ctx, validRegisterRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, ErrInvalidDataProvided)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	hash, err := utils.HashPassword("s3cret-pass", bcrypt.MinCost)
	require.NoError(t, err)
	stored := models.User{UserID: 3, Username: "alice", Password: hash}

	repo.EXPECT().FindUserByUsername(ctx, "alice").Return(stored, nil)

	user, err := svc.Login(ctx, models.LoginRequest{Username: "alice", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), user.UserID)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().FindUserByUsername(ctx, "ghost").Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.Login(ctx, models.LoginRequest{Username: "ghost", Password: "whatever"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	hash, err := utils.HashPassword("s3cret-pass", bcrypt.MinCost)
	require.NoError(t, err)

	repo.EXPECT().FindUserByUsername(ctx, "alice").Return(models.User{UserID: 3, Password: hash}, nil)

	_, err = svc.Login(ctx, models.LoginRequest{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()
	dbErr := errors.New("db down")

	repo.EXPECT().FindUserByUsername(ctx, "alice").Return(models.User{}, dbErr)

	_, err := svc.Login(ctx, models.LoginRequest{Username: "alice", Password: "x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

// ── Tokens ───────────────────────────────────────────────────────────────────

func TestAuthService_CreateAndParseToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{UserID: 42})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
}

func TestAuthService_ParseToken_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.ParseToken(context.Background(), "not.a.jwt")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_ParseToken_ForeignKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthSvc(t, ctrl)

	foreign, err := utils.GenerateJWTToken(svc.tokenIssuer, 1, time.Hour, "another-key")
	require.NoError(t, err)

	_, err = svc.ParseToken(context.Background(), foreign.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

// ── Profile ──────────────────────────────────────────────────────────────────

func TestAuthService_Profile(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().FindUserByID(ctx, int64(5)).Return(models.User{UserID: 5, Username: "bob"}, nil)

	user, err := svc.Profile(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, "bob", user.Username)
}

func TestAuthService_Profile_UserGone(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().FindUserByID(ctx, int64(5)).Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.Profile(ctx, 5)
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}
