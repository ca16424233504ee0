package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-shop-api/internal/config"
	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/internal/store"
	"github.com/MKhiriev/go-shop-api/internal/utils"
	"github.com/MKhiriev/go-shop-api/internal/validators"
	"github.com/MKhiriev/go-shop-api/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for password
// hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// passwordHashCost is the bcrypt cost; zero selects the bcrypt default.
	passwordHashCost int

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	now    func() time.Time
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:   userRepository,
		passwordHashCost: cfg.PasswordHashCost,
		tokenSignKey:     cfg.TokenSignKey,
		tokenIssuer:      cfg.TokenIssuer,
		tokenDuration:    cfg.TokenDuration,
		now:              now,
		logger:           logger,
	}
}

// RegisterUser hashes the password and persists a new account stamped with
// the current time as its join date.
//
// A taken username, or a password bcrypt cannot hash because of its length,
// is reported as ErrInvalidDataProvided carrying the offending field.
func (a *authService) RegisterUser(ctx context.Context, request models.RegisterRequest) (int64, error) {
	log := logger.FromContext(ctx)

	hash, err := utils.HashPassword(request.Password, a.passwordHashCost)
	if errors.Is(err, utils.ErrPasswordTooLong) {
		return 0, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.FieldErrors{"password": {reasonPasswordTooLong}})
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.RegisterUser").Msg("password hashing failed")
		return 0, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		Username:   request.Username,
		Password:   hash,
		Email:      request.Email,
		FirstName:  request.FirstName,
		LastName:   request.LastName,
		DateJoined: a.now(),
	}

	userID, err := a.userRepository.CreateUser(ctx, user)
	if errors.Is(err, store.ErrUsernameAlreadyExists) {
		return 0, fmt.Errorf("%w: %w: %w", ErrInvalidDataProvided, validators.FieldErrors{"username": {reasonUsernameTaken}}, err)
	}
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("user creation ended with error")
		return 0, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Int64("user_id", userID).Msg("user registered")
	return userID, nil
}

// Login authenticates an existing user.
//
// An unknown username and a wrong password both yield ErrInvalidCredentials so
// that callers cannot tell which one failed.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserByUsername(ctx, request.Username)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Debug().Str("username", request.Username).Msg("login for unknown user")
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("username", request.Username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	err = utils.CheckPassword(foundUser.Password, request.Password)
	if errors.Is(err, utils.ErrPasswordMismatch) {
		log.Debug().Int64("user_id", foundUser.UserID).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Int64("user_id", foundUser.UserID).Msg("password check failed")
		return models.User{}, fmt.Errorf("password check failed: %w", err)
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect
// low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// Profile returns the user record for userID. A user deleted after the
// token was issued yields store.ErrUserNotFound.
func (a *authService) Profile(ctx context.Context, userID int64) (models.User, error) {
	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("profile lookup failed: %w", err)
	}

	return user, nil
}
