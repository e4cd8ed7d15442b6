package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/avilov/datavault/internal/auth"
	"github.com/avilov/datavault/internal/common"
	"github.com/avilov/datavault/internal/models"
	"github.com/avilov/datavault/internal/repository"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AuthService implements account registration and login. It realizes the
// execution environment's authenticated-caller collaborator: accounts get an
// opaque ID, a bcrypt-hashed password and a starting balance, and logins
// receive a signed bearer token carrying the account ID.
type AuthService struct {
	db              *sql.DB
	repos           repository.Manager
	secretKey       []byte
	tokenTTL        time.Duration
	startingBalance int64
}

// NewAuthService constructs an AuthService. startingBalance funds new
// accounts so they can pay for access requests.
func NewAuthService(db *sql.DB, repos repository.Manager, secretKey []byte, tokenTTL time.Duration, startingBalance int64) *AuthService {
	return &AuthService{
		db:              db,
		repos:           repos,
		secretKey:       secretKey,
		tokenTTL:        tokenTTL,
		startingBalance: startingBalance,
	}
}

// Register creates an account for the given login. A duplicate login fails
// with ErrAlreadyExists; an empty login or password with ErrInvalidInput.
func (s *AuthService) Register(ctx context.Context, login, password string) (*models.Account, error) {
	if login == "" || password == "" {
		return nil, common.ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	acc := &models.Account{
		ID:           uuid.NewString(),
		Login:        login,
		PasswordHash: hash,
		Balance:      s.startingBalance,
	}

	if err := s.repos.Accounts(s.db).Create(ctx, acc); err != nil {
		return nil, err
	}

	return acc, nil
}

// Login verifies the credentials and returns a signed bearer token. Unknown
// logins and wrong passwords both fail with ErrUnauthorized.
func (s *AuthService) Login(ctx context.Context, login, password string) (string, error) {
	acc, err := s.repos.Accounts(s.db).GetByLogin(ctx, login)
	if err != nil {
		return "", err
	}
	if acc == nil {
		return "", common.ErrUnauthorized
	}

	if err := bcrypt.CompareHashAndPassword(acc.PasswordHash, []byte(password)); err != nil {
		return "", common.ErrUnauthorized
	}

	return auth.GenerateToken(acc.ID, s.secretKey, s.tokenTTL)
}
