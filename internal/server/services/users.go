// Package services contains server-side business logic. This file implements
// UserService: registration with tenant auto-creation, login, password
// management and access token minting.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/contactkeeper/internal/common"
	"github.com/dmitrijs2005/contactkeeper/internal/dbx"
	"github.com/dmitrijs2005/contactkeeper/internal/logging"
	"github.com/dmitrijs2005/contactkeeper/internal/server/auth"
	"github.com/dmitrijs2005/contactkeeper/internal/server/config"
	"github.com/dmitrijs2005/contactkeeper/internal/server/models"
	"github.com/dmitrijs2005/contactkeeper/internal/server/repositories/repomanager"
)

// UserService provides authentication-related operations.
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	log         logging.Logger
	jwtSecret   []byte
	env         string
	tokenTTL    time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config, log logging.Logger) *UserService {
	return &UserService{
		db:          db,
		repomanager: m,
		log:         log,
		jwtSecret:   []byte(cfg.JWTSecret),
		env:         cfg.Env,
		tokenTTL:    cfg.TokenTTL,
	}
}

// Register creates a new account. The tenant named in the request is created
// on first use; an empty tenant name falls back to the default tenant.
// Duplicate email or username yield their own sentinel errors.
func (s *UserService) Register(ctx context.Context, email, username, password, tenantName string) (*models.User, error) {
	usersRepo := s.repomanager.Users(s.db)

	if _, err := usersRepo.GetByEmail(ctx, email); err == nil {
		return nil, models.ErrEmailTaken
	} else if !errors.Is(err, common.ErrorNotFound) {
		return nil, err
	}

	if _, err := usersRepo.GetByUsername(ctx, username); err == nil {
		return nil, models.ErrUsernameTaken
	} else if !errors.Is(err, common.ErrorNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	if tenantName == "" {
		tenantName = models.DefaultTenantName
	}

	var user *models.User
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		tenant, err := s.ensureTenant(ctx, tx, tenantName)
		if err != nil {
			return err
		}

		user, err = s.repomanager.Users(tx).Create(ctx, &models.User{
			Email:        email,
			Username:     username,
			PasswordHash: hash,
			TenantID:     tenant.ID,
			IsActive:     true,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.Info(ctx, "user registered", "user_id", user.ID, "tenant_id", user.TenantID)
	return user, nil
}

// Login verifies the credentials and records the login time. The error for a
// missing account and for a wrong password is identical so usernames cannot
// be probed.
func (s *UserService) Login(ctx context.Context, username, password string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, models.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, models.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, models.ErrUserInactive
	}

	now := time.Now().UTC()
	if err := repo.UpdateLastLogin(ctx, user.ID, now); err != nil {
		return nil, err
	}
	user.LastLogin = &now

	return user, nil
}

// GetByID loads one account; used by the identity endpoint and the auth
// middleware.
func (s *UserService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.repomanager.Users(s.db).GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, models.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// ChangePassword verifies the current password before storing the new hash.
func (s *UserService) ChangePassword(ctx context.Context, userID int64, current, next string) error {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return models.ErrUserNotFound
		}
		return err
	}

	if !auth.CheckPassword(user.PasswordHash, current) {
		return models.ErrInvalidCredentials
	}

	hash, err := auth.HashPassword(next)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}
	return repo.UpdatePassword(ctx, userID, hash)
}

// RequestPasswordReset generates a reset token for the account. The caller
// gets the same outcome whether or not the account exists. Delivery is out
// of scope here; the token is handed to the log for the operator.
func (s *UserService) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.repomanager.Users(s.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil
		}
		return err
	}

	token, err := common.MakeRandHexString(32)
	if err != nil {
		return err
	}

	s.log.Info(ctx, "password reset requested", "user_id", user.ID, "reset_token", token)
	return nil
}

// IssueToken mints an access token for the user and reports its lifetime in
// seconds.
func (s *UserService) IssueToken(user *models.User) (string, int64, error) {
	token, err := auth.GenerateToken(user.ID, s.env, s.jwtSecret, s.tokenTTL)
	if err != nil {
		return "", 0, err
	}
	return token, int64(s.tokenTTL.Seconds()), nil
}

// VerifyToken resolves an access token to the user id it was minted for.
func (s *UserService) VerifyToken(token string) (int64, error) {
	return auth.GetUserIDFromToken(token, s.jwtSecret)
}

func (s *UserService) ensureTenant(ctx context.Context, tx dbx.DBTX, name string) (*models.Tenant, error) {
	repo := s.repomanager.Tenants(tx)

	tenant, err := repo.GetByName(ctx, name)
	if err == nil {
		return tenant, nil
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, err
	}
	return repo.Create(ctx, &models.Tenant{Name: name})
}
