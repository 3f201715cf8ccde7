package auth

import (
	"context"
	"errors"
	"time"

	"collateralbook/internal/adapter/tokenstore"
	userDomain "collateralbook/internal/domain/user"
	"collateralbook/internal/token"
	"collateralbook/pkg/id"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidRefresh     = errors.New("refresh token is invalid or expired")
)

type Usecase struct {
	users      userDomain.Repository
	tokens     *token.Service
	refresh    tokenstore.RefreshStore
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewUsecase(users userDomain.Repository, tokens *token.Service, refresh tokenstore.RefreshStore, accessTTL, refreshTTL time.Duration) *Usecase {
	return &Usecase{users: users, tokens: tokens, refresh: refresh, accessTTL: accessTTL, refreshTTL: refreshTTL}
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

type UserDTO struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type TokenPairDTO struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

type AccessTokenDTO struct {
	Access string `json:"access"`
}

func (u *Usecase) Register(ctx context.Context, in RegisterInput) (*UserDTO, error) {
	_, err := u.users.GetByUsername(ctx, in.Username)
	switch {
	case err == nil:
		return nil, userDomain.ErrUsernameTaken
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	usr := &userDomain.User{
		UserID:       id.NewID32(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
	}
	if err := u.users.Create(ctx, usr); err != nil {
		return nil, err
	}
	return &UserDTO{ID: usr.UserID, Username: usr.Username, Email: usr.Email}, nil
}

func (u *Usecase) Login(ctx context.Context, username, password string) (*TokenPairDTO, error) {
	usr, err := u.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	access, err := u.tokens.GenerateAccessToken(usr.UserID, usr.Username, u.accessTTL)
	if err != nil {
		return nil, err
	}
	refresh, jti, err := u.tokens.GenerateRefreshToken(usr.UserID, usr.Username, u.refreshTTL)
	if err != nil {
		return nil, err
	}
	if err := u.refresh.Put(ctx, jti, usr.UserID, u.refreshTTL); err != nil {
		return nil, err
	}
	return &TokenPairDTO{Access: access, Refresh: refresh}, nil
}

// Refresh exchanges a live refresh token for a new access token. The refresh
// token itself stays valid until it expires; there is no rotation.
func (u *Usecase) Refresh(ctx context.Context, refreshToken string) (*AccessTokenDTO, error) {
	claims, err := u.tokens.Validate(refreshToken, token.TypeRefresh)
	if err != nil {
		return nil, ErrInvalidRefresh
	}
	owner, err := u.refresh.Get(ctx, claims.ID)
	if err != nil {
		if errors.Is(err, tokenstore.ErrNotFound) {
			return nil, ErrInvalidRefresh
		}
		return nil, err
	}
	if owner != claims.UserID {
		return nil, ErrInvalidRefresh
	}

	access, err := u.tokens.GenerateAccessToken(claims.UserID, claims.Username, u.accessTTL)
	if err != nil {
		return nil, err
	}
	return &AccessTokenDTO{Access: access}, nil
}
