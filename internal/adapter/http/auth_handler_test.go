package http

import (
	"context"
	"net/http"
	"testing"
	"time"

	"collateralbook/internal/adapter/tokenstore"
	userDomain "collateralbook/internal/domain/user"
	"collateralbook/internal/testutil/usermock"
	"collateralbook/internal/token"
	"collateralbook/internal/usecase/auth"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type memRefreshStore struct{ m map[string]string }

func (s *memRefreshStore) Put(ctx context.Context, jti, userID string, ttl time.Duration) error {
	s.m[jti] = userID
	return nil
}
func (s *memRefreshStore) Get(ctx context.Context, jti string) (string, error) {
	v, ok := s.m[jti]
	if !ok {
		return "", tokenstore.ErrNotFound
	}
	return v, nil
}
func (s *memRefreshStore) Delete(ctx context.Context, jti string) error {
	delete(s.m, jti)
	return nil
}

func newAuthHandler(users *usermock.Repo) *AuthHandler {
	uc := auth.NewUsecase(users, token.NewService("test-secret", "test"), &memRefreshStore{m: map[string]string{}}, 15*time.Minute, time.Hour)
	return NewAuthHandler(uc)
}

func TestRegisterHandler_Created(t *testing.T) {
	users := &usermock.Repo{
		GetByUsernameFn: func(ctx context.Context, username string) (*userDomain.User, error) {
			return nil, gorm.ErrRecordNotFound
		},
		CreateFn: func(ctx context.Context, u *userDomain.User) error { return nil },
	}
	h := newAuthHandler(users)

	var out map[string]any
	rec := doJSON(t, newEcho(), http.MethodPost, "/auth/register",
		`{"username":"alice","email":"a@example.com","password":"hunter22"}`, nil, h.Register, &out)
	wantStatus(t, rec, http.StatusCreated)
	if out["username"] != "alice" {
		t.Fatalf("body: %v", out)
	}
}

func TestRegisterHandler_ValidationFailure(t *testing.T) {
	h := newAuthHandler(&usermock.Repo{})

	var out ErrorResponse
	rec := doJSON(t, newEcho(), http.MethodPost, "/auth/register",
		`{"username":"alice","password":"tiny"}`, nil, h.Register, &out)
	wantStatus(t, rec, http.StatusUnprocessableEntity)
	if len(out.Details) != 1 || out.Details[0].Field != "Password" {
		t.Fatalf("details: %+v", out.Details)
	}
}

func TestRegisterHandler_DuplicateUsername(t *testing.T) {
	users := &usermock.Repo{
		GetByUsernameFn: func(ctx context.Context, username string) (*userDomain.User, error) {
			return &userDomain.User{Username: username}, nil
		},
	}
	h := newAuthHandler(users)

	var out ErrorResponse
	rec := doJSON(t, newEcho(), http.MethodPost, "/auth/register",
		`{"username":"alice","password":"hunter22"}`, nil, h.Register, &out)
	wantStatus(t, rec, http.StatusBadRequest)
	if len(out.Details) != 1 || out.Details[0].Field != "username" {
		t.Fatalf("details: %+v", out.Details)
	}
}

func TestLoginHandler_InvalidCredentials(t *testing.T) {
	users := &usermock.Repo{
		GetByUsernameFn: func(ctx context.Context, username string) (*userDomain.User, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	h := newAuthHandler(users)

	rec := doJSON(t, newEcho(), http.MethodPost, "/auth/login",
		`{"username":"ghost","password":"whatever"}`, nil, h.Login, nil)
	wantStatus(t, rec, http.StatusUnauthorized)
}

func TestLoginHandler_ReturnsPair(t *testing.T) {
	hashBytes, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	users := &usermock.Repo{
		GetByUsernameFn: func(ctx context.Context, username string) (*userDomain.User, error) {
			return &userDomain.User{UserID: "u1", Username: "alice", PasswordHash: string(hashBytes)}, nil
		},
	}
	h := newAuthHandler(users)

	var out map[string]string
	rec := doJSON(t, newEcho(), http.MethodPost, "/auth/login",
		`{"username":"alice","password":"hunter22"}`, nil, h.Login, &out)
	wantStatus(t, rec, http.StatusOK)
	if out["access"] == "" || out["refresh"] == "" {
		t.Fatalf("incomplete token pair: %v", out)
	}
}

func TestRefreshHandler_RejectsGarbage(t *testing.T) {
	h := newAuthHandler(&usermock.Repo{})

	rec := doJSON(t, newEcho(), http.MethodPost, "/auth/refresh",
		`{"refresh":"not-a-token"}`, nil, h.Refresh, nil)
	wantStatus(t, rec, http.StatusUnauthorized)
}
