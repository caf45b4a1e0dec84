package services

import (
	"context"
	"errors"
	"testing"
	"time"

	dto "time-management.com/time-management/internal/data_models"
	apperrors "time-management.com/time-management/internal/errors"
	repository "time-management.com/time-management/internal/repositories"
)

func setupAuth(t *testing.T) (*AuthService, *testEnv) {
	env := setup(t)
	auth := NewAuthService(
		repository.NewUserRepository(env.db),
		"test-secret", "time-management-api", "time-management-client",
		time.Hour,
	)
	return auth, env
}

func TestRegisterAndVerifyToken(t *testing.T) {
	auth, _ := setupAuth(t)
	ctx := context.Background()

	resp, err := auth.Register(ctx, dto.RegisterRequest{
		Email:     "new@local.test",
		Password:  "Password1",
		FirstName: "New",
		LastName:  "User",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if resp.Token == "" || resp.UserID == "" {
		t.Fatal("expected token and user id")
	}

	callerID, err := auth.VerifyToken(resp.Token)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if callerID != resp.UserID {
		t.Errorf("expected caller %s, got %s", resp.UserID, callerID)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	auth, _ := setupAuth(t)
	ctx := context.Background()

	req := dto.RegisterRequest{Email: "dup@local.test", Password: "Password1"}
	if _, err := auth.Register(ctx, req); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := auth.Register(ctx, req); !errors.Is(err, apperrors.ErrEmailTaken) {
		t.Errorf("expected email-taken error, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	auth, _ := setupAuth(t)
	ctx := context.Background()

	if _, err := auth.Register(ctx, dto.RegisterRequest{Email: "u@local.test", Password: "Password1"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, err := auth.Login(ctx, dto.LoginRequest{Email: "u@local.test", Password: "wrong"}); !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Errorf("expected invalid credentials, got %v", err)
	}
	if _, err := auth.Login(ctx, dto.LoginRequest{Email: "nobody@local.test", Password: "Password1"}); !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Errorf("expected invalid credentials for unknown user, got %v", err)
	}

	resp, err := auth.Login(ctx, dto.LoginRequest{Email: "u@local.test", Password: "Password1"})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if _, err := auth.VerifyToken(resp.Token); err != nil {
		t.Errorf("login token did not verify: %v", err)
	}
}

func TestVerifyTokenRejectsForgery(t *testing.T) {
	auth, env := setupAuth(t)
	ctx := context.Background()

	resp, err := auth.Register(ctx, dto.RegisterRequest{Email: "f@local.test", Password: "Password1"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	otherAuth := NewAuthService(
		repository.NewUserRepository(env.db),
		"different-secret", "time-management-api", "time-management-client",
		time.Hour,
	)
	if _, err := otherAuth.VerifyToken(resp.Token); err == nil {
		t.Error("expected token signed with another secret to fail verification")
	}
}
