package services

import (
	"context"
	"errors"
	"testing"

	"keliauk/internal/models/db_models"
	"keliauk/internal/models/request_models"
	mem "keliauk/pkg/memcache"
	"keliauk/pkg/utils"
)

func newAccountFixture(t *testing.T) (AccountServiceInterface, *fakeAccountRepo) {
	t.Helper()

	hash, err := utils.HashPassword("test123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	repo := &fakeAccountRepo{}
	account := &db_models.Account{
		Name:         "Jonas Petraitis",
		Email:        "jonas@example.com",
		PasswordHash: hash,
	}
	if err := repo.Insert(context.Background(), account); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	// nil mailer: codes and tokens come back in the response.
	service := NewAccountService(repo, mem.NewCodes(), mem.NewCodes(), nil)
	return service, repo
}

func TestTwoStepLogin(t *testing.T) {
	ctx := context.Background()
	service, _ := newAccountFixture(t)

	pending, err := service.Login(ctx, request_models.LoginRequest{Email: "jonas@example.com", Password: "test123"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if pending.Email != "jonas@example.com" {
		t.Errorf("Email = %q", pending.Email)
	}
	if len(pending.Code) != 6 {
		t.Fatalf("Code = %q, want 6 digits without a mailer", pending.Code)
	}

	result, err := service.VerifyTwoFactor(ctx, request_models.VerifyTwoFactorRequest{
		Email: "jonas@example.com",
		Code:  pending.Code,
	})
	if err != nil {
		t.Fatalf("VerifyTwoFactor: %v", err)
	}
	if result.Token == "" {
		t.Error("Token empty after successful verification")
	}
	if result.Account.Name != "Jonas Petraitis" {
		t.Errorf("Account.Name = %q", result.Account.Name)
	}

	claims, err := utils.ValidateToken(result.Token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.Name != "Jonas Petraitis" {
		t.Errorf("claims.Name = %q", claims.Name)
	}

	// The code is single-use.
	if _, err := service.VerifyTwoFactor(ctx, request_models.VerifyTwoFactorRequest{
		Email: "jonas@example.com",
		Code:  pending.Code,
	}); !errors.Is(err, utils.ErrInvalidTwoFactorCode) {
		t.Errorf("reused code err = %v, want ErrInvalidTwoFactorCode", err)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	ctx := context.Background()
	service, _ := newAccountFixture(t)

	if _, err := service.Login(ctx, request_models.LoginRequest{Email: "jonas@example.com", Password: "wrong"}); !errors.Is(err, utils.ErrInvalidCredentials) {
		t.Errorf("wrong password err = %v, want ErrInvalidCredentials", err)
	}
	if _, err := service.Login(ctx, request_models.LoginRequest{Email: "niekas@example.com", Password: "test123"}); !errors.Is(err, utils.ErrInvalidCredentials) {
		t.Errorf("unknown email err = %v, want ErrInvalidCredentials", err)
	}
}

func TestVerifyTwoFactorWrongEmail(t *testing.T) {
	ctx := context.Background()
	service, _ := newAccountFixture(t)

	pending, err := service.Login(ctx, request_models.LoginRequest{Email: "jonas@example.com", Password: "test123"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	// A valid code bound to another email is rejected, and consumed.
	if _, err := service.VerifyTwoFactor(ctx, request_models.VerifyTwoFactorRequest{
		Email: "kitas@example.com",
		Code:  pending.Code,
	}); !errors.Is(err, utils.ErrInvalidTwoFactorCode) {
		t.Errorf("mismatched email err = %v, want ErrInvalidTwoFactorCode", err)
	}
}

func TestCreateAccount(t *testing.T) {
	ctx := context.Background()
	service, repo := newAccountFixture(t)

	err := service.CreateAccount(ctx, request_models.SignUpRequest{
		DisplayName:     "Ona Kazlauskienė",
		Email:           "ona@example.com",
		Password:        "slaptas1",
		ConfirmPassword: "slaptas1",
	})
	if err != nil {
		t.Fatalf("CreateAccount: %v", err)
	}

	account, _ := repo.FindByEmail(ctx, "ona@example.com")
	if account == nil {
		t.Fatal("account not persisted")
	}
	if account.PasswordHash == "slaptas1" {
		t.Error("password stored in plain text")
	}
	if err := utils.ComparePasswords(account.PasswordHash, "slaptas1"); err != nil {
		t.Errorf("stored hash does not match the password: %v", err)
	}

	err = service.CreateAccount(ctx, request_models.SignUpRequest{
		DisplayName:     "Kitas Jonas",
		Email:           "jonas@example.com",
		Password:        "slaptas1",
		ConfirmPassword: "slaptas1",
	})
	if !errors.Is(err, utils.ErrEmailAlreadyExists) {
		t.Errorf("duplicate email err = %v, want ErrEmailAlreadyExists", err)
	}
}

func TestPasswordReset(t *testing.T) {
	ctx := context.Background()
	service, _ := newAccountFixture(t)

	// An unknown email yields the same silent success, with no token.
	token, err := service.RequestPasswordReset(ctx, request_models.RequestForgotPassword{Email: "niekas@example.com"})
	if err != nil {
		t.Fatalf("RequestPasswordReset(unknown): %v", err)
	}
	if token != "" {
		t.Error("token issued for an unknown email")
	}

	token, err = service.RequestPasswordReset(ctx, request_models.RequestForgotPassword{Email: "jonas@example.com"})
	if err != nil {
		t.Fatalf("RequestPasswordReset: %v", err)
	}
	if token == "" {
		t.Fatal("no token without a mailer")
	}

	err = service.ResetPassword(ctx, request_models.ResetPasswordRequest{
		Token:           token,
		NewPassword:     "naujas123",
		ConfirmPassword: "naujas123",
	})
	if err != nil {
		t.Fatalf("ResetPassword: %v", err)
	}

	if _, err := service.Login(ctx, request_models.LoginRequest{Email: "jonas@example.com", Password: "test123"}); !errors.Is(err, utils.ErrInvalidCredentials) {
		t.Error("old password still accepted after reset")
	}
	if _, err := service.Login(ctx, request_models.LoginRequest{Email: "jonas@example.com", Password: "naujas123"}); err != nil {
		t.Errorf("new password rejected: %v", err)
	}

	// The token is single-use.
	err = service.ResetPassword(ctx, request_models.ResetPasswordRequest{
		Token:           token,
		NewPassword:     "dar1naujas",
		ConfirmPassword: "dar1naujas",
	})
	if !errors.Is(err, utils.ErrInvalidResetToken) {
		t.Errorf("reused token err = %v, want ErrInvalidResetToken", err)
	}
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	service, repo := newAccountFixture(t)
	accountID := repo.accounts[0].ID.String()

	updated, err := service.UpdateProfile(ctx, accountID, request_models.UpdateProfileRequest{
		DisplayName: "Jonas P.",
		Avatar:      "/static/avatars/jonas.webp",
	})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if updated.Name != "Jonas P." || updated.Avatar != "/static/avatars/jonas.webp" {
		t.Errorf("updated = %+v", updated)
	}
	// Untouched fields keep their values.
	if updated.Email != "jonas@example.com" {
		t.Errorf("Email = %q, want unchanged", updated.Email)
	}

	if err := service.CreateAccount(ctx, request_models.SignUpRequest{
		DisplayName:     "Ona Kazlauskienė",
		Email:           "ona@example.com",
		Password:        "slaptas1",
		ConfirmPassword: "slaptas1",
	}); err != nil {
		t.Fatalf("CreateAccount: %v", err)
	}
	if _, err := service.UpdateProfile(ctx, accountID, request_models.UpdateProfileRequest{Email: "ona@example.com"}); !errors.Is(err, utils.ErrEmailAlreadyExists) {
		t.Errorf("taken email err = %v, want ErrEmailAlreadyExists", err)
	}
}
