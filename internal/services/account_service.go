package services

import (
	"context"
	"log"
	"time"

	"keliauk/internal/models/db_models"
	"keliauk/internal/models/request_models"
	"keliauk/internal/models/response_models"
	"keliauk/internal/repositories"
	mem "keliauk/pkg/memcache"
	"keliauk/pkg/utils"
)

const (
	twoFactorCodeTTL = 5 * time.Minute
	resetTokenTTL    = 15 * time.Minute
)

type AccountServiceInterface interface {
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginPending, error)
	VerifyTwoFactor(ctx context.Context, request request_models.VerifyTwoFactorRequest) (*response_models.LoginResult, error)
	CreateAccount(ctx context.Context, request request_models.SignUpRequest) error
	RequestPasswordReset(ctx context.Context, request request_models.RequestForgotPassword) (string, error)
	ResetPassword(ctx context.Context, request request_models.ResetPasswordRequest) error
	GetProfile(ctx context.Context, accountID string) (*response_models.Account, error)
	UpdateProfile(ctx context.Context, accountID string, request request_models.UpdateProfileRequest) (*response_models.Account, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	otpCodes    mem.CodeStore
	resetTokens mem.CodeStore
	mailer      IMailService // nil when SMTP is not configured
}

func NewAccountService(accountRepo repositories.AccountRepository, otpCodes, resetTokens mem.CodeStore, mailer IMailService) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		otpCodes:    otpCodes,
		resetTokens: resetTokens,
		mailer:      mailer,
	}
}

// Login is step one of the two-step flow: it checks the credentials and
// issues a short-lived one-time code, which step two (VerifyTwoFactor)
// exchanges for a token.
func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginPending, error) {
	account, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	code, err := utils.GenerateOtpCode(6)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	a.otpCodes.Set(code, account.Email, twoFactorCodeTTL)

	pending := &response_models.LoginPending{Email: account.Email}
	if a.mailer != nil {
		if err := a.mailer.SendTwoFactorCode(account.Email, code); err != nil {
			log.Printf("Error sending 2FA mail: %v", err)
		}
	} else {
		pending.Code = code
	}
	return pending, nil
}

func (a *AccountService) VerifyTwoFactor(ctx context.Context, request request_models.VerifyTwoFactorRequest) (*response_models.LoginResult, error) {
	email := a.otpCodes.Consume(request.Code)
	if email == "" || email != request.Email {
		return nil, utils.ErrInvalidTwoFactorCode
	}

	account, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	token, err := utils.CreateToken(account.ID, account.Name)
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	return &response_models.LoginResult{
		Token:   token,
		Account: toAccountResponse(account),
	}, nil
}

func (a *AccountService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) error {
	existingAccount, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existingAccount != nil {
		return utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	newAccount := &db_models.Account{
		Name:         request.DisplayName,
		Email:        request.Email,
		PasswordHash: hashedPassword,
	}

	if err := a.accountRepo.Insert(ctx, newAccount); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

// RequestPasswordReset returns the token when no mailer is configured,
// mirroring the 2FA prototype behavior. A missing account yields the same
// success as an existing one.
func (a *AccountService) RequestPasswordReset(ctx context.Context, request request_models.RequestForgotPassword) (string, error) {
	account, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if account == nil {
		return "", nil
	}

	token, err := utils.GenerateSecureToken(32)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	a.resetTokens.Set(token, account.Email, resetTokenTTL)

	if a.mailer != nil {
		if err := a.mailer.SendMailToResetPassword(account.Email, token); err != nil {
			log.Printf("Error sending reset mail: %v", err)
		}
		return "", nil
	}
	return token, nil
}

func (a *AccountService) ResetPassword(ctx context.Context, request request_models.ResetPasswordRequest) error {
	email := a.resetTokens.Consume(request.Token)
	if email == "" {
		return utils.ErrInvalidResetToken
	}

	account, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if account == nil {
		return utils.ErrAccountNotFound
	}

	hashedPassword, err := utils.HashPassword(request.NewPassword)
	if err != nil {
		return utils.ErrDatabaseError
	}
	account.PasswordHash = hashedPassword

	if err := a.accountRepo.Update(ctx, account); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (a *AccountService) GetProfile(ctx context.Context, accountID string) (*response_models.Account, error) {
	account, err := a.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	out := toAccountResponse(account)
	return &out, nil
}

func (a *AccountService) UpdateProfile(ctx context.Context, accountID string, request request_models.UpdateProfileRequest) (*response_models.Account, error) {
	account, err := a.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	if request.Email != "" && request.Email != account.Email {
		other, err := a.accountRepo.FindByEmail(ctx, request.Email)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if other != nil {
			return nil, utils.ErrEmailAlreadyExists
		}
		account.Email = request.Email
	}
	if request.DisplayName != "" {
		account.Name = request.DisplayName
	}
	if request.Avatar != "" {
		account.Avatar = request.Avatar
	}

	if err := a.accountRepo.Update(ctx, account); err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := toAccountResponse(account)
	return &out, nil
}

func toAccountResponse(account *db_models.Account) response_models.Account {
	return response_models.Account{
		ID:      account.ID.String(),
		Name:    account.Name,
		Email:   account.Email,
		Avatar:  account.Avatar,
		Friends: account.Friends,
	}
}
