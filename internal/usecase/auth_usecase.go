package usecase

import (
	"context"
	"errors"
	"strings"

	"clinic-api/internal/converter"
	"clinic-api/internal/delivery/dto"
	"clinic-api/internal/domain/entity"
	"clinic-api/internal/domain/repository"
	"clinic-api/internal/service"
	"clinic-api/pkg/apperr"
	"clinic-api/pkg/hash"
	"clinic-api/pkg/jwt"
	"clinic-api/pkg/verification"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
)

// Role-specific post-login redirect hints. Presentation only, not a security
// boundary.
var roleRedirects = map[string]string{
	"admin":   "/dashboard/admin",
	"doctor":  "/dashboard/doctor",
	"patient": "/dashboard/patient",
}

const defaultRedirect = "/"

type AuthUsecase interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	VerifyCode(ctx context.Context, req *dto.VerifyCodeRequest) (*dto.MessageResponse, error)
	// ValidateCredentials returns (nil, nil) when the email is unknown or the
	// password does not match; errors are reserved for rejected-but-existing
	// accounts (unverified, deactivated) and store failures.
	ValidateCredentials(ctx context.Context, email, password string) (*entity.User, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error)
}

type authUsecase struct {
	log           *logrus.Logger
	userRepo      repository.UserRepository
	hasher        *hash.Hasher
	jwtService    *jwt.JWTService
	tokenStore    service.TokenStore
	mailer        service.Mailer
	defaultRoleID int
}

func NewAuthUsecase(
	log *logrus.Logger,
	userRepo repository.UserRepository,
	hasher *hash.Hasher,
	jwtService *jwt.JWTService,
	tokenStore service.TokenStore,
	mailer service.Mailer,
	defaultRoleID int,
) AuthUsecase {
	return &authUsecase{
		log:           log,
		userRepo:      userRepo,
		hasher:        hasher,
		jwtService:    jwtService,
		tokenStore:    tokenStore,
		mailer:        mailer,
		defaultRoleID: defaultRoleID,
	}
}

func (u *authUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	if strings.TrimSpace(req.FirstName) == "" ||
		strings.TrimSpace(req.LastName) == "" ||
		strings.TrimSpace(req.Email) == "" ||
		req.Password == "" {
		return nil, apperr.New(apperr.KindValidation, "first name, last name, email and password are required")
	}

	roleID := req.RoleID
	if roleID == 0 {
		roleID = u.defaultRoleID
	}

	code := verification.NewCode()

	hashedPassword, err := u.hasher.Hash(req.Password)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	user := &entity.User{
		Email:            req.Email,
		Password:         hashedPassword,
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Phone:            req.Phone,
		Address:          req.Address,
		RoleID:           roleID,
		IsVerified:       false,
		VerificationCode: &code,
		IsActive:         true,
	}

	// No pre-check: the unique constraint on email is the conflict signal.
	if err := u.userRepo.Create(ctx, user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, apperr.New(apperr.KindConflict, "email is already registered")
		}
		if isForeignKeyError(err, "role") {
			return nil, apperr.New(apperr.KindNotFound, "role not found")
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	// Mail delivery is best-effort: a flaky SMTP hop must never undo a
	// completed registration.
	if err := u.mailer.Send(ctx, user.Email, "Verify your clinic account", "verification", map[string]interface{}{
		"Code":  code,
		"Email": user.Email,
	}); err != nil {
		u.log.Warnf("Failed to send verification email to %s: %+v", user.Email, err)
	}

	return &dto.RegisterResponse{
		Message: "registration successful, check your email for the verification code",
		Email:   user.Email,
	}, nil
}

func (u *authUsecase) VerifyCode(ctx context.Context, req *dto.VerifyCodeRequest) (*dto.MessageResponse, error) {
	user, err := u.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, apperr.New(apperr.KindNotFound, "user not found")
	}

	if user.IsVerified {
		return &dto.MessageResponse{Message: "account is already verified"}, nil
	}

	if user.VerificationCode == nil || *user.VerificationCode != req.Code {
		return nil, apperr.New(apperr.KindAuth, "incorrect verification code")
	}

	user.IsVerified = true
	user.VerificationCode = nil
	if err := u.userRepo.Update(ctx, user); err != nil {
		u.log.Warnf("Failed to persist verification: %+v", err)
		return nil, err
	}

	return &dto.MessageResponse{Message: "account verified successfully"}, nil
}

func (u *authUsecase) ValidateCredentials(ctx context.Context, email, password string) (*entity.User, error) {
	user, err := u.userRepo.FindByEmail(ctx, email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	// Rejected before the password check so an unverified account gets a
	// precise message instead of a generic credential failure.
	if !user.IsVerified {
		return nil, apperr.New(apperr.KindAuth, "account has not been verified, check your email")
	}
	if !user.IsActive {
		return nil, apperr.New(apperr.KindAuth, "account has been deactivated")
	}

	if !u.hasher.Check(password, user.Password) {
		return nil, nil
	}

	user.Password = ""
	return user, nil
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := u.ValidateCredentials(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.New(apperr.KindAuth, "invalid email or password")
	}

	token, tokenID, err := u.jwtService.GenerateToken(user.ID, user.Email, user.Role.Name)
	if err != nil {
		u.log.Warnf("Failed to generate token: %+v", err)
		return nil, err
	}

	if err := u.tokenStore.Register(ctx, user.ID, tokenID, u.jwtService.GetExpiry()); err != nil {
		u.log.Warnf("Failed to register token: %+v", err)
		return nil, err
	}

	redirect, ok := roleRedirects[user.Role.Name]
	if !ok {
		redirect = defaultRedirect
	}

	return &dto.LoginResponse{
		AccessToken: token,
		ExpiresIn:   int64(u.jwtService.GetExpiry().Seconds()),
		User:        converter.UserToResponse(user),
		Redirect:    redirect,
	}, nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, apperr.New(apperr.KindNotFound, "user not found")
	}

	return converter.UserToResponse(user), nil
}

// isDuplicateKeyError checks for a PostgreSQL unique constraint violation
// naming the given constraint.
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}

// isForeignKeyError checks for a PostgreSQL foreign key violation naming the
// given constraint.
func isForeignKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// 23503 = foreign_key_violation
		if pgErr.Code == "23503" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
