package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"hrms/config"
	"hrms/internal/core"
	fluentdModel "hrms/internal/database/fluentd/model"
	fluentdRepo "hrms/internal/database/fluentd/repository"
	"hrms/internal/database/jsondb/model"
	storeRepo "hrms/internal/database/jsondb/repository"
	redisRepo "hrms/internal/database/redis/repository"
	"hrms/internal/dto"
	cErr "hrms/internal/pkg/error"
	"hrms/internal/pkg/secret"
	"hrms/internal/telemetry"

	"github.com/golang-jwt/jwt/v4"
)

type AuthService struct {
	trace        *telemetry.Trace
	metric       *telemetry.Metric
	secretKey    []byte
	userRepo     *storeRepo.UserRepository
	employeeRepo *storeRepo.EmployeeRepository
	settingsRepo *storeRepo.SettingsRepository
	limiterRepo  *redisRepo.LoginLimiterRepository
	auditRepo    *fluentdRepo.AuditRepository
}

func NewAuthService(
	conf *config.Configuration,
	trace *telemetry.Trace,
	metric *telemetry.Metric,
	userRepo *storeRepo.UserRepository,
	employeeRepo *storeRepo.EmployeeRepository,
	settingsRepo *storeRepo.SettingsRepository,
	limiterRepo *redisRepo.LoginLimiterRepository,
	auditRepo *fluentdRepo.AuditRepository,
) *AuthService {
	return &AuthService{
		trace:        trace,
		metric:       metric,
		secretKey:    []byte(conf.App.SecretKey),
		userRepo:     userRepo,
		employeeRepo: employeeRepo,
		settingsRepo: settingsRepo,
		limiterRepo:  limiterRepo,
		auditRepo:    auditRepo,
	}
}

// Authenticate 帳密登入。成功回傳簽發的 token；
// 失敗一律回 invalid-credentials，不透露帳號是否存在。
func (s *AuthService) Authenticate(ctx context.Context, loginDto *dto.LoginDto) (_ *dto.LoginResponseDto, returnedError error) {
	ctx, span, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, storeErr(err, "settings not found")
	}

	exceeded, ttlSec, err := s.limiterRepo.Exceeded(ctx, loginDto.Username)
	if err == nil && exceeded {
		s.countLoginFail("throttled")
		return nil, cErr.RateLimitExceeded(fmt.Sprintf("too many failed attempts, retry in %ds", ttlSec))
	}

	user, err := s.userRepo.GetByUsername(ctx, loginDto.Username)
	if err != nil {
		// 查無帳號仍走一次雜湊比對，避免時間差洩漏
		secret.VerifyDummy(loginDto.Password)
		return nil, s.failLogin(ctx, loginDto.Username, settings, "unknown_user")
	}
	if user.Status != core.StatusActive {
		secret.VerifyDummy(loginDto.Password)
		return nil, s.failLogin(ctx, loginDto.Username, settings, "inactive")
	}
	if !secret.VerifyPassword(user.PasswordHash, loginDto.Password) {
		return nil, s.failLogin(ctx, loginDto.Username, settings, "bad_password")
	}

	_ = s.limiterRepo.Reset(ctx, loginDto.Username)

	token, err := s.signToken(user.UserID, user.Username, user.Role, user.EmployeeID,
		time.Duration(settings.SecuritySettings.SessionTimeoutMinutes)*time.Minute)
	if err != nil {
		return nil, cErr.InternalServer("failed to sign session token")
	}

	s.trace.ApplyTraceAttributes(span, core.TraceAuthMeta{
		Username: user.Username,
		UserID:   user.UserID,
		Role:     string(user.Role),
		Status:   "ok",
	})
	_ = s.auditRepo.LogEvent(ctx, fluentdModel.AuditEvent{
		Action:    "auth.login",
		ActorID:   user.UserID,
		ActorName: user.Username,
		ActorRole: string(user.Role),
		Outcome:   fluentdModel.OutcomeSuccess,
	})

	return &dto.LoginResponseDto{
		Token: token,
		User: dto.SessionUserDto{
			UserID:     user.UserID,
			Username:   user.Username,
			Role:       user.Role,
			EmployeeID: user.EmployeeID,
		},
	}, nil
}

// failLogin 消耗一次失敗配額並回統一錯誤
func (s *AuthService) failLogin(ctx context.Context, username string, settings *model.Settings, reason string) error {
	s.countLoginFail(reason)
	_ = s.auditRepo.LogEvent(ctx, fluentdModel.AuditEvent{
		Action:    "auth.login",
		ActorName: username,
		Outcome:   fluentdModel.OutcomeFailure,
		Detail:    reason,
	})

	windowSec := int64(settings.SecuritySettings.LockoutWindowMinutes) * 60
	_, _, consumeErr := s.limiterRepo.Consume(ctx, username, windowSec, settings.SecuritySettings.MaxLoginAttempts)
	if errors.Is(consumeErr, redisRepo.ErrRateLimitExceeded) {
		return cErr.RateLimitExceeded("too many failed attempts")
	}
	return cErr.InvalidCredentials("invalid username or password")
}

func (s *AuthService) countLoginFail(reason string) {
	if s.metric != nil && s.metric.LoginFailTotal != nil {
		s.metric.LoginFailTotal.WithLabelValues(reason).Inc()
	}
}

// signToken 簽發 HS256 session token
func (s *AuthService) signToken(userID int, username string, role core.Role, employeeID *int, lifetime time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := &core.Claims{
		UserID:     userID,
		Username:   username,
		Role:       role,
		EmployeeID: employeeID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(lifetime)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

// ParseToken 驗證 token 並還原 Session
func (s *AuthService) ParseToken(tokenString string) (*core.Session, error) {
	claims := &core.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, cErr.InvalidSession("session token is invalid or expired")
	}
	return claims.Session(), nil
}

// RequestPasswordReset 忘記密碼：帳號需綁定員工且信箱相符，
// 核發一次性臨時密碼。任何比對失敗都回同一種錯誤，不洩漏帳號狀態。
func (s *AuthService) RequestPasswordReset(ctx context.Context, resetDto *dto.ForgotPasswordDto) (_ *dto.ForgotPasswordResponseDto, returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	mismatch := cErr.ProfileMismatch("account verification failed")

	user, err := s.userRepo.GetByUsername(ctx, resetDto.Username)
	if err != nil {
		return nil, mismatch
	}
	if user.EmployeeID == nil {
		return nil, mismatch
	}
	employee, err := s.employeeRepo.GetByID(ctx, *user.EmployeeID)
	if err != nil {
		return nil, mismatch
	}
	if !strings.EqualFold(employee.Email, resetDto.Email) {
		return nil, mismatch
	}

	tempPassword, err := secret.GenerateTempPassword(12)
	if err != nil {
		return nil, cErr.InternalServer("failed to generate temporary password")
	}
	hashed, err := secret.HashPassword(tempPassword)
	if err != nil {
		return nil, cErr.InternalServer("failed to hash temporary password")
	}
	if _, err := s.userRepo.UpdateByID(ctx, user.UserID, func(u *model.User) error {
		u.PasswordHash = hashed
		return nil
	}); err != nil {
		return nil, storeErr(err, "user not found")
	}

	_ = s.auditRepo.LogEvent(ctx, fluentdModel.AuditEvent{
		Action:     "auth.password_reset",
		ActorID:    user.UserID,
		ActorName:  user.Username,
		TargetType: "user",
		TargetID:   user.UserID,
		Outcome:    fluentdModel.OutcomeSuccess,
	})

	return &dto.ForgotPasswordResponseDto{TempPassword: tempPassword}, nil
}

// ChangePassword 已登入者修改自己的密碼
func (s *AuthService) ChangePassword(ctx context.Context, session *core.Session, changeDto *dto.ChangePasswordDto) (returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return storeErr(err, "settings not found")
	}
	if len(changeDto.NewPassword) < settings.SecuritySettings.PasswordMinLength {
		return cErr.WeakPassword(fmt.Sprintf("password must be at least %d characters", settings.SecuritySettings.PasswordMinLength))
	}
	if changeDto.NewPassword != changeDto.ConfirmPassword {
		return cErr.PasswordMismatch("new password and confirmation do not match")
	}

	user, err := s.userRepo.GetByID(ctx, session.UserID)
	if err != nil {
		return storeErr(err, "user not found")
	}
	if !secret.VerifyPassword(user.PasswordHash, changeDto.CurrentPassword) {
		return cErr.InvalidCredentials("current password is incorrect")
	}

	hashed, err := secret.HashPassword(changeDto.NewPassword)
	if err != nil {
		return cErr.InternalServer("failed to hash password")
	}
	if _, err := s.userRepo.UpdateByID(ctx, user.UserID, func(u *model.User) error {
		u.PasswordHash = hashed
		return nil
	}); err != nil {
		return storeErr(err, "user not found")
	}

	_ = s.auditRepo.LogEvent(ctx, fluentdModel.AuditEvent{
		Action:    "auth.password_change",
		ActorID:   user.UserID,
		ActorName: user.Username,
		ActorRole: string(user.Role),
		Outcome:   fluentdModel.OutcomeSuccess,
	})
	return nil
}

// Me 回傳目前登入者資訊
func (s *AuthService) Me(session *core.Session) *dto.SessionUserDto {
	return &dto.SessionUserDto{
		UserID:     session.UserID,
		Username:   session.Username,
		Role:       session.Role,
		EmployeeID: session.EmployeeID,
	}
}
