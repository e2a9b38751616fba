package handler

import (
	"context"
	"errors"

	"hrms/internal/core"
	"hrms/internal/database/client"
	"hrms/internal/database/jsondb/model"
	"hrms/internal/database/jsondb/repository"
	"hrms/internal/pkg/secret"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type SeedAdminHandler struct {
	logger         *zap.Logger
	userRepository *repository.UserRepository
}

func NewSeedAdminHandler(logger *zap.Logger, userRepository *repository.UserRepository) *SeedAdminHandler {
	return &SeedAdminHandler{
		logger:         logger,
		userRepository: userRepository,
	}
}

// Seed 建立初始 Admin 帳號。帳號已存在視為完成，不覆蓋既有密碼。
func (handler *SeedAdminHandler) Seed(cmd *cobra.Command, username, password string) error {
	ctx := context.Background()

	if password == "" {
		generated, err := secret.GenerateTempPassword(12)
		if err != nil {
			return err
		}
		password = generated
		cmd.Printf("generated admin password: %s\n", password)
	}

	hash, err := secret.HashPassword(password)
	if err != nil {
		return err
	}

	_, err = handler.userRepository.Create(ctx, &model.User{
		Username:     username,
		PasswordHash: hash,
		Role:         core.RoleAdmin,
		Status:       core.StatusActive,
	})
	if errors.Is(err, client.ErrDuplicate) {
		cmd.Printf("user %q already exists, nothing to do\n", username)
		return nil
	}
	if err != nil {
		return err
	}

	handler.logger.Info("admin account seeded", zap.String("username", username))
	cmd.Printf("admin account %q created\n", username)
	return nil
}
