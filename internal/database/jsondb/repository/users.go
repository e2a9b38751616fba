package repository

import (
	"context"
	"strings"
	"time"

	"hrms/internal/core"
	client "hrms/internal/database/client"
	"hrms/internal/database/jsondb/model"
)

type UserRepository struct {
	collection client.Collection[*model.User]
}

func NewUserRepository(storeClient *client.StoreClient) *UserRepository {
	return &UserRepository{
		collection: client.NewCollection[*model.User](storeClient, core.CollectionUsers),
	}
}

// Create 新增帳號；使用者名稱重複回 client.ErrDuplicate
func (repository *UserRepository) Create(
	contextValue context.Context,
	user *model.User,
) (*model.User, error) {

	nowUTC := time.Now().UTC()
	user.CreatedAt = nowUTC
	user.UpdatedAt = nowUTC

	err := repository.collection.Mutate(contextValue, func(tx *client.Tx[*model.User]) error {
		for _, existing := range tx.Records {
			if strings.EqualFold(existing.Username, user.Username) {
				return client.ErrDuplicate
			}
		}
		_, appendError := tx.Append(user)
		return appendError
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// GetByID 單筆讀取；查無回 client.ErrNotFound
func (repository *UserRepository) GetByID(
	contextValue context.Context,
	userID int,
) (*model.User, error) {
	return repository.collection.Get(contextValue, userID)
}

// GetByUsername 不分大小寫比對使用者名稱
func (repository *UserRepository) GetByUsername(
	contextValue context.Context,
	username string,
) (*model.User, error) {

	users, err := repository.collection.Load(contextValue)
	if err != nil {
		return nil, err
	}
	for _, user := range users {
		if strings.EqualFold(user.Username, username) {
			return user, nil
		}
	}
	return nil, client.ErrNotFound
}

// GetByEmployeeID 取綁定指定員工的帳號
func (repository *UserRepository) GetByEmployeeID(
	contextValue context.Context,
	employeeID int,
) (*model.User, error) {

	users, err := repository.collection.Load(contextValue)
	if err != nil {
		return nil, err
	}
	for _, user := range users {
		if user.EmployeeID != nil && *user.EmployeeID == employeeID {
			return user, nil
		}
	}
	return nil, client.ErrNotFound
}

// ListAll 全量列舉
func (repository *UserRepository) ListAll(
	contextValue context.Context,
) ([]*model.User, error) {
	return repository.collection.Load(contextValue)
}

// UpdateByID 在集合鎖內套用 mutate；查無回 client.ErrNotFound
func (repository *UserRepository) UpdateByID(
	contextValue context.Context,
	userID int,
	mutate func(user *model.User) error,
) (*model.User, error) {

	return repository.collection.Update(contextValue, userID, func(user *model.User) error {
		if err := mutate(user); err != nil {
			return err
		}
		user.UpdatedAt = time.Now().UTC()
		return nil
	})
}

// DeleteByID 單筆刪除
func (repository *UserRepository) DeleteByID(
	contextValue context.Context,
	userID int,
) error {
	return repository.collection.Delete(contextValue, userID)
}
