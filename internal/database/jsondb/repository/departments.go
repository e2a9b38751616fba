package repository

import (
	"context"
	"strings"

	"hrms/internal/core"
	client "hrms/internal/database/client"
	"hrms/internal/database/jsondb/model"
)

type DepartmentRepository struct {
	collection client.Collection[*model.Department]
}

func NewDepartmentRepository(storeClient *client.StoreClient) *DepartmentRepository {
	return &DepartmentRepository{
		collection: client.NewCollection[*model.Department](storeClient, core.CollectionDepartments),
	}
}

// Create 新增部門；名稱重複回 client.ErrDuplicate
func (repository *DepartmentRepository) Create(
	contextValue context.Context,
	department *model.Department,
) (*model.Department, error) {

	err := repository.collection.Mutate(contextValue, func(tx *client.Tx[*model.Department]) error {
		for _, existing := range tx.Records {
			if strings.EqualFold(existing.Name, department.Name) {
				return client.ErrDuplicate
			}
		}
		_, appendError := tx.Append(department)
		return appendError
	})
	if err != nil {
		return nil, err
	}
	return department, nil
}

// GetByID 單筆讀取；查無回 client.ErrNotFound
func (repository *DepartmentRepository) GetByID(
	contextValue context.Context,
	departmentID int,
) (*model.Department, error) {
	return repository.collection.Get(contextValue, departmentID)
}

// ListAll 全量列舉
func (repository *DepartmentRepository) ListAll(
	contextValue context.Context,
) ([]*model.Department, error) {
	return repository.collection.Load(contextValue)
}

// UpdateByID 在集合鎖內套用 mutate
func (repository *DepartmentRepository) UpdateByID(
	contextValue context.Context,
	departmentID int,
	mutate func(department *model.Department) error,
) (*model.Department, error) {
	return repository.collection.Update(contextValue, departmentID, mutate)
}

// DeleteByID 單筆刪除
func (repository *DepartmentRepository) DeleteByID(
	contextValue context.Context,
	departmentID int,
) error {
	return repository.collection.Delete(contextValue, departmentID)
}
