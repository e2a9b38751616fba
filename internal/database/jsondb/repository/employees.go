package repository

import (
	"context"

	"hrms/internal/core"
	client "hrms/internal/database/client"
	"hrms/internal/database/jsondb/model"
)

type EmployeeRepository struct {
	collection client.Collection[*model.Employee]
}

func NewEmployeeRepository(storeClient *client.StoreClient) *EmployeeRepository {
	return &EmployeeRepository{
		collection: client.NewCollection[*model.Employee](storeClient, core.CollectionEmployees),
	}
}

// Create 新增員工並配發 ID
func (repository *EmployeeRepository) Create(
	contextValue context.Context,
	employee *model.Employee,
) (*model.Employee, error) {

	err := repository.collection.Mutate(contextValue, func(tx *client.Tx[*model.Employee]) error {
		_, appendError := tx.Append(employee)
		return appendError
	})
	if err != nil {
		return nil, err
	}
	return employee, nil
}

// GetByID 單筆讀取；查無回 client.ErrNotFound
func (repository *EmployeeRepository) GetByID(
	contextValue context.Context,
	employeeID int,
) (*model.Employee, error) {
	return repository.collection.Get(contextValue, employeeID)
}

// ListAll 全量列舉
func (repository *EmployeeRepository) ListAll(
	contextValue context.Context,
) ([]*model.Employee, error) {
	return repository.collection.Load(contextValue)
}

// ListByStatus 依狀態篩選
func (repository *EmployeeRepository) ListByStatus(
	contextValue context.Context,
	status core.Status,
) ([]*model.Employee, error) {

	employees, err := repository.collection.Load(contextValue)
	if err != nil {
		return nil, err
	}
	filtered := make([]*model.Employee, 0, len(employees))
	for _, employee := range employees {
		if employee.Status == status {
			filtered = append(filtered, employee)
		}
	}
	return filtered, nil
}

// UpdateByID 在集合鎖內套用 mutate
func (repository *EmployeeRepository) UpdateByID(
	contextValue context.Context,
	employeeID int,
	mutate func(employee *model.Employee) error,
) (*model.Employee, error) {
	return repository.collection.Update(contextValue, employeeID, mutate)
}

// DeleteByID 單筆刪除
func (repository *EmployeeRepository) DeleteByID(
	contextValue context.Context,
	employeeID int,
) error {
	return repository.collection.Delete(contextValue, employeeID)
}
