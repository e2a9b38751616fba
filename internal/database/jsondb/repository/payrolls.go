package repository

import (
	"context"

	"hrms/internal/core"
	client "hrms/internal/database/client"
	"hrms/internal/database/jsondb/model"
)

type PayrollRepository struct {
	collection client.Collection[*model.Payroll]
}

func NewPayrollRepository(storeClient *client.StoreClient) *PayrollRepository {
	return &PayrollRepository{
		collection: client.NewCollection[*model.Payroll](storeClient, core.CollectionPayrolls),
	}
}

// Mutate 在集合鎖內執行 fn。同員工同期間的唯一性檢查
// 必須與新增在同一把鎖內完成。
func (repository *PayrollRepository) Mutate(
	contextValue context.Context,
	fn func(tx *client.Tx[*model.Payroll]) error,
) error {
	return repository.collection.Mutate(contextValue, fn)
}

// GetByID 單筆讀取；查無回 client.ErrNotFound
func (repository *PayrollRepository) GetByID(
	contextValue context.Context,
	payrollID int,
) (*model.Payroll, error) {
	return repository.collection.Get(contextValue, payrollID)
}

// ListAll 全量列舉
func (repository *PayrollRepository) ListAll(
	contextValue context.Context,
) ([]*model.Payroll, error) {
	return repository.collection.Load(contextValue)
}

// ListByEmployee 依員工篩選
func (repository *PayrollRepository) ListByEmployee(
	contextValue context.Context,
	employeeID int,
) ([]*model.Payroll, error) {

	payrolls, err := repository.collection.Load(contextValue)
	if err != nil {
		return nil, err
	}
	filtered := make([]*model.Payroll, 0, len(payrolls))
	for _, payroll := range payrolls {
		if payroll.EmployeeID == employeeID {
			filtered = append(filtered, payroll)
		}
	}
	return filtered, nil
}

// UpdateByID 在集合鎖內套用 mutate
func (repository *PayrollRepository) UpdateByID(
	contextValue context.Context,
	payrollID int,
	mutate func(payroll *model.Payroll) error,
) (*model.Payroll, error) {
	return repository.collection.Update(contextValue, payrollID, mutate)
}

// DeleteByID 單筆刪除
func (repository *PayrollRepository) DeleteByID(
	contextValue context.Context,
	payrollID int,
) error {
	return repository.collection.Delete(contextValue, payrollID)
}
