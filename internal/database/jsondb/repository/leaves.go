package repository

import (
	"context"

	"hrms/internal/core"
	client "hrms/internal/database/client"
	"hrms/internal/database/jsondb/model"
)

type LeaveRepository struct {
	collection client.Collection[*model.Leave]
}

func NewLeaveRepository(storeClient *client.StoreClient) *LeaveRepository {
	return &LeaveRepository{
		collection: client.NewCollection[*model.Leave](storeClient, core.CollectionLeaves),
	}
}

// Mutate 在集合鎖內執行 fn。額度檢查必須與新增申請在同一把鎖內，
// 否則兩筆並發申請可能同時通過額度驗證。
func (repository *LeaveRepository) Mutate(
	contextValue context.Context,
	fn func(tx *client.Tx[*model.Leave]) error,
) error {
	return repository.collection.Mutate(contextValue, fn)
}

// GetByID 單筆讀取；查無回 client.ErrNotFound
func (repository *LeaveRepository) GetByID(
	contextValue context.Context,
	leaveID int,
) (*model.Leave, error) {
	return repository.collection.Get(contextValue, leaveID)
}

// ListAll 全量列舉
func (repository *LeaveRepository) ListAll(
	contextValue context.Context,
) ([]*model.Leave, error) {
	return repository.collection.Load(contextValue)
}

// ListByEmployee 依員工篩選
func (repository *LeaveRepository) ListByEmployee(
	contextValue context.Context,
	employeeID int,
) ([]*model.Leave, error) {

	leaves, err := repository.collection.Load(contextValue)
	if err != nil {
		return nil, err
	}
	filtered := make([]*model.Leave, 0, len(leaves))
	for _, leave := range leaves {
		if leave.EmployeeID == employeeID {
			filtered = append(filtered, leave)
		}
	}
	return filtered, nil
}

// UpdateByID 在集合鎖內套用 mutate
func (repository *LeaveRepository) UpdateByID(
	contextValue context.Context,
	leaveID int,
	mutate func(leave *model.Leave) error,
) (*model.Leave, error) {
	return repository.collection.Update(contextValue, leaveID, mutate)
}

// DeleteByID 單筆刪除
func (repository *LeaveRepository) DeleteByID(
	contextValue context.Context,
	leaveID int,
) error {
	return repository.collection.Delete(contextValue, leaveID)
}
