package repository

import (
	"context"

	"hrms/internal/core"
	client "hrms/internal/database/client"
	"hrms/internal/database/jsondb/model"
)

type AttendanceRepository struct {
	collection client.Collection[*model.Attendance]
}

func NewAttendanceRepository(storeClient *client.StoreClient) *AttendanceRepository {
	return &AttendanceRepository{
		collection: client.NewCollection[*model.Attendance](storeClient, core.CollectionAttendance),
	}
}

// Mutate 在集合鎖內執行 fn。打卡的「當日是否已有記錄」檢查
// 必須與寫入在同一把鎖內完成，規則由 service 層在 fn 內實作。
func (repository *AttendanceRepository) Mutate(
	contextValue context.Context,
	fn func(tx *client.Tx[*model.Attendance]) error,
) error {
	return repository.collection.Mutate(contextValue, fn)
}

// GetByID 單筆讀取；查無回 client.ErrNotFound
func (repository *AttendanceRepository) GetByID(
	contextValue context.Context,
	attendanceID int,
) (*model.Attendance, error) {
	return repository.collection.Get(contextValue, attendanceID)
}

// ListAll 全量列舉
func (repository *AttendanceRepository) ListAll(
	contextValue context.Context,
) ([]*model.Attendance, error) {
	return repository.collection.Load(contextValue)
}

// ListByEmployee 依員工篩選
func (repository *AttendanceRepository) ListByEmployee(
	contextValue context.Context,
	employeeID int,
) ([]*model.Attendance, error) {

	records, err := repository.collection.Load(contextValue)
	if err != nil {
		return nil, err
	}
	filtered := make([]*model.Attendance, 0, len(records))
	for _, record := range records {
		if record.EmployeeID == employeeID {
			filtered = append(filtered, record)
		}
	}
	return filtered, nil
}

// UpdateByID 在集合鎖內套用 mutate
func (repository *AttendanceRepository) UpdateByID(
	contextValue context.Context,
	attendanceID int,
	mutate func(record *model.Attendance) error,
) (*model.Attendance, error) {
	return repository.collection.Update(contextValue, attendanceID, mutate)
}

// DeleteByID 單筆刪除
func (repository *AttendanceRepository) DeleteByID(
	contextValue context.Context,
	attendanceID int,
) error {
	return repository.collection.Delete(contextValue, attendanceID)
}
