package repository

import (
	"context"

	"hrms/internal/core"
	client "hrms/internal/database/client"
	"hrms/internal/database/jsondb/model"
)

type JobRepository struct {
	collection client.Collection[*model.Job]
}

func NewJobRepository(storeClient *client.StoreClient) *JobRepository {
	return &JobRepository{
		collection: client.NewCollection[*model.Job](storeClient, core.CollectionJobs),
	}
}

// Create 新增職缺並配發 ID
func (repository *JobRepository) Create(
	contextValue context.Context,
	job *model.Job,
) (*model.Job, error) {

	err := repository.collection.Mutate(contextValue, func(tx *client.Tx[*model.Job]) error {
		_, appendError := tx.Append(job)
		return appendError
	})
	if err != nil {
		return nil, err
	}
	return job, nil
}

// GetByID 單筆讀取；查無回 client.ErrNotFound
func (repository *JobRepository) GetByID(
	contextValue context.Context,
	jobID int,
) (*model.Job, error) {
	return repository.collection.Get(contextValue, jobID)
}

// ListAll 全量列舉
func (repository *JobRepository) ListAll(
	contextValue context.Context,
) ([]*model.Job, error) {
	return repository.collection.Load(contextValue)
}

// ListByStatus 依職缺狀態篩選
func (repository *JobRepository) ListByStatus(
	contextValue context.Context,
	status core.JobStatus,
) ([]*model.Job, error) {

	jobs, err := repository.collection.Load(contextValue)
	if err != nil {
		return nil, err
	}
	filtered := make([]*model.Job, 0, len(jobs))
	for _, job := range jobs {
		if job.Status == status {
			filtered = append(filtered, job)
		}
	}
	return filtered, nil
}

// UpdateByID 在集合鎖內套用 mutate
func (repository *JobRepository) UpdateByID(
	contextValue context.Context,
	jobID int,
	mutate func(job *model.Job) error,
) (*model.Job, error) {
	return repository.collection.Update(contextValue, jobID, mutate)
}

// DeleteByID 單筆刪除
func (repository *JobRepository) DeleteByID(
	contextValue context.Context,
	jobID int,
) error {
	return repository.collection.Delete(contextValue, jobID)
}
