package repository

import (
	"context"

	"hrms/internal/core"
	client "hrms/internal/database/client"
	"hrms/internal/database/jsondb/model"
)

type ApplicantRepository struct {
	collection client.Collection[*model.Applicant]
}

func NewApplicantRepository(storeClient *client.StoreClient) *ApplicantRepository {
	return &ApplicantRepository{
		collection: client.NewCollection[*model.Applicant](storeClient, core.CollectionApplicants),
	}
}

// Create 新增應徵者並配發 ID
func (repository *ApplicantRepository) Create(
	contextValue context.Context,
	applicant *model.Applicant,
) (*model.Applicant, error) {

	err := repository.collection.Mutate(contextValue, func(tx *client.Tx[*model.Applicant]) error {
		_, appendError := tx.Append(applicant)
		return appendError
	})
	if err != nil {
		return nil, err
	}
	return applicant, nil
}

// GetByID 單筆讀取；查無回 client.ErrNotFound
func (repository *ApplicantRepository) GetByID(
	contextValue context.Context,
	applicantID int,
) (*model.Applicant, error) {
	return repository.collection.Get(contextValue, applicantID)
}

// ListAll 全量列舉
func (repository *ApplicantRepository) ListAll(
	contextValue context.Context,
) ([]*model.Applicant, error) {
	return repository.collection.Load(contextValue)
}

// ListByJob 依職缺篩選
func (repository *ApplicantRepository) ListByJob(
	contextValue context.Context,
	jobID int,
) ([]*model.Applicant, error) {

	applicants, err := repository.collection.Load(contextValue)
	if err != nil {
		return nil, err
	}
	filtered := make([]*model.Applicant, 0, len(applicants))
	for _, applicant := range applicants {
		if applicant.JobID == jobID {
			filtered = append(filtered, applicant)
		}
	}
	return filtered, nil
}

// UpdateByID 在集合鎖內套用 mutate
func (repository *ApplicantRepository) UpdateByID(
	contextValue context.Context,
	applicantID int,
	mutate func(applicant *model.Applicant) error,
) (*model.Applicant, error) {
	return repository.collection.Update(contextValue, applicantID, mutate)
}

// DeleteByID 單筆刪除
func (repository *ApplicantRepository) DeleteByID(
	contextValue context.Context,
	applicantID int,
) error {
	return repository.collection.Delete(contextValue, applicantID)
}
