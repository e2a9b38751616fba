package repository

import (
	"context"

	"hrms/internal/core"
	client "hrms/internal/database/client"
	"hrms/internal/database/jsondb/model"
)

// SettingsRepository settings.json 是單一文件而非集合，
// 讀取時以預設值為底、檔案內容覆寫，缺漏欄位自動補預設。
type SettingsRepository struct {
	store *client.StoreClient
}

func NewSettingsRepository(storeClient *client.StoreClient) *SettingsRepository {
	return &SettingsRepository{store: storeClient}
}

// Get 讀取設定；檔案不存在時回傳預設值
func (repository *SettingsRepository) Get(
	contextValue context.Context,
) (*model.Settings, error) {

	settings := model.DefaultSettings()
	if err := repository.store.Read(core.CollectionSettings, settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// Update 在鎖內讀-改-寫整份設定
func (repository *SettingsRepository) Update(
	contextValue context.Context,
	mutate func(settings *model.Settings) error,
) (*model.Settings, error) {

	release, err := repository.store.Acquire(contextValue, core.CollectionSettings)
	if err != nil {
		return nil, err
	}
	defer release()

	settings := model.DefaultSettings()
	if err := repository.store.Read(core.CollectionSettings, settings); err != nil {
		return nil, err
	}
	if err := mutate(settings); err != nil {
		return nil, err
	}
	if err := repository.store.Write(core.CollectionSettings, settings); err != nil {
		return nil, err
	}
	return settings, nil
}
