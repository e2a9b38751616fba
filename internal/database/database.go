package database

import (
	client "hrms/internal/database/client"
	fluentdRepo "hrms/internal/database/fluentd/repository"
	storeRepo "hrms/internal/database/jsondb/repository"
	redisRepo "hrms/internal/database/redis/repository"

	"github.com/google/wire"
)

// ProviderSet 定義所有 DB Client 的依賴
var ProviderSet = wire.NewSet(
	client.NewStoreClient,
	client.NewRedisClient,
	client.NewFluentdClient,
	storeRepo.ProviderSet,
	redisRepo.ProviderSet,
	fluentdRepo.ProviderSet,
)
