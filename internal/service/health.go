package service

import (
	"context"
	"sync/atomic"

	client "hrms/internal/database/client"
)

type HealthService struct {
	live  atomic.Bool
	ready atomic.Bool
	store *client.StoreClient
}

func NewHealthService(store *client.StoreClient) *HealthService {
	s := &HealthService{store: store}
	s.live.Store(true)
	s.ready.Store(false) // 啟動完成後再打開
	return s
}

func (s *HealthService) SetReady(v bool) {
	s.ready.Store(v)
}

func (s *HealthService) IsLive() bool {
	return s.live.Load()
}

// IsReady 啟動完成且資料目錄可讀寫
func (s *HealthService) IsReady(ctx context.Context) bool {
	if !s.ready.Load() {
		return false
	}
	return s.store.Probe(ctx) == nil
}
