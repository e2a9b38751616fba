package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"hrms/config"
	"hrms/internal/core"
	"hrms/internal/telemetry"
	"hrms/utils/path"

	"go.uber.org/zap"
)

// ErrLockTimeout 在 lockTimeout 內取不到集合鎖
var ErrLockTimeout = errors.New("collection lock timeout")

// ErrNotFound 集合內查無指定 ID
var ErrNotFound = errors.New("record not found")

// ErrDuplicate 違反集合內唯一性（如使用者名稱、薪資期間）
var ErrDuplicate = errors.New("duplicate record")

const (
	defaultLockTimeout = 5 * time.Second
	// idsCollection ID sidecar（_ids.json），記錄各集合配發過的最大 ID
	idsCollection core.Collection = "_ids"
)

// StoreClient 以平面 JSON 檔為後端的文件儲存。
// 每個集合一把鎖，寫入採 temp-then-rename，ID 由 _ids.json 單調遞增、永不回收。
type StoreClient struct {
	logger      *zap.Logger
	metric      *telemetry.Metric
	dir         string
	lockTimeout time.Duration

	mu     sync.Mutex
	locks  map[core.Collection]chan struct{}
	idLock chan struct{}
}

func NewStoreClient(logger *zap.Logger, conf *config.Configuration, metric *telemetry.Metric) (*StoreClient, func(), error) {
	dir := conf.Store.Dir
	if dir == "" {
		dir = "data"
	}
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(path.RootPath(), dir)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Error("failed to create store dir", zap.String("dir", dir), zap.Error(err))
		return nil, nil, err
	}

	lockTimeout := defaultLockTimeout
	if conf.Store.LockTimeoutMs > 0 {
		lockTimeout = time.Duration(conf.Store.LockTimeoutMs) * time.Millisecond
	}

	store := &StoreClient{
		logger:      logger,
		metric:      metric,
		dir:         dir,
		lockTimeout: lockTimeout,
		locks:       make(map[core.Collection]chan struct{}),
		idLock:      make(chan struct{}, 1),
	}
	logger.Info("document store ready", zap.String("dir", dir), zap.Duration("lockTimeout", lockTimeout))

	cleanup := func() {
		logger.Info("closing the document store")
	}
	return store, cleanup, nil
}

// Dir 資料目錄（health check 用）
func (s *StoreClient) Dir() string {
	return s.dir
}

// Probe 確認資料目錄仍可寫（readiness 用）
func (s *StoreClient) Probe(ctx context.Context) error {
	probe := filepath.Join(s.dir, ".probe")
	if err := os.WriteFile(probe, []byte("ok"), 0o644); err != nil {
		return err
	}
	return os.Remove(probe)
}

func (s *StoreClient) lockFor(name core.Collection) chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	ch, ok := s.locks[name]
	if !ok {
		ch = make(chan struct{}, 1)
		s.locks[name] = ch
	}
	return ch
}

// Acquire 取得集合鎖；超過 lockTimeout 回 ErrLockTimeout
func (s *StoreClient) Acquire(ctx context.Context, name core.Collection) (release func(), err error) {
	ch := s.lockFor(name)
	timer := time.NewTimer(s.lockTimeout)
	defer timer.Stop()

	select {
	case ch <- struct{}{}:
		return func() { <-ch }, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-timer.C:
		if s.metric != nil && s.metric.StoreLockTimeouts != nil {
			s.metric.StoreLockTimeouts.WithLabelValues(string(name)).Inc()
		}
		s.logger.Warn("collection lock timeout", zap.String("collection", string(name)))
		return nil, ErrLockTimeout
	}
}

func (s *StoreClient) filePath(name core.Collection) string {
	return filepath.Join(s.dir, string(name)+".json")
}

// Read 讀取集合檔；檔案不存在時不動 v（視為空集合）
func (s *StoreClient) Read(name core.Collection, v any) error {
	raw, err := os.ReadFile(s.filePath(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read %s: %w", name, err)
	}
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

// Write 寫入集合檔：先寫 .tmp 再 rename，讀取端永遠看到完整文件
func (s *StoreClient) Write(name core.Collection, v any) error {
	start := time.Now()
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	target := s.filePath(name)
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := os.Rename(tmp, target); err != nil {
		return fmt.Errorf("rename %s: %w", name, err)
	}
	if s.metric != nil && s.metric.StoreWriteDuration != nil {
		s.metric.StoreWriteDuration.WithLabelValues(string(name)).Observe(time.Since(start).Seconds())
	}
	return nil
}

// NextID 配發下一個 ID：取 sidecar 記錄與現存最大值中較大者 +1。
// 刪除記錄後 ID 不會回收重配。
func (s *StoreClient) NextID(ctx context.Context, name core.Collection, currentMax int) (int, error) {
	timer := time.NewTimer(s.lockTimeout)
	defer timer.Stop()
	select {
	case s.idLock <- struct{}{}:
	case <-ctx.Done():
		return 0, ctx.Err()
	case <-timer.C:
		return 0, ErrLockTimeout
	}
	defer func() { <-s.idLock }()

	ids := map[string]int{}
	if err := s.Read(idsCollection, &ids); err != nil {
		return 0, err
	}
	next := ids[string(name)]
	if currentMax > next {
		next = currentMax
	}
	next++
	ids[string(name)] = next
	if err := s.Write(idsCollection, ids); err != nil {
		return 0, err
	}
	return next, nil
}
