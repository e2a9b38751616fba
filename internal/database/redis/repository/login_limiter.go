package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hrms/internal/core"
	client "hrms/internal/database/client"
	"hrms/internal/telemetry"

	"github.com/redis/go-redis/v9"
)

type LoginLimiterRepository struct {
	trace  *telemetry.Trace
	client *redis.Client
}

func NewLoginLimiterRepository(trace *telemetry.Trace, redisClient *client.RedisClient) *LoginLimiterRepository {
	return &LoginLimiterRepository{trace: trace, client: redisClient.Client()}
}

var ErrRateLimitExceeded = errors.New("rate limit exceeded")

// Consume 消耗一次登入失敗配額；自動處理新週期初始化與剩餘 TTL。
// Redis 未設定時一律放行。
// 回傳：remaining（剩餘次數）、ttlSec（剩餘秒數）、err（若超限為 ErrRateLimitExceeded）
func (repository *LoginLimiterRepository) Consume(
	contextValue context.Context,
	username string,
	windowSeconds int64,
	limitCount int,
) (remainingCount int, timeToLiveSeconds int64, returnedError error) {

	if repository.client == nil {
		return limitCount, 0, nil
	}

	contextValue, span, endSpan := repository.trace.WithSpan(contextValue)
	defer func() {
		endSpan(returnedError)
	}()

	traceMetadata := core.TraceLoginLimitMeta{
		Username:  username,
		Limit:     limitCount,
		WindowSec: windowSeconds,
		Op:        "consume",
	}
	repository.trace.ApplyTraceAttributes(span, traceMetadata)

	redisKey := repository.buildKey(username)
	expirationDuration := time.Duration(windowSeconds) * time.Second

	// 嘗試初始化：SETNX key value EX expiration
	wasSet, setError := repository.client.SetNX(
		contextValue,
		redisKey,
		limitCount-1, // 本次消耗一次，所以初始值 = 總額-1
		expirationDuration,
	).Result()
	if setError != nil {
		returnedError = setError
		return 0, 0, returnedError
	}
	if wasSet {
		// 初始化成功，代表這是本週期第一次失敗
		remainingCount = limitCount - 1
		if remainingCount < 0 {
			remainingCount = 0
			returnedError = ErrRateLimitExceeded
		}
		timeToLiveSeconds = windowSeconds
		traceMetadata.Remaining, traceMetadata.TTL = remainingCount, timeToLiveSeconds
		repository.trace.ApplyTraceAttributes(span, traceMetadata)
		return remainingCount, timeToLiveSeconds, returnedError
	}

	// Key 已存在 → 執行 DECR 扣一次
	newValue, decrError := repository.client.Decr(contextValue, redisKey).Result()
	if decrError != nil {
		returnedError = decrError
		return 0, 0, returnedError
	}

	// 查 TTL
	ttlDuration, _ := repository.client.TTL(contextValue, redisKey).Result()
	if ttlDuration > 0 {
		timeToLiveSeconds = int64(ttlDuration.Seconds())
	}

	if newValue < 0 {
		remainingCount = 0
		traceMetadata.Remaining, traceMetadata.TTL = remainingCount, timeToLiveSeconds
		repository.trace.ApplyTraceAttributes(span, traceMetadata)
		returnedError = ErrRateLimitExceeded
		return remainingCount, timeToLiveSeconds, returnedError
	}

	remainingCount = int(newValue)
	traceMetadata.Remaining, traceMetadata.TTL = remainingCount, timeToLiveSeconds
	repository.trace.ApplyTraceAttributes(span, traceMetadata)
	return remainingCount, timeToLiveSeconds, nil
}

// Exceeded 查詢是否已超限（不消耗配額）。Redis 未設定時一律放行。
func (repository *LoginLimiterRepository) Exceeded(
	contextValue context.Context,
	username string,
) (exceeded bool, timeToLiveSeconds int64, returnedError error) {

	if repository.client == nil {
		return false, 0, nil
	}

	contextValue, span, endSpan := repository.trace.WithSpan(contextValue)
	defer func() { endSpan(returnedError) }()

	repository.trace.ApplyTraceAttributes(span, core.TraceLoginLimitMeta{
		Username: username,
		Op:       "exceeded",
	})

	redisKey := repository.buildKey(username)

	// 用 pipeline 併發 GET + TTL 減少往返
	pipeline := repository.client.Pipeline()
	getCommand := pipeline.Get(contextValue, redisKey)
	ttlCommand := pipeline.TTL(contextValue, redisKey)
	if _, execError := pipeline.Exec(contextValue); execError != nil && execError != redis.Nil {
		returnedError = execError
		return false, 0, returnedError
	}

	value, getError := getCommand.Int()
	if getError == redis.Nil {
		return false, 0, nil
	}
	if getError != nil {
		returnedError = getError
		return false, 0, returnedError
	}

	ttlDuration := ttlCommand.Val()
	if ttlDuration > 0 {
		timeToLiveSeconds = int64(ttlDuration.Seconds())
	}
	return value < 0, timeToLiveSeconds, nil
}

// Reset 登入成功後清除失敗計數
func (repository *LoginLimiterRepository) Reset(
	contextValue context.Context,
	username string,
) (returnedError error) {

	if repository.client == nil {
		return nil
	}

	contextValue, span, endSpan := repository.trace.WithSpan(contextValue)
	defer func() { endSpan(returnedError) }()

	traceMetadata := core.TraceLoginLimitMeta{
		Username: username,
		Op:       "reset",
	}
	repository.trace.ApplyTraceAttributes(span, traceMetadata)

	returnedError = repository.client.Del(contextValue, repository.buildKey(username)).Err()
	return returnedError
}

// buildKey 建構登入限流用的 Redis key
func (r *LoginLimiterRepository) buildKey(username string) string {
	return fmt.Sprintf("%s:%s:%s", core.RedisKeyServerName, core.RedisKeyLoginAttempt, username)
}
