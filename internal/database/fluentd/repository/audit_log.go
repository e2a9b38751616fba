package repository

import (
	"context"
	"encoding/json"
	"time"

	"hrms/config"
	"hrms/internal/core"
	"hrms/internal/database/client"
	"hrms/internal/database/fluentd/model"
)

// AuditRepository 負責發送審計事件到 Fluentd
type AuditRepository struct {
	fluentdClient client.Client
	version       string
}

func NewAuditRepository(config *config.Configuration, client client.Client) *AuditRepository {
	version := "1.0.0"
	if config.App.Version != "" {
		version = config.App.Version
	}
	return &AuditRepository{fluentdClient: client, version: version}
}

func (repository *AuditRepository) LogEvent(ctx context.Context, event model.AuditEvent) error {
	if event.LoggedAt == "" {
		event.LoggedAt = time.Now().UTC().Format("2006-01-02 15:04:05.999999 UTC")
	}
	if event.Version == "" {
		event.Version = repository.version
	}
	b, _ := json.Marshal(event)
	var fluentdMessage map[string]any
	_ = json.Unmarshal(b, &fluentdMessage)
	err := repository.fluentdClient.Post(ctx, string(core.FluentdAudit), fluentdMessage)
	return err
}
