package service

import (
	"context"

	"hrms/internal/core"
	fluentdModel "hrms/internal/database/fluentd/model"
	fluentdRepo "hrms/internal/database/fluentd/repository"
	"hrms/internal/database/jsondb/model"
	storeRepo "hrms/internal/database/jsondb/repository"
	"hrms/internal/dto"
	"hrms/internal/pkg/guard"
	"hrms/internal/telemetry"
)

type SettingsService struct {
	trace        *telemetry.Trace
	settingsRepo *storeRepo.SettingsRepository
	auditRepo    *fluentdRepo.AuditRepository
}

func NewSettingsService(
	trace *telemetry.Trace,
	settingsRepo *storeRepo.SettingsRepository,
	auditRepo *fluentdRepo.AuditRepository,
) *SettingsService {
	return &SettingsService{trace: trace, settingsRepo: settingsRepo, auditRepo: auditRepo}
}

// Get 讀取系統設定（僅 Admin）
func (s *SettingsService) Get(ctx context.Context, session *core.Session) (_ *model.Settings, returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	if err := guard.Authorize(session, guard.Roles(core.RoleAdmin)); err != nil {
		return nil, err
	}
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, storeErr(err, "settings not found")
	}
	return settings, nil
}

// Update 區塊式部分更新（僅 Admin）；未帶欄位保留原值
func (s *SettingsService) Update(ctx context.Context, session *core.Session, updateDto *dto.UpdateSettingsDto) (_ *model.Settings, returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	if err := guard.Authorize(session, guard.Roles(core.RoleAdmin)); err != nil {
		return nil, err
	}

	updated, err := s.settingsRepo.Update(ctx, func(settings *model.Settings) error {
		applySettingsUpdate(settings, updateDto)
		return nil
	})
	if err != nil {
		return nil, storeErr(err, "settings not found")
	}

	_ = s.auditRepo.LogEvent(ctx, fluentdModel.AuditEvent{
		Action:    "settings.update",
		ActorID:   session.UserID,
		ActorName: session.Username,
		ActorRole: string(session.Role),
		Outcome:   fluentdModel.OutcomeSuccess,
	})
	return updated, nil
}

func applySettingsUpdate(settings *model.Settings, updateDto *dto.UpdateSettingsDto) {
	if block := updateDto.CompanyInfo; block != nil {
		if block.CompanyName != nil {
			settings.CompanyInfo.CompanyName = *block.CompanyName
		}
		if block.CompanyEmail != nil {
			settings.CompanyInfo.CompanyEmail = *block.CompanyEmail
		}
		if block.CompanyPhone != nil {
			settings.CompanyInfo.CompanyPhone = *block.CompanyPhone
		}
		if block.CompanyAddress != nil {
			settings.CompanyInfo.CompanyAddress = *block.CompanyAddress
		}
	}
	if block := updateDto.WorkingHours; block != nil {
		if block.StartTime != nil {
			settings.WorkingHours.StartTime = *block.StartTime
		}
		if block.EndTime != nil {
			settings.WorkingHours.EndTime = *block.EndTime
		}
		if block.LunchBreakDuration != nil {
			settings.WorkingHours.LunchBreakDuration = *block.LunchBreakDuration
		}
	}
	if block := updateDto.LeavePolicies; block != nil {
		if block.AnnualLeaveQuota != nil {
			settings.LeavePolicies.AnnualLeaveQuota = *block.AnnualLeaveQuota
		}
		if block.SickLeaveQuota != nil {
			settings.LeavePolicies.SickLeaveQuota = *block.SickLeaveQuota
		}
		if block.CasualLeaveQuota != nil {
			settings.LeavePolicies.CasualLeaveQuota = *block.CasualLeaveQuota
		}
		if block.CarryForwardAllowed != nil {
			settings.LeavePolicies.CarryForwardAllowed = *block.CarryForwardAllowed
		}
		if block.MaxCarryForwardDays != nil {
			settings.LeavePolicies.MaxCarryForwardDays = *block.MaxCarryForwardDays
		}
	}
	if block := updateDto.PayrollSettings; block != nil {
		if block.Currency != nil {
			settings.PayrollSettings.Currency = *block.Currency
		}
		if block.PayDay != nil {
			settings.PayrollSettings.PayDay = *block.PayDay
		}
		if block.TaxRate != nil {
			settings.PayrollSettings.TaxRate = *block.TaxRate
		}
		if block.ProvidentFundRate != nil {
			settings.PayrollSettings.ProvidentFundRate = *block.ProvidentFundRate
		}
	}
	if block := updateDto.SecuritySettings; block != nil {
		if block.SessionTimeoutMinutes != nil {
			settings.SecuritySettings.SessionTimeoutMinutes = *block.SessionTimeoutMinutes
		}
		if block.PasswordMinLength != nil {
			settings.SecuritySettings.PasswordMinLength = *block.PasswordMinLength
		}
		if block.MaxLoginAttempts != nil {
			settings.SecuritySettings.MaxLoginAttempts = *block.MaxLoginAttempts
		}
		if block.LockoutWindowMinutes != nil {
			settings.SecuritySettings.LockoutWindowMinutes = *block.LockoutWindowMinutes
		}
	}
}
