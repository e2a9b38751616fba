package job

import (
	"context"
	"time"

	fluentdModel "hrms/internal/database/fluentd/model"
	fluentdRepo "hrms/internal/database/fluentd/repository"
	"hrms/internal/database/jsondb/repository"
	"hrms/internal/telemetry"

	"go.uber.org/zap"
)

// MissedCheckoutJob 找出前一天打了上班卡卻沒簽退的紀錄，
// 寫 log 與稽核事件提醒 HR 補登。不自動改資料。
type MissedCheckoutJob struct {
	logger               *zap.Logger
	trace                *telemetry.Trace
	attendanceRepository *repository.AttendanceRepository
	auditRepository      *fluentdRepo.AuditRepository
}

func NewMissedCheckoutJob(
	logger *zap.Logger,
	trace *telemetry.Trace,
	attendanceRepository *repository.AttendanceRepository,
	auditRepository *fluentdRepo.AuditRepository,
) *MissedCheckoutJob {
	return &MissedCheckoutJob{
		logger:               logger,
		trace:                trace,
		attendanceRepository: attendanceRepository,
		auditRepository:      auditRepository,
	}
}

func (j *MissedCheckoutJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	ctx, _, end := j.trace.WithSpan(ctx)
	var returnedError error
	defer func() { end(returnedError) }()

	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")

	records, err := j.attendanceRepository.ListAll(ctx)
	if err != nil {
		returnedError = err
		j.logger.Error("missed-checkout sweep failed", zap.Error(err))
		return
	}

	missed := 0
	for _, record := range records {
		if record.Date != yesterday || record.CheckInTime == "" || record.CheckOutTime != "" {
			continue
		}
		missed++
		j.logger.Warn("attendance record missing checkout",
			zap.Int("attendanceId", record.AttendanceID),
			zap.Int("employeeId", record.EmployeeID),
			zap.String("date", record.Date),
		)
		_ = j.auditRepository.LogEvent(ctx, fluentdModel.AuditEvent{
			Action:     "attendance.missed_checkout",
			ActorName:  "system",
			TargetType: "attendance",
			TargetID:   record.AttendanceID,
			Outcome:    fluentdModel.OutcomeFailure,
			Detail:     "check-in without check-out on " + record.Date,
		})
	}

	j.logger.Info("missed-checkout sweep finished",
		zap.String("date", yesterday),
		zap.Int("missed", missed),
	)
}
