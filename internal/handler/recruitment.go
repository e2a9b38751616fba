package handler

import (
	"hrms/internal/core"
	"hrms/internal/dto"
	"hrms/internal/pkg/response"
	"hrms/internal/service"
	"hrms/internal/telemetry"
	"hrms/utils/validate"

	cErr "hrms/internal/pkg/error"

	"github.com/gin-gonic/gin"
)

type RecruitmentHandler struct {
	trace              *telemetry.Trace
	recruitmentService *service.RecruitmentService
}

func NewRecruitmentHandler(trace *telemetry.Trace, recruitmentService *service.RecruitmentService) *RecruitmentHandler {
	return &RecruitmentHandler{trace: trace, recruitmentService: recruitmentService}
}

// CreateJob 刊登職缺
func (h *RecruitmentHandler) CreateJob(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	var req dto.CreateJobDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	res, err := h.recruitmentService.CreateJob(ctx, sessionFrom(c), &req)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Create(c, res)
}

// ListJobs 職缺列表，未登入只看得到開放中的職缺
func (h *RecruitmentHandler) ListJobs(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	res, err := h.recruitmentService.ListJobs(ctx, sessionFrom(c))
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, res)
}

// GetJob 取得單一職缺
func (h *RecruitmentHandler) GetJob(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id, cause, respErr := validate.ParseIntParam(c, "jobID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	res, err := h.recruitmentService.GetJob(ctx, sessionFrom(c), id)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, res)
}

// UpdateJob 更新職缺
func (h *RecruitmentHandler) UpdateJob(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id, cause, respErr := validate.ParseIntParam(c, "jobID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	var req dto.UpdateJobDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	res, err := h.recruitmentService.UpdateJob(ctx, sessionFrom(c), id, &req)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, res)
}

// DeleteJob 刪除職缺
func (h *RecruitmentHandler) DeleteJob(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id, cause, respErr := validate.ParseIntParam(c, "jobID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	if err := h.recruitmentService.DeleteJob(ctx, sessionFrom(c), id); err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, "job deleted successfully")
}

// ApplyJob 公開投遞履歷，不需登入
func (h *RecruitmentHandler) ApplyJob(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id, cause, respErr := validate.ParseIntParam(c, "jobID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	var req dto.ApplyJobDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	res, err := h.recruitmentService.ApplyJob(ctx, id, &req)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Create(c, res)
}

// ListApplicants 應徵者列表，支援 job_id / status 篩選
func (h *RecruitmentHandler) ListApplicants(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	jobID, err := validate.GetIntQuery(c, "job_id", 0)
	if err != nil {
		end(err)
		response.AbortWithError(c, cErr.BadRequestParams("invalid job_id"))
		return
	}
	status := core.ApplicantStatus(c.Query("status"))

	res, err := h.recruitmentService.ListApplicants(ctx, sessionFrom(c), jobID, status)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, res)
}

// GetApplicant 取得單一應徵者
func (h *RecruitmentHandler) GetApplicant(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id, cause, respErr := validate.ParseIntParam(c, "applicantID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	res, err := h.recruitmentService.GetApplicant(ctx, sessionFrom(c), id)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, res)
}

// UpdateApplicantStatus 推進應徵流程（篩選／面試／錄取／婉拒）
func (h *RecruitmentHandler) UpdateApplicantStatus(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id, cause, respErr := validate.ParseIntParam(c, "applicantID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	var req dto.UpdateApplicantStatusDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	res, err := h.recruitmentService.UpdateApplicantStatus(ctx, sessionFrom(c), id, &req)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, res)
}

// DeleteApplicant 刪除應徵資料
func (h *RecruitmentHandler) DeleteApplicant(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id, cause, respErr := validate.ParseIntParam(c, "applicantID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	if err := h.recruitmentService.DeleteApplicant(ctx, sessionFrom(c), id); err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, "applicant deleted successfully")
}

// Onboard 把錄取者轉成正式員工檔案
func (h *RecruitmentHandler) Onboard(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id, cause, respErr := validate.ParseIntParam(c, "applicantID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	var req dto.OnboardApplicantDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	res, err := h.recruitmentService.Onboard(ctx, sessionFrom(c), id, &req)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Create(c, res)
}
