package router

import (
	"hrms/internal/handler"
	"hrms/internal/middleware"

	"github.com/gin-gonic/gin"
)

type RecruitmentRouter struct {
	recruitmentHandler *handler.RecruitmentHandler
}

func NewRecruitmentRouter(recruitmentHandler *handler.RecruitmentHandler) *RecruitmentRouter {
	return &RecruitmentRouter{recruitmentHandler: recruitmentHandler}
}

func (rr *RecruitmentRouter) RegisterRoutes(r *gin.RouterGroup, auth *middleware.Auth) {
	jobs := r.Group("/jobs")
	{
		// 公開瀏覽與投遞；有帶 token 時解出身份讓管理者看到關閉職缺
		jobs.GET("", auth.OptionalHandler(), rr.recruitmentHandler.ListJobs)
		jobs.GET("/:jobID", auth.OptionalHandler(), rr.recruitmentHandler.GetJob)
		jobs.POST("/:jobID/apply", rr.recruitmentHandler.ApplyJob)

		jobs.POST("", auth.Handler(), rr.recruitmentHandler.CreateJob)
		jobs.PUT("/:jobID", auth.Handler(), rr.recruitmentHandler.UpdateJob)
		jobs.DELETE("/:jobID", auth.Handler(), rr.recruitmentHandler.DeleteJob)
	}

	applicants := r.Group("/applicants", auth.Handler())
	{
		applicants.GET("", rr.recruitmentHandler.ListApplicants)
		applicants.GET("/:applicantID", rr.recruitmentHandler.GetApplicant)
		applicants.PATCH("/:applicantID/status", rr.recruitmentHandler.UpdateApplicantStatus)
		applicants.DELETE("/:applicantID", rr.recruitmentHandler.DeleteApplicant)
		applicants.POST("/:applicantID/onboard", rr.recruitmentHandler.Onboard)
	}
}
