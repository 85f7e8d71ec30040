package handler

import (
	"Hirebase/internal/api/dto"
	"Hirebase/internal/pkg/response"
	"Hirebase/internal/pkg/util"
	"Hirebase/internal/service"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobSvc service.JobService
}

func NewJobHandler(jobSvc service.JobService) *JobHandler {
	return &JobHandler{jobSvc: jobSvc}
}

func (s *JobHandler) CreateJob(c *gin.Context) {
	var req dto.JobCreateDTO
	err := c.ShouldBind(&req)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}
	job, err := s.jobSvc.CreateJob(c.Request.Context(), currentMemberID(c), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, job)
}

func (s *JobHandler) GetJob(c *gin.Context) {
	jobID, ok := pathID(c, "jobId")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	job, err := s.jobSvc.GetJob(c.Request.Context(), jobID, currentMemberID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, job)
}

// GetJobs 复杂筛选条件走 POST body
func (s *JobHandler) GetJobs(c *gin.Context) {
	var req dto.JobsInquiry
	err := c.ShouldBind(&req)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}
	res, err := s.jobSvc.GetJobs(c.Request.Context(), &req, currentMemberID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, pageData(res))
}

func (s *JobHandler) GetAgentJobs(c *gin.Context) {
	var req dto.JobsInquiry
	err := c.ShouldBind(&req)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}
	res, err := s.jobSvc.GetAgentJobs(c.Request.Context(), currentMemberID(c), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, pageData(res))
}

func (s *JobHandler) GetAllJobsByAdmin(c *gin.Context) {
	var req dto.JobsInquiry
	err := c.ShouldBind(&req)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}
	res, err := s.jobSvc.GetAllJobsByAdmin(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, pageData(res))
}

func (s *JobHandler) UpdateJob(c *gin.Context) {
	jobID, ok := pathID(c, "jobId")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	var req dto.JobUpdateDTO
	err := c.ShouldBind(&req)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}
	job, err := s.jobSvc.UpdateJob(c.Request.Context(), currentMemberID(c), jobID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, job)
}

func (s *JobHandler) UpdateJobByAdmin(c *gin.Context) {
	jobID, ok := pathID(c, "jobId")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	var req dto.JobUpdateDTO
	err := c.ShouldBind(&req)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}
	job, err := s.jobSvc.UpdateJobByAdmin(c.Request.Context(), jobID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, job)
}

func (s *JobHandler) GetTopJobs(c *gin.Context) {
	jobs, err := s.jobSvc.GetTopJobs(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, jobs)
}

func (s *JobHandler) RemoveJobByAdmin(c *gin.Context) {
	jobID, ok := pathID(c, "jobId")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if err := s.jobSvc.RemoveJobByAdmin(c.Request.Context(), jobID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *JobHandler) LikeTargetJob(c *gin.Context) {
	jobID, ok := pathID(c, "jobId")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	job, err := s.jobSvc.LikeTargetJob(c.Request.Context(), currentMemberID(c), jobID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, job)
}

func (s *JobHandler) GetFavoriteJobs(c *gin.Context) {
	var req dto.PageQuery
	err := c.ShouldBindQuery(&req)
	if err != nil {
		response.Error(c, err)
		return
	}
	res, err := s.jobSvc.GetFavoriteJobs(c.Request.Context(), currentMemberID(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, pageData(res))
}

func (s *JobHandler) GetVisitedJobs(c *gin.Context) {
	var req dto.PageQuery
	err := c.ShouldBindQuery(&req)
	if err != nil {
		response.Error(c, err)
		return
	}
	res, err := s.jobSvc.GetVisitedJobs(c.Request.Context(), currentMemberID(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, pageData(res))
}

func (s *JobHandler) GetSimilarJobs(c *gin.Context) {
	jobID, ok := pathID(c, "jobId")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	jobs, err := s.jobSvc.GetSimilarJobs(c.Request.Context(), jobID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, jobs)
}
