package handler

import (
	"Hirebase/internal/api/dto"
	"Hirebase/internal/pkg/response"
	"Hirebase/internal/pkg/util"
	"Hirebase/internal/service"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	applicationSvc service.ApplicationService
}

func NewApplicationHandler(applicationSvc service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applicationSvc: applicationSvc}
}

func (s *ApplicationHandler) Apply(c *gin.Context) {
	var req dto.ApplyDTO
	err := c.ShouldBind(&req)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}
	application, err := s.applicationSvc.Apply(c.Request.Context(), currentMemberID(c), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, application)
}

func (s *ApplicationHandler) Withdraw(c *gin.Context) {
	applicationID, ok := pathID(c, "applicationId")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	application, err := s.applicationSvc.Withdraw(c.Request.Context(), currentMemberID(c), applicationID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, application)
}

func (s *ApplicationHandler) UpdateStatus(c *gin.Context) {
	applicationID, ok := pathID(c, "applicationId")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	var req dto.ApplicationStatusDTO
	err := c.ShouldBind(&req)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}
	application, err := s.applicationSvc.UpdateStatus(c.Request.Context(), currentMemberID(c), applicationID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, application)
}

func (s *ApplicationHandler) GetApplication(c *gin.Context) {
	applicationID, ok := pathID(c, "applicationId")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	application, err := s.applicationSvc.GetApplication(c.Request.Context(), currentMemberID(c), applicationID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, application)
}

func (s *ApplicationHandler) GetMyApplications(c *gin.Context) {
	var req dto.ApplicationsInquiry
	err := c.ShouldBindQuery(&req)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}
	res, err := s.applicationSvc.GetMyApplications(c.Request.Context(), currentMemberID(c), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, pageData(res))
}

func (s *ApplicationHandler) GetReceivedApplications(c *gin.Context) {
	var req dto.ApplicationsInquiry
	err := c.ShouldBindQuery(&req)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}
	res, err := s.applicationSvc.GetReceivedApplications(c.Request.Context(), currentMemberID(c), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, pageData(res))
}

func (s *ApplicationHandler) GetCompanyStats(c *gin.Context) {
	stats, err := s.applicationSvc.GetCompanyStats(c.Request.Context(), currentMemberID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, stats)
}
