package handler

import (
	"Hirebase/internal/api/dto"
	"Hirebase/internal/model"
	"Hirebase/internal/pkg/response"
	"Hirebase/internal/pkg/util"
	"Hirebase/internal/repository"
	"Hirebase/internal/service"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	notificationSvc service.NotificationService
}

func NewNotificationHandler(notificationSvc service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationSvc: notificationSvc}
}

func (s *NotificationHandler) GetNotifications(c *gin.Context) {
	var req dto.NotificationsInquiry
	err := c.ShouldBindQuery(&req)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}
	page := repository.PageRequest{
		Page:      req.Page,
		Limit:     req.Limit,
		Sort:      req.Sort,
		Direction: req.Direction,
	}
	res, err := s.notificationSvc.GetNotifications(c.Request.Context(), currentMemberID(c),
		model.NotificationStatus(req.NotificationStatus), page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, pageData(res))
}

func (s *NotificationHandler) MarkRead(c *gin.Context) {
	notificationID, ok := pathID(c, "notificationId")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	err := s.notificationSvc.MarkRead(c.Request.Context(), currentMemberID(c), notificationID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *NotificationHandler) MarkAllRead(c *gin.Context) {
	count, err := s.notificationSvc.MarkAllRead(c.Request.Context(), currentMemberID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"updated": count})
}

func (s *NotificationHandler) UnreadCount(c *gin.Context) {
	count, err := s.notificationSvc.UnreadCount(c.Request.Context(), currentMemberID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"count": count})
}
