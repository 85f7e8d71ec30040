package handler

import (
	"Hirebase/internal/pkg/response"
	"Hirebase/internal/pkg/util"
	"Hirebase/internal/service"
	log "log/slog"

	"github.com/gin-gonic/gin"
)

type MediaHandler struct {
	mediaSvc service.MediaService
}

func NewMediaHandler(mediaSvc service.MediaService) *MediaHandler {
	return &MediaHandler{mediaSvc: mediaSvc}
}

func (s *MediaHandler) UploadImage(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	reader, err := file.Open()
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	defer func() { _ = reader.Close() }()

	contentType, err := util.GetSafeContentType(reader)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	log.InfoContext(c.Request.Context(), "收到图片上传", "contentType", contentType, "size", file.Size)

	result, err := s.mediaSvc.UploadImage(c.Request.Context(), reader, file.Size, contentType, file.Filename)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *MediaHandler) UploadResume(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	reader, err := file.Open()
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	defer func() { _ = reader.Close() }()

	contentType, err := util.GetSafeContentType(reader)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	log.InfoContext(c.Request.Context(), "收到简历上传", "contentType", contentType, "size", file.Size)

	result, err := s.mediaSvc.UploadResume(c.Request.Context(), reader, file.Size, contentType, file.Filename)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *MediaHandler) Delete(c *gin.Context) {
	objectName := c.Query("objectName")
	if objectName == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	err := s.mediaSvc.Delete(c.Request.Context(), objectName)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
