package service

import (
	"Hirebase/internal/api/dto"
	"Hirebase/internal/pkg/consts"
	"Hirebase/internal/pkg/minio"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

type MediaService interface {
	// UploadImage 头像与企业 Logo，仅接受图片类型
	UploadImage(ctx context.Context, reader io.Reader, size int64, contentType, filename string) (*dto.MediaUploadResult, error)
	// UploadResume 简历，仅接受 PDF
	UploadResume(ctx context.Context, reader io.Reader, size int64, contentType, filename string) (*dto.MediaUploadResult, error)
	Delete(ctx context.Context, objectName string) error
}

type MediaServiceImpl struct{}

func NewMediaService() MediaService {
	return &MediaServiceImpl{}
}

func (s *MediaServiceImpl) UploadImage(ctx context.Context, reader io.Reader, size int64, contentType, filename string) (*dto.MediaUploadResult, error) {
	if !strings.HasPrefix(contentType, consts.MimePrefixImage) {
		return nil, ErrFileNotSupported
	}
	return s.upload(ctx, "images", reader, size, contentType, filename)
}

func (s *MediaServiceImpl) UploadResume(ctx context.Context, reader io.Reader, size int64, contentType, filename string) (*dto.MediaUploadResult, error) {
	if contentType != consts.MimePDF {
		return nil, ErrFileNotSupported
	}
	return s.upload(ctx, "resumes", reader, size, contentType, filename)
}

func (s *MediaServiceImpl) Delete(ctx context.Context, objectName string) error {
	return minio.DeleteFile(ctx, objectName)
}

func (s *MediaServiceImpl) upload(ctx context.Context, prefix string, reader io.Reader, size int64, contentType, filename string) (*dto.MediaUploadResult, error) {
	objectName := fmt.Sprintf("%s/%s/%s%s",
		prefix,
		time.Now().Format("2006-01"),
		uuid.NewString(),
		filepath.Ext(filename),
	)

	key, err := minio.UploadFile(ctx, objectName, reader, size, contentType)
	if err != nil {
		return nil, err
	}
	return &dto.MediaUploadResult{
		ObjectName: key,
		URL:        minio.GetPublicURL(key),
	}, nil
}
