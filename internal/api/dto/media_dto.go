package dto

// MediaUploadResult 上传结果，url 为可公开访问地址
type MediaUploadResult struct {
	ObjectName string `json:"objectName"`
	URL        string `json:"url"`
}
