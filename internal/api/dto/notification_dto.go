package dto

// NotificationsInquiry 通知列表查询入参
type NotificationsInquiry struct {
	PageQuery
	NotificationStatus string `json:"notificationStatus" form:"notificationStatus" validate:"omitempty,oneof=WAIT READ"`
}
