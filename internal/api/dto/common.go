package dto

// Response 统一响应结构
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// PageQuery 统一分页入参
type PageQuery struct {
	Page      int64  `json:"page" form:"page"`
	Limit     int64  `json:"limit" form:"limit"`
	Sort      string `json:"sort" form:"sort"`
	Direction int    `json:"direction" form:"direction"`
}

// PageData 列表数据与真实总数
type PageData struct {
	List  interface{} `json:"list"`
	Total int64       `json:"total"`
}
