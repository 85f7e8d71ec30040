package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	Conflict            = 409
	InternalServerError = 500
)

var (
	ErrParamInvalid          = errors.New("参数错误")
	ErrMemberNotFound        = errors.New("会员不存在")
	ErrMemberNickExist       = errors.New("昵称已被占用")
	ErrMemberBlocked         = errors.New("会员已被封禁")
	ErrPasswordIncorrect     = errors.New("密码错误")
	ErrTokenInvalid          = errors.New("token 无效或已过期")
	ErrNotAuthorized         = errors.New("权限不足")
	ErrJobNotFound           = errors.New("职位不存在")
	ErrJobNotOpen            = errors.New("职位未开放")
	ErrArticleNotFound       = errors.New("文章不存在")
	ErrCommentNotFound       = errors.New("评论不存在")
	ErrTargetNotFound        = errors.New("目标不存在")
	ErrFollowSelf            = errors.New("不能关注自己")
	ErrFollowExist           = errors.New("已关注该会员")
	ErrFollowNotFound        = errors.New("尚未关注该会员")
	ErrApplicationNotFound   = errors.New("申请不存在")
	ErrApplicationExist      = errors.New("已申请过该职位")
	ErrApplyOwnJob           = errors.New("不能申请自己发布的职位")
	ErrDeadlinePassed        = errors.New("申请截止日期已过")
	ErrApplicationsFull      = errors.New("申请人数已满")
	ErrWithdrawNotAllowed    = errors.New("当前状态不可撤回")
	ErrStatusTransition      = errors.New("非法的状态流转")
	ErrNotificationNotFound  = errors.New("通知不存在")
	ErrRemoveNotAllowed      = errors.New("仅可删除已关闭或已下架的数据")
	ErrFileNotSupported      = errors.New("不支持的文件类型")
	UnExpectedError          = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:         BadRequest,
	ErrMemberNotFound:       NotFound,
	ErrMemberNickExist:      Conflict,
	ErrMemberBlocked:        Unauthorized,
	ErrPasswordIncorrect:    Unauthorized,
	ErrTokenInvalid:         Unauthorized,
	ErrNotAuthorized:        Forbidden,
	ErrJobNotFound:          NotFound,
	ErrJobNotOpen:           BadRequest,
	ErrArticleNotFound:      NotFound,
	ErrCommentNotFound:      NotFound,
	ErrTargetNotFound:       NotFound,
	ErrFollowSelf:           BadRequest,
	ErrFollowExist:          Conflict,
	ErrFollowNotFound:       NotFound,
	ErrApplicationNotFound:  NotFound,
	ErrApplicationExist:     Conflict,
	ErrApplyOwnJob:          BadRequest,
	ErrDeadlinePassed:       BadRequest,
	ErrApplicationsFull:     Conflict,
	ErrWithdrawNotAllowed:   BadRequest,
	ErrStatusTransition:     BadRequest,
	ErrNotificationNotFound: NotFound,
	ErrRemoveNotAllowed:     BadRequest,
	ErrFileNotSupported:     BadRequest,
	UnExpectedError:         InternalServerError,
}
