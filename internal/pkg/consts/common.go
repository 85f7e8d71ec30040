package consts

const (
	MimePrefixImage = "image"
	MimePDF         = "application/pdf"
)

const (
	DefaultMemberImage = "default_member.png"
)

const (
	CtxMemberIDKey   = "memberId"
	CtxMemberTypeKey = "memberType"
	CtxTraceIDKey    = "traceId"
)
