package consts

const (
	TokenRevokeKey     = "auth:token:revoke:"
	TopJobsKey         = "rank:jobs:top"
	TopAgentsKey       = "rank:agents:top"
	NotificationChKey  = "notification:channel:"
	ApplicationStatKey = "application:stats:"
)

const (
	RankRecomputeLock = "lock:rank:recompute"
)
