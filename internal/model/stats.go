package model

// StatKey 计数器字段的封闭集合
// 计数器一律通过 StatKey 常量寻址，杜绝自由字符串带来的拼写类错误
type StatKey string

const (
	StatMemberViews      StatKey = "memberViews"
	StatMemberLikes      StatKey = "memberLikes"
	StatMemberFollowers  StatKey = "memberFollowers"
	StatMemberFollowings StatKey = "memberFollowings"
	StatMemberPostedJobs StatKey = "memberPostedJobs"
	StatMemberArticles   StatKey = "memberArticles"
	StatMemberComments   StatKey = "memberComments"

	StatJobViews         StatKey = "jobViews"
	StatJobLikes         StatKey = "jobLikes"
	StatJobComments      StatKey = "jobComments"
	StatApplicationCount StatKey = "applicationCount"

	StatArticleViews    StatKey = "articleViews"
	StatArticleLikes    StatKey = "articleLikes"
	StatArticleComments StatKey = "articleComments"
)

var memberStatKeys = map[StatKey]struct{}{
	StatMemberViews:      {},
	StatMemberLikes:      {},
	StatMemberFollowers:  {},
	StatMemberFollowings: {},
	StatMemberPostedJobs: {},
	StatMemberArticles:   {},
	StatMemberComments:   {},
}

var jobStatKeys = map[StatKey]struct{}{
	StatJobViews:         {},
	StatJobLikes:         {},
	StatJobComments:      {},
	StatApplicationCount: {},
}

var articleStatKeys = map[StatKey]struct{}{
	StatArticleViews:    {},
	StatArticleLikes:    {},
	StatArticleComments: {},
}

func (k StatKey) ValidForMember() bool {
	_, ok := memberStatKeys[k]
	return ok
}

func (k StatKey) ValidForJob() bool {
	_, ok := jobStatKeys[k]
	return ok
}

func (k StatKey) ValidForArticle() bool {
	_, ok := articleStatKeys[k]
	return ok
}

// LikeStatKey 点赞目标种类对应的计数器
func LikeStatKey(group TargetGroup) StatKey {
	switch group {
	case TargetGroupMember:
		return StatMemberLikes
	case TargetGroupJob:
		return StatJobLikes
	case TargetGroupArticle:
		return StatArticleLikes
	}
	return ""
}

// ViewStatKey 浏览目标种类对应的计数器
func ViewStatKey(group TargetGroup) StatKey {
	switch group {
	case TargetGroupMember:
		return StatMemberViews
	case TargetGroupJob:
		return StatJobViews
	case TargetGroupArticle:
		return StatArticleViews
	}
	return ""
}

// CommentStatKey 评论目标种类对应的计数器
func CommentStatKey(group TargetGroup) StatKey {
	switch group {
	case TargetGroupMember:
		return StatMemberComments
	case TargetGroupJob:
		return StatJobComments
	case TargetGroupArticle:
		return StatArticleComments
	}
	return ""
}

// JobRankOf 职位热度分，由批处理周期性重算
func JobRankOf(likes, views int64) int64 {
	return likes*2 + views
}

// AgentRankOf 猎头热度分
func AgentRankOf(postedJobs, articles, likes, views int64) int64 {
	return postedJobs*4 + articles*3 + likes*2 + views
}
