package repository

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// PageRequest 统一分页参数
type PageRequest struct {
	Page      int64
	Limit     int64
	Sort      string
	Direction int
}

// Normalize 修正越界的分页与排序参数
func (p PageRequest) Normalize(allowedSorts map[string]struct{}, defaultSort string) PageRequest {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	if _, ok := allowedSorts[p.Sort]; !ok {
		p.Sort = defaultSort
	}
	if p.Direction != 1 && p.Direction != -1 {
		p.Direction = -1
	}
	return p
}

func (p PageRequest) Skip() int64 {
	return (p.Page - 1) * p.Limit
}

// PageResult 列表数据与真实总数
type PageResult[T any] struct {
	List  []*T
	Total int64
}

type facetRow struct {
	List        []bson.Raw `bson:"list"`
	MetaCounter []struct {
		Total int64 `bson:"total"`
	} `bson:"metaCounter"`
}

// facetStage 组装 list + metaCounter 双分支
// 总数统计在 $match 之后、$skip 之前，越界页也能拿到真实 total
func facetStage(page PageRequest, listStages []bson.D) bson.D {
	list := bson.A{
		bson.D{{Key: "$skip", Value: page.Skip()}},
		bson.D{{Key: "$limit", Value: page.Limit}},
	}
	for _, st := range listStages {
		list = append(list, st)
	}
	return bson.D{{Key: "$facet", Value: bson.D{
		{Key: "list", Value: list},
		{Key: "metaCounter", Value: bson.A{
			bson.D{{Key: "$count", Value: "total"}},
		}},
	}}}
}

// runFacet 执行 match→sort→facet 聚合并解出分页结果
func runFacet[T any](ctx context.Context, col *mongo.Collection, match bson.D, page PageRequest, listStages []bson.D) (*PageResult[T], error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
		bson.D{{Key: "$sort", Value: bson.D{
			{Key: page.Sort, Value: page.Direction},
			{Key: "_id", Value: page.Direction},
		}}},
		facetStage(page, listStages),
	}

	cursor, err := col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, errors.Wrapf(err, "aggregate %s", col.Name())
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var rows []facetRow
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, errors.Wrapf(err, "decode %s facet", col.Name())
	}

	result := &PageResult[T]{List: []*T{}}
	if len(rows) == 0 {
		return result, nil
	}
	for _, raw := range rows[0].List {
		item := new(T)
		if err = bson.Unmarshal(raw, item); err != nil {
			return nil, errors.Wrapf(err, "unmarshal %s item", col.Name())
		}
		result.List = append(result.List, item)
	}
	if len(rows[0].MetaCounter) > 0 {
		result.Total = rows[0].MetaCounter[0].Total
	}
	return result, nil
}

// lookupAuthor 关联作者信息，展开成单个文档
func lookupAuthor(localField, as string) []bson.D {
	return []bson.D{
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "members"},
			{Key: "localField", Value: localField},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: as},
		}}},
		{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$" + as},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
	}
}

// lookupMeLiked 以当前登录者视角标注 meLiked
func lookupMeLiked(memberID primitive.ObjectID, group string) []bson.D {
	if memberID.IsZero() {
		return nil
	}
	return []bson.D{
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "likes"},
			{Key: "let", Value: bson.D{{Key: "refId", Value: "$_id"}}},
			{Key: "pipeline", Value: bson.A{
				bson.D{{Key: "$match", Value: bson.D{
					{Key: "$expr", Value: bson.D{{Key: "$and", Value: bson.A{
						bson.D{{Key: "$eq", Value: bson.A{"$likeRefId", "$$refId"}}},
						bson.D{{Key: "$eq", Value: bson.A{"$memberId", memberID}}},
						bson.D{{Key: "$eq", Value: bson.A{"$likeGroup", group}}},
					}}}},
				}}},
			}},
			{Key: "as", Value: "meLikedDocs"},
		}}},
		{{Key: "$addFields", Value: bson.D{
			{Key: "meLiked", Value: bson.D{{Key: "$gt", Value: bson.A{
				bson.D{{Key: "$size", Value: "$meLikedDocs"}}, 0,
			}}}},
		}}},
		{{Key: "$project", Value: bson.D{{Key: "meLikedDocs", Value: 0}}}},
	}
}

// lookupMeFollowed 以当前登录者视角标注 meFollowed
func lookupMeFollowed(memberID primitive.ObjectID, targetField string) []bson.D {
	if memberID.IsZero() {
		return nil
	}
	return []bson.D{
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "follows"},
			{Key: "let", Value: bson.D{{Key: "targetId", Value: "$" + targetField}}},
			{Key: "pipeline", Value: bson.A{
				bson.D{{Key: "$match", Value: bson.D{
					{Key: "$expr", Value: bson.D{{Key: "$and", Value: bson.A{
						bson.D{{Key: "$eq", Value: bson.A{"$followerId", memberID}}},
						bson.D{{Key: "$eq", Value: bson.A{"$followingId", "$$targetId"}}},
					}}}},
				}}},
			}},
			{Key: "as", Value: "meFollowedDocs"},
		}}},
		{{Key: "$addFields", Value: bson.D{
			{Key: "meFollowed", Value: bson.D{{Key: "$gt", Value: bson.A{
				bson.D{{Key: "$size", Value: "$meFollowedDocs"}}, 0,
			}}}},
		}}},
		{{Key: "$project", Value: bson.D{{Key: "meFollowedDocs", Value: 0}}}},
	}
}

// IsDup 判断是否唯一索引冲突
func IsDup(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}
