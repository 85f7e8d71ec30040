package repository

import (
	"Hirebase/internal/model"
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

type ViewRepo interface {
	RecordIfAbsent(ctx context.Context, view *model.View) (bool, error)
}

type viewRepoImpl struct {
	col *mongo.Collection
}

func NewViewRepo(db *mongo.Database) ViewRepo {
	return &viewRepoImpl{
		col: db.Collection(model.View{}.Collection()),
	}
}

// RecordIfAbsent 首次浏览才落库，复访被唯一索引挡下并返回 false
func (s *viewRepoImpl) RecordIfAbsent(ctx context.Context, view *model.View) (bool, error) {
	now := time.Now()
	view.CreatedAt = now
	view.UpdatedAt = now

	_, err := s.col.InsertOne(ctx, view)
	if err != nil {
		if IsDup(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
