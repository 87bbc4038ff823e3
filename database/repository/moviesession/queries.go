package sessionRepo

import (
	"context"
	"fmt"
	"time"

	"kino/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var byStart = bson.D{{Key: "startDatetime", Value: 1}}

func (r *mongoSessionRepo) find(ctx context.Context, filter bson.M, sort bson.D) ([]models.MovieSession, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(sort))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch movie sessions: %w", err)
	}
	defer cursor.Close(ctx)

	sessions := []models.MovieSession{}
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, fmt.Errorf("error decoding movie sessions: %w", err)
	}
	return sessions, nil
}

func (r *mongoSessionRepo) FindInHallWindow(ctx context.Context, hallID string, from, to time.Time) ([]models.MovieSession, error) {
	filter := bson.M{
		"hallId":        hallID,
		"startDatetime": bson.M{"$lte": to},
		"endDatetime":   bson.M{"$gte": from},
	}
	return r.find(ctx, filter, byStart)
}

func (r *mongoSessionRepo) ListActiveByHall(ctx context.Context, hallID string, now time.Time) ([]models.MovieSession, error) {
	filter := bson.M{
		"hallId":      hallID,
		"endDatetime": bson.M{"$gte": now},
	}
	return r.find(ctx, filter, byStart)
}

func (r *mongoSessionRepo) List(ctx context.Context, f models.SessionListFilter) ([]models.MovieSession, error) {
	filter := bson.M{}
	if f.Day != nil {
		dayStart := time.Date(f.Day.Year(), f.Day.Month(), f.Day.Day(), 0, 0, 0, 0, f.Day.Location())
		filter["startDatetime"] = bson.M{"$gte": dayStart, "$lt": dayStart.AddDate(0, 0, 1)}
	} else {
		filter["endDatetime"] = bson.M{"$gte": f.EndsAfter}
	}

	sortField := f.SortField
	if sortField == "" {
		sortField = "startDatetime"
	}
	dir := 1
	if f.SortDesc {
		dir = -1
	}
	sort := bson.D{{Key: sortField, Value: dir}}
	if sortField != "startDatetime" {
		sort = append(sort, bson.E{Key: "startDatetime", Value: 1})
	}
	return r.find(ctx, filter, sort)
}
