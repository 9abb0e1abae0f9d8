// internal/repository/mongo/log_repo.go
package mongo

import (
	"context"
	"errors"
	"time"

	"fittrack/workout-app/internal/domain"
	"fittrack/workout-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const logCollectionName = "workout_logs"

// mongoLogRepository implements repository.LogRepository
type mongoLogRepository struct {
	collection *mongo.Collection
}

// NewMongoLogRepository creates a new workout log repository.
func NewMongoLogRepository(db *mongo.Database) repository.LogRepository {
	return &mongoLogRepository{
		collection: db.Collection(logCollectionName),
	}
}

// Create inserts a workout log. Logs are immutable afterwards; the
// interface has no update or delete.
func (r *mongoLogRepository) Create(ctx context.Context, log *domain.WorkoutLog) (primitive.ObjectID, error) {
	if log.UserID == primitive.NilObjectID || log.WorkoutPlanID == primitive.NilObjectID || log.WorkoutName == "" {
		return primitive.NilObjectID, errors.New("workout log requires user, workoutPlan, and workoutName")
	}
	log.ID = primitive.NewObjectID()
	log.CreatedAt = time.Now().UTC()

	result, err := r.collection.InsertOne(ctx, log)
	if err != nil {
		return primitive.NilObjectID, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted log ID")
	}
	return insertedID, nil
}

// GetByID retrieves a single workout log by its ID.
func (r *mongoLogRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.WorkoutLog, error) {
	var log domain.WorkoutLog
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&log)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &log, nil
}

func logQuery(userID primitive.ObjectID, filter repository.LogFilter) bson.M {
	query := bson.M{"user": userID}
	dateRange := bson.M{}
	if filter.StartDate != nil {
		dateRange["$gte"] = *filter.StartDate
	}
	if filter.EndDate != nil {
		dateRange["$lte"] = *filter.EndDate
	}
	if len(dateRange) > 0 {
		query["completedAt"] = dateRange
	}
	return query
}

// GetByUser retrieves one page of a user's history, newest first.
func (r *mongoLogRepository) GetByUser(ctx context.Context, userID primitive.ObjectID, filter repository.LogFilter, page, limit int) ([]domain.WorkoutLog, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "completedAt", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, logQuery(userID, filter), findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var logs []domain.WorkoutLog
	if err = cursor.All(ctx, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

// Count returns the number of logs matching the filter.
func (r *mongoLogRepository) Count(ctx context.Context, userID primitive.ObjectID, filter repository.LogFilter) (int64, error) {
	return r.collection.CountDocuments(ctx, logQuery(userID, filter))
}

// AggregateStats sums a user's history from the given instant onward in
// a single aggregation pass. Returns a zeroed record when no log
// matches, so callers never divide by zero.
func (r *mongoLogRepository) AggregateStats(ctx context.Context, userID primitive.ObjectID, since time.Time) (*domain.WorkoutStats, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{
			"user":        userID,
			"completedAt": bson.M{"$gte": since},
		}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":           nil,
			"totalWorkouts": bson.M{"$sum": 1},
			"totalDuration": bson.M{"$sum": "$duration"},
			"totalSets":     bson.M{"$sum": "$totalSets"},
			"totalReps":     bson.M{"$sum": "$totalReps"},
			"totalWeight":   bson.M{"$sum": "$totalWeight"},
			"totalCalories": bson.M{"$sum": "$caloriesBurned"},
			// $avg ignores missing/null ratings, so unrated logs do not
			// drag the average down.
			"averageRating": bson.M{"$avg": "$rating"},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []domain.WorkoutStats
	if err = cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return &domain.WorkoutStats{}, nil
	}
	return &results[0], nil
}

// EnsureLogIndexes creates necessary indexes. Call during startup.
func EnsureLogIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user", Value: 1}, {Key: "completedAt", Value: -1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "user", Value: 1}, {Key: "workoutPlan", Value: 1}},
			Options: options.Index(),
		},
	}
	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
