// internal/repository/mongo/session_repo.go
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

const sessionCollectionName = "scheduled_workouts"

// mongoSessionRepository implements repository.SessionRepository
type mongoSessionRepository struct {
	collection *mongo.Collection
}

// NewMongoSessionRepository creates a new scheduled workout repository.
func NewMongoSessionRepository(db *mongo.Database) repository.SessionRepository {
	return &mongoSessionRepository{
		collection: db.Collection(sessionCollectionName),
	}
}

// Create inserts a new scheduled workout.
func (r *mongoSessionRepository) Create(ctx context.Context, workout *domain.ScheduledWorkout) (primitive.ObjectID, error) {
	if workout.UserID == primitive.NilObjectID || workout.WorkoutPlanID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("scheduled workout requires user and workoutPlan")
	}
	workout.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	workout.CreatedAt = now
	workout.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, workout)
	if err != nil {
		return primitive.NilObjectID, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted workout ID")
	}
	return insertedID, nil
}

// GetByID retrieves a single scheduled workout by its ID.
func (r *mongoSessionRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.ScheduledWorkout, error) {
	var workout domain.ScheduledWorkout
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&workout)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &workout, nil
}

// GetByUser retrieves a user's scheduled workouts matching the filter,
// sorted by date then time of day.
func (r *mongoSessionRepository) GetByUser(ctx context.Context, userID primitive.ObjectID, filter repository.SessionFilter) ([]domain.ScheduledWorkout, error) {
	query := bson.M{"user": userID}

	if len(filter.Statuses) > 0 {
		query["status"] = bson.M{"$in": filter.Statuses}
	}
	if filter.Upcoming {
		query["scheduledDate"] = bson.M{"$gte": filter.Now}
		query["status"] = bson.M{"$in": bson.A{domain.StatusScheduled, domain.StatusInProgress}}
	}
	if filter.StartDate != nil && filter.EndDate != nil {
		dateRange := bson.M{"$gte": *filter.StartDate, "$lte": *filter.EndDate}
		if filter.Upcoming {
			// Upcoming already constrains the date; the explicit range
			// narrows it further via $and semantics.
			dateRange["$gte"] = filter.Now
			if filter.StartDate.After(filter.Now) {
				dateRange["$gte"] = *filter.StartDate
			}
		}
		query["scheduledDate"] = dateRange
	}

	findOptions := options.Find().SetSort(bson.D{
		{Key: "scheduledDate", Value: 1},
		{Key: "scheduledTime", Value: 1},
	})
	cursor, err := r.collection.Find(ctx, query, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var workouts []domain.ScheduledWorkout
	if err = cursor.All(ctx, &workouts); err != nil {
		return nil, err
	}
	return workouts, nil
}

// Update replaces the mutable fields of a scheduled workout document.
func (r *mongoSessionRepository) Update(ctx context.Context, workout *domain.ScheduledWorkout) error {
	if workout.ID == primitive.NilObjectID {
		return errors.New("workout ID is required for update")
	}

	filter := bson.M{"_id": workout.ID}
	updateDoc := bson.M{
		"$set": bson.M{
			"scheduledDate":        workout.ScheduledDate,
			"scheduledTime":        workout.ScheduledTime,
			"status":               workout.Status,
			"actualStartTime":      workout.ActualStartTime,
			"actualEndTime":        workout.ActualEndTime,
			"actualDuration":       workout.ActualDuration,
			"exercises":            workout.Exercises,
			"completionPercentage": workout.CompletionPercentage,
			"caloriesBurned":       workout.CaloriesBurned,
			"notes":                workout.Notes,
			"rating":               workout.Rating,
			"reminderSent":         workout.ReminderSent,
			"reminderTime":         workout.ReminderTime,
			"updatedAt":            time.Now().UTC(),
		},
	}

	result, err := r.collection.UpdateOne(ctx, filter, updateDoc)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes a scheduled workout owned by the given user.
func (r *mongoSessionRepository) Delete(ctx context.Context, id, userID primitive.ObjectID) error {
	if id == primitive.NilObjectID || userID == primitive.NilObjectID {
		return errors.New("workout ID and user ID are required for deletion")
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id, "user": userID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// CountUpcoming returns the number of sessions scheduled from now on
// that are still live (scheduled or in-progress).
func (r *mongoSessionRepository) CountUpcoming(ctx context.Context, userID primitive.ObjectID, now time.Time) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{
		"user":          userID,
		"scheduledDate": bson.M{"$gte": now},
		"status":        bson.M{"$in": bson.A{domain.StatusScheduled, domain.StatusInProgress}},
	})
}

// EnsureSessionIndexes creates necessary indexes. Call during startup.
func EnsureSessionIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user", Value: 1}, {Key: "scheduledDate", Value: 1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "user", Value: 1}, {Key: "status", Value: 1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "scheduledDate", Value: 1}, {Key: "scheduledTime", Value: 1}},
			Options: options.Index(),
		},
	}
	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
