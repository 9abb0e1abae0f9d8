// internal/repository/mongo/exercise_repo.go
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

const exerciseCollectionName = "exercises"

// mongoExerciseCatalog implements repository.ExerciseCatalog
type mongoExerciseCatalog struct {
	collection *mongo.Collection
}

// NewMongoExerciseCatalog creates a new exercise catalog backed by MongoDB.
func NewMongoExerciseCatalog(db *mongo.Database) repository.ExerciseCatalog {
	return &mongoExerciseCatalog{
		collection: db.Collection(exerciseCollectionName),
	}
}

// GetByID retrieves a single catalog entry.
func (r *mongoExerciseCatalog) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Exercise, error) {
	var exercise domain.Exercise
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&exercise)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &exercise, nil
}

// GetByIDs retrieves all catalog entries matching the given ids in one
// query. Missing ids are simply absent from the result; callers check
// the result set to detect unresolved references.
func (r *mongoExerciseCatalog) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.Exercise, error) {
	if len(ids) == 0 {
		return []domain.Exercise{}, nil
	}
	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var exercises []domain.Exercise
	if err = cursor.All(ctx, &exercises); err != nil {
		return nil, err
	}
	return exercises, nil
}

// List retrieves catalog entries matching the filter, sorted by name.
func (r *mongoExerciseCatalog) List(ctx context.Context, filter repository.ExerciseFilter) ([]domain.Exercise, error) {
	query := bson.M{}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.Difficulty != "" {
		query["difficulty"] = filter.Difficulty
	}
	if filter.Search != "" {
		query["name"] = bson.M{"$regex": filter.Search, "$options": "i"}
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.collection.Find(ctx, query, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var exercises []domain.Exercise
	if err = cursor.All(ctx, &exercises); err != nil {
		return nil, err
	}
	return exercises, nil
}

// InsertMany loads catalog entries in bulk. Only used by the seeder.
func (r *mongoExerciseCatalog) InsertMany(ctx context.Context, exercises []domain.Exercise) error {
	if len(exercises) == 0 {
		return nil
	}
	now := time.Now().UTC()
	docs := make([]interface{}, len(exercises))
	for i := range exercises {
		exercises[i].ID = primitive.NewObjectID()
		exercises[i].CreatedAt = now
		exercises[i].UpdatedAt = now
		docs[i] = exercises[i]
	}
	_, err := r.collection.InsertMany(ctx, docs)
	return err
}

// Count returns the number of catalog entries.
func (r *mongoExerciseCatalog) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

// EnsureExerciseIndexes creates necessary indexes. Call during startup.
func EnsureExerciseIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "category", Value: 1}, {Key: "difficulty", Value: 1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index(),
		},
	}
	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
