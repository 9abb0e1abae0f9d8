package service

// In-memory repository fakes shared by the service tests. They mirror
// the behavior of the Mongo implementations closely enough for the
// service-level contracts: owner-scoped queries, ErrNotFound on misses
// and generated ids on create.

import (
	"context"
	"sort"
	"time"

	"fittrack/workout-app/internal/domain"
	"fittrack/workout-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- users ---

type fakeUserRepo struct {
	users map[primitive.ObjectID]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[primitive.ObjectID]*domain.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) (primitive.ObjectID, error) {
	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	cp := *user
	r.users[user.ID] = &cp
	return user.ID, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

// --- exercise catalog ---

type fakeCatalog struct {
	exercises map[primitive.ObjectID]domain.Exercise
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{exercises: make(map[primitive.ObjectID]domain.Exercise)}
}

func (r *fakeCatalog) add(name string) primitive.ObjectID {
	id := primitive.NewObjectID()
	r.exercises[id] = domain.Exercise{ID: id, Name: name}
	return id
}

func (r *fakeCatalog) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Exercise, error) {
	ex, ok := r.exercises[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &ex, nil
}

func (r *fakeCatalog) GetByIDs(_ context.Context, ids []primitive.ObjectID) ([]domain.Exercise, error) {
	var out []domain.Exercise
	seen := make(map[primitive.ObjectID]bool)
	for _, id := range ids {
		if ex, ok := r.exercises[id]; ok && !seen[id] {
			out = append(out, ex)
			seen[id] = true
		}
	}
	return out, nil
}

func (r *fakeCatalog) List(_ context.Context, _ repository.ExerciseFilter) ([]domain.Exercise, error) {
	out := make([]domain.Exercise, 0, len(r.exercises))
	for _, ex := range r.exercises {
		out = append(out, ex)
	}
	return out, nil
}

func (r *fakeCatalog) InsertMany(_ context.Context, exercises []domain.Exercise) error {
	for _, ex := range exercises {
		if ex.ID.IsZero() {
			ex.ID = primitive.NewObjectID()
		}
		r.exercises[ex.ID] = ex
	}
	return nil
}

func (r *fakeCatalog) Count(_ context.Context) (int64, error) {
	return int64(len(r.exercises)), nil
}

// --- plans ---

type fakePlanRepo struct {
	plans map[primitive.ObjectID]*domain.WorkoutPlan
}

func newFakePlanRepo() *fakePlanRepo {
	return &fakePlanRepo{plans: make(map[primitive.ObjectID]*domain.WorkoutPlan)}
}

func (r *fakePlanRepo) Create(_ context.Context, plan *domain.WorkoutPlan) (primitive.ObjectID, error) {
	plan.ID = primitive.NewObjectID()
	plan.CreatedAt = time.Now()
	plan.UpdatedAt = plan.CreatedAt
	cp := *plan
	r.plans[plan.ID] = &cp
	return plan.ID, nil
}

func (r *fakePlanRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.WorkoutPlan, error) {
	p, ok := r.plans[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakePlanRepo) GetByUser(_ context.Context, userID primitive.ObjectID, filter repository.PlanFilter) ([]domain.WorkoutPlan, error) {
	var out []domain.WorkoutPlan
	for _, p := range r.plans {
		if p.UserID != userID {
			continue
		}
		if filter.IsActive != nil && p.IsActive != *filter.IsActive {
			continue
		}
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakePlanRepo) Update(_ context.Context, plan *domain.WorkoutPlan) error {
	if _, ok := r.plans[plan.ID]; !ok {
		return repository.ErrNotFound
	}
	plan.UpdatedAt = time.Now()
	cp := *plan
	r.plans[plan.ID] = &cp
	return nil
}

func (r *fakePlanRepo) Delete(_ context.Context, id, userID primitive.ObjectID) error {
	p, ok := r.plans[id]
	if !ok || p.UserID != userID {
		return repository.ErrNotFound
	}
	delete(r.plans, id)
	return nil
}

func (r *fakePlanRepo) CountActive(_ context.Context, userID primitive.ObjectID) (int64, error) {
	var n int64
	for _, p := range r.plans {
		if p.UserID == userID && p.IsActive {
			n++
		}
	}
	return n, nil
}

// --- scheduled workouts ---

type fakeSessionRepo struct {
	workouts map[primitive.ObjectID]*domain.ScheduledWorkout
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{workouts: make(map[primitive.ObjectID]*domain.ScheduledWorkout)}
}

func (r *fakeSessionRepo) Create(_ context.Context, workout *domain.ScheduledWorkout) (primitive.ObjectID, error) {
	workout.ID = primitive.NewObjectID()
	workout.CreatedAt = time.Now()
	workout.UpdatedAt = workout.CreatedAt
	cp := *workout
	r.workouts[workout.ID] = &cp
	return workout.ID, nil
}

func (r *fakeSessionRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.ScheduledWorkout, error) {
	w, ok := r.workouts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *w
	return &cp, nil
}

func (r *fakeSessionRepo) GetByUser(_ context.Context, userID primitive.ObjectID, filter repository.SessionFilter) ([]domain.ScheduledWorkout, error) {
	var out []domain.ScheduledWorkout
	for _, w := range r.workouts {
		if w.UserID != userID {
			continue
		}
		if filter.Upcoming {
			if w.ScheduledDate.Before(filter.Now) {
				continue
			}
			if w.Status != domain.StatusScheduled && w.Status != domain.StatusInProgress {
				continue
			}
		} else if len(filter.Statuses) > 0 {
			match := false
			for _, s := range filter.Statuses {
				if w.Status == s {
					match = true
					break
				}
			}
			if !match {
				continue
			}
		}
		if filter.StartDate != nil && w.ScheduledDate.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && w.ScheduledDate.After(*filter.EndDate) {
			continue
		}
		out = append(out, *w)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ScheduledDate.Before(out[j].ScheduledDate)
	})
	return out, nil
}

func (r *fakeSessionRepo) Update(_ context.Context, workout *domain.ScheduledWorkout) error {
	if _, ok := r.workouts[workout.ID]; !ok {
		return repository.ErrNotFound
	}
	workout.UpdatedAt = time.Now()
	cp := *workout
	r.workouts[workout.ID] = &cp
	return nil
}

func (r *fakeSessionRepo) Delete(_ context.Context, id, userID primitive.ObjectID) error {
	w, ok := r.workouts[id]
	if !ok || w.UserID != userID {
		return repository.ErrNotFound
	}
	delete(r.workouts, id)
	return nil
}

func (r *fakeSessionRepo) CountUpcoming(_ context.Context, userID primitive.ObjectID, now time.Time) (int64, error) {
	var n int64
	for _, w := range r.workouts {
		if w.UserID != userID || w.ScheduledDate.Before(now) {
			continue
		}
		if w.Status == domain.StatusScheduled || w.Status == domain.StatusInProgress {
			n++
		}
	}
	return n, nil
}

// --- workout logs ---

type fakeLogRepo struct {
	logs map[primitive.ObjectID]*domain.WorkoutLog
}

func newFakeLogRepo() *fakeLogRepo {
	return &fakeLogRepo{logs: make(map[primitive.ObjectID]*domain.WorkoutLog)}
}

func (r *fakeLogRepo) Create(_ context.Context, log *domain.WorkoutLog) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	cp := *log
	cp.ID = id
	cp.CreatedAt = time.Now()
	r.logs[id] = &cp
	return id, nil
}

func (r *fakeLogRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.WorkoutLog, error) {
	l, ok := r.logs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *l
	return &cp, nil
}

func (r *fakeLogRepo) matching(userID primitive.ObjectID, filter repository.LogFilter) []domain.WorkoutLog {
	var out []domain.WorkoutLog
	for _, l := range r.logs {
		if l.UserID != userID {
			continue
		}
		if filter.StartDate != nil && l.CompletedAt.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && l.CompletedAt.After(*filter.EndDate) {
			continue
		}
		out = append(out, *l)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CompletedAt.After(out[j].CompletedAt)
	})
	return out
}

func (r *fakeLogRepo) GetByUser(_ context.Context, userID primitive.ObjectID, filter repository.LogFilter, page, limit int) ([]domain.WorkoutLog, error) {
	all := r.matching(userID, filter)
	start := (page - 1) * limit
	if start >= len(all) {
		return nil, nil
	}
	end := start + limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], nil
}

func (r *fakeLogRepo) Count(_ context.Context, userID primitive.ObjectID, filter repository.LogFilter) (int64, error) {
	return int64(len(r.matching(userID, filter))), nil
}

func (r *fakeLogRepo) AggregateStats(_ context.Context, userID primitive.ObjectID, since time.Time) (*domain.WorkoutStats, error) {
	stats := &domain.WorkoutStats{}
	ratingSum, rated := 0, 0
	for _, l := range r.logs {
		if l.UserID != userID || l.CompletedAt.Before(since) {
			continue
		}
		stats.TotalWorkouts++
		stats.TotalDuration += l.Duration
		stats.TotalSets += l.TotalSets
		stats.TotalReps += l.TotalReps
		stats.TotalWeight += l.TotalWeight
		stats.TotalCalories += l.CaloriesBurned
		if l.Rating > 0 {
			ratingSum += l.Rating
			rated++
		}
	}
	if rated > 0 {
		stats.AverageRating = float64(ratingSum) / float64(rated)
	}
	return stats, nil
}

// --- object storage ---

type fakeObjectStorage struct {
	objects map[string][]byte
	types   map[string]string
}

func newFakeObjectStorage() *fakeObjectStorage {
	return &fakeObjectStorage{
		objects: make(map[string][]byte),
		types:   make(map[string]string),
	}
}

func (s *fakeObjectStorage) Upload(_ context.Context, objectKey, contentType string, body []byte) error {
	s.objects[objectKey] = body
	s.types[objectKey] = contentType
	return nil
}

func (s *fakeObjectStorage) GeneratePresignedDownloadURL(_ context.Context, objectKey string, _ time.Duration) (string, error) {
	return "https://storage.test/" + objectKey, nil
}

func (s *fakeObjectStorage) DeleteObject(_ context.Context, objectKey string) error {
	delete(s.objects, objectKey)
	delete(s.types, objectKey)
	return nil
}
