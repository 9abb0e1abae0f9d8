package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"fittrack/workout-app/internal/domain"
	"fittrack/workout-app/internal/repository"
	"fittrack/workout-app/internal/storage"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ExportResult points the caller at a freshly generated history export.
type ExportResult struct {
	ObjectKey   string    `json:"objectKey"`
	DownloadURL string    `json:"downloadUrl"`
	ExpiresAt   time.Time `json:"expiresAt"`
	LogCount    int       `json:"logCount"`
}

// ExportService builds downloadable snapshots of a user's workout
// history.
type ExportService interface {
	ExportHistory(ctx context.Context, userID primitive.ObjectID, filter repository.LogFilter) (*ExportResult, error)
}

// exportService implements the ExportService interface.
type exportService struct {
	logRepo     repository.LogRepository
	fileStorage storage.ObjectStorage
	now         func() time.Time
}

// NewExportService creates a new instance of exportService.
func NewExportService(logRepo repository.LogRepository, fileStorage storage.ObjectStorage) ExportService {
	return &exportService{
		logRepo:     logRepo,
		fileStorage: fileStorage,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// historyExport is the JSON document written to object storage.
type historyExport struct {
	UserID     string              `json:"userId"`
	ExportedAt time.Time           `json:"exportedAt"`
	LogCount   int                 `json:"logCount"`
	Logs       []domain.WorkoutLog `json:"logs"`
}

// ExportHistory gathers the user's logs (optionally a date range),
// uploads them as one JSON object and returns a presigned download URL.
func (s *exportService) ExportHistory(ctx context.Context, userID primitive.ObjectID, filter repository.LogFilter) (*ExportResult, error) {
	total, err := s.logRepo.Count(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	var logs []domain.WorkoutLog
	if total > 0 {
		logs, err = s.logRepo.GetByUser(ctx, userID, filter, 1, int(total))
		if err != nil {
			return nil, err
		}
	}

	exportedAt := s.now()
	doc := historyExport{
		UserID:     userID.Hex(),
		ExportedAt: exportedAt,
		LogCount:   len(logs),
		Logs:       logs,
	}
	body, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}

	objectKey := fmt.Sprintf("exports/%s/%s.json", userID.Hex(), uuid.NewString())
	if err := s.fileStorage.Upload(ctx, objectKey, "application/json", body); err != nil {
		return nil, err
	}

	url, err := s.fileStorage.GeneratePresignedDownloadURL(ctx, objectKey, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return nil, err
	}

	return &ExportResult{
		ObjectKey:   objectKey,
		DownloadURL: url,
		ExpiresAt:   exportedAt.Add(storage.DefaultPresignedURLExpiry),
		LogCount:    len(logs),
	}, nil
}
