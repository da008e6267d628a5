package archive

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/NachoLave/SushiLibre/internal/repositories/archive Repository

import (
	"context"

	"github.com/NachoLave/SushiLibre/internal/models"
)

// Repository defines the interface for finished room record persistence
type Repository interface {
	// SaveRecord inserts a finished room record if none exists for the room yet
	SaveRecord(ctx context.Context, input *SaveRecordInput) (*SaveRecordOutput, error)

	// GetRecord retrieves a finished room record by room code
	GetRecord(ctx context.Context, input *GetRecordInput) (*models.FinishedRoom, error)

	// ListRecords retrieves all finished room records, most recent first
	ListRecords(ctx context.Context, input *ListRecordsInput) (*ListRecordsOutput, error)
}
