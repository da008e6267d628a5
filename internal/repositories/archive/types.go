package archive

import "github.com/NachoLave/SushiLibre/internal/models"

type SaveRecordInput struct {
	Record *models.FinishedRoom
}

type SaveRecordOutput struct {
	// Inserted is false when a record for the room already existed;
	// the existing record is left untouched in that case.
	Inserted bool
}

type GetRecordInput struct {
	RoomID string
}

type ListRecordsInput struct {
}

type ListRecordsOutput struct {
	Records []*models.FinishedRoom
}
