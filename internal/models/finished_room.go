package models

// FinishedParticipant is the slice of a participant kept in the archive
type FinishedParticipant struct {
	Nombre string `json:"nombre"`
	Piezas int    `json:"piezas"`
}

// FinishedRoom is the immutable historical record written once a room finalizes.
// It is inserted at most once per room and never updated afterwards.
type FinishedRoom struct {
	// RoomID is the code of the room this record belongs to
	RoomID string `json:"roomId"`

	// Participantes holds the final names and counts in join order
	Participantes []FinishedParticipant `json:"participantes"`

	// Fecha is the finish day formatted for display (day/month/year)
	Fecha string `json:"fecha"`

	// FinishedAt is when the room finalized, in Unix milliseconds
	FinishedAt int64 `json:"finishedAt"`
}
