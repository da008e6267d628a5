package models

import "strings"

// Participant represents one player inside a room
type Participant struct {
	// ID is the stable per-device identifier of the player
	ID string `json:"id"`

	// Nombre is the display name of the player
	Nombre string `json:"nombre"`

	// Piezas is the running count of pieces eaten, never negative
	Piezas int `json:"piezas"`

	// Finalizado indicates the player marked themselves done
	Finalizado bool `json:"finalizado"`
}

// Room represents a single game session identified by a short code
type Room struct {
	// ID is the room code, uppercase alphanumeric
	ID string `json:"id"`

	// Creador is the display name of the player who created the room
	Creador string `json:"creador"`

	// Participantes holds the players in join order
	Participantes []*Participant `json:"participantes"`

	// Finalizado indicates the whole room is done; it never goes back to false
	Finalizado bool `json:"finalizado"`

	// CreatedAt is when the room was created, in Unix milliseconds
	CreatedAt int64 `json:"createdAt"`

	// UpdatedAt is when the room was last written, in Unix milliseconds
	UpdatedAt int64 `json:"updatedAt"`
}

// Participant returns the participant with the given ID, or nil
func (r *Room) Participant(id string) *Participant {
	for _, p := range r.Participantes {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// AllFinished reports whether every participant has marked themselves done.
// An empty room is never considered finished.
func (r *Room) AllFinished() bool {
	if len(r.Participantes) == 0 {
		return false
	}
	for _, p := range r.Participantes {
		if !p.Finalizado {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the room
func (r *Room) Clone() *Room {
	if r == nil {
		return nil
	}
	out := *r
	out.Participantes = make([]*Participant, len(r.Participantes))
	for i, p := range r.Participantes {
		cp := *p
		out.Participantes[i] = &cp
	}
	return &out
}

// NormalizeCode trims and uppercases a room code for storage and lookup
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
