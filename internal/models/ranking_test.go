package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRanking(t *testing.T) {
	participants := []*Participant{
		{ID: "device-1", Nombre: "Nacho", Piezas: 3},
		{ID: "device-2", Nombre: "Flor", Piezas: 12},
		{ID: "device-3", Nombre: "Tomi", Piezas: 7},
	}

	ranked := Ranking(participants)

	assert.Equal(t, "Flor", ranked[0].Nombre)
	assert.Equal(t, "Tomi", ranked[1].Nombre)
	assert.Equal(t, "Nacho", ranked[2].Nombre)

	// Input order stays untouched
	assert.Equal(t, "Nacho", participants[0].Nombre)
}

func TestRankingStableOnTies(t *testing.T) {
	participants := []*Participant{
		{ID: "device-1", Nombre: "Nacho", Piezas: 5},
		{ID: "device-2", Nombre: "Flor", Piezas: 5},
		{ID: "device-3", Nombre: "Tomi", Piezas: 5},
	}

	ranked := Ranking(participants)

	// Ties keep join order
	assert.Equal(t, "Nacho", ranked[0].Nombre)
	assert.Equal(t, "Flor", ranked[1].Nombre)
	assert.Equal(t, "Tomi", ranked[2].Nombre)
}

func TestRankingFromRecord(t *testing.T) {
	participants := []FinishedParticipant{
		{Nombre: "Nacho", Piezas: 8},
		{Nombre: "Flor", Piezas: 20},
	}

	ranked := RankingFromRecord(participants)

	assert.Equal(t, "Flor", ranked[0].Nombre)
	assert.Equal(t, "Nacho", ranked[1].Nombre)
}
