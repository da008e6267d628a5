package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllFinished(t *testing.T) {
	room := &Room{
		Participantes: []*Participant{
			{ID: "device-1", Finalizado: true},
			{ID: "device-2"},
		},
	}
	assert.False(t, room.AllFinished())

	room.Participantes[1].Finalizado = true
	assert.True(t, room.AllFinished())
}

func TestAllFinishedEmptyRoom(t *testing.T) {
	room := &Room{}
	assert.False(t, room.AllFinished())
}

func TestCloneIsDeep(t *testing.T) {
	room := &Room{
		ID: "ABCDE",
		Participantes: []*Participant{
			{ID: "device-1", Piezas: 5},
		},
	}

	clone := room.Clone()
	clone.Participantes[0].Piezas = 99

	assert.Equal(t, 5, room.Participantes[0].Piezas)
}

func TestCloneNil(t *testing.T) {
	var room *Room
	assert.Nil(t, room.Clone())
}

func TestNormalizeCode(t *testing.T) {
	assert.Equal(t, "ABCDE", NormalizeCode(" abcde "))
	assert.Equal(t, "QW3RT", NormalizeCode("qw3rt"))
}
