package models

import "sort"

// Ranking returns the participants ordered by descending piezas.
// The sort is stable, so ties keep their join order. The input is not modified.
func Ranking(participants []*Participant) []*Participant {
	out := make([]*Participant, len(participants))
	copy(out, participants)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Piezas > out[j].Piezas
	})
	return out
}

// RankingFromRecord orders an archived record's participants by descending piezas,
// with the same stable tie-breaking as Ranking.
func RankingFromRecord(participants []FinishedParticipant) []FinishedParticipant {
	out := make([]FinishedParticipant, len(participants))
	copy(out, participants)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Piezas > out[j].Piezas
	})
	return out
}
