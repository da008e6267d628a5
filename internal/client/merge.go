package client

import (
	"time"

	"github.com/NachoLave/SushiLibre/internal/models"
)

// reconcileState is everything the merge needs besides the two snapshots, so
// the merge itself stays a pure function of its arguments.
type reconcileState struct {
	// ownedID is the participant controlled by this client instance
	ownedID string

	// pending holds in-flight counter values not yet confirmed by the server
	pending map[string]int

	// lastLocal holds the time of the most recent local mutation per participant
	lastLocal map[string]time.Time

	// locallyFinished holds participants whose finish was issued locally;
	// entries are never removed for the life of the session
	locallyFinished map[string]bool

	now    time.Time
	window time.Duration
}

// mergeRooms merges a server snapshot into the local view.
//
// Other participants are server-authoritative in both directions. The owned
// participant keeps any pending value, then keeps the local value while inside
// the recency window, and past the window only accepts server values that are
// greater or equal (a local count never silently decreases). The owned finished
// flag is ORed with the locally-finished set. Room-level finalizado always
// comes from the server, since room-wide completion cannot be known locally.
func mergeRooms(server, local *models.Room, st reconcileState) *models.Room {
	out := server.Clone()

	for _, p := range out.Participantes {
		if p.ID != st.ownedID {
			continue
		}

		if st.locallyFinished[p.ID] {
			p.Finalizado = true
		}

		if v, ok := st.pending[p.ID]; ok {
			p.Piezas = v
			continue
		}

		var lp *models.Participant
		if local != nil {
			lp = local.Participant(p.ID)
		}
		if lp == nil {
			continue
		}

		if t, ok := st.lastLocal[p.ID]; ok && st.now.Sub(t) < st.window {
			p.Piezas = lp.Piezas
			continue
		}

		if lp.Piezas > p.Piezas {
			p.Piezas = lp.Piezas
		}
	}

	return out
}
