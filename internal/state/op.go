package state

import "PlanBoard/internal/sketch"

// OpType identifies a sync operation.
type OpType string

const (
	// OpUpsert adds or replays an annotation on every site.
	OpUpsert OpType = "upsert_annotation"
	// OpClear removes all annotations owned by Target ("all" clears
	// everything).
	OpClear OpType = "clear"
)

// Op is the unit of the sync wire protocol. Every local edit becomes an
// Op that is applied to the local store and broadcast to peers.
type Op struct {
	Type       OpType             `json:"type"`
	Annotation *sketch.Annotation `json:"annotation,omitempty"`
	Target     string             `json:"target,omitempty"`
	Lamport    uint64             `json:"lamport"`
	Site       string             `json:"site"`
}
