package state

import (
	"log"
	"sync"

	"github.com/google/uuid"

	"PlanBoard/internal/sketch"
)

// Store holds every annotation this site knows about. Remote operations
// merge in idempotently: replaying an annotation ID we have already seen
// is a no-op, so broadcasts may be relayed without echo suppression.
type Store struct {
	siteID      string
	clock       Clock
	annotations map[string]sketch.Annotation
	ops         map[string]Op // upsert ops by annotation ID, kept for Merge/Snapshot
	order       []string      // annotation IDs in arrival order, for stable rendering
	onLocalOp   func(Op)
	mu          sync.RWMutex
}

// NewStore creates an empty store with a fresh site ID.
func NewStore() *Store {
	return &Store{
		siteID:      uuid.NewString(),
		annotations: make(map[string]sketch.Annotation),
		ops:         make(map[string]Op),
	}
}

// SiteID returns this site's unique ID.
func (s *Store) SiteID() string {
	return s.siteID
}

// SetOnLocalOp installs the callback invoked with every locally produced
// operation so the caller can broadcast it. The callback may be swapped
// at any time, including while other goroutines are adding annotations.
func (s *Store) SetOnLocalOp(fn func(Op)) {
	s.mu.Lock()
	s.onLocalOp = fn
	s.mu.Unlock()
}

// AddLocal records an annotation drawn on this site and returns the
// operation to broadcast. The annotation is stored before the callback
// runs.
func (s *Store) AddLocal(a sketch.Annotation) Op {
	s.mu.Lock()
	op := Op{
		Type:       OpUpsert,
		Annotation: &a,
		Lamport:    s.clock.Tick(),
		Site:       s.siteID,
	}
	s.insertLocked(a, op)
	emit := s.onLocalOp
	s.mu.Unlock()

	log.Printf("[STORE] local annotation added: %s (%s)", a.ID, a.Kind)
	if emit != nil {
		emit(op)
	}
	return op
}

// ClearLocal removes this site's annotations (or everything, for
// owner "all") and returns the operation to broadcast.
func (s *Store) ClearLocal(owner string) Op {
	removed := s.RemoveByOwner(owner)
	op := Op{
		Type:    OpClear,
		Target:  owner,
		Lamport: s.clock.Tick(),
		Site:    s.siteID,
	}
	s.mu.Lock()
	emit := s.onLocalOp
	s.mu.Unlock()

	log.Printf("[STORE] local clear for owner %q removed %d annotations", owner, removed)
	if emit != nil {
		emit(op)
	}
	return op
}

// ApplyRemote merges an operation received from a peer. It reports
// whether the operation changed the store (duplicates return false).
func (s *Store) ApplyRemote(op Op) bool {
	switch op.Type {
	case OpUpsert:
		if op.Annotation == nil {
			return false
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		if _, exists := s.annotations[op.Annotation.ID]; exists {
			log.Printf("[STORE] annotation %s already present, ignoring", op.Annotation.ID)
			return false
		}
		s.clock.Update(op.Lamport)
		s.insertLocked(*op.Annotation, op)
		log.Printf("[STORE] remote annotation added: %s from site %s", op.Annotation.ID, op.Site)
		return true

	case OpClear:
		s.mu.Lock()
		s.clock.Update(op.Lamport)
		s.mu.Unlock()
		removed := s.RemoveByOwner(op.Target)
		log.Printf("[STORE] remote clear for owner %q removed %d annotations", op.Target, removed)
		return removed > 0
	}
	return false
}

// insertLocked stores the annotation and its op. Callers hold s.mu.
func (s *Store) insertLocked(a sketch.Annotation, op Op) {
	s.annotations[a.ID] = a
	s.ops[a.ID] = op
	s.order = append(s.order, a.ID)
}

// RemoveByOwner deletes every annotation owned by owner and returns how
// many were removed. Owner "all" empties the store.
func (s *Store) RemoveByOwner(owner string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	kept := s.order[:0]
	for _, id := range s.order {
		a, ok := s.annotations[id]
		if !ok {
			continue
		}
		if owner == "all" || a.OwnerID == owner {
			delete(s.annotations, id)
			delete(s.ops, id)
			removed++
			continue
		}
		kept = append(kept, id)
	}
	s.order = kept
	return removed
}

// Annotations returns value copies of all annotations in arrival order.
func (s *Store) Annotations() []sketch.Annotation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]sketch.Annotation, 0, len(s.order))
	for _, id := range s.order {
		if a, ok := s.annotations[id]; ok {
			out = append(out, a)
		}
	}
	return out
}

// Len returns the number of stored annotations.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.annotations)
}

// Snapshot returns the upsert operations for every live annotation, in
// arrival order. A host sends this to a newly connected client.
func (s *Store) Snapshot() []Op {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Op, 0, len(s.order))
	for _, id := range s.order {
		if op, ok := s.ops[id]; ok {
			out = append(out, op)
		}
	}
	return out
}

// Merge applies a snapshot from a peer, returning the annotations that
// were new to this store.
func (s *Store) Merge(ops []Op) []sketch.Annotation {
	var added []sketch.Annotation
	for _, op := range ops {
		if op.Type != OpUpsert || op.Annotation == nil {
			continue
		}
		if s.ApplyRemote(op) {
			added = append(added, *op.Annotation)
		}
	}
	if len(added) > 0 {
		log.Printf("[STORE] merged %d new annotations from snapshot", len(added))
	}
	return added
}
