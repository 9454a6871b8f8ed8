package state

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PlanBoard/internal/geom"
	"PlanBoard/internal/sketch"
)

func testLine(owner string) sketch.Annotation {
	return sketch.NewLine(owner, geom.Pt(0, 0), geom.Pt(10, 0), sketch.Style{Color: "black", StrokeWidth: 2})
}

func TestAddLocalEmits(t *testing.T) {
	s := NewStore()
	var emitted []Op
	s.SetOnLocalOp(func(op Op) { emitted = append(emitted, op) })

	op := s.AddLocal(testLine("host"))

	assert.Equal(t, 1, s.Len())
	require.Len(t, emitted, 1)
	assert.Equal(t, OpUpsert, emitted[0].Type)
	assert.Equal(t, s.SiteID(), emitted[0].Site)
	assert.Equal(t, uint64(1), op.Lamport)
}

func TestSetOnLocalOpConcurrentWithAddLocal(t *testing.T) {
	s := NewStore()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			s.SetOnLocalOp(func(Op) {})
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			s.AddLocal(testLine("host"))
		}
	}()
	wg.Wait()

	assert.Equal(t, 100, s.Len())
}

func TestApplyRemoteDuplicateIsNoop(t *testing.T) {
	s := NewStore()
	a := testLine("peer")
	op := Op{Type: OpUpsert, Annotation: &a, Lamport: 5, Site: "remote"}

	assert.True(t, s.ApplyRemote(op))
	assert.False(t, s.ApplyRemote(op), "replay of the same annotation ID must be ignored")
	assert.Equal(t, 1, s.Len())
}

func TestApplyRemoteAdvancesClock(t *testing.T) {
	s := NewStore()
	a := testLine("peer")
	s.ApplyRemote(Op{Type: OpUpsert, Annotation: &a, Lamport: 41, Site: "remote"})

	op := s.AddLocal(testLine("host"))
	assert.Equal(t, uint64(42), op.Lamport)
}

func TestRemoveByOwner(t *testing.T) {
	s := NewStore()
	s.AddLocal(testLine("alice"))
	s.AddLocal(testLine("alice"))
	s.AddLocal(testLine("bob"))

	assert.Equal(t, 2, s.RemoveByOwner("alice"))
	assert.Equal(t, 1, s.Len())

	remaining := s.Annotations()
	require.Len(t, remaining, 1)
	assert.Equal(t, "bob", remaining[0].OwnerID)
}

func TestRemoveAll(t *testing.T) {
	s := NewStore()
	s.AddLocal(testLine("alice"))
	s.AddLocal(testLine("bob"))

	assert.Equal(t, 2, s.RemoveByOwner("all"))
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Annotations())
	assert.Empty(t, s.Snapshot())
}

func TestClearLocalEmitsOp(t *testing.T) {
	s := NewStore()
	s.AddLocal(testLine("host"))

	var emitted []Op
	s.SetOnLocalOp(func(op Op) { emitted = append(emitted, op) })
	s.ClearLocal("host")

	assert.Equal(t, 0, s.Len())
	require.Len(t, emitted, 1)
	assert.Equal(t, OpClear, emitted[0].Type)
	assert.Equal(t, "host", emitted[0].Target)
}

func TestAnnotationsArrivalOrder(t *testing.T) {
	s := NewStore()
	first := s.AddLocal(testLine("host")).Annotation.ID
	second := s.AddLocal(testLine("host")).Annotation.ID

	got := s.Annotations()
	require.Len(t, got, 2)
	assert.Equal(t, first, got[0].ID)
	assert.Equal(t, second, got[1].ID)
}

func TestSnapshotMergeRoundTrip(t *testing.T) {
	host := NewStore()
	host.AddLocal(testLine("host"))
	host.AddLocal(testLine("host"))

	client := NewStore()
	client.AddLocal(testLine("client"))

	added := client.Merge(host.Snapshot())
	assert.Len(t, added, 2)
	assert.Equal(t, 3, client.Len())

	// Merging again adds nothing.
	assert.Empty(t, client.Merge(host.Snapshot()))
}

func TestOpJSONRoundTrip(t *testing.T) {
	a := sketch.NewPolyline("host",
		[]geom.Point{geom.Pt(0, 0), geom.Pt(5, 5), geom.Pt(10, 0)},
		true,
		sketch.Style{Color: "red", StrokeWidth: 3, FilletRadius: 1.5, EndCap: sketch.CapArrow},
	)
	op := Op{Type: OpUpsert, Annotation: &a, Lamport: 7, Site: "site-1"}

	data, err := json.Marshal(op)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"kind":"polyline"`)

	var back Op
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, op.Type, back.Type)
	assert.Equal(t, op.Lamport, back.Lamport)
	require.NotNil(t, back.Annotation)
	assert.Equal(t, a, *back.Annotation)
}
