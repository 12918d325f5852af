package dedupe

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// memStore simulates an ordered table keyed by surrogate id.
type memStore struct {
	records []Record
	failIDs map[uint]error
}

func (m *memStore) load() ([]Record, error) {
	out := make([]Record, len(m.records))
	copy(out, m.records)
	return out, nil
}

func (m *memStore) remove(id uint) error {
	if err, ok := m.failIDs[id]; ok {
		return err
	}
	for i, rec := range m.records {
		if rec.ID == id {
			m.records = append(m.records[:i], m.records[i+1:]...)
			return nil
		}
	}
	return errors.New("not found")
}

func TestRunKeepsEarliestPerKey(t *testing.T) {
	store := &memStore{records: []Record{
		{ID: 1, Key: "U1"},
		{ID: 2, Key: "U1"},
		{ID: 3, Key: "U2"},
	}}
	engine := New(store.load, store.remove)

	report, err := engine.Run()
	assert.NoError(t, err)
	assert.Equal(t, 3, report.Scanned)
	assert.Equal(t, 1, report.Removed)
	assert.Equal(t, 0, report.Failed)
	assert.Len(t, report.Groups, 1)
	assert.Equal(t, "U1", report.Groups[0].Key)
	assert.Equal(t, 1, report.Groups[0].Duplicates)
	assert.Equal(t, []uint{2}, report.Groups[0].RemovedIDs)

	assert.Equal(t, []Record{{ID: 1, Key: "U1"}, {ID: 3, Key: "U2"}}, store.records)
}

func TestRunConvergesAndStaysConverged(t *testing.T) {
	store := &memStore{records: []Record{
		{ID: 10, Key: "A"},
		{ID: 11, Key: "A"},
		{ID: 12, Key: "A"},
		{ID: 13, Key: "B"},
	}}
	engine := New(store.load, store.remove)

	report, err := engine.Run()
	assert.NoError(t, err)
	assert.Equal(t, 2, report.Removed)

	// Second pass finds nothing to do and keeps the same canonical record.
	report, err = engine.Run()
	assert.NoError(t, err)
	assert.Equal(t, 0, report.Removed)
	assert.Empty(t, report.Groups)
	assert.Equal(t, uint(10), store.records[0].ID)
}

func TestRunEmptyStore(t *testing.T) {
	store := &memStore{}
	engine := New(store.load, store.remove)

	report, err := engine.Run()
	assert.NoError(t, err)
	assert.Equal(t, 0, report.Scanned)
	assert.Empty(t, report.Groups)
}

func TestRunLeavesSingletonGroupsAlone(t *testing.T) {
	store := &memStore{records: []Record{
		{ID: 1, Key: "U1"},
		{ID: 2, Key: "U2"},
	}}
	engine := New(store.load, store.remove)

	report, err := engine.Run()
	assert.NoError(t, err)
	assert.Equal(t, 0, report.Removed)
	assert.Empty(t, report.Groups)
	assert.Len(t, store.records, 2)
}

func TestRunContinuesAfterFailedDelete(t *testing.T) {
	store := &memStore{
		records: []Record{
			{ID: 1, Key: "U1"},
			{ID: 2, Key: "U1"},
			{ID: 3, Key: "U2"},
			{ID: 4, Key: "U2"},
		},
		failIDs: map[uint]error{2: errors.New("still referenced by contract 7")},
	}
	engine := New(store.load, store.remove)

	report, err := engine.Run()
	assert.NoError(t, err)
	assert.Equal(t, 1, report.Removed)
	assert.Equal(t, 1, report.Failed)
	assert.Len(t, report.Groups, 2)
	assert.Len(t, report.Groups[0].Failures, 1)
	assert.Equal(t, uint(2), report.Groups[0].Failures[0].ID)
	assert.Equal(t, []uint{4}, report.Groups[1].RemovedIDs)
}
