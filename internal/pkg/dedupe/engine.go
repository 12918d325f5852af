package dedupe

import "fmt"

// Record is the minimal view of a row the engine needs: the surrogate key in
// creation order and the business key used to detect duplicate ingestion.
type Record struct {
	ID  uint
	Key string
}

// Failure records one duplicate that could not be deleted, e.g. because it is
// still referenced elsewhere.
type Failure struct {
	ID  uint
	Err string
}

// GroupReport describes one business-key group that held duplicates.
type GroupReport struct {
	Key        string
	Duplicates int
	RemovedIDs []uint
	Failures   []Failure
}

// Report is the outcome of one reconciliation pass.
type Report struct {
	Scanned int
	Groups  []GroupReport
	Removed int
	Failed  int
}

// Engine collapses duplicate records sharing a business key down to one
// canonical record per key: the one with the lowest surrogate key. It is
// parameterized by a loader and a deleter so the same pass works for any
// entity with a business key.
type Engine struct {
	load   func() ([]Record, error)
	remove func(id uint) error
}

// New creates an engine. load must return records ordered by surrogate key
// ascending; that ordering defines which record is canonical.
func New(load func() ([]Record, error), remove func(id uint) error) *Engine {
	return &Engine{load: load, remove: remove}
}

// Run performs one reconciliation pass. Duplicates are deleted one at a time
// so an interrupted pass leaves an inspectable partial result; a failed
// delete is recorded and the pass moves on. An empty store yields an empty
// report, not an error.
func (e *Engine) Run() (*Report, error) {
	records, err := e.load()
	if err != nil {
		return nil, fmt.Errorf("load records: %w", err)
	}

	// Group by business key, keeping first-seen key order for the report.
	groups := make(map[string][]Record)
	var keyOrder []string
	for _, rec := range records {
		if _, ok := groups[rec.Key]; !ok {
			keyOrder = append(keyOrder, rec.Key)
		}
		groups[rec.Key] = append(groups[rec.Key], rec)
	}

	report := &Report{Scanned: len(records)}
	for _, key := range keyOrder {
		group := groups[key]
		if len(group) < 2 {
			continue
		}

		// group[0] is the earliest row and stays canonical. No field merging
		// from later duplicates; the canonical row's values are authoritative.
		gr := GroupReport{Key: key, Duplicates: len(group) - 1}
		for _, dup := range group[1:] {
			if err := e.remove(dup.ID); err != nil {
				gr.Failures = append(gr.Failures, Failure{ID: dup.ID, Err: err.Error()})
				report.Failed++
				continue
			}
			gr.RemovedIDs = append(gr.RemovedIDs, dup.ID)
			report.Removed++
		}
		report.Groups = append(report.Groups, gr)
	}

	return report, nil
}
