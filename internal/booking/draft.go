package booking

import (
	"context"
	"log/slog"
	"sync"

	"podly/internal/api"
)

// slotFetcher is the slice of the API client the draft needs.
type slotFetcher interface {
	Slots(ctx context.Context, podID, date string) ([]api.Slot, error)
}

type fetchState int

const (
	fetchPending fetchState = iota
	fetchDone
	fetchFailed
)

// cacheEntry holds the fetch result for one (pod, date) pair. Identical
// pairs across rows share the same entry for the lifetime of the draft.
type cacheEntry struct {
	state fetchState
	slots []api.Slot
}

// row is one date line of the draft. Chosen is ordered and duplicate-free.
type row struct {
	date   string
	chosen []string
}

// Draft assembles a multi-date, multi-slot booking before submission.
//
// Slot options for a row always exclude that row's already chosen slot ids;
// slots are date-scoped, so the same id may appear on different dates. The
// total is recomputed from scratch on every read rather than adjusted
// incrementally, so it cannot drift from the chosen set.
type Draft struct {
	mu      sync.Mutex
	podID   string
	fetcher slotFetcher
	rows    []*row
	cache   map[string]*cacheEntry

	onChange func()
}

// NewDraft creates a draft for a pod with a single empty date row.
func NewDraft(podID string, fetcher slotFetcher) *Draft {
	return &Draft{
		podID:   podID,
		fetcher: fetcher,
		rows:    []*row{{}},
		cache:   make(map[string]*cacheEntry),
	}
}

// OnChange registers a callback fired whenever an asynchronous slot fetch
// completes. UI layers use it to re-render.
func (d *Draft) OnChange(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.onChange = fn
}

// PodID returns the pod this draft books.
func (d *Draft) PodID() string {
	return d.podID
}

// Rows returns the current number of date rows.
func (d *Draft) Rows() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.rows)
}

// Date returns row i's date, or "" when unset.
func (d *Draft) Date(i int) string {
	d.mu.Lock()
	defer d.mu.Unlock()
	if i < 0 || i >= len(d.rows) {
		return ""
	}
	return d.rows[i].date
}

// AddRow appends an empty date row.
func (d *Draft) AddRow() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.rows = append(d.rows, &row{})
}

// RemoveRow drops row i. The last remaining row is cleared instead of
// removed so the draft always has at least one row.
func (d *Draft) RemoveRow(i int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if i < 0 || i >= len(d.rows) {
		return
	}
	if len(d.rows) == 1 {
		d.rows[0] = &row{}
		return
	}
	d.rows = append(d.rows[:i], d.rows[i+1:]...)
}

// SetDate sets row i's date and starts a slot fetch for (pod, date) unless a
// fetch for that key already ran or is running. Changing a row's date drops
// that row's chosen slots, since slots are date-scoped.
func (d *Draft) SetDate(ctx context.Context, i int, date string) {
	d.mu.Lock()
	if i < 0 || i >= len(d.rows) {
		d.mu.Unlock()
		return
	}
	if d.rows[i].date == date {
		d.mu.Unlock()
		return
	}
	d.rows[i].date = date
	d.rows[i].chosen = nil

	if date == "" {
		d.mu.Unlock()
		return
	}
	key := d.podID + "|" + date
	if _, ok := d.cache[key]; ok {
		d.mu.Unlock()
		return
	}
	entry := &cacheEntry{state: fetchPending}
	d.cache[key] = entry
	d.mu.Unlock()

	go d.fetch(ctx, entry, key, date)
}

func (d *Draft) fetch(ctx context.Context, entry *cacheEntry, key, date string) {
	slots, err := d.fetcher.Slots(ctx, d.podID, date)

	d.mu.Lock()
	if d.cache[key] != entry {
		// The draft was reset while this fetch was in flight.
		d.mu.Unlock()
		return
	}
	if err != nil {
		// An isolated failure: this row shows no options, others are
		// unaffected.
		slog.Debug("Slot fetch failed", "pod", d.podID, "date", date, "error", err)
		entry.state = fetchFailed
	} else {
		entry.state = fetchDone
		entry.slots = slots
	}
	fn := d.onChange
	d.mu.Unlock()

	if fn != nil {
		fn()
	}
}

// Loading reports whether row i's slot fetch is still in flight.
func (d *Draft) Loading(i int) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if i < 0 || i >= len(d.rows) || d.rows[i].date == "" {
		return false
	}
	entry := d.cache[d.podID+"|"+d.rows[i].date]
	return entry != nil && entry.state == fetchPending
}

// Options returns the selectable slot options for row i: the fetched slots
// for its date minus the ids already chosen in that same row. Unavailable
// slots are included so the UI can show them disabled. An unset or pending
// date yields no options.
func (d *Draft) Options(i int) []api.Slot {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.optionsLocked(i)
}

func (d *Draft) optionsLocked(i int) []api.Slot {
	if i < 0 || i >= len(d.rows) || d.rows[i].date == "" {
		return nil
	}
	entry := d.cache[d.podID+"|"+d.rows[i].date]
	if entry == nil || entry.state != fetchDone {
		return nil
	}
	chosen := make(map[string]bool, len(d.rows[i].chosen))
	for _, id := range d.rows[i].chosen {
		chosen[id] = true
	}
	var options []api.Slot
	for _, slot := range entry.slots {
		if !chosen[slot.SlotID] {
			options = append(options, slot)
		}
	}
	return options
}

// Choose adds a slot to row i. Slots already chosen in that row, unknown
// ids, and unavailable slots are ignored; Choose reports whether the
// selection changed.
func (d *Draft) Choose(i int, slotID string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, slot := range d.optionsLocked(i) {
		if slot.SlotID == slotID {
			if !slot.IsAvailable {
				return false
			}
			d.rows[i].chosen = append(d.rows[i].chosen, slotID)
			return true
		}
	}
	return false
}

// Unchoose removes a slot from row i's selection.
func (d *Draft) Unchoose(i int, slotID string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if i < 0 || i >= len(d.rows) {
		return
	}
	chosen := d.rows[i].chosen
	for j, id := range chosen {
		if id == slotID {
			d.rows[i].chosen = append(chosen[:j], chosen[j+1:]...)
			return
		}
	}
}

// Chosen returns the slot records currently chosen for row i, in selection
// order.
func (d *Draft) Chosen(i int) []api.Slot {
	d.mu.Lock()
	defer d.mu.Unlock()
	if i < 0 || i >= len(d.rows) || d.rows[i].date == "" {
		return nil
	}
	entry := d.cache[d.podID+"|"+d.rows[i].date]
	if entry == nil || entry.state != fetchDone {
		return nil
	}
	byID := make(map[string]api.Slot, len(entry.slots))
	for _, slot := range entry.slots {
		byID[slot.SlotID] = slot
	}
	var chosen []api.Slot
	for _, id := range d.rows[i].chosen {
		if slot, ok := byID[id]; ok {
			chosen = append(chosen, slot)
		}
	}
	return chosen
}

// TotalCost is the sum of unit prices over every chosen slot across all
// rows, recomputed from scratch.
func (d *Draft) TotalCost() int64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	var total int64
	for i := range d.rows {
		if d.rows[i].date == "" {
			continue
		}
		entry := d.cache[d.podID+"|"+d.rows[i].date]
		if entry == nil || entry.state != fetchDone {
			continue
		}
		prices := make(map[string]int64, len(entry.slots))
		for _, slot := range entry.slots {
			prices[slot.SlotID] = slot.UnitPrice
		}
		for _, id := range d.rows[i].chosen {
			total += prices[id]
		}
	}
	return total
}

// ChosenCount is the number of chosen slots across all rows.
func (d *Draft) ChosenCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	count := 0
	for i := range d.rows {
		count += len(d.rows[i].chosen)
	}
	return count
}

// Selections converts the draft into the submission payload, skipping rows
// with no date or no chosen slots.
func (d *Draft) Selections() []api.SlotSelection {
	d.mu.Lock()
	defer d.mu.Unlock()
	var selections []api.SlotSelection
	for i := range d.rows {
		if d.rows[i].date == "" || len(d.rows[i].chosen) == 0 {
			continue
		}
		selections = append(selections, api.SlotSelection{
			Date:    d.rows[i].date,
			SlotIDs: append([]string{}, d.rows[i].chosen...),
		})
	}
	return selections
}

// Reset returns the draft to a single empty row and invalidates in-flight
// fetches.
func (d *Draft) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.rows = []*row{{}}
	d.cache = make(map[string]*cacheEntry)
}
