package schedule

import (
	"sort"
	"time"

	"inbox-planner/internal/model"
)

// Allocation is the result of one allocator pass.
type Allocation struct {
	Blocks []model.ProposedBlock
	// Omitted holds the ids of tasks that found no slot within the lookahead window.
	Omitted []string
}

// Allocate places one block per task, greedily and in input order, into free time
// of the working days between now and the lookahead horizon. It returns nil for an
// invalid window.
func Allocate(tasks []model.Task, busy []model.BusyInterval, w Window, now time.Time) []model.ProposedBlock {
	a, err := AllocateWithReport(tasks, busy, w, now)
	if err != nil {
		return nil
	}
	return a.Blocks
}

// AllocateWithReport is Allocate plus the ids of the tasks that could not be placed.
func AllocateWithReport(tasks []model.Task, busy []model.BusyInterval, w Window, now time.Time) (Allocation, error) {
	if err := w.Validate(); err != nil {
		return Allocation{}, err
	}

	loc := w.location()
	now = now.In(loc)
	horizon := model.DateOf(now).AddDays(w.LookaheadDays)

	cursor := w.at(now, w.WorkStartHour)
	if now.After(cursor) {
		cursor = now
	}

	busy = sortedByStart(busy)

	var out Allocation
	for i, t := range tasks {
		block, next, ok := place(t, cursor, busy, w, horizon)
		if !ok {
			// The cursor is past the horizon; nothing later can fit either.
			for _, rest := range tasks[i:] {
				out.Omitted = append(out.Omitted, rest.ID)
			}
			break
		}
		out.Blocks = append(out.Blocks, block)
		cursor = next
	}
	return out, nil
}

// place probes forward from cursor until the block fits or the horizon is passed.
func place(t model.Task, cursor time.Time, busy []model.BusyInterval, w Window, horizon model.Date) (model.ProposedBlock, time.Time, bool) {
	for {
		for !cursor.Before(w.at(cursor, w.WorkEndHour)) {
			cursor = w.at(cursor.AddDate(0, 0, 1), w.WorkStartHour)
		}
		// A day ending at 24:00 lets the probe step cross midnight into off-hours.
		if start := w.at(cursor, w.WorkStartHour); cursor.Before(start) {
			cursor = start
		}
		if model.DateOf(cursor).After(horizon) {
			return model.ProposedBlock{}, cursor, false
		}

		end := cursor.Add(w.BlockDuration)
		if !end.After(w.at(cursor, w.WorkEndHour)) && free(busy, cursor, end) {
			return model.ProposedBlock{
				Start:        cursor.UTC(),
				End:          end.UTC(),
				Title:        t.Title,
				LinkedTaskID: t.ID,
			}, end.Add(w.Buffer), true
		}
		cursor = cursor.Add(w.ProbeStep)
	}
}

func free(busy []model.BusyInterval, start, end time.Time) bool {
	for _, b := range busy {
		if !b.Start.Before(end) {
			// Sorted by start: nothing later can intersect.
			break
		}
		if b.Overlaps(start, end) {
			return false
		}
	}
	return true
}

func sortedByStart(busy []model.BusyInterval) []model.BusyInterval {
	if sort.SliceIsSorted(busy, func(i, j int) bool { return busy[i].Start.Before(busy[j].Start) }) {
		return busy
	}
	out := make([]model.BusyInterval, len(busy))
	copy(out, busy)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	return out
}
