package store

import (
	"strings"

	"github.com/phrazzld/tick/internal/domain"
)

// Collection is the in-memory owner of the task list and of ID assignment.
// It performs no I/O; the service layer is responsible for syncing it with
// a persistence backend. Collections hand out value copies only, so callers
// can never mutate a stored task without going through the owner.
type Collection struct {
	tasks  []domain.Task
	nextID int
}

// NewCollection creates an empty Collection. The first assigned ID is 1.
func NewCollection() *Collection {
	return &Collection{
		tasks:  []domain.Task{},
		nextID: 1,
	}
}

// Add appends a task and recomputes the next-ID counter as max(id)+1.
// Linear over the collection, which is small by design.
func (c *Collection) Add(task domain.Task) {
	c.tasks = append(c.tasks, task)
	c.recomputeNextID()
}

// FindByID returns a copy of the first task with the given ID.
func (c *Collection) FindByID(id int) (domain.Task, bool) {
	for _, t := range c.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return domain.Task{}, false
}

// All returns an independent copy of the current task list.
func (c *Collection) All() []domain.Task {
	out := make([]domain.Task, len(c.tasks))
	copy(out, c.tasks)
	return out
}

// RemoveByID removes every task with the given ID (expected: zero or one)
// and reports whether anything was removed. The next-ID counter is not
// lowered, so deleted IDs are never handed out again.
func (c *Collection) RemoveByID(id int) bool {
	kept := c.tasks[:0]
	removed := false
	for _, t := range c.tasks {
		if t.ID == id {
			removed = true
			continue
		}
		kept = append(kept, t)
	}
	c.tasks = kept
	return removed
}

// Toggle flips the done flag of the task with the given ID and returns a
// copy of the updated task. Mutation stays inside the collection so no
// caller ever holds a live record.
func (c *Collection) Toggle(id int) (domain.Task, bool) {
	for i := range c.tasks {
		if c.tasks[i].ID == id {
			c.tasks[i].Done = !c.tasks[i].Done
			return c.tasks[i], true
		}
	}
	return domain.Task{}, false
}

// Len returns the number of tasks currently held.
func (c *Collection) Len() int {
	return len(c.tasks)
}

// NextID returns the ID that will be assigned to the next task. It is
// always strictly greater than the highest ID present.
func (c *Collection) NextID() int {
	return c.nextID
}

// LoadRecords replaces the entire collection with tasks parsed from
// records. Records with a non-positive ID or an empty post-trim title are
// skipped; the count of dropped records is returned so callers can log it.
func (c *Collection) LoadRecords(records []TaskRecord) (dropped int) {
	c.tasks = c.tasks[:0]
	for _, r := range records {
		title := strings.TrimSpace(r.Title)
		if r.ID < 1 || title == "" {
			dropped++
			continue
		}
		c.tasks = append(c.tasks, domain.Task{
			ID:    r.ID,
			Title: title,
			Done:  r.Done,
		})
	}
	c.recomputeNextID()
	return dropped
}

// Records converts the collection to its persistence-boundary
// representation. Inverse of LoadRecords for well-formed input.
func (c *Collection) Records() []TaskRecord {
	records := make([]TaskRecord, len(c.tasks))
	for i, t := range c.tasks {
		records[i] = TaskRecord{
			ID:    t.ID,
			Title: t.Title,
			Done:  t.Done,
		}
	}
	return records
}

func (c *Collection) recomputeNextID() {
	maxID := 0
	for _, t := range c.tasks {
		if t.ID > maxID {
			maxID = t.ID
		}
	}
	c.nextID = maxID + 1
}
