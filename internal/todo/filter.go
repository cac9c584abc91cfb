package todo

import (
	"time"

	"github.com/josephgoksu/todo/models"
)

// Filter narrows a listing. Nil fields are inactive; a task must satisfy
// every active field.
type Filter struct {
	Priority  *models.Priority
	Tag       *string
	DueBefore *time.Time
}

// Match reports whether t satisfies every active field. A due filter
// matches tasks due at or before the given instant; tasks without a due
// date never match it.
func (f Filter) Match(t models.Task) bool {
	if f.Priority != nil && t.Priority != *f.Priority {
		return false
	}
	if f.Tag != nil && !t.HasTag(*f.Tag) {
		return false
	}
	if f.DueBefore != nil {
		if t.DueDate == nil || t.DueDate.After(*f.DueBefore) {
			return false
		}
	}
	return true
}
