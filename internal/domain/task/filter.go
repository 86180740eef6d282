package task

// Filter holds optional filter criteria for listing tasks.
// A nil Completed matches every task.
type Filter struct {
	Completed *bool
}

// Matches reports whether t satisfies the filter.
func (f Filter) Matches(t *Task) bool {
	if f.Completed != nil && *f.Completed != t.Completed {
		return false
	}
	return true
}
