package task

// Stats holds the counters shown next to the task list.
type Stats struct {
	Total     int
	Completed int
}

// Open returns the number of tasks not yet completed.
func (s Stats) Open() int {
	return s.Total - s.Completed
}

// CountStats tallies total and completed tasks.
func CountStats(tasks []Task) Stats {
	s := Stats{Total: len(tasks)}
	for i := range tasks {
		if tasks[i].Completed {
			s.Completed++
		}
	}
	return s
}
