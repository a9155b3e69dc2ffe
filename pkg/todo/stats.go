package todo

// Stats summarises the collection for the progress panel.
type Stats struct {
	Total      int
	Completed  int
	Categories []string // distinct non-empty categories, first-seen order
}

// Progress is the completed share in percent.
func (s Stats) Progress() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Completed) / float64(s.Total) * 100
}

// ComputeStats counts tasks and collects their categories.
func ComputeStats(tasks []Task) Stats {
	st := Stats{Total: len(tasks), Categories: []string{}}
	seen := make(map[string]bool)
	for _, t := range tasks {
		if t.Completed {
			st.Completed++
		}
		if t.Category != "" && !seen[t.Category] {
			seen[t.Category] = true
			st.Categories = append(st.Categories, t.Category)
		}
	}
	return st
}
