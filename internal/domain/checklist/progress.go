package checklist

import "math"

// Counts returns the number of resolved (non-pending) items and the total
// item count across every category of the section.
func (s Section) Counts() (done, total int) {
	for _, c := range s.Categories {
		for _, it := range c.Items {
			total++
			if it.Status != StatusPending {
				done++
			}
		}
	}
	return done, total
}

// Progress returns the rounded percentage of resolved items, 0 for an empty
// section.
func (s Section) Progress() int {
	done, total := s.Counts()
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(done) / float64(total)))
}
