// Package statistics aggregates classification outcomes across simulation
// sweeps: counts per category, observed proportions and confidence bounds.
package statistics

import (
	"fmt"
	"math"
	"sort"
)

// Tally tracks how often each classification category was observed.
type Tally struct {
	Total  int
	Counts map[string]int
}

// New creates an empty tally.
func New() *Tally {
	return &Tally{Counts: make(map[string]int)}
}

// Add records one classification outcome.
func (t *Tally) Add(category string) {
	t.Counts[category]++
	t.Total++
}

// Merge folds another tally into this one. Counts are additive, so merge
// order never changes the result.
func (t *Tally) Merge(other *Tally) {
	for category, n := range other.Counts {
		t.Counts[category] += n
	}
	t.Total += other.Total
}

// Proportion returns the observed frequency of a category in [0, 1].
func (t *Tally) Proportion(category string) float64 {
	if t.Total == 0 {
		return 0
	}
	return float64(t.Counts[category]) / float64(t.Total)
}

// StdError returns the standard error of the observed proportion.
func (t *Tally) StdError(category string) float64 {
	if t.Total == 0 {
		return 0
	}
	p := t.Proportion(category)
	return math.Sqrt(p * (1 - p) / float64(t.Total))
}

// ConfidenceInterval95 returns the 95% confidence interval for the
// proportion of a category, clamped to [0, 1].
func (t *Tally) ConfidenceInterval95(category string) (float64, float64) {
	p := t.Proportion(category)
	margin := 1.96 * t.StdError(category)
	return math.Max(0, p-margin), math.Min(1, p+margin)
}

// Categories returns the observed categories ordered by count descending,
// ties broken by name, so reports are stable.
func (t *Tally) Categories() []string {
	categories := make([]string, 0, len(t.Counts))
	for category := range t.Counts {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool {
		if t.Counts[categories[i]] != t.Counts[categories[j]] {
			return t.Counts[categories[i]] > t.Counts[categories[j]]
		}
		return categories[i] < categories[j]
	})
	return categories
}

// Validate checks internal consistency before results are reported.
func (t *Tally) Validate() error {
	sum := 0
	for category, n := range t.Counts {
		if n < 0 {
			return fmt.Errorf("negative count for %q: %d", category, n)
		}
		sum += n
	}
	if sum != t.Total {
		return fmt.Errorf("count sum %d does not match total %d", sum, t.Total)
	}
	return nil
}
