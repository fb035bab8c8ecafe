package column

import (
	"fmt"
	"sort"
	"strings"

	"surveyprep/domain/core"
)

// Classification is a validated bucket assignment for one dataset header.
// Once built, every header has exactly one bucket and the table has no
// registrations outside the header. Downstream components trust this and do
// not re-check coverage; the artifact emitter keeps its own bucket check as a
// second gate.
type Classification struct {
	headers []string
	specs   []Spec
	byName  map[string]Spec
	target  string
	hash    core.TableHash
}

// Classify validates the column table against the full ordered header list.
// It fails with ErrSchemaMismatch before any row is read: unassigned headers,
// stale registrations, and count drift all halt the run here.
func Classify(headers []string, t *Table) (*Classification, error) {
	if len(headers) == 0 {
		return nil, core.NewSchemaMismatchError("header list is empty")
	}

	seen := make(map[string]bool, len(headers))
	specs := make([]Spec, 0, len(headers))
	byName := make(map[string]Spec, len(headers))
	var unassigned []string

	for _, h := range headers {
		if seen[h] {
			return nil, core.NewSchemaMismatchError(fmt.Sprintf("duplicate header %q", h))
		}
		seen[h] = true

		spec, ok := t.Lookup(h)
		if !ok {
			unassigned = append(unassigned, h)
			continue
		}
		specs = append(specs, spec)
		byName[h] = spec
	}
	if len(unassigned) > 0 {
		return nil, core.NewSchemaMismatchError(
			fmt.Sprintf("%d header(s) not registered in the column table: %s",
				len(unassigned), strings.Join(unassigned, ", ")))
	}

	// The table may carry registrations for columns the dataset no longer
	// has; the count check catches those even before naming them.
	if t.Len() != len(headers) {
		stale := t.staleRegistrations(seen)
		return nil, core.NewSchemaMismatchError(
			fmt.Sprintf("column table registers %d column(s), header has %d (stale: %s)",
				t.Len(), len(headers), strings.Join(stale, ", ")))
	}

	if _, ok := byName[t.Target()]; !ok {
		return nil, core.NewSchemaMismatchError(
			fmt.Sprintf("target column %q is not in the header", t.Target()))
	}

	return &Classification{
		headers: headers,
		specs:   specs,
		byName:  byName,
		target:  t.Target(),
		hash:    t.Hash(),
	}, nil
}

func (t *Table) staleRegistrations(headerSet map[string]bool) []string {
	var stale []string
	for name := range t.specs {
		if !headerSet[name] {
			stale = append(stale, name)
		}
	}
	sort.Strings(stale)
	return stale
}

// Headers returns the dataset header in original order.
func (c *Classification) Headers() []string { return c.headers }

// Specs returns the per-column specs in header order.
func (c *Classification) Specs() []Spec { return c.specs }

// Lookup returns the spec for one header.
func (c *Classification) Lookup(name string) (Spec, bool) {
	spec, ok := c.byName[name]
	return spec, ok
}

// Bucket returns the bucket of one header, or empty if unknown.
func (c *Classification) Bucket(name string) Bucket {
	return c.byName[name].Bucket
}

// Target returns the target column name.
func (c *Classification) Target() string { return c.target }

// TableHash returns the hash of the table this classification came from.
func (c *Classification) TableHash() core.TableHash { return c.hash }

// CountByBucket tallies headers per bucket, used for logging and the run
// manifest.
func (c *Classification) CountByBucket() map[Bucket]int {
	counts := make(map[Bucket]int, 5)
	for _, spec := range c.specs {
		counts[spec.Bucket]++
	}
	return counts
}
