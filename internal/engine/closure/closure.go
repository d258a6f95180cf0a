// Package closure computes the set of packages a seed list transitively depends on.
package closure

import (
	"fmt"
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/reroot/internal/core/domain"
	"go.trai.ch/reroot/internal/core/ports"
	"go.trai.ch/zerr"
)

// Plan is the outcome of a resolution run.
type Plan struct {
	// Set holds every needed name: the seeds and every dependency name reached from them.
	Set *domain.DependencySet

	// Records holds the package each member resolved to, sorted by name without repeats.
	// Two members resolve to one record when one of them is a provided name.
	Records []*domain.PackageRecord

	// ID identifies the exact package versions of the plan.
	ID string

	// DownloadSize is the sum of the records' compressed sizes in bytes.
	DownloadSize int64
}

// Names returns the record names in plan order.
func (p *Plan) Names() []string {
	names := make([]string, 0, len(p.Records))
	for _, r := range p.Records {
		names = append(names, r.Name)
	}
	return names
}

// Resolve computes the smallest superset of seeds closed under the depends relation.
//
// Every pass visits the current members in lexical order, resolves each through the index
// and adds its dependency names. Resolution stops after a pass that adds nothing. Membership
// only grows and is bounded by the index size, so cycles terminate without special handling.
func Resolve(index ports.PackageIndex, seeds []string) (*Plan, error) {
	set := domain.NewDependencySet(seeds...)
	resolved := make(map[string]*domain.PackageRecord)
	requiredBy := make(map[string]string)

	for {
		dirty := false
		for _, name := range set.Names() {
			record, ok := resolved[name]
			if !ok {
				var err error
				record, err = resolve(index, name)
				if err != nil {
					if parent, found := requiredBy[name]; found {
						err = zerr.With(err, "required_by", parent)
					}
					return nil, err
				}
				resolved[name] = record
			}

			for _, dep := range record.DependencyNames() {
				if set.Add(dep) {
					requiredBy[dep] = record.Name
					dirty = true
				}
			}
		}
		if !dirty {
			break
		}
	}

	return newPlan(set, resolved), nil
}

func resolve(index ports.PackageIndex, name string) (*domain.PackageRecord, error) {
	dir, err := index.Lookup(name)
	if err != nil {
		return nil, err
	}
	record, err := index.Record(dir)
	if err != nil {
		return nil, err
	}
	if err := record.Validate(); err != nil {
		return nil, err
	}
	return record, nil
}

func newPlan(set *domain.DependencySet, resolved map[string]*domain.PackageRecord) *Plan {
	byName := make(map[string]*domain.PackageRecord, len(resolved))
	for _, record := range resolved {
		byName[record.Name] = record
	}

	records := make([]*domain.PackageRecord, 0, len(byName))
	for _, record := range byName {
		records = append(records, record)
	}
	slices.SortFunc(records, func(a, b *domain.PackageRecord) int {
		return strings.Compare(a.Name, b.Name)
	})

	digest := xxhash.New()
	var size int64
	for _, record := range records {
		_, _ = digest.WriteString(record.Name)
		_, _ = digest.Write([]byte{'='})
		_, _ = digest.WriteString(record.Version)
		_, _ = digest.Write([]byte{0})
		size += record.Size
	}

	return &Plan{
		Set:          set,
		Records:      records,
		ID:           fmt.Sprintf("%016x", digest.Sum64()),
		DownloadSize: size,
	}
}
