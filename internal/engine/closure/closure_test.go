package closure_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/reroot/internal/core/domain"
	"go.trai.ch/reroot/internal/core/ports/mocks"
	"go.trai.ch/reroot/internal/engine/closure"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

// fakeIndex is an in-memory index keyed by directory, where the directory is the package name.
type fakeIndex struct {
	records map[string]*domain.PackageRecord
	lookups map[string]int
}

func newFakeIndex(records ...*domain.PackageRecord) *fakeIndex {
	idx := &fakeIndex{records: make(map[string]*domain.PackageRecord), lookups: make(map[string]int)}
	for _, r := range records {
		r.Dir = r.Name
		idx.records[r.Name] = r
	}
	return idx
}

func (f *fakeIndex) Lookup(name string) (string, error) {
	f.lookups[name]++
	if _, ok := f.records[name]; ok {
		return name, nil
	}
	for _, dir := range sortedKeys(f.records) {
		for _, p := range f.records[dir].ProvidedNames() {
			if p == name {
				return dir, nil
			}
		}
	}
	return "", zerr.With(zerr.Wrap(domain.ErrPackageNotFound, "lookup"), "package", name)
}

func (f *fakeIndex) Record(dir string) (*domain.PackageRecord, error) {
	return f.records[dir], nil
}

func sortedKeys(m map[string]*domain.PackageRecord) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	for i := range keys {
		for j := i + 1; j < len(keys); j++ {
			if keys[j] < keys[i] {
				keys[i], keys[j] = keys[j], keys[i]
			}
		}
	}
	return keys
}

func pkg(name, version string, size int64, depends ...string) *domain.PackageRecord {
	return &domain.PackageRecord{
		Name:     name,
		Version:  version,
		Depends:  depends,
		Filename: name + "-" + version + "-x86_64.pkg.tar.zst",
		Checksum: strings.Repeat("0", domain.ChecksumLength),
		Size:     size,
	}
}

func withProvides(r *domain.PackageRecord, provides ...string) *domain.PackageRecord {
	r.Provides = provides
	return r
}

func coreIndex() *fakeIndex {
	return newFakeIndex(
		pkg("pacman", "6.1.0-3", 900, "bash", "glibc>=2.38", "libarchive", "curl"),
		withProvides(pkg("bash", "5.2.026-2", 1800, "readline>=7.0", "glibc", "ncurses"), "sh"),
		pkg("glibc", "2.39-1", 10000, "linux-api-headers>=4.10", "tzdata", "filesystem"),
		pkg("libarchive", "3.7.4-1", 500, "acl", "bzip2", "glibc", "zlib"),
		pkg("curl", "8.7.1-6", 700, "glibc", "zlib", "sh"),
		pkg("readline", "8.2.010-1", 300, "glibc", "ncurses"),
		pkg("ncurses", "6.5-3", 1100, "glibc"),
		pkg("linux-api-headers", "6.8-1", 1300),
		pkg("tzdata", "2024a-2", 250),
		pkg("filesystem", "2024.04.07-1", 20, "iana-etc"),
		pkg("iana-etc", "20240305-1", 400),
		pkg("acl", "2.3.2-1", 120, "attr"),
		pkg("attr", "2.5.2-1", 70, "glibc"),
		pkg("bzip2", "1.0.8-6", 50, "glibc", "sh"),
		pkg("zlib", "1:1.3.1-1", 90, "glibc"),
		pkg("openssh", "9.7p1-2", 1000, "glibc", "krb5"),
		pkg("krb5", "1.21.2-2", 1500, "glibc"),
	)
}

func TestResolve_Completeness(t *testing.T) {
	idx := coreIndex()

	plan, err := closure.Resolve(idx, []string{"pacman"})
	require.NoError(t, err)

	for _, name := range plan.Set.Names() {
		dir, err := idx.Lookup(name)
		require.NoError(t, err)
		record, err := idx.Record(dir)
		require.NoError(t, err)
		for _, dep := range record.DependencyNames() {
			assert.True(t, plan.Set.Has(dep), "%s depends on %s, which is missing", name, dep)
		}
	}
}

func TestResolve_Minimality(t *testing.T) {
	idx := coreIndex()

	plan, err := closure.Resolve(idx, []string{"pacman"})
	require.NoError(t, err)

	reached := map[string]bool{"pacman": true}
	for _, name := range plan.Set.Names() {
		dir, _ := idx.Lookup(name)
		record, _ := idx.Record(dir)
		for _, dep := range record.DependencyNames() {
			reached[dep] = true
		}
	}
	for _, name := range plan.Set.Names() {
		assert.True(t, reached[name], "%s is neither a seed nor a dependency of a member", name)
	}

	assert.False(t, plan.Set.Has("openssh"))
	assert.False(t, plan.Set.Has("krb5"))
}

func TestResolve_ProvidedNames(t *testing.T) {
	plan, err := closure.Resolve(coreIndex(), []string{"pacman"})
	require.NoError(t, err)

	assert.True(t, plan.Set.Has("sh"), "the set keeps the dependency name")
	assert.NotContains(t, plan.Names(), "sh")

	var bashCount int
	for _, name := range plan.Names() {
		if name == "bash" {
			bashCount++
		}
	}
	assert.Equal(t, 1, bashCount, "records are unique by name")
}

func TestResolve_Plan(t *testing.T) {
	plan, err := closure.Resolve(coreIndex(), []string{"pacman"})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"acl", "attr", "bash", "bzip2", "curl", "filesystem", "glibc", "iana-etc",
		"libarchive", "linux-api-headers", "ncurses", "pacman", "readline", "tzdata", "zlib",
	}, plan.Names())
	assert.Equal(t, int64(17600), plan.DownloadSize)
	assert.Len(t, plan.ID, 16)

	again, err := closure.Resolve(coreIndex(), []string{"pacman"})
	require.NoError(t, err)
	assert.Equal(t, plan.ID, again.ID)

	bumped := coreIndex()
	bumped.records["zlib"].Version = "1:1.3.1-2"
	changed, err := closure.Resolve(bumped, []string{"pacman"})
	require.NoError(t, err)
	assert.NotEqual(t, plan.ID, changed.ID)
}

func TestResolve_Cycle(t *testing.T) {
	idx := newFakeIndex(
		pkg("a", "1-1", 1, "b"),
		pkg("b", "1-1", 1, "c>=1"),
		pkg("c", "1-1", 1, "a"),
	)

	plan, err := closure.Resolve(idx, []string{"a"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, plan.Set.Names())
}

func TestResolve_SelfDependency(t *testing.T) {
	plan, err := closure.Resolve(newFakeIndex(pkg("loop", "1-1", 1, "loop")), []string{"loop"})
	require.NoError(t, err)
	assert.Equal(t, []string{"loop"}, plan.Names())
}

func TestResolve_MultipleSeeds(t *testing.T) {
	plan, err := closure.Resolve(coreIndex(), []string{"openssh", "tzdata", "openssh", ""})
	require.NoError(t, err)
	assert.Equal(t, []string{"filesystem", "glibc", "iana-etc", "krb5", "linux-api-headers", "openssh", "tzdata"}, plan.Names())
}

func TestResolve_NotFound(t *testing.T) {
	idx := newFakeIndex(pkg("pacman", "6.1.0-3", 1, "gpgme"))

	_, err := closure.Resolve(idx, []string{"pacman"})
	require.ErrorIs(t, err, domain.ErrPackageNotFound)

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok, "expected *zerr.Error, got %T", err)
	assert.Equal(t, "gpgme", zErr.Metadata()["package"])
	assert.Equal(t, "pacman", zErr.Metadata()["required_by"])
}

func TestResolve_InvalidRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	idx := mocks.NewMockPackageIndex(ctrl)

	idx.EXPECT().Lookup("broken").Return("broken-1-1", nil)
	idx.EXPECT().Record("broken-1-1").Return(&domain.PackageRecord{Name: "broken", Dir: "broken-1-1"}, nil)

	_, err := closure.Resolve(idx, []string{"broken"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrInvalidRecord.Error())
}

func TestResolve_LooksUpEachNameOnce(t *testing.T) {
	idx := coreIndex()

	_, err := closure.Resolve(idx, []string{"pacman"})
	require.NoError(t, err)

	for name, count := range idx.lookups {
		assert.Equal(t, 1, count, name)
	}
}
