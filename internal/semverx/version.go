// Package semverx adapts Masterminds/semver/v3 to TacoPKM's Version and
// VersionConstraint vocabulary, including the "latest stable excludes
// pre-releases unless the constraint explicitly admits them" rule used by
// the resolver.
package semverx

import (
	"fmt"
	"sort"

	"github.com/Masterminds/semver/v3"
)

// Version is a parsed SemVer 2.0.0 release.
type Version struct {
	raw *semver.Version
}

// ParseVersion parses s as a strict SemVer version.
func ParseVersion(s string) (Version, error) {
	v, err := semver.StrictNewVersion(s)
	if err != nil {
		return Version{}, fmt.Errorf("invalid version %q: %w", s, err)
	}
	return Version{raw: v}, nil
}

func (v Version) String() string { return v.raw.String() }

// IsPreRelease reports whether v carries a pre-release component.
func (v Version) IsPreRelease() bool { return v.raw.Prerelease() != "" }

// Compare follows semver.Version.Compare: <0, 0, >0.
func (v Version) Compare(other Version) int { return v.raw.Compare(other.raw) }

// LessThan reports whether v sorts before other.
func (v Version) LessThan(other Version) bool { return v.raw.LessThan(other.raw) }

// Constraint is a parsed SemVer range expression (e.g. "^1.2.0", "~0.5.2",
// an exact version, or "*").
type Constraint struct {
	raw string
	c   *semver.Constraints
}

// ParseConstraint parses s as a SemVer constraint.
func ParseConstraint(s string) (Constraint, error) {
	if s == "" {
		s = "*"
	}
	c, err := semver.NewConstraint(s)
	if err != nil {
		return Constraint{}, fmt.Errorf("invalid version constraint %q: %w", s, err)
	}
	return Constraint{raw: s, c: c}, nil
}

func (c Constraint) String() string { return c.raw }

// Satisfies reports whether v satisfies c. A pre-release version only
// satisfies a constraint that itself names a pre-release (matching
// Masterminds/semver's own comparison rule), so "latest stable" selection
// never has to special-case it beyond filtering pre-releases up front.
func (c Constraint) Satisfies(v Version) bool {
	return c.c.Check(v.raw)
}

// SortVersions sorts versions ascending.
func SortVersions(versions []Version) {
	sort.Slice(versions, func(i, j int) bool { return versions[i].raw.LessThan(versions[j].raw) })
}

// FilterStable returns the subset of versions with no pre-release component.
func FilterStable(versions []Version) []Version {
	out := make([]Version, 0, len(versions))
	for _, v := range versions {
		if !v.IsPreRelease() {
			out = append(out, v)
		}
	}
	return out
}

// MaxSatisfying returns the highest version in available that satisfies c,
// and true, or the zero Version and false if none does. Ties cannot occur:
// SemVer ordering over a set of distinct versions is total.
func MaxSatisfying(available []Version, c Constraint) (Version, bool) {
	var best Version
	found := false
	for _, v := range available {
		if !c.Satisfies(v) {
			continue
		}
		if !found || best.LessThan(v) {
			best = v
			found = true
		}
	}
	return best, found
}

// MaxStable returns the highest stable (non-pre-release) version in
// available, and true, or false if available contains no stable version.
func MaxStable(available []Version) (Version, bool) {
	stable := FilterStable(available)
	if len(stable) == 0 {
		return Version{}, false
	}
	best := stable[0]
	for _, v := range stable[1:] {
		if best.LessThan(v) {
			best = v
		}
	}
	return best, true
}
