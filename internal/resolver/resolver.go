// Package resolver implements recursive dependency resolution and
// installation: version selection under semver constraints, cycle and
// conflict detection, and extraction from a content-addressed store.
// Resolution is depth-first and strictly sequential because the resolved
// set is the single conflict oracle and must see every prior decision
// before the next one is made.
package resolver

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/ethereum/go-ethereum/common"

	"github.com/Doner357/TacoPKM-CLI/internal/access"
	"github.com/Doner357/TacoPKM-CLI/internal/archiver"
	"github.com/Doner357/TacoPKM-CLI/internal/model"
	"github.com/Doner357/TacoPKM-CLI/internal/semverx"
	"github.com/Doner357/TacoPKM-CLI/internal/xerrors"
)

// ChainReader is the read-only chain surface the resolver needs; a real
// run supplies *chainclient.Client, tests supply a fake.
type ChainReader interface {
	GetLibraryInfo(ctx context.Context, name model.LibraryName) (model.LibraryRecord, error)
	GetVersionNumbers(ctx context.Context, name model.LibraryName) ([]string, error)
	GetVersionInfo(ctx context.Context, name model.LibraryName, version string) (model.VersionRecord, error)
	HasAccess(ctx context.Context, name model.LibraryName, user common.Address) (bool, error)
}

// Fetcher retrieves the artifact addressed by hash and streams it into
// targetDir; the real implementation pipes ipfsclient.Cat through
// archiver.Extract, tests supply an in-memory fake.
type Fetcher interface {
	Fetch(ctx context.Context, hash, targetDir string) error
}

// ArtifactStore is the subset of ipfsclient.Client the resolver needs to
// retrieve a published archive.
type ArtifactStore interface {
	Cat(ctx context.Context, hash string) (io.ReadCloser, error)
}

// IPFSFetcher adapts an ArtifactStore into a Fetcher by piping its content
// through archiver.Extract; the archive is never buffered in memory.
type IPFSFetcher struct {
	Store ArtifactStore
}

func (f IPFSFetcher) Fetch(ctx context.Context, hash, targetDir string) error {
	r, err := f.Store.Cat(ctx, hash)
	if err != nil {
		return err
	}
	defer r.Close()
	return archiver.Extract(r, targetDir)
}

// Resolution records the exact version a name was resolved to this run,
// along with the constraint that produced it — kept around so a later
// conflicting constraint can be reported against the one that won, not
// just the version it chose.
type Resolution struct {
	Version    semverx.Version
	Constraint semverx.Constraint
}

// ResolvedSet maps each resolved library name to the version chosen this
// run and the constraint that chose it. Invariant: for every key L, every
// constraint encountered for L during this run is satisfied by
// ResolvedSet[L].Version.
type ResolvedSet map[model.LibraryName]Resolution

// Warning is a non-fatal observation surfaced during install (deprecated
// version, etc.) so the caller's UI can print it without affecting the
// resolved set.
type Warning struct {
	Name    model.LibraryName
	Version string
	Message string
}

// Result is the outcome of a top-level Install call.
type Result struct {
	Resolved ResolvedSet
	Warnings []Warning
}

// Caller identifies the invoking wallet for access-gate checks; the zero
// value (Known == false) means "no wallet loaded."
type Caller = access.Caller

// Install resolves name (with an optional concrete version) and every
// transitive dependency, extracting each into
// installRoot/<name>/<version>/.
func Install(ctx context.Context, chain ChainReader, fetcher Fetcher, installRoot string, name model.LibraryName, version string, caller Caller) (Result, error) {
	var constraint semverx.Constraint
	var err error

	if version == "" {
		available, verr := fetchVersions(ctx, chain, name)
		if verr != nil {
			return Result{}, verr
		}
		stable, ok := semverx.MaxStable(available)
		if !ok {
			return Result{}, xerrors.Newf(xerrors.KindNotFound, "library %s has no stable published version", name)
		}
		constraint, err = semverx.ParseConstraint(stable.String())
	} else {
		constraint, err = semverx.ParseConstraint(version)
	}
	if err != nil {
		return Result{}, xerrors.Newf(xerrors.KindValidation, "invalid version specifier for %s: %v", name, err)
	}

	if caller.Known {
		if err := checkAccess(ctx, chain, name, caller); err != nil {
			return Result{}, err
		}
	}

	resolved := ResolvedSet{}
	var warnings []Warning
	if err := resolve(ctx, chain, fetcher, installRoot, name, constraint, resolved, &warnings, caller); err != nil {
		return Result{}, err
	}
	return Result{Resolved: resolved, Warnings: warnings}, nil
}

// resolve walks name's dependency tree depth-first, consulting and
// updating resolved as the single source of truth for every name already
// decided this run.
func resolve(ctx context.Context, chain ChainReader, fetcher Fetcher, installRoot string, name model.LibraryName, constraint semverx.Constraint, resolved ResolvedSet, warnings *[]Warning, caller Caller) error {
	// 1. Cycle / conflict check.
	if existing, ok := resolved[name]; ok {
		if constraint.Satisfies(existing.Version) {
			return nil
		}
		return xerrors.Newf(xerrors.KindConflict,
			"version conflict for %s: constraint %q conflicts with constraint %q, which already resolved %s to %s",
			name, constraint, existing.Constraint, name, existing.Version)
	}

	// 2. Fetch available versions.
	available, err := fetchVersions(ctx, chain, name)
	if err != nil {
		return err
	}

	// 3. Choose.
	chosen, ok := semverx.MaxSatisfying(available, constraint)
	if !ok {
		return xerrors.Newf(xerrors.KindNotFound, "no version of %s satisfies constraint %q", name, constraint)
	}

	// 4. Per-dependency access gate.
	if caller.Known {
		if err := checkAccess(ctx, chain, name, caller); err != nil {
			return err
		}
	}

	// 5. Mark before any side effect.
	resolved[name] = Resolution{Version: chosen, Constraint: constraint}

	// 6. Fetch version info; roll back on a bad record.
	info, err := chain.GetVersionInfo(ctx, name, chosen.String())
	if err != nil {
		delete(resolved, name)
		return err
	}
	if !info.HasUsableArtifact() {
		delete(resolved, name)
		return xerrors.Newf(xerrors.KindBadRecord, "library %s@%s has no usable IPFS artifact", name, chosen)
	}
	if info.Deprecated {
		*warnings = append(*warnings, Warning{Name: name, Version: chosen.String(), Message: "this version is deprecated"})
	}

	// 7. Extract.
	dest := filepath.Join(installRoot, string(name), chosen.String())
	if err := fetcher.Fetch(ctx, info.IPFSHash, dest); err != nil {
		return err
	}

	// 8. Recurse over sub-dependencies, in order.
	for _, dep := range info.Dependencies {
		depConstraint, err := semverx.ParseConstraint(dep.Constraint)
		if err != nil {
			return xerrors.Newf(xerrors.KindValidation, "library %s@%s declares an invalid constraint %q for %s: %v", name, chosen, dep.Constraint, dep.Name, err)
		}
		if err := resolve(ctx, chain, fetcher, installRoot, dep.Name, depConstraint, resolved, warnings, caller); err != nil {
			return err
		}
	}

	return nil
}

func fetchVersions(ctx context.Context, chain ChainReader, name model.LibraryName) ([]semverx.Version, error) {
	raw, err := chain.GetVersionNumbers(ctx, name)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, xerrors.Newf(xerrors.KindNotFound, "library %s has no published versions", name)
	}
	versions := make([]semverx.Version, 0, len(raw))
	for _, s := range raw {
		v, err := semverx.ParseVersion(s)
		if err != nil {
			return nil, xerrors.Newf(xerrors.KindBadRecord, "library %s declares an invalid version %q: %v", name, s, err)
		}
		versions = append(versions, v)
	}
	return versions, nil
}

func checkAccess(ctx context.Context, chain ChainReader, name model.LibraryName, caller Caller) error {
	lib, err := chain.GetLibraryInfo(ctx, name)
	if err != nil {
		return err
	}
	if caller.Address == lib.Owner {
		return nil
	}
	has, err := chain.HasAccess(ctx, name, caller.Address)
	if err != nil {
		return err
	}
	if !has {
		return xerrors.New(xerrors.KindPermission, fmt.Sprintf("access denied: %s", access.DenialReason(lib)))
	}
	return nil
}
