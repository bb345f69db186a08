// Package publisher implements the publish operation: load
// lib.config.json, validate it, confirm ownership, build a deterministic
// archive, push it to IPFS, and commit the version on-chain.
package publisher

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"

	"github.com/Doner357/TacoPKM-CLI/internal/archiver"
	"github.com/Doner357/TacoPKM-CLI/internal/libconfig"
	"github.com/Doner357/TacoPKM-CLI/internal/model"
	"github.com/Doner357/TacoPKM-CLI/internal/semverx"
	"github.com/Doner357/TacoPKM-CLI/internal/xerrors"
)

// Chain is the chain surface the publisher needs.
type Chain interface {
	GetLibraryInfo(ctx context.Context, name model.LibraryName) (model.LibraryRecord, error)
	PublishVersion(ctx context.Context, name model.LibraryName, version, ipfsHash string, deps []model.Dependency) error
}

// Store is the IPFS surface the publisher needs.
type Store interface {
	Add(ctx context.Context, r io.Reader) (string, error)
}

// Logger receives non-fatal observations (malformed dependency constraints,
// temp-file cleanup failures) the command layer should surface.
type Logger interface {
	Warn(format string, args ...any)
}

// Result describes what was published.
type Result struct {
	Name    model.LibraryName
	Version string
	CID     string
}

// Publish runs the full publish pipeline against dir. versionOverride, if
// non-empty, replaces the version named in lib.config.json.
func Publish(ctx context.Context, chain Chain, store Store, logger Logger, dir, versionOverride string, signer common.Address) (Result, error) {
	cfg, err := libconfig.Load(dir)
	if err != nil {
		return Result{}, xerrors.Newf(xerrors.KindValidation, "%v", err)
	}

	name, err := model.ParseLibraryName(cfg.Name)
	if err != nil {
		return Result{}, xerrors.Newf(xerrors.KindValidation, "invalid library name in lib.config.json: %v", err)
	}

	version := cfg.Version
	if versionOverride != "" {
		version = versionOverride
	}
	if _, err := semverx.ParseVersion(version); err != nil {
		return Result{}, xerrors.Newf(xerrors.KindValidation, "invalid version %q: %v", version, err)
	}

	deps := validateDependencies(cfg.Dependencies, logger)

	lib, err := chain.GetLibraryInfo(ctx, name)
	if err != nil {
		var xerr *xerrors.Error
		if xerrors.As(err, &xerr) && xerr.Kind == xerrors.KindNotFound {
			return Result{}, xerrors.Newf(xerrors.KindNotFound, "library %s is not registered; run `tpkm register` first", name).WithCause(err)
		}
		return Result{}, err
	}
	if lib.Owner != signer {
		return Result{}, xerrors.Newf(xerrors.KindPermission, "library %s is owned by %s, not the loaded signer %s", name, lib.Owner.Hex(), signer.Hex())
	}

	archivePath, err := buildArchive(dir, logger)
	if err != nil {
		return Result{}, err
	}
	defer cleanup(archivePath, logger)

	f, err := os.Open(archivePath)
	if err != nil {
		return Result{}, xerrors.Newf(xerrors.KindValidation, "opening built archive: %v", err).WithCause(err)
	}
	defer f.Close()

	cid, err := store.Add(ctx, f)
	if err != nil {
		return Result{}, err
	}
	if cid == "" {
		return Result{}, xerrors.New(xerrors.KindIPFSUnreachable, "IPFS returned an empty CID for the published archive")
	}

	if err := chain.PublishVersion(ctx, name, version, cid, deps); err != nil {
		return Result{}, err
	}

	return Result{Name: name, Version: version, CID: cid}, nil
}

// validateDependencies drops entries with an empty constraint and warns
// (but keeps) entries whose constraint fails to parse as SemVer, preserving
// author intent rather than silently rewriting it.
func validateDependencies(raw map[string]string, logger Logger) []model.Dependency {
	deps := make([]model.Dependency, 0, len(raw))
	for name, constraint := range raw {
		if constraint == "" {
			if logger != nil {
				logger.Warn("dropping dependency %q: empty version constraint", name)
			}
			continue
		}
		if _, err := semverx.ParseConstraint(constraint); err != nil && logger != nil {
			logger.Warn("dependency %q has a constraint %q that does not parse as SemVer; keeping it as written", name, constraint)
		}
		deps = append(deps, model.Dependency{Name: model.LibraryName(name), Constraint: constraint})
	}
	return deps
}

// buildArchive writes a deterministic gzipped tarball of dir's contents to
// a uniquely named temp file and returns its path.
func buildArchive(dir string, logger Logger) (string, error) {
	archivePath := filepath.Join(os.TempDir(), "tpkm-publish-"+uuid.NewString()+".tar.gz")
	f, err := os.Create(archivePath)
	if err != nil {
		return "", xerrors.Newf(xerrors.KindValidation, "creating temp archive: %v", err).WithCause(err)
	}

	warnings, archErr := archiver.Archive(dir, f)
	closeErr := f.Close()
	for _, w := range warnings {
		if logger != nil {
			logger.Warn("%s", w)
		}
	}
	if archErr != nil {
		os.Remove(archivePath)
		return "", xerrors.Newf(xerrors.KindValidation, "building archive: %v", archErr).WithCause(archErr)
	}
	if closeErr != nil {
		os.Remove(archivePath)
		return "", xerrors.Newf(xerrors.KindValidation, "closing archive: %v", closeErr).WithCause(closeErr)
	}
	return archivePath, nil
}

// cleanup removes the temp archive on every exit path; failure is logged,
// not fatal.
func cleanup(path string, logger Logger) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) && logger != nil {
		logger.Warn("failed to remove temp archive %s: %v", path, err)
	}
}
