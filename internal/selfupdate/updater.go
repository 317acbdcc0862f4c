package selfupdate

import (
	"archive/tar"
	"archive/zip"
	"bufio"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path"
	"runtime"
	"strings"

	"go.uber.org/zap"
)

var (
	ErrDevBuild      = errors.New("cannot update a development build")
	ErrAlreadyLatest = errors.New("already running the latest version")
	ErrChecksum      = errors.New("checksum verification failed")
)

// Release archives larger than this are rejected before they are buffered.
const maxArchiveBytes = 128 << 20

// Stage names one step of an update, in the order they run.
type Stage string

const (
	StageCheck    Stage = "check"
	StageDownload Stage = "download"
	StageVerify   Stage = "verify"
	StageExtract  Stage = "extract"
	StageInstall  Stage = "install"
	StageDone     Stage = "done"
)

// Progress is reported once per stage.
type Progress struct {
	Stage   Stage
	Message string
}

// UpdateRequest selects the release to install. An empty Target means the
// latest published release.
type UpdateRequest struct {
	Current  string
	Target   string
	Progress func(Progress)
}

func (r *UpdateRequest) report(stage Stage, format string, args ...any) {
	if r.Progress != nil {
		r.Progress(Progress{Stage: stage, Message: fmt.Sprintf(format, args...)})
	}
}

// UpdateResult describes an installed release.
type UpdateResult struct {
	Version string
	Path    string
}

// Update downloads the release archive for this platform, checks it against
// the release's checksums.txt and swaps it in for the running executable.
func (c *Checker) Update(ctx context.Context, req UpdateRequest) (*UpdateResult, error) {
	if req.Current == DevVersion {
		return nil, ErrDevBuild
	}

	tag := req.Target
	if tag == "" {
		req.report(StageCheck, "Checking for the latest release...")
		res, err := c.Check(ctx, &CheckInput{Version: req.Current})
		if err != nil {
			return nil, fmt.Errorf("check for updates: %w", err)
		}
		if !res.UpdateAvailable {
			return nil, ErrAlreadyLatest
		}
		tag = res.LatestVersion
	}

	asset, err := platformAsset(runtime.GOOS, runtime.GOARCH)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("installing release", zap.String("tag", tag), zap.String("asset", asset))

	req.report(StageDownload, "Downloading %s for %s/%s...", tag, runtime.GOOS, runtime.GOARCH)
	archive, err := c.fetch(ctx, c.releaseFile(tag, asset))
	if err != nil {
		return nil, fmt.Errorf("download archive: %w", err)
	}

	req.report(StageVerify, "Verifying %s...", asset)
	sums, err := c.fetch(ctx, c.releaseFile(tag, "checksums.txt"))
	if err != nil {
		return nil, fmt.Errorf("download checksums: %w", err)
	}
	want, ok := parseChecksums(sums)[asset]
	if !ok {
		return nil, fmt.Errorf("%w: checksums.txt has no entry for %s", ErrChecksum, asset)
	}
	if err := verifyChecksum(archive, want); err != nil {
		return nil, err
	}

	req.report(StageExtract, "Unpacking %s...", BinaryName)
	binary, err := extractBinary(archive, asset)
	if err != nil {
		return nil, fmt.Errorf("extract binary: %w", err)
	}

	target, err := c.execPath()
	if err != nil {
		return nil, fmt.Errorf("resolve executable path: %w", err)
	}
	req.report(StageInstall, "Installing to %s...", target)
	if err := replaceExecutable(target, binary); err != nil {
		return nil, fmt.Errorf("install: %w", err)
	}
	c.logger.Info("release installed", zap.String("tag", tag), zap.String("path", target))

	req.report(StageDone, "Updated to %s", tag)
	return &UpdateResult{Version: tag, Path: target}, nil
}

func (c *Checker) releaseFile(tag, name string) string {
	return fmt.Sprintf("%s/%s/%s/releases/download/%s/%s",
		strings.TrimRight(c.downloadBaseURL, "/"), c.owner, c.repo, tag, name)
}

// Release architecture suffixes, keyed by GOARCH.
var releaseArch = map[string]string{
	"amd64": "x86_64",
	"arm64": "arm64",
	"386":   "i386",
}

// platformAsset names the release archive built for goos/goarch. macOS
// ships one universal archive.
func platformAsset(goos, goarch string) (string, error) {
	if goos == "darwin" {
		return BinaryName + "_Darwin_all.tar.gz", nil
	}
	var osName, ext string
	switch goos {
	case "linux":
		osName, ext = "Linux", ".tar.gz"
	case "windows":
		osName, ext = "Windows", ".zip"
	default:
		return "", fmt.Errorf("no %s release for %s", BinaryName, goos)
	}
	arch, ok := releaseArch[goarch]
	if !ok {
		return "", fmt.Errorf("no %s release for %s/%s", BinaryName, goos, goarch)
	}
	return fmt.Sprintf("%s_%s_%s%s", BinaryName, osName, arch, ext), nil
}

func (c *Checker) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s: %s", url, resp.Status)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxArchiveBytes+1))
	if err != nil {
		return nil, err
	}
	if len(data) > maxArchiveBytes {
		return nil, fmt.Errorf("GET %s: body exceeds %d bytes", url, maxArchiveBytes)
	}
	return data, nil
}

// parseChecksums reads sha256sum output. Binary-mode entries ("hash *name")
// are accepted.
func parseChecksums(data []byte) map[string]string {
	sums := make(map[string]string)
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) != 2 {
			continue
		}
		sums[strings.TrimPrefix(fields[1], "*")] = strings.ToLower(fields[0])
	}
	return sums
}

func verifyChecksum(data []byte, want string) error {
	sum := sha256.Sum256(data)
	if got := hex.EncodeToString(sum[:]); got != want {
		return fmt.Errorf("%w: want %s, got %s", ErrChecksum, want, got)
	}
	return nil
}

// extractBinary pulls the executable out of a release archive. The archive
// format follows the asset's extension.
func extractBinary(archive []byte, asset string) ([]byte, error) {
	if strings.HasSuffix(asset, ".zip") {
		return fromZip(archive, BinaryName+".exe")
	}
	return fromTarGz(archive, BinaryName)
}

func fromTarGz(archive []byte, name string) ([]byte, error) {
	gz, err := gzip.NewReader(bytes.NewReader(archive))
	if err != nil {
		return nil, fmt.Errorf("open gzip: %w", err)
	}
	defer func() { _ = gz.Close() }()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%s not found in archive", name)
		}
		if err != nil {
			return nil, fmt.Errorf("read tar: %w", err)
		}
		if hdr.Typeflag == tar.TypeReg && path.Base(hdr.Name) == name {
			return io.ReadAll(tr)
		}
	}
}

func fromZip(archive []byte, name string) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	if err != nil {
		return nil, fmt.Errorf("open zip: %w", err)
	}
	for _, f := range zr.File {
		if f.FileInfo().IsDir() || path.Base(f.Name) != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		data, err := io.ReadAll(rc)
		_ = rc.Close()
		return data, err
	}
	return nil, fmt.Errorf("%s not found in archive", name)
}
