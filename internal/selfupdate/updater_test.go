package selfupdate

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlatformAsset(t *testing.T) {
	tests := []struct {
		goos, goarch string
		want         string
	}{
		{"darwin", "amd64", "aqa_Darwin_all.tar.gz"},
		{"darwin", "arm64", "aqa_Darwin_all.tar.gz"},
		{"linux", "amd64", "aqa_Linux_x86_64.tar.gz"},
		{"linux", "arm64", "aqa_Linux_arm64.tar.gz"},
		{"linux", "386", "aqa_Linux_i386.tar.gz"},
		{"windows", "amd64", "aqa_Windows_x86_64.zip"},
		{"windows", "arm64", "aqa_Windows_arm64.zip"},
		{"freebsd", "amd64", ""},
		{"linux", "riscv64", ""},
	}
	for _, tt := range tests {
		t.Run(tt.goos+"/"+tt.goarch, func(t *testing.T) {
			got, err := platformAsset(tt.goos, tt.goarch)
			if tt.want == "" {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseChecksums(t *testing.T) {
	input := strings.Join([]string{
		"ABC123  aqa_Darwin_all.tar.gz",
		"def456 *aqa_Windows_x86_64.zip",
		"",
		"not-a-checksum-line",
		"a b c",
		"789fed  aqa_Linux_x86_64.tar.gz",
	}, "\n")

	assert.Equal(t, map[string]string{
		"aqa_Darwin_all.tar.gz":   "abc123",
		"aqa_Windows_x86_64.zip":  "def456",
		"aqa_Linux_x86_64.tar.gz": "789fed",
	}, parseChecksums([]byte(input)))
	assert.Empty(t, parseChecksums(nil))
}

func TestVerifyChecksum(t *testing.T) {
	data := []byte("aqa release archive")
	assert.NoError(t, verifyChecksum(data, sha256Hex(data)))
	assert.ErrorIs(t, verifyChecksum(data, sha256Hex([]byte("tampered"))), ErrChecksum)
}

func TestExtractBinary(t *testing.T) {
	exe := []byte("\x7fELF aqa")

	got, err := extractBinary(tarGz(t, map[string][]byte{"README.md": []byte("docs"), "aqa_1.2.0/aqa": exe}), "aqa_Linux_x86_64.tar.gz")
	require.NoError(t, err)
	assert.Equal(t, exe, got)

	got, err = extractBinary(zipped(t, map[string][]byte{"aqa.exe": exe}), "aqa_Windows_x86_64.zip")
	require.NoError(t, err)
	assert.Equal(t, exe, got)

	_, err = extractBinary(tarGz(t, map[string][]byte{"aqa-docs": exe}), "aqa_Darwin_all.tar.gz")
	assert.ErrorContains(t, err, "not found")

	_, err = extractBinary([]byte("not gzip"), "aqa_Darwin_all.tar.gz")
	assert.Error(t, err)
}

func TestReplaceExecutable(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "aqa")
	require.NoError(t, os.WriteFile(target, []byte("v1.0.0"), 0o750))

	require.NoError(t, replaceExecutable(target, []byte("v1.1.0")))

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "v1.1.0", string(got))

	if runtime.GOOS != "windows" {
		info, err := os.Stat(target)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o750), info.Mode().Perm())
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "staging and backup files are cleaned up")
}

func TestReplaceExecutable_MissingTarget(t *testing.T) {
	err := replaceExecutable(filepath.Join(t.TempDir(), "aqa"), []byte("v1.1.0"))
	assert.ErrorContains(t, err, "stat target")
}

// release is what the fake GitHub serves for one tag.
type release struct {
	latest   string
	archive  []byte
	checksum string // hex digest listed for this platform's asset; empty omits the entry
}

func releaseServer(t *testing.T, rel release) (*httptest.Server, *[]string) {
	t.Helper()
	asset, err := platformAsset(runtime.GOOS, runtime.GOARCH)
	if err != nil {
		t.Skipf("no release asset for this platform: %v", err)
	}

	var hits []string
	prefix := "/mangeshraut712/alpha-quant-academy/releases/download/" + rel.latest + "/"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits = append(hits, r.URL.Path)
		switch r.URL.Path {
		case "/repos/mangeshraut712/alpha-quant-academy/releases/latest":
			fmt.Fprintf(w, `{"tag_name":%q,"html_url":"https://github.com/mangeshraut712/alpha-quant-academy/releases/tag/%s"}`, rel.latest, rel.latest)
		case prefix + asset:
			if rel.archive == nil {
				http.NotFound(w, r)
				return
			}
			_, _ = w.Write(rel.archive)
		case prefix + "checksums.txt":
			fmt.Fprintln(w, "0000  aqa_Plan9_mips.tar.gz")
			if rel.checksum != "" {
				fmt.Fprintf(w, "%s  %s\n", rel.checksum, asset)
			}
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

// platformArchive packs exe the way the release for this platform does.
func platformArchive(t *testing.T, exe []byte) []byte {
	t.Helper()
	if runtime.GOOS == "windows" {
		return zipped(t, map[string][]byte{"aqa.exe": exe})
	}
	return tarGz(t, map[string][]byte{"aqa": exe})
}

func installedChecker(t *testing.T, srv *httptest.Server) (*Checker, string) {
	t.Helper()
	target := filepath.Join(t.TempDir(), "aqa")
	require.NoError(t, os.WriteFile(target, []byte("v1.0.0"), 0o755))
	return NewChecker(
		WithBaseURL(srv.URL),
		WithDownloadBaseURL(srv.URL),
		withExecPath(func() (string, error) { return target, nil }),
	), target
}

func TestUpdate_InstallsLatest(t *testing.T) {
	archive := platformArchive(t, []byte("v1.1.0"))
	srv, _ := releaseServer(t, release{latest: "v1.1.0", archive: archive, checksum: sha256Hex(archive)})
	c, target := installedChecker(t, srv)

	var stages []Stage
	res, err := c.Update(context.Background(), UpdateRequest{
		Current:  "v1.0.0",
		Progress: func(p Progress) { stages = append(stages, p.Stage) },
	})
	require.NoError(t, err)
	assert.Equal(t, &UpdateResult{Version: "v1.1.0", Path: target}, res)
	assert.Equal(t, []Stage{StageCheck, StageDownload, StageVerify, StageExtract, StageInstall, StageDone}, stages)

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "v1.1.0", string(got))
}

func TestUpdate_ExplicitTargetSkipsCheck(t *testing.T) {
	archive := platformArchive(t, []byte("v1.1.0"))
	srv, hits := releaseServer(t, release{latest: "v1.1.0", archive: archive, checksum: sha256Hex(archive)})
	c, _ := installedChecker(t, srv)

	_, err := c.Update(context.Background(), UpdateRequest{Current: "v1.0.0", Target: "v1.1.0"})
	require.NoError(t, err)
	for _, h := range *hits {
		assert.NotContains(t, h, "/releases/latest")
	}
}

func TestUpdate_Refuses(t *testing.T) {
	archive := platformArchive(t, []byte("v1.1.0"))

	t.Run("dev build", func(t *testing.T) {
		_, err := NewChecker().Update(context.Background(), UpdateRequest{Current: DevVersion})
		assert.ErrorIs(t, err, ErrDevBuild)
	})

	t.Run("already latest", func(t *testing.T) {
		srv, _ := releaseServer(t, release{latest: "v1.0.0"})
		c, _ := installedChecker(t, srv)
		_, err := c.Update(context.Background(), UpdateRequest{Current: "1.0.0"})
		assert.ErrorIs(t, err, ErrAlreadyLatest)
	})

	t.Run("checksum mismatch", func(t *testing.T) {
		srv, _ := releaseServer(t, release{latest: "v1.1.0", archive: archive, checksum: sha256Hex([]byte("other"))})
		c, target := installedChecker(t, srv)
		_, err := c.Update(context.Background(), UpdateRequest{Current: "v1.0.0"})
		assert.ErrorIs(t, err, ErrChecksum)

		got, rerr := os.ReadFile(target)
		require.NoError(t, rerr)
		assert.Equal(t, "v1.0.0", string(got), "executable untouched")
	})

	t.Run("no checksum entry", func(t *testing.T) {
		srv, _ := releaseServer(t, release{latest: "v1.1.0", archive: archive})
		c, _ := installedChecker(t, srv)
		_, err := c.Update(context.Background(), UpdateRequest{Current: "v1.0.0"})
		assert.ErrorIs(t, err, ErrChecksum)
	})

	t.Run("archive missing", func(t *testing.T) {
		srv, _ := releaseServer(t, release{latest: "v1.1.0"})
		c, _ := installedChecker(t, srv)
		_, err := c.Update(context.Background(), UpdateRequest{Current: "v1.0.0"})
		assert.ErrorContains(t, err, "download archive")
	})
}

func sha256Hex(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

func tarGz(t *testing.T, files map[string][]byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gw)
	for name, body := range files {
		require.NoError(t, tw.WriteHeader(&tar.Header{Name: name, Mode: 0o755, Size: int64(len(body)), Typeflag: tar.TypeReg}))
		_, err := tw.Write(body)
		require.NoError(t, err)
	}
	require.NoError(t, tw.Close())
	require.NoError(t, gw.Close())
	return buf.Bytes()
}

func zipped(t *testing.T, files map[string][]byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, body := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write(body)
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}
