package u

import (
	"bytes"
	"compress/bzip2"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/zstd"
)

// io.ReadCloser over os.File wrapped with a decompressing io.Reader.
// Close releases the decompressor (if needed) and the file
type decompressingFile struct {
	f       *os.File
	r       io.Reader
	closeDc func()
}

func (rc *decompressingFile) Read(p []byte) (int, error) {
	return rc.r.Read(p)
}

func (rc *decompressingFile) Close() error {
	if rc.closeDc != nil {
		rc.closeDc()
		rc.closeDc = nil
	}
	return rc.f.Close()
}

// CompressionFromPath returns compression kind based on file extension:
// "gz", "bz2", "zstd", "br" or "" for uncompressed files
func CompressionFromPath(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".gz":
		return "gz"
	case ".bz2":
		return "bz2"
	case ".zst", ".zstd":
		return "zstd"
	case ".br":
		return "br"
	}
	return ""
}

// OpenFileMaybeCompressed opens a file that might be compressed with gzip
// or bzip2 or zstd or brotli. Compression is picked by file extension
func OpenFileMaybeCompressed(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	rc := &decompressingFile{f: f}
	switch CompressionFromPath(path) {
	case "gz":
		rc.r, err = gzip.NewReader(f)
	case "bz2":
		rc.r = bzip2.NewReader(f)
	case "zstd":
		var zr *zstd.Decoder
		zr, err = zstd.NewReader(f)
		if err == nil {
			rc.r = zr
			rc.closeDc = zr.Close
		}
	case "br":
		rc.r = brotli.NewReader(f)
	default:
		return f, nil
	}
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("u.OpenFileMaybeCompressed('%s'): %w", path, err)
	}
	return rc, nil
}

// ReadFileMaybeCompressed reads the whole file, decompressing it if needed
func ReadFileMaybeCompressed(path string) ([]byte, error) {
	r, err := OpenFileMaybeCompressed(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}

// CompressData compresses d with a given kind of compression ("gz", "zstd", "br").
// "" returns d unchanged. bz2 is read-only (no encoder in std lib)
func CompressData(d []byte, kind string) ([]byte, error) {
	var dst bytes.Buffer
	var w io.WriteCloser
	var err error
	switch kind {
	case "":
		return d, nil
	case "gz":
		w, err = gzip.NewWriterLevel(&dst, gzip.BestCompression)
	case "zstd":
		w, err = zstd.NewWriter(&dst, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	case "br":
		w = brotli.NewWriterLevel(&dst, brotli.BestCompression)
	default:
		return nil, fmt.Errorf("u.CompressData: unsupported compression '%s'", kind)
	}
	if err != nil {
		return nil, err
	}
	_, err = w.Write(d)
	err2 := w.Close()
	if err = errors.Join(err, err2); err != nil {
		return nil, err
	}
	return dst.Bytes(), nil
}

// WriteFileMaybeCompressed writes d to path, compressed according to path's extension
// on error the partially written file is removed
func WriteFileMaybeCompressed(path string, d []byte) error {
	d2, err := CompressData(d, CompressionFromPath(path))
	if err != nil {
		return err
	}
	err = os.WriteFile(path, d2, 0644)
	if err != nil {
		os.Remove(path)
	}
	return err
}
