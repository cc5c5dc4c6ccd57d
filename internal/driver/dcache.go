package driver

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/atisharma/beautifhy/internal/rules"
)

// Increment when DiskPayload changes shape; stale entries then miss.
const diskCacheSchemaVersion uint16 = 1

// cacheAppName is the subdirectory under the user cache dir.
const cacheAppName = "beautifhy"

// Digest keys the cache: content hash mixed with the formatting config.
type Digest [32]byte

// DiskCache stores formatted output per content digest. Safe for
// concurrent use; a nil cache is a valid no-op.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// DiskPayload is one cached formatting outcome. Clean means the input
// was already canonical, so the formatted bytes equal the source and are
// not stored.
type DiskPayload struct {
	Schema    uint16
	Clean     bool
	Formatted []byte
}

// OpenDiskCache initializes a disk cache under XDG_CACHE_HOME (or
// ~/.cache) in a subdirectory named app.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// OpenDiskCacheAt initializes a cache rooted at an explicit directory.
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key Digest) string {
	hexKey := hex.EncodeToString(key[:])
	return filepath.Join(c.dir, "fmt", hexKey+".mp")
}

// Put serializes and writes a payload, replacing atomically via a temp
// file and rename.
func (c *DiskCache) Put(key Digest, payload *DiskPayload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get reads a payload. A miss, a decode failure or a schema mismatch all
// report false without error; the caller just formats again.
func (c *DiskCache) Get(key Digest, out *DiskPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()

	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, nil
	}
	if out.Schema != diskCacheSchemaVersion {
		return false, nil
	}
	return true, nil
}

// ClearDiskCache drops everything under the default cache location. The
// fmt --clear-cache flag lands here.
func ClearDiskCache() error {
	cache, err := OpenDiskCache(cacheAppName)
	if err != nil {
		return err
	}
	return cache.DropAll()
}

// DropAll invalidates the whole cache.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		return err
	}
	return os.RemoveAll(old)
}

// cacheKey mixes the file's content hash with everything that affects
// the output: rule table fingerprint and target width.
func cacheKey(contentHash [32]byte, opts FormatOptions) Digest {
	table := opts.Rules
	if table == nil {
		table = rules.Default()
	}
	fp := table.Fingerprint()

	var widthBuf [8]byte
	width := opts.Width
	if width <= 0 {
		width = 80
	}
	binary.LittleEndian.PutUint64(widthBuf[:], uint64(width))

	h := sha256.New()
	h.Write(contentHash[:])
	h.Write(fp[:])
	h.Write(widthBuf[:])

	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}
