package cache

import (
	"context"
	"encoding/binary"
	"os"
	"path/filepath"
	"time"
)

// FileCache stores render artifacts as flat files in one directory. The
// payload is kept raw (artifacts are SVG, PNG, or DOT bytes; wrapping them
// in JSON would force base64 on binary data), with the absolute expiry as
// an 8-byte big-endian unix-nano header. A zero header means no expiry.
//
// Writes go through a temp file and rename, so a crashed run never leaves
// a half-written artifact behind for the next run to serve.
type FileCache struct {
	dir string
}

// headerLen is the size of the expiry header preceding the payload.
const headerLen = 8

// NewFileCache creates a file-based cache in the given directory.
// The directory will be created if it doesn't exist.
func NewFileCache(dir string) (Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileCache{dir: dir}, nil
}

// Get retrieves a value from the cache.
func (c *FileCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	path := c.path(key)

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	if len(raw) < headerLen {
		// Truncated artifact - treat as miss
		_ = os.Remove(path)
		return nil, false, nil
	}

	if expiry := int64(binary.BigEndian.Uint64(raw[:headerLen])); expiry != 0 && time.Now().UnixNano() > expiry {
		_ = os.Remove(path)
		return nil, false, nil
	}
	return raw[headerLen:], true, nil
}

// Set stores a value in the cache. A ttl of zero stores without expiry.
func (c *FileCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	buf := make([]byte, headerLen+len(data))
	if ttl > 0 {
		binary.BigEndian.PutUint64(buf[:headerLen], uint64(time.Now().Add(ttl).UnixNano()))
	}
	copy(buf[headerLen:], data)

	tmp, err := os.CreateTemp(c.dir, ".artifact-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(buf); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), c.path(key))
}

// Delete removes a value from the cache.
func (c *FileCache) Delete(ctx context.Context, key string) error {
	err := os.Remove(c.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Close does nothing for file cache.
func (c *FileCache) Close() error {
	return nil
}

// path maps a key to its artifact file. Keys are hashed so arbitrary key
// strings stay filesystem-safe; the cache holds one artifact per
// graph/kind/format combination, so a flat directory suffices.
func (c *FileCache) path(key string) string {
	return filepath.Join(c.dir, Sum([]byte(key))+".art")
}

// Ensure FileCache implements Cache.
var _ Cache = (*FileCache)(nil)
