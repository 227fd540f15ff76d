package sysinfo

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// DefaultCacheTTL is how long a cached snapshot is reused.
const DefaultCacheTTL = 30 * time.Second

// CollectCached returns the snapshot stored in dir if it is younger than
// ttl, and otherwise collects a fresh one and writes it to dir. The second
// result reports a cache hit. An empty dir or a non-positive ttl disables
// the cache. Failing to write the cache is not an error.
func CollectCached(ctx context.Context, dir string, ttl time.Duration) (*Info, bool, error) {
	if dir == "" || ttl <= 0 {
		info, err := Collect(ctx)
		return info, false, err
	}

	hostname, _ := os.Hostname()
	path := filepath.Join(dir, "sysinfo-"+cacheKey(hostname)+".json")

	if st, err := os.Stat(path); err == nil && time.Since(st.ModTime()) < ttl {
		if data, err := os.ReadFile(path); err == nil {
			var info Info
			if json.Unmarshal(data, &info) == nil {
				return &info, true, nil
			}
		}
	}

	info, err := Collect(ctx)
	if err != nil {
		return info, false, err
	}
	if data, err := json.Marshal(info); err == nil {
		_ = atomicWrite(dir, path, data)
	}
	return info, false, nil
}

// cacheKey keeps hosts sharing a home directory from reading each other's
// snapshots.
func cacheKey(hostname string) string {
	sum := sha256.Sum256([]byte(hostname))
	return hex.EncodeToString(sum[:8])
}

// atomicWrite writes data to path via a temporary file and rename, so
// readers never see a partial file.
func atomicWrite(dir, path string, data []byte) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("sysinfo cache: mkdir %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".sysinfo-tmp-*")
	if err != nil {
		return fmt.Errorf("sysinfo cache: create temp: %w", err)
	}
	tmpName := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sysinfo cache: write temp: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("sysinfo cache: close temp: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("sysinfo cache: rename: %w", err)
	}

	success = true
	return nil
}
