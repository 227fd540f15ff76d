package sysinfo

import (
	"os"
	"runtime"
	"strings"
)

// containerSentinels are files container runtimes drop into the root
// filesystem, checked in order.
var containerSentinels = []struct {
	path    string
	runtime string
}{
	{"/.dockerenv", "docker"},
	{"/run/.containerenv", "podman"},
}

// cgroupSignatures map substrings of /proc/1/cgroup to a runtime. Order
// matters: containerd paths also mention docker on some hosts.
var cgroupSignatures = []struct {
	marker  string
	runtime string
}{
	{"docker", "docker"},
	{"containerd", "docker"},
	{"lxc", "lxc"},
	{"libpod", "podman"},
}

// detectContainer reports whether the process runs inside a container and,
// if so, which runtime started it.
func detectContainer() (bool, string) {
	// Podman sets CONTAINER=podman in its default environment.
	if v := os.Getenv("CONTAINER"); v != "" {
		return true, strings.ToLower(v)
	}
	for _, s := range containerSentinels {
		if fileExists(s.path) {
			return true, s.runtime
		}
	}
	if runtime.GOOS == "linux" {
		if data, err := os.ReadFile("/proc/1/cgroup"); err == nil {
			if rt := parseCgroup(string(data)); rt != "" {
				return true, rt
			}
		}
	}
	return false, ""
}

// parseCgroup returns the runtime whose signature appears in content, or
// "" for a host cgroup.
func parseCgroup(content string) string {
	lower := strings.ToLower(content)
	for _, sig := range cgroupSignatures {
		if strings.Contains(lower, sig.marker) {
			return sig.runtime
		}
	}
	return ""
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
