// Package sysinfo gathers a snapshot of host facts (name, platform, CPU,
// memory, load, uptime, container runtime) and lays them out as banner
// lines, for a login-style status box.
package sysinfo

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	units "github.com/docker/go-units"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/load"
	"github.com/shirou/gopsutil/v4/mem"

	"gitlab.com/tinyland/lab/terminal-banner/pkg/banner"
)

// Info holds the host facts shown in the banner. Fields that could not be
// collected keep their zero value and are left out of the banner.
type Info struct {
	Hostname        string
	OS              string // "darwin", "linux"
	Arch            string // "arm64", "amd64"
	Platform        string // "ubuntu", "darwin", ...
	PlatformVersion string
	Kernel          string
	Uptime          time.Duration

	CPUModel string
	CPUs     int // logical CPUs

	MemTotal       uint64 // bytes
	MemUsed        uint64 // bytes
	MemUsedPercent float64

	Load1  float64
	Load5  float64
	Load15 float64

	InContainer   bool
	ContainerType string // "docker", "podman", "lxc", ""
}

// Collect gathers host information. Individual subsystems that fail are
// skipped so that the caller always gets as much data as possible; the
// returned error is non-nil only when ctx is done.
func Collect(ctx context.Context) (*Info, error) {
	hostname, _ := os.Hostname()
	inContainer, containerType := detectContainer()

	info := &Info{
		Hostname:      hostname,
		OS:            runtime.GOOS,
		Arch:          runtime.GOARCH,
		CPUs:          runtime.NumCPU(),
		InContainer:   inContainer,
		ContainerType: containerType,
	}

	if hi, err := host.InfoWithContext(ctx); err == nil {
		if hi.Hostname != "" {
			info.Hostname = hi.Hostname
		}
		info.Platform = hi.Platform
		info.PlatformVersion = hi.PlatformVersion
		info.Kernel = hi.KernelVersion
		info.Uptime = time.Duration(hi.Uptime) * time.Second
	}

	if n, err := cpu.CountsWithContext(ctx, true); err == nil && n > 0 {
		info.CPUs = n
	}
	if ci, err := cpu.InfoWithContext(ctx); err == nil && len(ci) > 0 {
		info.CPUModel = strings.TrimSpace(ci[0].ModelName)
	}

	if vm, err := mem.VirtualMemoryWithContext(ctx); err == nil {
		info.MemTotal = vm.Total
		info.MemUsed = vm.Used
		info.MemUsedPercent = vm.UsedPercent
	}

	if avg, err := load.AvgWithContext(ctx); err == nil {
		info.Load1, info.Load5, info.Load15 = avg.Load1, avg.Load5, avg.Load15
	}

	if err := ctx.Err(); err != nil {
		return info, fmt.Errorf("sysinfo: collect: %w", err)
	}
	return info, nil
}

// Field is one label/value row of the banner.
type Field struct {
	Label string
	Value string
}

// Fields returns the non-empty facts of info in display order.
func (i *Info) Fields() []Field {
	var fields []Field
	add := func(label, value string) {
		if value != "" {
			fields = append(fields, Field{Label: label, Value: value})
		}
	}

	platform := strings.TrimSpace(i.Platform + " " + i.PlatformVersion)
	if platform == "" {
		platform = i.OS
	}
	add("OS", fmt.Sprintf("%s (%s)", platform, i.Arch))
	add("Kernel", i.Kernel)
	if i.Uptime > 0 {
		add("Uptime", units.HumanDuration(i.Uptime))
	}

	cpuValue := ""
	switch {
	case i.CPUModel != "" && i.CPUs > 0:
		cpuValue = fmt.Sprintf("%s x%d", i.CPUModel, i.CPUs)
	case i.CPUs > 0:
		cpuValue = fmt.Sprintf("%d logical", i.CPUs)
	}
	add("CPU", cpuValue)

	if i.MemTotal > 0 {
		add("Memory", fmt.Sprintf("%s / %s (%.0f%%)",
			units.BytesSize(float64(i.MemUsed)), units.BytesSize(float64(i.MemTotal)), i.MemUsedPercent))
	}
	if i.Load1 > 0 || i.Load5 > 0 || i.Load15 > 0 {
		add("Load", fmt.Sprintf("%.2f %.2f %.2f", i.Load1, i.Load5, i.Load15))
	}
	if i.InContainer {
		kind := i.ContainerType
		if kind == "" {
			kind = "yes"
		}
		add("Container", kind)
	}
	return fields
}

// Lines lays info out as banner lines: the hostname centered in accent,
// a divider drawn with rule, then one row per field with labels padded to
// a common width.
func (i *Info) Lines(accent banner.Color, rule rune) []banner.Line {
	title := i.Hostname
	if title == "" {
		title = "localhost"
	}
	lines := []banner.Line{
		banner.TextLine(banner.NewText(title).Align(banner.AlignCenter).Color(accent)),
		banner.DividerLine(rule),
	}

	fields := i.Fields()
	labelWidth := 0
	for _, f := range fields {
		labelWidth = max(labelWidth, len(f.Label))
	}
	for _, f := range fields {
		row := fmt.Sprintf("%-*s  %s", labelWidth, f.Label, f.Value)
		lines = append(lines, banner.TextLine(banner.NewText(row)))
	}
	return lines
}
