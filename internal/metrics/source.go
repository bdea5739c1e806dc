package metrics

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
)

// Source provides the raw values the reporters format. Implementations pass
// values through from the operating system without caching.
type Source interface {
	Platform(ctx context.Context) (Platform, error)
	CPUModel(ctx context.Context) (string, error)
	PhysicalCores(ctx context.Context) (int, error)
	MemoryTotal(ctx context.Context) (uint64, error)
	// CPUPercent blocks for interval and returns system-wide utilization.
	CPUPercent(ctx context.Context, interval time.Duration) (float64, error)
	MemoryPercent(ctx context.Context) (float64, error)
}

// HostSource reads the local host through gopsutil.
type HostSource struct{}

func NewHostSource() *HostSource {
	return &HostSource{}
}

var osNames = map[string]string{
	"aix":     "AIX",
	"darwin":  "Darwin",
	"freebsd": "FreeBSD",
	"linux":   "Linux",
	"netbsd":  "NetBSD",
	"openbsd": "OpenBSD",
	"solaris": "SunOS",
	"windows": "Windows",
}

func osDisplayName(goos string) string {
	if goos == "" {
		goos = runtime.GOOS
	}
	if name, ok := osNames[goos]; ok {
		return name
	}
	return strings.ToUpper(goos[:1]) + goos[1:]
}

func (h *HostSource) Platform(ctx context.Context) (Platform, error) {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return Platform{}, err
	}

	version, err := osVersion(info)
	if err != nil {
		return Platform{}, fmt.Errorf("os version: %w", err)
	}

	return Platform{
		Name:    osDisplayName(info.OS),
		Version: version,
	}, nil
}

func (h *HostSource) CPUModel(ctx context.Context) (string, error) {
	infos, err := cpu.InfoWithContext(ctx)
	if err != nil {
		return "", err
	}
	if len(infos) > 0 {
		if model := strings.TrimSpace(infos[0].ModelName); model != "" {
			return model, nil
		}
	}

	// Some ARM kernels expose no model name.
	arch, err := host.KernelArch()
	if err != nil {
		return "", err
	}
	return arch, nil
}

// PhysicalCores returns the non-SMT core count. The reporter treats a count
// of zero as a failed query rather than printing an empty value.
func (h *HostSource) PhysicalCores(ctx context.Context) (int, error) {
	return cpu.CountsWithContext(ctx, false)
}

func (h *HostSource) MemoryTotal(ctx context.Context) (uint64, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return 0, err
	}
	return vm.Total, nil
}

func (h *HostSource) CPUPercent(ctx context.Context, interval time.Duration) (float64, error) {
	pcts, err := cpu.PercentWithContext(ctx, interval, false)
	if err != nil {
		return 0, err
	}
	if len(pcts) == 0 {
		return 0, errors.New("no cpu samples returned")
	}
	return pcts[0], nil
}

func (h *HostSource) MemoryPercent(ctx context.Context) (float64, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("virtual memory: %w", err)
	}
	return vm.UsedPercent, nil
}
