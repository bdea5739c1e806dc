//go:build !unix

package metrics

import "github.com/shirou/gopsutil/v4/host"

// osVersion returns the kernel version, e.g. "10.0.19045 Build 19045" on
// Windows, falling back to the platform version.
func osVersion(info *host.InfoStat) (string, error) {
	if info.KernelVersion != "" {
		return info.KernelVersion, nil
	}
	return info.PlatformVersion, nil
}
