//go:build unix

package metrics

import (
	"github.com/shirou/gopsutil/v4/host"
	"golang.org/x/sys/unix"
)

// osVersion returns the kernel build string reported by uname -v,
// e.g. "#1 SMP PREEMPT_DYNAMIC Fri Mar 29 12:21:27 UTC 2024".
func osVersion(_ *host.InfoStat) (string, error) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return "", err
	}
	return unix.ByteSliceToString(uts.Version[:]), nil
}
