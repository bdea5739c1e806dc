package metrics

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"mission-computer/internal/config"
)

// CPUSampleWindow is how long SystemLoad measures CPU utilization.
const CPUSampleWindow = time.Second

const bytesPerGiB = 1024 * 1024 * 1024

// ErrQueryFailed is returned, wrapped, by every failed report.
var ErrQueryFailed = errors.New("metric query failed")

type Reporter struct {
	src    Source
	out    io.Writer
	log    *zap.Logger
	labels Labels
	format string
	indent int
}

func NewReporter(cfg *config.Config, src Source, out io.Writer, log *zap.Logger) *Reporter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Reporter{
		src:    src,
		out:    out,
		log:    log,
		labels: LabelsFor(cfg.Language),
		format: cfg.Format,
		indent: cfg.Indent,
	}
}

// Run prints both reports under their headers. A failed report does not
// stop the next one.
func (r *Reporter) Run() {
	fmt.Fprintln(r.out, r.labels.InfoHeader)
	_, _ = r.SystemInfo()
	fmt.Fprintln(r.out, r.labels.LoadHeader)
	_, _ = r.SystemLoad()
}

// SystemInfo prints and returns the OS name and version, CPU type, physical
// core count and total memory in GiB. On failure it prints a diagnostic and
// returns a nil snapshot.
func (r *Reporter) SystemInfo() (*Snapshot, error) {
	snap, err := r.collectInfo(context.Background())
	if err != nil {
		return nil, r.fail(KindInfo, err)
	}
	if err := r.print(snap); err != nil {
		return nil, r.fail(KindInfo, err)
	}
	return snap, nil
}

// SystemLoad prints and returns CPU and memory utilization. It blocks for
// CPUSampleWindow while sampling the CPU.
func (r *Reporter) SystemLoad() (*Snapshot, error) {
	snap, err := r.collectLoad(context.Background())
	if err != nil {
		return nil, r.fail(KindLoad, err)
	}
	if err := r.print(snap); err != nil {
		return nil, r.fail(KindLoad, err)
	}
	return snap, nil
}

func (r *Reporter) collectInfo(ctx context.Context) (*Snapshot, error) {
	platform, err := r.src.Platform(ctx)
	if err != nil {
		return nil, fmt.Errorf("platform: %w", err)
	}

	model, err := r.src.CPUModel(ctx)
	if err != nil {
		return nil, fmt.Errorf("cpu model: %w", err)
	}

	cores, err := r.src.PhysicalCores(ctx)
	if err != nil {
		return nil, fmt.Errorf("physical cores: %w", err)
	}
	if cores <= 0 {
		return nil, fmt.Errorf("physical cores: count unavailable (got %d)", cores)
	}

	total, err := r.src.MemoryTotal(ctx)
	if err != nil {
		return nil, fmt.Errorf("memory total: %w", err)
	}

	r.log.Debug("system info collected",
		zap.String("os", platform.Name),
		zap.String("cpu", model),
		zap.Int("cores", cores),
		zap.String("memory_total", humanize.IBytes(total)),
	)

	snap := newSnapshot(KindInfo)
	snap.set(FieldOS, platform.Name)
	snap.set(FieldOSVersion, platform.Version)
	snap.set(FieldCPUType, model)
	snap.set(FieldCPUCores, cores)
	snap.set(FieldMemorySizeGB, Decimal(round(float64(total)/bytesPerGiB, 2)))
	return snap, nil
}

func (r *Reporter) collectLoad(ctx context.Context) (*Snapshot, error) {
	start := time.Now()
	cpuPct, err := r.src.CPUPercent(ctx, CPUSampleWindow)
	if err != nil {
		return nil, fmt.Errorf("cpu percent: %w", err)
	}
	r.log.Debug("cpu sampled", zap.Duration("took", time.Since(start)), zap.Float64("percent", cpuPct))

	memPct, err := r.src.MemoryPercent(ctx)
	if err != nil {
		return nil, fmt.Errorf("memory percent: %w", err)
	}

	cpuUsage, err := percent(cpuPct)
	if err != nil {
		return nil, fmt.Errorf("cpu percent: %w", err)
	}
	memUsage, err := percent(memPct)
	if err != nil {
		return nil, fmt.Errorf("memory percent: %w", err)
	}

	snap := newSnapshot(KindLoad)
	snap.set(FieldCPUUsagePercent, cpuUsage)
	snap.set(FieldMemoryUsagePercent, memUsage)
	return snap, nil
}

func (r *Reporter) print(snap *Snapshot) error {
	data, err := Render(snap, r.labels, r.format, r.indent)
	if err != nil {
		return err
	}
	if _, err := r.out.Write(data); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func (r *Reporter) fail(kind Kind, err error) error {
	prefix := r.labels.InfoError
	if kind == KindLoad {
		prefix = r.labels.LoadError
	}
	fmt.Fprintf(r.out, "%s: %v\n", prefix, err)
	r.log.Error("metric query failed", zap.Stringer("report", kind), zap.Error(err))
	return fmt.Errorf("%w: %s: %w", ErrQueryFailed, kind, err)
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

// percent rounds to one decimal and clamps to [0, 100].
func percent(v float64) (Decimal, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("invalid value %v", v)
	}
	return Decimal(math.Min(100, math.Max(0, round(v, 1)))), nil
}
