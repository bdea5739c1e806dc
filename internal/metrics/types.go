package metrics

import (
	"strconv"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

type Kind int

const (
	KindInfo Kind = iota
	KindLoad
)

func (k Kind) String() string {
	switch k {
	case KindInfo:
		return "system info"
	case KindLoad:
		return "system load"
	default:
		return "unknown"
	}
}

// Field identifies one value in a Snapshot. Display labels are resolved
// at render time.
type Field string

const (
	FieldOS           Field = "os"
	FieldOSVersion    Field = "os_version"
	FieldCPUType      Field = "cpu_type"
	FieldCPUCores     Field = "cpu_cores"
	FieldMemorySizeGB Field = "memory_size_gb"

	FieldCPUUsagePercent    Field = "cpu_usage_percent"
	FieldMemoryUsagePercent Field = "memory_usage_percent"
)

var (
	InfoFields = []Field{FieldOS, FieldOSVersion, FieldCPUType, FieldCPUCores, FieldMemorySizeGB}
	LoadFields = []Field{FieldCPUUsagePercent, FieldMemoryUsagePercent}
)

// Decimal is a rounded float that always renders with a fractional part,
// so 16 prints as 16.0.
type Decimal float64

func (d Decimal) String() string {
	s := strconv.FormatFloat(float64(d), 'f', -1, 64)
	if !strings.ContainsAny(s, ".NI") {
		s += ".0"
	}
	return s
}

func (d Decimal) MarshalJSON() ([]byte, error) {
	return []byte(d.String()), nil
}

// Snapshot is an ordered set of metric values captured by one reporter call.
// Values are string, int or Decimal.
type Snapshot struct {
	kind   Kind
	values *orderedmap.OrderedMap[Field, any]
}

func newSnapshot(kind Kind) *Snapshot {
	return &Snapshot{
		kind:   kind,
		values: orderedmap.New[Field, any](),
	}
}

func (s *Snapshot) set(f Field, v any) {
	s.values.Set(f, v)
}

func (s *Snapshot) Kind() Kind {
	return s.kind
}

func (s *Snapshot) Len() int {
	return s.values.Len()
}

// Fields returns the field names in insertion order.
func (s *Snapshot) Fields() []Field {
	fields := make([]Field, 0, s.values.Len())
	for pair := s.values.Oldest(); pair != nil; pair = pair.Next() {
		fields = append(fields, pair.Key)
	}
	return fields
}

func (s *Snapshot) Get(f Field) (any, bool) {
	return s.values.Get(f)
}

// Platform is the OS identification returned by a Source.
type Platform struct {
	Name    string
	Version string
}
