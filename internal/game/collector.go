package game

// Severity classifies a reported engine fault.
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// Fault is one recorded engine fault.
type Fault struct {
	Turn     int      `json:"turn"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// Collector keeps a bounded history of engine faults for the session,
// owned by the orchestrator rather than held in process-wide state.
type Collector struct {
	max    int
	faults []Fault
}

// DefaultFaultHistory is the bounded history size used when none is given.
const DefaultFaultHistory = 100

// NewCollector creates a collector keeping at most max faults; the
// oldest are dropped first.
func NewCollector(max int) *Collector {
	if max <= 0 {
		max = DefaultFaultHistory
	}
	return &Collector{max: max}
}

// Report records a fault, evicting the oldest when the history is full.
func (c *Collector) Report(turn int, sev Severity, msg string) {
	if len(c.faults) == c.max {
		c.faults = c.faults[1:]
	}
	c.faults = append(c.faults, Fault{Turn: turn, Severity: sev, Message: msg})
}

// Faults returns the recorded history, oldest first.
func (c *Collector) Faults() []Fault {
	return c.faults
}

// CriticalCount returns how many critical faults are in the history.
func (c *Collector) CriticalCount() int {
	n := 0
	for _, f := range c.faults {
		if f.Severity == SeverityCritical {
			n++
		}
	}
	return n
}
