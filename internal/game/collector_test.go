package game

import "testing"

func TestCollectorEvictsOldestBeyondCapacity(t *testing.T) {
	c := NewCollector(100)
	for i := 0; i < 150; i++ {
		c.Report(i, SeverityInfo, "fault")
	}
	faults := c.Faults()
	if len(faults) != 100 {
		t.Fatalf("retained faults = %d, want 100", len(faults))
	}
	if faults[0].Turn != 50 {
		t.Errorf("oldest retained fault from turn %d, want 50", faults[0].Turn)
	}
	if faults[99].Turn != 149 {
		t.Errorf("newest retained fault from turn %d, want 149", faults[99].Turn)
	}
}

func TestCollectorCriticalCount(t *testing.T) {
	c := NewCollector(10)
	c.Report(1, SeverityInfo, "a")
	c.Report(2, SeverityWarning, "b")
	c.Report(3, SeverityCritical, "c")
	c.Report(4, SeverityCritical, "d")
	if got := c.CriticalCount(); got != 2 {
		t.Errorf("critical count = %d, want 2", got)
	}
}
