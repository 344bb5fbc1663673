package profiling

import (
	"strings"
	"testing"
	"time"
)

func TestTrackAccumulates(t *testing.T) {
	ResetFrame()
	for i := 0; i < 3; i++ {
		func() {
			defer Track("world.test")()
			time.Sleep(time.Millisecond)
		}()
	}
	Track("meshing.test")()

	snap := Snapshot()
	s := snap["world.test"]
	if s.Calls != 3 {
		t.Errorf("calls = %d, want 3", s.Calls)
	}
	if s.Total < 3*time.Millisecond {
		t.Errorf("total = %v, want >= 3ms", s.Total)
	}
	if got := SumWithPrefix("world."); got != s.Total {
		t.Errorf("SumWithPrefix = %v, want %v", got, s.Total)
	}

	top := TopN(1)
	if !strings.HasPrefix(top, "world.test:") || !strings.Contains(top, "x3") {
		t.Errorf("TopN(1) = %q", top)
	}
	if got := TopN(10); strings.Count(got, ",") != 1 {
		t.Errorf("TopN(10) = %q, want two entries", got)
	}
}

func TestResetFrame(t *testing.T) {
	Track("physics.test")()
	before := Frames()
	ResetFrame()
	if len(Snapshot()) != 0 {
		t.Error("buckets survived ResetFrame")
	}
	if Frames() != before+1 {
		t.Errorf("Frames = %d, want %d", Frames(), before+1)
	}
}
