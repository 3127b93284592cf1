package viewer

import (
	"sync"
	"testing"

	"github.com/molembed/molembed/internal/source"
)

func TestStateArenaBeginClaimsOnce(t *testing.T) {
	arena := NewStateArena()

	if !arena.Begin("c1") {
		t.Fatal("first Begin should claim")
	}
	if arena.Begin("c1") {
		t.Error("second Begin on a rendering container should be refused")
	}
	if !arena.Begin("c2") {
		t.Error("a different container is independent")
	}
}

func TestStateArenaFailReleasesClaim(t *testing.T) {
	arena := NewStateArena()

	arena.Begin("c1")
	arena.Fail("c1")
	if arena.Snapshot("c1").Phase != PhaseUnrendered {
		t.Errorf("phase = %v, want unrendered", arena.Snapshot("c1").Phase)
	}
	if !arena.Begin("c1") {
		t.Error("Begin after Fail should claim again")
	}
}

func TestStateArenaRenderedIsTerminal(t *testing.T) {
	arena := NewStateArena()

	arena.Begin("c1")
	arena.Finish("c1", source.FormatMMCIF, PathScene)

	if arena.Begin("c1") {
		t.Error("rendered container should refuse Begin")
	}
	arena.Fail("c1")
	st := arena.Snapshot("c1")
	if st.Phase != PhaseRendered {
		t.Errorf("Fail moved a rendered container to %v", st.Phase)
	}
	if st.LoadedFormat != source.FormatMMCIF || st.LoadedPath != PathScene {
		t.Errorf("diagnostics = (%q, %q)", st.LoadedFormat, st.LoadedPath)
	}
}

func TestStateArenaConcurrentBegin(t *testing.T) {
	arena := NewStateArena()

	const goroutines = 16
	var wg sync.WaitGroup
	claims := make(chan bool, goroutines)
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			claims <- arena.Begin("c1")
		}()
	}
	wg.Wait()
	close(claims)

	won := 0
	for claimed := range claims {
		if claimed {
			won++
		}
	}
	if won != 1 {
		t.Errorf("%d goroutines claimed the container, want exactly 1", won)
	}
}

func TestPhaseString(t *testing.T) {
	tests := []struct {
		phase Phase
		want  string
	}{
		{PhaseUnrendered, "unrendered"},
		{PhaseRendering, "rendering"},
		{PhaseRendered, "rendered"},
	}
	for _, tc := range tests {
		if got := tc.phase.String(); got != tc.want {
			t.Errorf("Phase(%d).String() = %q, want %q", tc.phase, got, tc.want)
		}
	}
}
