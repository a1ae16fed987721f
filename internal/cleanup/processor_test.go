package cleanup

import (
	"context"
	"errors"
	"testing"

	"sweeparr/internal/logging"
)

func TestProcessDryRunMakesNoCalls(t *testing.T) {
	lib := &fakeLibrary{}
	proc := NewProcessor(lib, logging.NewNop(), true)

	if !proc.Process(context.Background(), testEpisode(1, 40, true)) {
		t.Fatal("expected dry-run processing to report success")
	}
	if lib.mutations() != 0 {
		t.Fatalf("expected no mutating calls under dry run, got %d", lib.mutations())
	}
}

func TestProcessUnmonitorsThenDeletes(t *testing.T) {
	lib := &fakeLibrary{}
	proc := NewProcessor(lib, logging.NewNop(), false)

	ep := testEpisode(5, 40, true)
	if !proc.Process(context.Background(), ep) {
		t.Fatal("expected processing to succeed")
	}
	if len(lib.unmonitored) != 1 || lib.unmonitored[0] != 5 {
		t.Fatalf("expected episode 5 unmonitored, got %v", lib.unmonitored)
	}
	if len(lib.deleted) != 1 || lib.deleted[0] != 500 {
		t.Fatalf("expected file 500 deleted, got %v", lib.deleted)
	}
}

func TestProcessUnmonitorFailureSkipsDelete(t *testing.T) {
	lib := &fakeLibrary{unmonitorErr: map[int64]error{5: errors.New("backend down")}}
	proc := NewProcessor(lib, logging.NewNop(), false)

	if proc.Process(context.Background(), testEpisode(5, 40, true)) {
		t.Fatal("expected processing to fail")
	}
	if len(lib.deleted) != 0 {
		t.Fatalf("expected no delete after failed unmonitor, got %v", lib.deleted)
	}
}

func TestProcessDeleteFailureLeavesUnmonitorInPlace(t *testing.T) {
	lib := &fakeLibrary{deleteErr: map[int64]error{500: errors.New("backend down")}}
	proc := NewProcessor(lib, logging.NewNop(), false)

	if proc.Process(context.Background(), testEpisode(5, 40, true)) {
		t.Fatal("expected processing to fail")
	}
	if len(lib.unmonitored) != 1 || lib.unmonitored[0] != 5 {
		t.Fatalf("expected the unmonitor to stand, got %v", lib.unmonitored)
	}
}
