package iconvg

import (
	"bytes"
	"errors"
	"testing"
)

func TestBrokenCanvasPropagatesErr(t *testing.T) {
	sentinel := errors.New("broken")
	c := BrokenCanvas(sentinel)
	if err := c.BeginDecode(Rectangle{}); err != sentinel {
		t.Errorf("BeginDecode = %v, want %v", err, sentinel)
	}
	if err := c.BeginPath(0, 0); err != sentinel {
		t.Errorf("BeginPath = %v, want %v", err, sentinel)
	}
	if err := c.PathLineTo(0, 0); err != sentinel {
		t.Errorf("PathLineTo = %v, want %v", err, sentinel)
	}
	if err := c.EndDrawing(&Paint{}); err != sentinel {
		t.Errorf("EndDrawing = %v, want %v", err, sentinel)
	}
}

func TestBrokenCanvasEndDecodePrefersEarlierErr(t *testing.T) {
	c := BrokenCanvas(errors.New("broken"))
	earlier := errors.New("earlier")
	if err := c.EndDecode(earlier, 0, 0); err != earlier {
		t.Errorf("EndDecode(earlier, ...) = %v, want the earlier error to win", err)
	}
}

func TestBrokenCanvasNilErrIsSilentlySuccessful(t *testing.T) {
	c := BrokenCanvas(nil)
	if err := c.BeginDecode(Rectangle{}); err != nil {
		t.Errorf("BeginDecode = %v, want nil", err)
	}
	if err := c.EndDecode(nil, 0, 0); err != nil {
		t.Errorf("EndDecode = %v, want nil", err)
	}
}

func TestDebugCanvasLogsAndForwards(t *testing.T) {
	var buf bytes.Buffer
	rec := &recordingCanvas{}
	c := DebugCanvas(&buf, "test: ", rec)

	if err := c.BeginDecode(DefaultViewBox); err != nil {
		t.Fatalf("BeginDecode: %v", err)
	}
	if err := c.BeginPath(1, 2); err != nil {
		t.Fatalf("BeginPath: %v", err)
	}

	if len(rec.calls) != 2 {
		t.Fatalf("wrapped canvas saw %d calls, want 2: %v", len(rec.calls), rec.calls)
	}
	if got := buf.String(); got == "" {
		t.Errorf("DebugCanvas wrote nothing to its writer")
	}
}

func TestDebugCanvasNilWriterIsSilent(t *testing.T) {
	c := DebugCanvas(nil, "", nil)
	if err := c.BeginDecode(Rectangle{}); err != nil {
		t.Errorf("BeginDecode = %v, want nil", err)
	}
}

func TestDebugCanvasNilWrappedStillForwardsEndDecodeErr(t *testing.T) {
	c := DebugCanvas(nil, "", nil)
	sentinel := errors.New("boom")
	if err := c.EndDecode(sentinel, 0, 0); err != sentinel {
		t.Errorf("EndDecode = %v, want %v", err, sentinel)
	}
}
