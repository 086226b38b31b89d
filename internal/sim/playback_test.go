package sim

import (
	"strings"
	"testing"
)

const sampleTrace = `id,time,node,x,y,z,speed
0,4,0,1.5,2,0,3
1,4,1S,0.5,0.5,0,1
2,5,1S,0.7,0.6,0,2
3,5,0,1.6,2.1,0,3
`

func TestLoadMovementGroupsByTime(t *testing.T) {
	frames, err := LoadMovement(strings.NewReader(sampleTrace))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(frames) != 2 {
		t.Fatalf("got %d frames, want 2", len(frames))
	}
	if frames[0].Time != 4 || frames[1].Time != 5 {
		t.Errorf("frame times = %v, %v", frames[0].Time, frames[1].Time)
	}
	// Nodes within a frame are ordered by id even when the trace is not.
	f := frames[1]
	if len(f.Nodes) != 2 || f.Nodes[0].Node != 0 || f.Nodes[1].Node != 1 {
		t.Errorf("frame nodes out of order: %+v", f.Nodes)
	}
	if !f.Nodes[1].Spine {
		t.Error("spine marker lost on load")
	}
}

func TestLoadMovementRejectsMalformedRows(t *testing.T) {
	bad := []string{
		"id,time,node,x,y,z,speed\nnope,4,0,1,2,0,3\n",
		"id,time,node,x,y,z,speed\n0,4,xyz,1,2,0,3\n",
		"id,time,node,x,y,z,speed\n0,4,0,one,2,0,3\n",
	}
	for i, trace := range bad {
		if _, err := LoadMovement(strings.NewReader(trace)); err == nil {
			t.Errorf("case %d: malformed trace accepted", i)
		}
	}
}

func TestLoadMovementEmptyInput(t *testing.T) {
	if _, err := LoadMovement(strings.NewReader("")); err == nil {
		t.Error("empty trace accepted")
	}
}
