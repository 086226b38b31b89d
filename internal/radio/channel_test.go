package radio

import (
	"testing"

	"manet-sim/internal/config"
	"manet-sim/internal/world"
)

type heard struct{ observer, sender int }

func newTestChannel(t *testing.T, positions []world.Vector) (*Channel, *world.Registry, *[]heard) {
	t.Helper()
	reg := world.NewRegistry(len(positions))
	for i, p := range positions {
		reg.Node(i).Position = p
	}
	cfg := config.Default()
	cfg.WifiType = string(config.Wifi80211b) // 140 m at 20 MHz
	ch := NewChannel(reg, cfg)

	var frames []heard
	ch.SetFrameCallback(func(observer, sender int) {
		frames = append(frames, heard{observer, sender})
	})
	return ch, reg, &frames
}

func TestBroadcastReachesOnlyNodesInRange(t *testing.T) {
	ch, _, frames := newTestChannel(t, []world.Vector{
		{X: 0, Y: 0},
		{X: 100, Y: 0},
		{X: 500, Y: 0},
	})

	ch.Broadcast(0)

	if len(*frames) != 1 {
		t.Fatalf("expected 1 overhear, got %v", *frames)
	}
	if (*frames)[0] != (heard{observer: 1, sender: 0}) {
		t.Fatalf("unexpected overhear %v", (*frames)[0])
	}
}

func TestDownNodesNeitherSendNorHear(t *testing.T) {
	ch, reg, frames := newTestChannel(t, []world.Vector{
		{X: 0, Y: 0},
		{X: 50, Y: 0},
	})

	reg.SetInterfaceDown(0)
	ch.Broadcast(0)
	if len(*frames) != 0 {
		t.Fatalf("down sender transmitted: %v", *frames)
	}

	reg.SetInterfaceUp(0)
	reg.SetInterfaceDown(1)
	ch.Broadcast(0)
	if len(*frames) != 0 {
		t.Fatalf("down listener overheard: %v", *frames)
	}
}

func TestUnicastDeliveryAndOverhear(t *testing.T) {
	ch, reg, frames := newTestChannel(t, []world.Vector{
		{X: 0, Y: 0},
		{X: 60, Y: 0},
		{X: 90, Y: 0},
		{X: 900, Y: 0},
	})

	if !ch.Unicast(0, 1) {
		t.Fatal("in-range unicast not delivered")
	}
	// Nodes 1 and 2 overhear, node 3 is out of range.
	if len(*frames) != 2 {
		t.Fatalf("expected 2 overhears, got %v", *frames)
	}

	*frames = nil
	if ch.Unicast(0, 3) {
		t.Fatal("out-of-range unicast reported delivered")
	}
	if len(*frames) != 2 {
		t.Fatalf("bystanders should still overhear a failed unicast, got %v", *frames)
	}

	*frames = nil
	reg.SetInterfaceDown(1)
	if ch.Unicast(0, 1) {
		t.Fatal("unicast to a down node reported delivered")
	}
}

func TestForestShrinksRange(t *testing.T) {
	open := config.Default()
	open.AreaSizeX, open.AreaSizeY = 300, 300

	forest := config.Default()
	forest.AreaSizeX, forest.AreaSizeY = 300, 300
	forest.Environment = string(config.EnvForest)
	forest.TreeCount = 500
	forest.TreeSize = 0.4
	forest.TreeHeight = 12

	ro, rf := RangeEstimate(open), RangeEstimate(forest)
	if rf >= ro {
		t.Fatalf("forest range %g not below open range %g", rf, ro)
	}
	if rf < ro*0.25-1e-9 {
		t.Fatalf("forest range %g below floor %g", rf, ro*0.25)
	}
}

func TestTxDurationScalesWithSize(t *testing.T) {
	cfg := config.Default() // 80211b, 11 Mbps
	reg := world.NewRegistry(1)
	ch := NewChannel(reg, cfg)

	d := ch.TxDuration(512)
	want := 512.0 * 8 / 11e6
	if diff := d - want; diff > 1e-12 || diff < -1e-12 {
		t.Fatalf("TxDuration(512) = %g, want %g", d, want)
	}
	if ch.TxDuration(1024) <= d {
		t.Fatal("larger payload should take longer")
	}
}
