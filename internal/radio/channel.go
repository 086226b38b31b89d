// Disc-model radio channel with promiscuous overhear callbacks
package radio

import (
	"manet-sim/internal/config"
	"manet-sim/internal/world"
)

// FrameCallback is invoked once per listener that physically overhears
// a transmission, with the observing node and the sender id.
type FrameCallback func(observer, sender int)

// Channel is a unit-disc approximation of the shared medium: a
// transmission by an up node is heard by every other up node within
// Range meters. There is no capture, collision, or fading model; the
// experiment layer only needs "who could hear whom".
type Channel struct {
	reg      *world.Registry
	RangeM   float64
	rateMbps float64

	onOverheard FrameCallback
}

// NewChannel derives the radio range and bit rate from the wifi and
// environment configuration.
func NewChannel(reg *world.Registry, cfg *config.Config) *Channel {
	return &Channel{
		reg:      reg,
		RangeM:   RangeEstimate(cfg),
		rateMbps: rateEstimate(cfg),
	}
}

// SetFrameCallback registers the listener notified on every overheard
// frame.
func (c *Channel) SetFrameCallback(fn FrameCallback) {
	c.onOverheard = fn
}

// Broadcast transmits a frame heard by every up node in range of the
// sender. A down sender transmits nothing.
func (c *Channel) Broadcast(sender int) {
	src := c.reg.Node(sender)
	if !src.Up {
		return
	}
	for _, n := range c.reg.Nodes() {
		if n.ID == sender || !n.Up {
			continue
		}
		if src.Position.DistanceTo(n.Position) <= c.RangeM {
			if c.onOverheard != nil {
				c.onOverheard(n.ID, sender)
			}
		}
	}
}

// Unicast transmits a frame addressed to dest. Every up node in range
// overhears it, dest included; the return value reports whether dest
// could actually receive it.
func (c *Channel) Unicast(sender, dest int) bool {
	src := c.reg.Node(sender)
	if !src.Up {
		return false
	}
	delivered := false
	for _, n := range c.reg.Nodes() {
		if n.ID == sender || !n.Up {
			continue
		}
		if src.Position.DistanceTo(n.Position) > c.RangeM {
			continue
		}
		if c.onOverheard != nil {
			c.onOverheard(n.ID, sender)
		}
		if n.ID == dest {
			delivered = true
		}
	}
	return delivered
}

// TxDuration returns the serialization time in seconds for a payload
// of the given size at the channel bit rate.
func (c *Channel) TxDuration(bytes int) float64 {
	return float64(bytes*8) / (c.rateMbps * 1e6)
}

// nominalRange maps the emulated 802.11 standard to an open-field
// range in meters at 20 MHz.
var nominalRange = map[config.WifiType]float64{
	config.Wifi80211b:  140,
	config.Wifi80211g:  120,
	config.Wifi80211n:  100,
	config.Wifi80211ac: 60,
}

// widthFactor derates range for wider channels (higher noise floor).
var widthFactor = map[int]float64{20: 1.0, 40: 0.85, 80: 0.7, 160: 0.55}

var nominalRate = map[config.WifiType]float64{
	config.Wifi80211b:  11,
	config.Wifi80211g:  54,
	config.Wifi80211n:  65,
	config.Wifi80211ac: 200,
}

// RangeEstimate computes the disc radius from the wifi standard,
// channel width, and environment. In the forest environment range
// shrinks with canopy density, floored at a quarter of the open-field
// value.
func RangeEstimate(cfg *config.Config) float64 {
	r := nominalRange[config.WifiType(cfg.WifiType)] * widthFactor[cfg.WifiChannelWidth]
	if config.Environment(cfg.Environment) == config.EnvForest {
		density := float64(cfg.TreeCount) * cfg.TreeSize * cfg.TreeHeight /
			(cfg.AreaSizeX * cfg.AreaSizeY)
		factor := 1 / (1 + density)
		if factor < 0.25 {
			factor = 0.25
		}
		r *= factor
	}
	return r
}

// rateEstimate scales the base rate with channel width.
func rateEstimate(cfg *config.Config) float64 {
	return nominalRate[config.WifiType(cfg.WifiType)] * float64(cfg.WifiChannelWidth) / 20
}
