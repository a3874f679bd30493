// Package input describes the per-tick keyboard state the tuning layer reads.
package input

// Key names a keyboard key. Names follow ebiten's spelling, e.g. "F1",
// "NumpadAdd", "ShiftLeft" or the virtual "Shift".
type Key string

// State is the keyboard as seen during one tick.
type State interface {
	// Pressed reports whether k went down during this tick.
	Pressed(k Key) bool
	// Held reports whether k is down during this tick.
	Held(k Key) bool
}

// Snapshot is a fixed State. A pressed key is also held.
type Snapshot struct {
	Down map[Key]bool // held
	Edge map[Key]bool // pressed this tick
}

// Press returns a Snapshot where every key in keys went down this tick.
func Press(keys ...Key) Snapshot {
	s := Snapshot{Down: map[Key]bool{}, Edge: map[Key]bool{}}
	for _, k := range keys {
		s.Down[k] = true
		s.Edge[k] = true
	}
	return s
}

// Hold returns a Snapshot where every key in keys is down but none changed
// this tick.
func Hold(keys ...Key) Snapshot {
	s := Snapshot{Down: map[Key]bool{}, Edge: map[Key]bool{}}
	for _, k := range keys {
		s.Down[k] = true
	}
	return s
}

// With returns a copy of s that additionally holds keys.
func (s Snapshot) With(keys ...Key) Snapshot {
	out := Snapshot{Down: map[Key]bool{}, Edge: map[Key]bool{}}
	for k, v := range s.Down {
		out.Down[k] = v
	}
	for k, v := range s.Edge {
		out.Edge[k] = v
	}
	for _, k := range keys {
		out.Down[k] = true
	}
	return out
}

func (s Snapshot) Pressed(k Key) bool { return s.Edge[k] }
func (s Snapshot) Held(k Key) bool    { return s.Down[k] || s.Edge[k] }

// None is a State with no keys down.
var None State = Snapshot{}
