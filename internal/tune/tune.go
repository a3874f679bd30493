// Package tune adjusts bounded numeric fields from key combinations.
//
// Each tunable field has a hold key. While the hold key is down, a press of
// the increase or decrease key moves the field one step; holding the fast
// modifier as well repeats the step on every tick the key stays down.
// Results saturate at the field's limits.
package tune

import (
	"fmt"
	"strconv"

	"github.com/coreman2200/sheetanim/internal/input"
)

// Number is a field type that can be tuned.
type Number interface {
	~int | ~float64
}

// Binding names the keys that drive one field.
type Binding struct {
	Hold     input.Key
	Decrease input.Key
	Increase input.Key
	Fast     input.Key // modifier for continuous stepping
}

// Limits bounds a field and sets its step.
type Limits[T Number] struct {
	Step T
	Min  T
	Max  T
}

// Adjust moves *ref by one step when b's key combination asks for it and
// clamps the result into [l.Min, l.Max]. It reports whether *ref changed.
func Adjust[T Number](ref *T, in input.State, b Binding, l Limits[T]) bool {
	if ref == nil || !in.Held(b.Hold) {
		return false
	}
	fast := b.Fast != "" && in.Held(b.Fast)
	old := *ref
	if in.Pressed(b.Increase) || (fast && in.Held(b.Increase)) {
		*ref = min(l.Max, *ref+l.Step)
	}
	if in.Pressed(b.Decrease) || (fast && in.Held(b.Decrease)) {
		*ref = max(l.Min, *ref-l.Step)
	}
	return *ref != old
}

// Tuner is one entry of a Panel.
type Tuner interface {
	// Label is the display name of the field.
	Label() string
	// Hold is the key that selects the field.
	Hold() input.Key
	// Apply adjusts the field from in and reports whether it changed.
	Apply(in input.State) bool
	// Value formats the current field value.
	Value() string
}

// Knob binds a field reference to its keys and limits.
type Knob[T Number] struct {
	Name   string
	Ref    *T
	Keys   Binding
	Limits Limits[T]
	// Format overrides the default value formatting when set.
	Format func(T) string
}

func (k *Knob[T]) Label() string   { return k.Name }
func (k *Knob[T]) Hold() input.Key { return k.Keys.Hold }

func (k *Knob[T]) Apply(in input.State) bool {
	return Adjust(k.Ref, in, k.Keys, k.Limits)
}

func (k *Knob[T]) Value() string {
	if k.Ref == nil {
		return "-"
	}
	if k.Format != nil {
		return k.Format(*k.Ref)
	}
	switch v := any(*k.Ref).(type) {
	case int:
		return strconv.Itoa(v)
	case float64:
		return strconv.FormatFloat(v, 'f', 3, 64)
	default:
		return fmt.Sprint(v)
	}
}

// Panel is an ordered set of tuners applied together once per tick.
type Panel []Tuner

// Apply runs every tuner against in and returns those whose field changed.
func (p Panel) Apply(in input.State) []Tuner {
	var changed []Tuner
	for _, t := range p {
		if t.Apply(in) {
			changed = append(changed, t)
		}
	}
	return changed
}
