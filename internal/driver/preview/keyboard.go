package preview

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/coreman2200/sheetanim/internal/input"
)

// ParseKey resolves an ebiten key name such as "F1", "numpadadd" or
// "Shift". Matching ignores case.
func ParseKey(name string) (ebiten.Key, error) {
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		if strings.EqualFold(k.String(), name) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown key %q", name)
}

// Keyboard reads the live ebiten keyboard. It must only be used from the
// game's Update.
type Keyboard struct {
	keys map[input.Key]ebiten.Key
}

// NewKeyboard resolves names up front so a typo in the config is reported
// at startup instead of silently never matching.
func NewKeyboard(names ...string) (*Keyboard, error) {
	kb := &Keyboard{keys: make(map[input.Key]ebiten.Key, len(names))}
	for _, n := range names {
		k, err := ParseKey(n)
		if err != nil {
			return nil, err
		}
		kb.keys[input.Key(n)] = k
	}
	return kb, nil
}

func (kb *Keyboard) Pressed(k input.Key) bool {
	ek, ok := kb.keys[k]
	return ok && inpututil.IsKeyJustPressed(ek)
}

func (kb *Keyboard) Held(k input.Key) bool {
	ek, ok := kb.keys[k]
	return ok && ebiten.IsKeyPressed(ek)
}
