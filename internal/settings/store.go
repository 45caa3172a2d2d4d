package settings

import (
	"sync"

	"codeberg.org/mutker/gamectl/internal/errors"
)

// Store holds the live settings state. All access goes through the
// descriptor table, so every scalar write lands inside its documented
// bounds. Out-of-range input is coerced, never rejected.
type Store struct {
	mu      sync.RWMutex
	current Settings
}

// NewStore returns a store initialized to the documented defaults.
func NewStore() *Store {
	return &Store{current: Defaults()}
}

// All returns a copy of the full settings state.
func (st *Store) All() Settings {
	st.mu.RLock()
	defer st.mu.RUnlock()

	return st.current
}

// Replace swaps in a complete settings document, clamping every scalar
// field into bounds first.
func (st *Store) Replace(s Settings) {
	clampAll(&s)

	st.mu.Lock()
	defer st.mu.Unlock()
	st.current = s
}

// Reset restores the documented defaults.
func (st *Store) Reset() {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.current = Defaults()
}

// SetFloat clamps v into the field's bounds and stores it. It reports the
// field's category so callers can dispatch a targeted apply.
func (st *Store) SetFloat(id FieldID, v float64) (Category, error) {
	f, err := st.descriptor(id, KindFloat)
	if err != nil {
		return 0, err
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	f.setNum(&st.current, clamp(v, f.Min, f.Max))

	return f.Category, nil
}

// SetInt clamps v into the field's bounds and stores it. Enum fields accept
// ints and coerce them into the enum's domain.
func (st *Store) SetInt(id FieldID, v int) (Category, error) {
	f, err := st.descriptor(id, KindInt, KindEnum)
	if err != nil {
		return 0, err
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	f.setNum(&st.current, clamp(float64(v), f.Min, f.Max))

	return f.Category, nil
}

// SetBool stores v exactly.
func (st *Store) SetBool(id FieldID, v bool) (Category, error) {
	f, err := st.descriptor(id, KindBool)
	if err != nil {
		return 0, err
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	f.setBool(&st.current, v)

	return f.Category, nil
}

// SetString stores v exactly.
func (st *Store) SetString(id FieldID, v string) (Category, error) {
	f, err := st.descriptor(id, KindString)
	if err != nil {
		return 0, err
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	f.setStr(&st.current, v)

	return f.Category, nil
}

// Value returns the current value of a field as float64, int, bool or
// string depending on its kind.
func (st *Store) Value(id FieldID) (any, error) {
	errFactory := errors.New()

	f, ok := fieldsByID[id]
	if !ok {
		return nil, errFactory.WithData(errors.ErrUnknownField, int(id))
	}

	st.mu.RLock()
	defer st.mu.RUnlock()

	switch f.Kind {
	case KindFloat:
		return f.getNum(&st.current), nil
	case KindInt, KindEnum:
		return int(f.getNum(&st.current)), nil
	case KindBool:
		return f.getBool(&st.current), nil
	case KindString:
		return f.getStr(&st.current), nil
	default:
		return nil, errFactory.WithData(errors.ErrFieldKind, f.QualifiedName())
	}
}

func (st *Store) descriptor(id FieldID, kinds ...Kind) (*Field, error) {
	errFactory := errors.New()

	f, ok := fieldsByID[id]
	if !ok {
		return nil, errFactory.WithData(errors.ErrUnknownField, int(id))
	}

	for _, k := range kinds {
		if f.Kind == k {
			return f, nil
		}
	}

	return nil, errFactory.WithData(errors.ErrFieldKind, f.QualifiedName())
}

// Graphics returns a copy of the graphics quality block.
func (st *Store) Graphics() Graphics {
	st.mu.RLock()
	defer st.mu.RUnlock()

	return st.current.Graphics
}

// SetGraphics replaces the graphics quality block, clamping each field.
func (st *Store) SetGraphics(g Graphics) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.current.Graphics = g
	clampCategory(&st.current, CategoryGraphics)
}

// Rendering returns a copy of the rendering feature block.
func (st *Store) Rendering() Rendering {
	st.mu.RLock()
	defer st.mu.RUnlock()

	return st.current.Rendering
}

// SetRendering replaces the rendering feature block, clamping each field.
func (st *Store) SetRendering(r Rendering) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.current.Rendering = r
	clampCategory(&st.current, CategoryRendering)
}

// Performance returns a copy of the performance block.
func (st *Store) Performance() Performance {
	st.mu.RLock()
	defer st.mu.RUnlock()

	return st.current.Performance
}

// SetPerformance replaces the performance block, clamping each field.
func (st *Store) SetPerformance(p Performance) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.current.Performance = p
	clampCategory(&st.current, CategoryPerformance)
}

// Display returns a copy of the display block.
func (st *Store) Display() Display {
	st.mu.RLock()
	defer st.mu.RUnlock()

	return st.current.Display
}

// SetDisplay replaces the display block, clamping each field.
func (st *Store) SetDisplay(d Display) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.current.Display = d
	clampCategory(&st.current, CategoryDisplay)
}

// Audio returns a copy of the audio block.
func (st *Store) Audio() Audio {
	st.mu.RLock()
	defer st.mu.RUnlock()

	return st.current.Audio
}

// SetAudio replaces the audio block, clamping each field.
func (st *Store) SetAudio(a Audio) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.current.Audio = a
	clampCategory(&st.current, CategoryAudio)
}

// Gameplay returns a copy of the gameplay block.
func (st *Store) Gameplay() Gameplay {
	st.mu.RLock()
	defer st.mu.RUnlock()

	return st.current.Gameplay
}

// SetGameplay replaces the gameplay block, clamping each field.
func (st *Store) SetGameplay(g Gameplay) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.current.Gameplay = g
	clampCategory(&st.current, CategoryGameplay)
}

// Accessibility returns a copy of the accessibility block.
func (st *Store) Accessibility() Accessibility {
	st.mu.RLock()
	defer st.mu.RUnlock()

	return st.current.Accessibility
}

// SetAccessibility replaces the accessibility block, clamping each field.
func (st *Store) SetAccessibility(a Accessibility) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.current.Accessibility = a
	clampCategory(&st.current, CategoryAccessibility)
}

// Network returns a copy of the network block.
func (st *Store) Network() Network {
	st.mu.RLock()
	defer st.mu.RUnlock()

	return st.current.Network
}

// SetNetwork replaces the network block, clamping each field.
func (st *Store) SetNetwork(n Network) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.current.Network = n
	clampCategory(&st.current, CategoryNetwork)
}

// Debug returns a copy of the debug block.
func (st *Store) Debug() Debug {
	st.mu.RLock()
	defer st.mu.RUnlock()

	return st.current.Debug
}

// SetDebug replaces the debug block, clamping each field.
func (st *Store) SetDebug(d Debug) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.current.Debug = d
	clampCategory(&st.current, CategoryDebug)
}
