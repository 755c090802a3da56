package story

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidLibrary is returned by NewLibrary when the scene set is malformed.
var ErrInvalidLibrary = errors.New("invalid scene library")

// Library is a read-only, ordered collection of scenes grouped by phase.
type Library struct {
	scenes  []Scene
	byPhase map[Phase][]Scene
	byID    map[string]Scene
}

// NewLibrary validates scenes and builds a library that preserves their
// declaration order in every view.
func NewLibrary(scenes []Scene) (*Library, error) {
	lib := &Library{
		scenes:  make([]Scene, 0, len(scenes)),
		byPhase: make(map[Phase][]Scene, len(phaseOrder)),
		byID:    make(map[string]Scene, len(scenes)),
	}

	for i, sc := range scenes {
		if err := validateScene(sc); err != nil {
			return nil, fmt.Errorf("%w: scene #%d: %w", ErrInvalidLibrary, i, err)
		}
		if _, dup := lib.byID[sc.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate scene id %q", ErrInvalidLibrary, sc.ID)
		}
		sc = cloneScene(sc)
		lib.scenes = append(lib.scenes, sc)
		lib.byPhase[sc.Phase] = append(lib.byPhase[sc.Phase], sc)
		lib.byID[sc.ID] = sc
	}

	for _, p := range phaseOrder {
		if p.Required() && len(lib.byPhase[p]) == 0 {
			return nil, fmt.Errorf("%w: no scenes for required phase %s", ErrInvalidLibrary, p)
		}
	}
	return lib, nil
}

func validateScene(sc Scene) error {
	if strings.TrimSpace(sc.ID) == "" {
		return errors.New("empty id")
	}
	if !sc.Phase.Valid() {
		return fmt.Errorf("scene %q: unknown phase %d", sc.ID, int(sc.Phase))
	}
	if !sc.Setting.valid() {
		return fmt.Errorf("scene %q: unknown setting %q", sc.ID, sc.Setting)
	}
	if len(sc.Sentences) == 0 {
		return fmt.Errorf("scene %q: no sentences", sc.ID)
	}
	if len(sc.Words) == 0 {
		return fmt.Errorf("scene %q: no words", sc.ID)
	}
	for _, w := range sc.Words {
		if w == "" || w != strings.ToLower(strings.TrimSpace(w)) {
			return fmt.Errorf("scene %q: word %q must be lowercase and trimmed", sc.ID, w)
		}
	}
	return nil
}

func cloneScene(sc Scene) Scene {
	sc.Sentences = append([]string(nil), sc.Sentences...)
	sc.Words = append([]string(nil), sc.Words...)
	return sc
}

var defaultLibrary = mustLibrary(defaultScenes)

func mustLibrary(scenes []Scene) *Library {
	lib, err := NewLibrary(scenes)
	if err != nil {
		panic(err)
	}
	return lib
}

// Default returns the authored scene library.
func Default() *Library {
	return defaultLibrary
}

// Scenes returns every scene in declaration order.
func (l *Library) Scenes() []Scene {
	out := make([]Scene, len(l.scenes))
	for i, sc := range l.scenes {
		out[i] = cloneScene(sc)
	}
	return out
}

// Phases returns the canonical phase order.
func (l *Library) Phases() []Phase {
	return Phases()
}

// ByPhase returns the scenes grouped by phase, each group in declaration order.
func (l *Library) ByPhase() map[Phase][]Scene {
	out := make(map[Phase][]Scene, len(l.byPhase))
	for p := range l.byPhase {
		out[p] = l.InPhase(p)
	}
	return out
}

// InPhase returns the scenes of phase p in declaration order.
func (l *Library) InPhase(p Phase) []Scene {
	group := l.byPhase[p]
	out := make([]Scene, len(group))
	for i, sc := range group {
		out[i] = cloneScene(sc)
	}
	return out
}

// Scene looks a scene up by id.
func (l *Library) Scene(id string) (Scene, bool) {
	sc, ok := l.byID[id]
	if !ok {
		return Scene{}, false
	}
	return cloneScene(sc), true
}

// inPhase returns the internal slice without copying. Callers must not mutate it.
func (l *Library) inPhase(p Phase) []Scene {
	return l.byPhase[p]
}
