package story

import (
	"math"
	"strings"
)

const (
	// DefaultProtagonist is used when the caller passes an empty name.
	DefaultProtagonist = "Alex"

	newWordWeight = 10
	// backfillCoverage and backfillMaxScenes gate the extra activity pass.
	backfillCoverage  = 0.7
	backfillMaxScenes = 8
)

// Story is the immutable result of one composition.
type Story struct {
	Title            string   `json:"title" yaml:"title"`
	Sentences        []string `json:"sentences" yaml:"sentences"`
	UsedWords        []string `json:"used_words" yaml:"used_words"`
	TotalTargetWords int      `json:"total_target_words" yaml:"total_target_words"`
	CoveragePercent  int      `json:"coverage_percent" yaml:"coverage_percent"`
	ScenesUsed       []string `json:"scenes_used" yaml:"scenes_used"`
}

// Composer turns target words into a Story using a scene library.
type Composer struct {
	lib        *Library
	rng        Randomizer
	normalizer *Normalizer
}

// NewComposer returns a composer. nil arguments fall back to Default() and
// the process-wide random source.
func NewComposer(lib *Library, rng Randomizer) *Composer {
	if lib == nil {
		lib = Default()
	}
	if rng == nil {
		rng = DefaultRandomizer()
	}
	return &Composer{lib: lib, rng: rng, normalizer: NewNormalizer(rng)}
}

// Library returns the scene library the composer draws from.
func (c *Composer) Library() *Library { return c.lib }

var defaultComposer = NewComposer(nil, nil)

// Compose builds a story from the default library with process randomness.
func Compose(targetWords []string, protagonistName string) Story {
	return defaultComposer.Compose(targetWords, protagonistName)
}

// NormalizeTargets lowercases and trims words, drops empties and removes
// duplicates keeping the first occurrence.
func NormalizeTargets(words []string) []string {
	out := make([]string, 0, len(words))
	seen := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}

// composition is the per-call working state.
type composition struct {
	targets    []string
	targetSet  map[string]struct{}
	used       map[string]struct{}
	usedScenes map[string]struct{}
	selected   []Scene
}

func newComposition(targets []string) *composition {
	st := &composition{
		targets:    targets,
		targetSet:  make(map[string]struct{}, len(targets)),
		used:       make(map[string]struct{}, len(targets)),
		usedScenes: make(map[string]struct{}),
	}
	for _, w := range targets {
		st.targetSet[w] = struct{}{}
	}
	return st
}

// score returns 10 per not-yet-covered target word plus 1 per target word.
func (st *composition) score(sc Scene) (score, fresh int) {
	relevant := 0
	for _, w := range sc.Words {
		if _, ok := st.targetSet[w]; !ok {
			continue
		}
		relevant++
		if _, done := st.used[w]; !done {
			fresh++
		}
	}
	return newWordWeight*fresh + relevant, fresh
}

// best picks the highest scoring unused scene. Ties keep the earlier scene.
// With needFresh set, scenes adding no new target word are skipped.
func (st *composition) best(candidates []Scene, needFresh bool) (Scene, int, bool) {
	var (
		chosen    Scene
		bestScore int
		found     bool
	)
	for _, sc := range candidates {
		if _, taken := st.usedScenes[sc.ID]; taken {
			continue
		}
		score, fresh := st.score(sc)
		if needFresh && fresh == 0 {
			continue
		}
		if !found || score > bestScore {
			chosen, bestScore, found = sc, score, true
		}
	}
	return chosen, bestScore, found
}

func (st *composition) markUsed(sc Scene) {
	st.usedScenes[sc.ID] = struct{}{}
	for _, w := range sc.Words {
		if _, ok := st.targetSet[w]; ok {
			st.used[w] = struct{}{}
		}
	}
}

func (st *composition) add(sc Scene) {
	st.markUsed(sc)
	st.selected = append(st.selected, sc)
}

// insert places sc after every selected scene of the same or an earlier phase.
func (st *composition) insert(sc Scene) {
	st.markUsed(sc)
	pos := len(st.selected)
	for i, s := range st.selected {
		if s.Phase > sc.Phase {
			pos = i
			break
		}
	}
	st.selected = append(st.selected, Scene{})
	copy(st.selected[pos+1:], st.selected[pos:])
	st.selected[pos] = sc
}

func (st *composition) needsBackfill() bool {
	return float64(len(st.used)) < backfillCoverage*float64(len(st.targets)) &&
		len(st.selected) < backfillMaxScenes
}

// Compose runs the full composition for one request. It never fails: words
// nothing can cover are reported through CoveragePercent.
func (c *Composer) Compose(targetWords []string, protagonistName string) Story {
	name := protagonistDisplayName(protagonistName)
	st := newComposition(NormalizeTargets(targetWords))

	for _, p := range phaseOrder {
		sc, score, ok := st.best(c.lib.inPhase(p), false)
		if !ok {
			continue
		}
		if p.Required() || score > 0 {
			st.add(sc)
		}
	}

	if st.needsBackfill() {
		for _, p := range activityPhases {
			if sc, _, ok := st.best(c.lib.inPhase(p), true); ok {
				st.insert(sc)
			}
		}
	}

	sentences := make([]string, 0, len(st.selected)*2+maxFillers)
	fillerAt := -1
	for _, sc := range st.selected {
		if fillerAt < 0 && sc.Phase >= PhaseReturnHome {
			fillerAt = len(sentences)
		}
		for _, tmpl := range sc.Sentences {
			sentences = append(sentences, renderTemplate(tmpl, name))
		}
	}
	if fillerAt < 0 {
		fillerAt = max(len(sentences)-2, 0)
	}
	sentences = insertAt(sentences, fillerAt, c.fillers(st, name))

	ids := make([]string, len(st.selected))
	for i, sc := range st.selected {
		ids[i] = sc.ID
	}

	usedWords := make([]string, 0, len(st.used))
	for _, w := range st.targets {
		if _, ok := st.used[w]; ok {
			usedWords = append(usedWords, w)
		}
	}

	return Story{
		Title:            chooseTitle(ids, c.rng),
		Sentences:        sentences,
		UsedWords:        usedWords,
		TotalTargetWords: len(st.targets),
		CoveragePercent:  coveragePercent(len(usedWords), len(st.targets)),
		ScenesUsed:       ids,
	}
}

// fillers renders normalized filler sentences for uncovered target words, in
// target order, marking each covered word as used.
func (c *Composer) fillers(st *composition, name string) []string {
	var out []string
	for _, w := range st.targets {
		if len(out) == maxFillers {
			break
		}
		if _, ok := st.used[w]; ok {
			continue
		}
		tmpl, ok := fillerFor(w)
		if !ok {
			continue
		}
		// The name goes in after normalization so it is never rewritten.
		out = append(out, renderTemplate(c.normalizer.Normalize(tmpl), name))
		st.used[w] = struct{}{}
	}
	return out
}

func renderTemplate(tmpl, name string) string {
	return strings.ReplaceAll(tmpl, NamePlaceholder, name)
}

// protagonistDisplayName substitutes the caller's name unchanged. Only a
// blank name is replaced.
func protagonistDisplayName(name string) string {
	if strings.TrimSpace(name) == "" {
		return DefaultProtagonist
	}
	return name
}

func insertAt(dst []string, pos int, items []string) []string {
	if len(items) == 0 {
		return dst
	}
	out := make([]string, 0, len(dst)+len(items))
	out = append(out, dst[:pos]...)
	out = append(out, items...)
	return append(out, dst[pos:]...)
}

func coveragePercent(used, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(used) / float64(total) * 100))
}
