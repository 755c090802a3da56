package story

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Normalizer corrects freshly built sentences with a fixed sequence of
// regex passes. Only the naming pass draws randomness.
type Normalizer struct {
	rng    Randomizer
	passes []func(string) string
}

// NewNormalizer builds a normalizer. A nil rng uses the process-wide source.
func NewNormalizer(rng Randomizer) *Normalizer {
	if rng == nil {
		rng = DefaultRandomizer()
	}
	n := &Normalizer{rng: rng}
	n.passes = []func(string) string{
		FixArticles,
		InsertMissingDeterminers,
		FixSubjectVerbAgreement,
		CapitalizeProperNouns,
		n.SubstituteNamingPatterns,
		EnsureTerminalPunctuation,
		CapitalizeFirst,
	}
	return n
}

// Normalize runs every pass in order. It never fails and is idempotent on
// its own output.
func (n *Normalizer) Normalize(sentence string) string {
	s := strings.TrimSpace(sentence)
	if s == "" {
		return ""
	}
	for _, pass := range n.passes {
		s = pass(s)
	}
	return s
}

// --- articles ---

var articleRe = regexp.MustCompile(`\b([Aa][Nn]?)(\s+)([A-Za-z]+)`)

// articleExceptions overrides the vowel-letter rule where sound and spelling disagree.
var articleExceptions = map[string]string{
	"university": "a",
	"unicorn":    "a",
	"uniform":    "a",
	"unit":       "a",
	"unique":     "a",
	"use":        "a",
	"useful":     "a",
	"user":       "a",
	"usual":      "a",
	"one":        "a",
	"once":       "a",
	"european":   "a",
	"hour":       "an",
	"honest":     "an",
	"honor":      "an",
	"heir":       "an",
}

// FixArticles chooses "a" or "an" for the following word, keeping the
// article's capitalization.
func FixArticles(s string) string {
	return replaceAllSubmatchFunc(articleRe, s, func(g []string) string {
		article, space, word := g[1], g[2], g[3]
		want := articleFor(word)
		if unicode.IsUpper(rune(article[0])) {
			want = strings.ToUpper(want[:1]) + want[1:]
		}
		return want + space + word
	})
}

func articleFor(word string) string {
	lower := strings.ToLower(word)
	if art, ok := articleExceptions[lower]; ok {
		return art
	}
	if strings.ContainsRune("aeiou", rune(lower[0])) {
		return "an"
	}
	return "a"
}

// --- determiners ---

var determinerRe = regexp.MustCompile(
	`(?i)(^|\b(?:and|but|then|so|when|because)\s+)` +
		`(friend|teacher|dog|cat|bird|frog|duck|fish|bunny|puppy|kitten)` +
		`(\s+(?:is|was|has|had|can|will|likes|loves|wants|runs|ran|plays|played|jumps|jumped|sees|saw|says|said|goes|went|sits|sat|gets|got|looks|looked)\b)`)

var firstPersonRe = regexp.MustCompile(`\bI\b`)

// InsertMissingDeterminers puts a determiner in front of a bare common noun
// used as a subject. At the start of a sentence that mentions "I" it inserts
// "My", otherwise "The"; after a conjunction it inserts "the".
func InsertMissingDeterminers(s string) string {
	mine := firstPersonRe.MatchString(s)
	return replaceAllSubmatchFunc(determinerRe, s, func(g []string) string {
		prefix, noun, rest := g[1], strings.ToLower(g[2]), g[3]
		if prefix != "" {
			return prefix + "the " + noun + rest
		}
		if mine {
			return "My " + noun + rest
		}
		return "The " + noun + rest
	})
}

// --- subject-verb agreement ---

type agreementRule struct {
	re   *regexp.Regexp
	repl string
}

var agreementRules = []agreementRule{
	{regexp.MustCompile(`\b(I)\s+(?:is|are)\b`), "${1} am"},
	{regexp.MustCompile(`\b(I)\s+has\b`), "${1} have"},
	{regexp.MustCompile(`(?i)\b(you|we|they)\s+is\b`), "${1} are"},
	{regexp.MustCompile(`(?i)\b(you|we|they)\s+has\b`), "${1} have"},
	{regexp.MustCompile(`(?i)\b(you|we|they)\s+was\b`), "${1} were"},
	{regexp.MustCompile(`(?i)\b(he|she|it)\s+have\b`), "${1} has"},
	{regexp.MustCompile(`(?i)\b(he|she|it)\s+are\b`), "${1} is"},
	{regexp.MustCompile(`(?i)\b(he|she|it)\s+don't\b`), "${1} doesn't"},
}

// FixSubjectVerbAgreement applies a fixed table of pronoun/verb corrections.
func FixSubjectVerbAgreement(s string) string {
	for _, rule := range agreementRules {
		s = rule.re.ReplaceAllString(s, rule.repl)
	}
	return s
}

// --- proper nouns ---

// properNames are re-capitalized wherever they appear in lowercase. Names that
// double as common words (jack, will, max) are left out.
var properNames = []string{
	"alex", "ava", "ben", "emma", "leo", "lily", "mia", "noah", "owen", "ruby", "sam", "zoe",
}

var properNameRe = regexp.MustCompile(`\b(` + strings.Join(properNames, "|") + `)\b`)

// CapitalizeProperNouns capitalizes known given names written in lowercase.
func CapitalizeProperNouns(s string) string {
	return properNameRe.ReplaceAllStringFunc(s, capitalize)
}

// --- naming patterns ---

var namingRe = regexp.MustCompile(
	`(?i)\b(named|called)\s+(friend|teacher|dog|cat|puppy|kitten|bird|fish|bunny|someone|somebody)\b`)

// namePool is the set drawn from when a placeholder noun follows "named".
var namePool = []string{"Sam", "Lily", "Max", "Emma", "Leo", "Zoe"}

// SubstituteNamingPatterns rewrites "named friend" or "called teacher" into
// "named <Name>" with a name drawn from a small pool.
func (n *Normalizer) SubstituteNamingPatterns(s string) string {
	return replaceAllSubmatchFunc(namingRe, s, func(g []string) string {
		verb := "named"
		if unicode.IsUpper(rune(g[1][0])) {
			verb = "Named"
		}
		return verb + " " + pick(n.rng, namePool)
	})
}

// --- punctuation and capitalization ---

// EnsureTerminalPunctuation appends a period unless the sentence already ends
// in '.', '!' or '?' (closing quotes and brackets are looked through).
func EnsureTerminalPunctuation(s string) string {
	s = strings.TrimRightFunc(s, unicode.IsSpace)
	if s == "" {
		return s
	}
	core := strings.TrimRight(s, `"')`)
	if strings.HasSuffix(core, ".") || strings.HasSuffix(core, "!") || strings.HasSuffix(core, "?") {
		return s
	}
	return s + "."
}

// CapitalizeFirst uppercases the first character.
func CapitalizeFirst(s string) string {
	return capitalize(s)
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || unicode.IsUpper(r) {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// replaceAllSubmatchFunc is ReplaceAllStringFunc with access to capture groups.
// Unmatched optional groups are passed as "".
func replaceAllSubmatchFunc(re *regexp.Regexp, s string, repl func(groups []string) string) string {
	matches := re.FindAllStringSubmatchIndex(s, -1)
	if len(matches) == 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 8)
	last := 0
	for _, m := range matches {
		groups := make([]string, len(m)/2)
		for i := range groups {
			if m[2*i] >= 0 {
				groups[i] = s[m[2*i]:m[2*i+1]]
			}
		}
		b.WriteString(s[last:m[0]])
		b.WriteString(repl(groups))
		last = m[1]
	}
	b.WriteString(s[last:])
	return b.String()
}
