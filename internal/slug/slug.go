// Package slug generates URL-safe, collision-free anchor identifiers from
// heading text.
package slug

import (
	"regexp"
	"strconv"
	"strings"

	gslug "github.com/gosimple/slug"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Placeholder is the base slug used when text has no usable characters.
const Placeholder = "section"

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Normalize converts text to a lowercase, hyphen-separated token sequence
// using English transliteration rules.
func Normalize(text string) string {
	return NormalizeLang(text, "")
}

// NormalizeLang transliterates text to ASCII ("Привет" -> "privet") with
// the substitutions of lang ("Über" -> "ueber" for de, "uber" otherwise),
// then collapses every run of characters outside [a-z0-9] into a hyphen.
func NormalizeLang(text, lang string) string {
	s := gslug.MakeLang(norm.NFC.String(text), baseLanguage(lang))
	s = nonAlnum.ReplaceAllString(strings.ToLower(s), "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return Placeholder
	}
	return s
}

// baseLanguage reduces a BCP 47 tag such as "de-AT" to its base ("de").
func baseLanguage(lang string) string {
	tag, err := language.Parse(lang)
	if err != nil {
		return "en"
	}
	base, _ := tag.Base()
	return base.String()
}

// Registry hands out unique identifiers for one pipeline run. Create one
// with NewRegistry per run.
//
// Repeats of a base slug get a numeric suffix: "notes", "notes-1",
// "notes-2". Candidates already claimed are skipped, so a generated slug
// never equals an id that was claimed or issued before it.
type Registry struct {
	// Lang selects transliteration rules. Empty means English.
	Lang string

	counts map[string]int
	used   map[string]bool
}

func NewRegistry() *Registry {
	return &Registry{counts: make(map[string]int), used: make(map[string]bool)}
}

// Claim reserves id verbatim. It reports false when id is already taken.
func (r *Registry) Claim(id string) bool {
	if r.used[id] {
		return false
	}
	r.used[id] = true
	return true
}

// Slug returns the next unique slug for text.
func (r *Registry) Slug(text string) string {
	return r.Unique(NormalizeLang(text, r.Lang))
}

// Unique returns base, or base with the lowest free numeric suffix, and
// claims the result.
func (r *Registry) Unique(base string) string {
	for {
		n := r.counts[base]
		r.counts[base] = n + 1

		candidate := base
		if n > 0 {
			candidate = base + "-" + strconv.Itoa(n)
		}
		if r.Claim(candidate) {
			return candidate
		}
	}
}

// Reset forgets all previously issued and claimed ids.
func (r *Registry) Reset() {
	clear(r.counts)
	clear(r.used)
}
