package detect

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"slices"
	"strings"

	"github.com/tidwall/jsonc"
)

// Words holds the function words whose presence marks a decoding as natural language.
type Words struct {
	English []string `json:"english"`
	Arabic  []string `json:"arabic"`
}

// DefaultWords returns the built-in lists.
func DefaultWords() Words {
	return Words{
		English: []string{
			"the", "and", "that", "this", "with", "for", "are", "was", "you", "have",
			"not", "but", "from", "they", "hello", "what", "your", "there", "were", "been",
			"is", "it", "of", "to", "in",
		},
		Arabic: []string{
			"في", "من", "على", "إلى", "عن", "مع", "هذا", "هذه", "التي", "الذي",
			"أن", "كان", "لا", "ما", "هو", "هي", "مرحبا",
		},
	}
}

// Merge returns the union of w and other, keeping the order of first appearance.
func (w Words) Merge(other Words) Words {
	return Words{
		English: union(w.English, other.English),
		Arabic:  union(w.Arabic, other.Arabic),
	}
}

// LoadWords reads a JSONC file of the form {"english": [...], "arabic": [...]}.
func LoadWords(path string) (Words, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is from user-supplied config
	if err != nil {
		return Words{}, fmt.Errorf("reading words file %q: %w", path, err)
	}

	var words Words
	if err := json.Unmarshal(jsonc.ToJSONInPlace(data), &words); err != nil {
		return Words{}, fmt.Errorf("parsing words file %q: %w", path, err)
	}

	return words, nil
}

func union(a, b []string) []string {
	out := slices.Clone(a)

	for _, w := range b {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" && !slices.Contains(out, w) {
			out = append(out, w)
		}
	}

	return out
}

// wordMatcher finds any listed word bounded by non-letters, ignoring case.
type wordMatcher struct {
	re *regexp.Regexp
}

func newWordMatcher(words Words) (*wordMatcher, error) {
	all := append(slices.Clone(words.English), words.Arabic...)

	quoted := make([]string, 0, len(all))

	for _, w := range all {
		if w = strings.TrimSpace(w); w != "" {
			quoted = append(quoted, regexp.QuoteMeta(w))
		}
	}

	if len(quoted) == 0 {
		return &wordMatcher{}, nil
	}

	re, err := regexp.Compile(`(?i)(?:^|[^\p{L}\p{N}])(?:` + strings.Join(quoted, "|") + `)(?:[^\p{L}\p{N}]|$)`)
	if err != nil {
		return nil, fmt.Errorf("compiling word list: %w", err)
	}

	return &wordMatcher{re: re}, nil
}

// Match reports whether text contains one of the words.
func (m *wordMatcher) Match(text string) bool {
	return m.re != nil && m.re.MatchString(text)
}
