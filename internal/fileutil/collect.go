package fileutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/tidwall/jsonc"
)

// ErrNoFiles is returned when nothing is left to process after exclusion.
var ErrNoFiles = errors.New("no files to process")

// Collect expands args into a list of files. Files are taken as given; directories are
// walked recursively and every file whose slash-separated path matches an exclude
// pattern is skipped. Duplicates are dropped, keeping the first occurrence.
func Collect(args, excludes []string) ([]string, error) {
	excluder, err := NewExcluder(excludes)
	if err != nil {
		return nil, err
	}

	var files []string

	seen := make(map[string]bool)
	add := func(path string) {
		if !seen[path] {
			seen[path] = true

			files = append(files, path)
		}
	}

	for _, arg := range args {
		arg = filepath.Clean(arg)

		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("stat %q: %w", arg, err)
		}

		if !info.IsDir() {
			add(arg)

			continue
		}

		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() || excluder.Excludes(path) {
				return nil
			}

			add(path)

			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walking %q: %w", arg, err)
		}
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %v", ErrNoFiles, args)
	}

	return files, nil
}

// Excluder matches paths against find -path style globs: '*' and '?' also match '/',
// '[...]' is a character class ('!' negates) and '\' escapes.
type Excluder struct {
	patterns []*regexp.Regexp
}

// NewExcluder compiles patterns. A leading "./" is ignored.
func NewExcluder(patterns []string) (*Excluder, error) {
	e := &Excluder{}

	for _, p := range patterns {
		re, err := globToRegexp(strings.TrimPrefix(p, "./"))
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", p, err)
		}

		e.patterns = append(e.patterns, re)
	}

	return e, nil
}

// Excludes reports whether path matches any pattern.
func (e *Excluder) Excludes(path string) bool {
	path = filepath.ToSlash(filepath.Clean(path))

	for _, re := range e.patterns {
		if re.MatchString(path) {
			return true
		}
	}

	return false
}

var (
	errUnclosedClass     = errors.New("unclosed character class")
	errTrailingBackslash = errors.New("trailing backslash")
)

func globToRegexp(glob string) (*regexp.Regexp, error) {
	var b strings.Builder

	b.WriteString("^")

	for i := 0; i < len(glob); i++ {
		switch c := glob[i]; c {
		case '*':
			b.WriteString(".*")
		case '?':
			b.WriteString(".")
		case '\\':
			if i+1 == len(glob) {
				return nil, errTrailingBackslash
			}

			i++
			b.WriteString(regexp.QuoteMeta(glob[i : i+1]))
		case '[':
			end := classEnd(glob, i)
			if end < 0 {
				return nil, errUnclosedClass
			}

			class := glob[i+1 : end]
			if strings.HasPrefix(class, "!") {
				class = "^" + class[1:]
			}

			b.WriteString("[" + class + "]")

			i = end
		default:
			b.WriteString(regexp.QuoteMeta(glob[i : i+1]))
		}
	}

	b.WriteString("$")

	re, err := regexp.Compile(b.String())
	if err != nil {
		return nil, fmt.Errorf("compiling: %w", err)
	}

	return re, nil
}

// classEnd returns the index of the ']' closing the class opened at start, or -1.
// A ']' right after the opening bracket (or its '!') is literal.
func classEnd(glob string, start int) int {
	i := start + 1
	if i < len(glob) && glob[i] == '!' {
		i++
	}

	if i < len(glob) && glob[i] == ']' {
		i++
	}

	if end := strings.IndexByte(glob[i:], ']'); end >= 0 {
		return i + end
	}

	return -1
}

// LoadPatterns reads a JSONC array of exclude patterns.
func LoadPatterns(path string) ([]string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is from user-supplied config
	if err != nil {
		return nil, fmt.Errorf("reading patterns file %q: %w", path, err)
	}

	var patterns []string
	if err := json.Unmarshal(jsonc.ToJSONInPlace(data), &patterns); err != nil {
		return nil, fmt.Errorf("parsing patterns file %q: %w", path, err)
	}

	return patterns, nil
}
