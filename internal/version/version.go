// Package version extracts and compares the HTCondor version.
package version

import (
	"strconv"
	"strings"

	"golang.org/x/mod/semver"

	"github.com/Justype/condorkit/internal/errdefs"
)

// Tuple is a dotted version split into its integer components, e.g. 8.7.4 -> {8, 7, 4}.
type Tuple []int

// String joins the components with dots.
func (t Tuple) String() string {
	parts := make([]string, len(t))
	for i, n := range t {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ".")
}

// Compare orders tuples component by component. When one tuple is a prefix
// of the other, the shorter one sorts first, so 8.7 < 8.7.0.
func (t Tuple) Compare(other Tuple) int {
	for i := 0; i < len(t) && i < len(other); i++ {
		switch {
		case t[i] < other[i]:
			return -1
		case t[i] > other[i]:
			return 1
		}
	}
	switch {
	case len(t) < len(other):
		return -1
	case len(t) > len(other):
		return 1
	}
	return 0
}

// AtLeast reports whether t >= min.
func (t Tuple) AtLeast(min Tuple) bool {
	return t.Compare(min) >= 0
}

func (t Tuple) component(i int) int {
	if i < len(t) {
		return t[i]
	}
	return 0
}

// Major returns the first component (0 if absent).
func (t Tuple) Major() int { return t.component(0) }

// Minor returns the second component (0 if absent).
func (t Tuple) Minor() int { return t.component(1) }

// Patch returns the third component (0 if absent).
func (t Tuple) Patch() int { return t.component(2) }

// ParseTuple parses a user-supplied version such as "8.7", "8.7.4" or "v23.0.1".
// Only plain MAJOR[.MINOR[.PATCH]] forms are accepted.
func ParseTuple(s string) (Tuple, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return nil, errdefs.NewValueError("version", "must be non-empty")
	}
	// semver package requires a leading 'v'
	v := raw
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) || semver.Prerelease(v) != "" || semver.Build(v) != "" {
		return nil, errdefs.NewParseError(raw, "expected MAJOR[.MINOR[.PATCH]]", nil)
	}

	fields := strings.Split(strings.TrimPrefix(v, "v"), ".")
	out := make(Tuple, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, errdefs.NewParseError(raw, "non-numeric component "+strconv.Quote(f), err)
		}
		out = append(out, n)
	}
	return out, nil
}
