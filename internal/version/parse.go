package version

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/Justype/condorkit/internal/errdefs"
)

// Label is the token condor_version prints in front of the version number.
const Label = "CondorVersion"

// Matches e.g. "$CondorVersion: 8.7.4 Oct 26 2017 BuildID: 422581 $"
var versionRe = regexp.MustCompile(Label + `:\s*([\d.]+)`)

// ParseVersionString extracts the version tuple from condor_version output
// or from an in-process binding's version text. Byte input is decoded as
// UTF-8 first.
func ParseVersionString[T ~string | ~[]byte](raw T) (Tuple, error) {
	if b, ok := any(raw).([]byte); ok && !utf8.Valid(b) {
		return nil, errdefs.NewParseError(string(b), "output is not valid UTF-8", nil)
	}
	info := string(raw)

	m := versionRe.FindStringSubmatch(info)
	if m == nil {
		return nil, errdefs.NewParseError(info, "no "+Label+" found", nil)
	}

	segments := strings.Split(m[1], ".")
	out := make(Tuple, 0, len(segments))
	for _, seg := range segments {
		n, err := strconv.Atoi(seg)
		if err != nil {
			return nil, errdefs.NewParseError(info, "non-numeric version segment "+strconv.Quote(seg), err)
		}
		out = append(out, n)
	}
	return out, nil
}
