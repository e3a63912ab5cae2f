package format

import (
	"runtime"
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/Justype/condorkit/internal/errdefs"
)

// Platform selects the quoting rules used by TokenizeCommandFor.
type Platform int

const (
	POSIX   Platform = iota // sh-style: quotes removed, backslash escapes
	Windows                 // quotes kept in the token, no escapes
)

func (p Platform) String() string {
	if p == Windows {
		return "windows"
	}
	return "posix"
}

// ParsePlatform accepts "posix" or "windows" (case-insensitive).
func ParsePlatform(s string) (Platform, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "posix", "unix", "linux", "darwin":
		return POSIX, nil
	case "windows", "nt":
		return Windows, nil
	}
	return POSIX, errdefs.NewValueError("platform", "must be posix or windows, got "+s)
}

// HostPlatform returns Windows on Windows hosts and POSIX everywhere else.
func HostPlatform() Platform {
	return platformFor(runtime.GOOS)
}

func platformFor(goos string) Platform {
	if goos == "windows" {
		return Windows
	}
	return POSIX
}

// TokenizeCommand splits text into arguments using the host's quoting rules.
func TokenizeCommand(text string) ([]string, error) {
	return TokenizeCommandFor(HostPlatform(), text)
}

// TokenizeCommandFor splits text into arguments using p's quoting rules.
//
//	TokenizeCommandFor(POSIX, `echo "a b" c`)   // [echo, a b, c]
//	TokenizeCommandFor(Windows, `echo "a b" c`) // [echo, "a b", c]
func TokenizeCommandFor(p Platform, text string) ([]string, error) {
	if p == Windows {
		return splitNonPOSIX(text)
	}
	words, err := shellquote.Split(text)
	if err != nil {
		return nil, errdefs.NewValueError("command", err.Error()+": "+text)
	}
	return words, nil
}

// splitNonPOSIX splits on whitespace. A token that starts with a quote runs
// to the matching quote and keeps both quote characters; quotes appearing
// inside a word are ordinary characters. There is no escape character.
func splitNonPOSIX(text string) ([]string, error) {
	var (
		tokens []string
		token  strings.Builder
		quote  rune // open quote character, 0 outside quotes
		inWord bool
	)

	flush := func() {
		if inWord {
			tokens = append(tokens, token.String())
		}
		token.Reset()
		inWord = false
	}

	for _, r := range text {
		switch {
		case quote != 0:
			token.WriteRune(r)
			if r == quote {
				quote = 0
				flush()
			}
		case isSpace(r):
			flush()
		case (r == '"' || r == '\'') && !inWord:
			quote = r
			inWord = true
			token.WriteRune(r)
		default:
			inWord = true
			token.WriteRune(r)
		}
	}

	if quote != 0 {
		return nil, errdefs.NewValueError("command", "no closing quotation: "+text)
	}
	flush()
	return tokens, nil
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}
