package strutil

import (
	"strings"

	"github.com/indigo-web/utils/strcomp"
)

func LStripWS(str string) string {
	for i, c := range str {
		switch c {
		case ' ', '\t':
		default:
			return str[i:]
		}
	}

	return ""
}

func RStripWS(str string) string {
	for i := len(str); i > 0; i-- {
		switch str[i-1] {
		case ' ', '\t':
		default:
			return str[:i]
		}
	}

	return ""
}

// StripWS strips spaces and tabs on both sides.
func StripWS(str string) string {
	return RStripWS(LStripWS(str))
}

// CutWS cuts the str around the first space or tab. The separator itself isn't included
// into neither of parts. If there's none, the whole str is returned as the token.
func CutWS(str string) (token, rest string) {
	sep := strings.IndexAny(str, " \t")
	if sep == -1 {
		return str, ""
	}

	return str[:sep], str[sep+1:]
}

// ContainsFold reports whether substr is within str, ignoring ASCII case.
func ContainsFold(str, substr string) bool {
	for i := 0; i+len(substr) <= len(str); i++ {
		if strcomp.EqualFold(str[i:i+len(substr)], substr) {
			return true
		}
	}

	return false
}
