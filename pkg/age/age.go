// Package age parses the free-text relative-age tokens Cisco prints in
// "show interfaces" ("00:05:30", "1w2d", "never") into durations.
package age

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var unitSeconds = map[string]int64{
	"w": 604800,
	"d": 86400,
	"h": 3600,
	"m": 60,
	"s": 1,
}

var unitToken = regexp.MustCompile(`(\d+)([wdhms])`)

// Parse converts an age token to a duration. The second return is false for
// "never", for tokens with no recognizable unit content, and for malformed
// hh:mm:ss strings: all mean "no observation", not a zero duration.
func Parse(text string) (time.Duration, bool) {
	text = strings.TrimSpace(text)
	if strings.EqualFold(text, "never") {
		return 0, false
	}

	if strings.Contains(text, ":") {
		parts := strings.Split(text, ":")
		if len(parts) != 3 {
			return 0, false
		}
		h, err1 := strconv.Atoi(parts[0])
		m, err2 := strconv.Atoi(parts[1])
		s, err3 := strconv.Atoi(parts[2])
		if err1 != nil || err2 != nil || err3 != nil {
			return 0, false
		}
		return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute + time.Duration(s)*time.Second, true
	}

	var total int64
	for _, m := range unitToken.FindAllStringSubmatch(text, -1) {
		n, _ := strconv.ParseInt(m[1], 10, 64)
		total += n * unitSeconds[m[2]]
	}
	if total == 0 {
		return 0, false
	}
	return time.Duration(total) * time.Second, true
}
