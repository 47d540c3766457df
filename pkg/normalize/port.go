package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// portPrefixes maps verbose vendor interface names to canonical short codes.
// Ordered longest-first so the longest prefix wins.
var portPrefixes = []struct {
	Long  string
	Short string
}{
	{"FortyGigabitEthernet", "Fo"},
	{"TenGigabitEthernet", "Te"},
	{"TwentyFiveGigE", "Tf"},
	{"GigabitEthernet", "Gi"},
	{"FastEthernet", "Fa"},
	{"Port-channel", "Po"},
	{"HundredGigE", "Hu"},
	{"Ethernet", "Et"},
}

var (
	portThree = regexp.MustCompile(`^([A-Za-z]+)(\d+)/(\d+)/(\d+)`)
	portTwo   = regexp.MustCompile(`^([A-Za-z]+)(\d+)/(\d+)`)
	portOne   = regexp.MustCompile(`^([A-Za-z]+)(\d+)`)
)

// Port converts long prefixes and zero-padding to the canonical short form,
// e.g. "GigabitEthernet0/1" -> "Gi0/1". Input that matches no prefix and no
// numeric layout is returned unchanged.
func Port(raw string) string {
	port := strings.TrimSpace(raw)
	for _, p := range portPrefixes {
		if strings.HasPrefix(port, p.Long) {
			port = p.Short + port[len(p.Long):]
			break
		}
	}

	if m := portThree.FindStringSubmatch(port); m != nil {
		return fmt.Sprintf("%s%s/%s/%s", m[1], stripZeros(m[2]), stripZeros(m[3]), stripZeros(m[4]))
	}
	if m := portTwo.FindStringSubmatch(port); m != nil {
		return fmt.Sprintf("%s%s/%s", m[1], stripZeros(m[2]), stripZeros(m[3]))
	}
	if m := portOne.FindStringSubmatch(port); m != nil {
		return m[1] + stripZeros(m[2])
	}
	return port
}

func stripZeros(s string) string {
	n, err := strconv.Atoi(s)
	if err != nil {
		return s
	}
	return strconv.Itoa(n)
}
