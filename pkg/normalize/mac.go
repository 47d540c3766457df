package normalize

import "strings"

func isHexDigit(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}

// Mac rewrites a MAC address in any delimiter style (dot, dash, colon, none)
// to lower-case colon-separated octets, e.g. "AABB.CCDD.EEFF" ->
// "aa:bb:cc:dd:ee:ff". No validation; malformed input stays malformed but
// deterministic.
func Mac(raw string) string {
	var hex []byte
	for i := 0; i < len(raw); i++ {
		if isHexDigit(raw[i]) {
			hex = append(hex, raw[i])
		}
	}
	mac := strings.ToLower(string(hex))

	var groups []string
	for i := 0; i < len(mac); i += 2 {
		end := i + 2
		if end > len(mac) {
			end = len(mac)
		}
		groups = append(groups, mac[i:end])
	}
	return strings.Join(groups, ":")
}

// Oui returns the first three octets of a canonical MAC, the key of the
// vendor cache.
func Oui(mac string) string {
	parts := strings.Split(mac, ":")
	if len(parts) < 3 {
		return mac
	}
	return strings.Join(parts[:3], ":")
}
