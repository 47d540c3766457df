package parse

import (
	"regexp"
	"strings"
	"time"

	"inventory-backend/models"
	"inventory-backend/pkg/age"
	"inventory-backend/pkg/normalize"
)

const TimestampLayout = "2006-01-02 15:04:05"

var (
	trafficHeader = regexp.MustCompile(`^(\S+) is .*, line protocol is`)
	trafficLast   = regexp.MustCompile(`Last input (\S+), output (\S+),`)
)

// LastTraffic walks "show interfaces" line by line. A port-header line sets
// the current-port slot; the following "Last input X, output Y," line turns
// the smaller of the two ages into an absolute timestamp (now - age). The
// slot is cleared after emitting, so each header yields at most one record.
func LastTraffic(output string, now time.Time) []models.TrafficObservation {
	var obs []models.TrafficObservation
	curPort := ""
	for _, line := range strings.Split(output, "\n") {
		if m := trafficHeader.FindStringSubmatch(line); m != nil {
			curPort = normalize.Port(m[1])
			continue
		}
		if curPort == "" {
			continue
		}
		m := trafficLast.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		stamp := "Never"
		if d, ok := minAge(m[1], m[2]); ok {
			stamp = now.Add(-d).Format(TimestampLayout)
		}
		obs = append(obs, models.TrafficObservation{Port: curPort, LastTrafficSeen: stamp})
		curPort = ""
	}
	return obs
}

// minAge picks the smaller (more recent) of the inbound and outbound ages;
// an absent age on either side is ignored rather than treated as zero.
func minAge(in, out string) (time.Duration, bool) {
	inD, inOK := age.Parse(in)
	outD, outOK := age.Parse(out)
	switch {
	case inOK && outOK:
		if outD < inD {
			return outD, true
		}
		return inD, true
	case inOK:
		return inD, true
	case outOK:
		return outD, true
	}
	return 0, false
}
