package tz

import (
	"log"
	"time"
	_ "time/tzdata" // containers often ship without /usr/share/zoneinfo
)

// Paris is the Europe/Paris location (CET/CEST with automatic DST). It falls
// back to a fixed UTC+1 zone when the tz database cannot be loaded.
var Paris = loadParis()

func loadParis() *time.Location {
	loc, err := time.LoadLocation("Europe/Paris")
	if err != nil {
		log.Printf("⚠️ tz: load Europe/Paris: %v", err)
		return time.FixedZone("CET", 60*60)
	}
	return loc
}
