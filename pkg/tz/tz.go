package tz

import "time"

// Kolkata is the Asia/Kolkata location (IST, UTC+05:30, no DST).
var Kolkata *time.Location

func init() {
	var err error
	Kolkata, err = time.LoadLocation("Asia/Kolkata")
	if err != nil {
		// Hosts without tzdata: IST has no DST, a fixed zone is exact.
		Kolkata = time.FixedZone("IST", 5*60*60+30*60)
	}
}
