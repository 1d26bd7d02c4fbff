package domain

import (
	"fmt"
	"time"

	// Embed the IANA database so zone projection does not depend on the host.
	_ "time/tzdata"
)

// DisplayLayout renders as "Jun 06 18:00".
const DisplayLayout = "Jan 02 15:04"

// Zone names of the four display columns.
const (
	ZoneUTC      = "UTC"
	ZoneEastern  = "America/New_York"
	ZonePacific  = "America/Los_Angeles"
	ZoneAuckland = "Pacific/Auckland"
)

// Zones holds the loaded display locations. Load once per run with LoadZones.
type Zones struct {
	UTC      *time.Location
	Eastern  *time.Location
	Pacific  *time.Location
	Auckland *time.Location
}

// LoadZones resolves the display zones from the timezone database.
func LoadZones() (Zones, error) {
	var z Zones
	for _, spec := range []struct {
		name string
		dst  **time.Location
	}{
		{ZoneUTC, &z.UTC},
		{ZoneEastern, &z.Eastern},
		{ZonePacific, &z.Pacific},
		{ZoneAuckland, &z.Auckland},
	} {
		loc, err := time.LoadLocation(spec.name)
		if err != nil {
			return Zones{}, fmt.Errorf("load zone %s: %w", spec.name, err)
		}
		*spec.dst = loc
	}
	return z, nil
}

// Format projects an instant into every display zone.
func (z Zones) Format(t time.Time) LocalTimes {
	return LocalTimes{
		UTC: t.In(z.UTC).Format(DisplayLayout),
		EST: t.In(z.Eastern).Format(DisplayLayout),
		PST: t.In(z.Pacific).Format(DisplayLayout),
		NZL: t.In(z.Auckland).Format(DisplayLayout),
	}
}

// Upcoming returns the events starting at or after now, in input order.
// An event starting exactly at now is kept.
func Upcoming(events []Event, now time.Time) []Event {
	out := make([]Event, 0, len(events))
	for _, e := range events {
		if !e.Start.Before(now) {
			out = append(out, e)
		}
	}
	return out
}

// Localize returns copies of events with their display times attached.
func Localize(events []Event, zones Zones) []Event {
	out := make([]Event, len(events))
	for i, e := range events {
		e.Times = zones.Format(e.Start)
		out[i] = e
	}
	return out
}
