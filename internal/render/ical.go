package render

import (
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"github.com/couchcryptid/virtual-events/internal/domain"
)

const productID = "-//virtual-events//event listings//EN"

// eventUID is stable across runs for the same url and start instant.
func eventUID(e domain.Event) string {
	key := e.URL + "|" + e.Start.UTC().Format(time.RFC3339)
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(key)).String() + "@virtual-events"
}

// buildCalendar serializes one partition as a VCALENDAR with a VEVENT per
// event. An empty partition still produces a valid calendar container.
func buildCalendar(p domain.Partition, now time.Time) []byte {
	cal := ical.NewCalendar()
	cal.SetProductId(productID)
	cal.SetMethod(ical.MethodPublish)
	cal.SetXWRCalName(p.Title + " virtual events")

	for _, e := range p.Events {
		ev := cal.AddEvent(eventUID(e))
		ev.SetDtStampTime(now)
		ev.SetStartAt(e.Start)
		ev.SetSummary(e.Title)
		ev.SetDescription(e.Name)
		ev.SetLocation(e.Address)
		ev.SetURL(e.URL)
	}

	return []byte(cal.Serialize())
}
