// Package civil computes calendar dates and wall-clock times in India
// Standard Time, independent of the host's local zone.
package civil

import (
	"sync"
	"time"
)

const (
	ZoneName   = "Asia/Kolkata"
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Date is a calendar date formatted YYYY-MM-DD.
type Date string

// Time is a 24-hour wall-clock time formatted HH:MM.
type Time string

// Clock returns the current instant.
type Clock func() time.Time

var (
	zoneOnce sync.Once
	zone     *time.Location
)

// Zone returns the IST location. When the zone database cannot be loaded a
// fixed UTC+05:30 zone is used instead.
func Zone() *time.Location {
	zoneOnce.Do(func() {
		loc, err := time.LoadLocation(ZoneName)
		if err != nil {
			loc = time.FixedZone("IST", 5*60*60+30*60)
		}
		zone = loc
	})
	return zone
}

// Provider reads the clock in a fixed zone.
type Provider struct {
	clock Clock
	loc   *time.Location
}

// NewProvider returns a Provider for IST. A nil clock means time.Now.
func NewProvider(clock Clock) *Provider {
	return NewProviderIn(clock, Zone())
}

// NewProviderIn returns a Provider for an explicit location.
func NewProviderIn(clock Clock, loc *time.Location) *Provider {
	if clock == nil {
		clock = time.Now
	}
	if loc == nil {
		loc = Zone()
	}
	return &Provider{clock: clock, loc: loc}
}

// Now returns the current civil date and time. It is evaluated once per call.
func (p *Provider) Now() (Date, Time) {
	t := p.clock().In(p.loc)
	return Date(t.Format(DateLayout)), Time(t.Format(TimeLayout))
}

// Today returns the current civil date.
func (p *Provider) Today() Date {
	d, _ := p.Now()
	return d
}
