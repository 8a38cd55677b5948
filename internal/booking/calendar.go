// Package booking builds the appointment calendar, drives the
// select → summary → confirm flow and ranks doctors for a profile.
package booking

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrUnknownSlot     = errors.New("no such time slot")
	ErrSlotUnavailable = errors.New("time slot unavailable")
)

type SlotType string

const (
	SlotTele   SlotType = "tele"
	SlotClinic SlotType = "clinic"
)

func (t SlotType) Label() string {
	if t == SlotTele {
		return "टेलीकंसल्टेशन"
	}
	return "क्लिनिक विजिट"
}

const (
	firstHour   = 9
	lastHour    = 16
	DefaultDays = 7
	MaxDays     = 31
	dateLayout  = "2006-01-02"
)

var weekdays = [...]string{"रविवार", "सोमवार", "मंगलवार", "बुधवार", "गुरुवार", "शुक्रवार", "शनिवार"}

var months = [...]string{"जन", "फ़र", "मार्च", "अप्रैल", "मई", "जून", "जुल", "अग", "सित", "अक्टू", "नव", "दिस"}

type Slot struct {
	Date      string   `json:"date"`
	Weekday   string   `json:"weekday"`
	DateLabel string   `json:"date_label"`
	Time      string   `json:"time"`
	Type      SlotType `json:"type"`
	TypeLabel string   `json:"type_label"`
	Available bool     `json:"available"`
}

type Day struct {
	Date      string `json:"date"`
	Weekday   string `json:"weekday"`
	DateLabel string `json:"date_label"`
	Slots     []Slot `json:"slots"`
}

// Week returns days consecutive calendar days starting at start.
func Week(start time.Time, days int) []Day {
	if days <= 0 {
		days = DefaultDays
	}
	if days > MaxDays {
		days = MaxDays
	}
	out := make([]Day, 0, days)
	for i := 0; i < days; i++ {
		d := start.AddDate(0, 0, i)
		out = append(out, Day{
			Date:      d.Format(dateLayout),
			Weekday:   weekdays[d.Weekday()],
			DateLabel: dateLabel(d),
			Slots:     DaySlots(d),
		})
	}
	return out
}

// DaySlots lists the hourly slots of a day. Types alternate starting with
// tele at 09:00; availability is a fixed function of the date.
func DaySlots(d time.Time) []Slot {
	slots := make([]Slot, 0, lastHour-firstHour+1)
	for h := firstHour; h <= lastHour; h++ {
		i := h - firstHour
		typ := SlotTele
		if i%2 == 1 {
			typ = SlotClinic
		}
		slots = append(slots, Slot{
			Date:      d.Format(dateLayout),
			Weekday:   weekdays[d.Weekday()],
			DateLabel: dateLabel(d),
			Time:      fmt.Sprintf("%02d:00", h),
			Type:      typ,
			TypeLabel: typ.Label(),
			Available: (d.YearDay()+i)%4 != 1,
		})
	}
	return slots
}

// Lookup finds the slot for date, clock and type.
func Lookup(date, clock string, typ SlotType) (Slot, error) {
	d, err := time.Parse(dateLayout, date)
	if err != nil {
		return Slot{}, fmt.Errorf("%w: bad date %q", ErrUnknownSlot, date)
	}
	for _, s := range DaySlots(d) {
		if s.Time == clock && s.Type == typ {
			return s, nil
		}
	}
	return Slot{}, fmt.Errorf("%w: %s %s %s", ErrUnknownSlot, date, clock, typ)
}

func dateLabel(d time.Time) string {
	return fmt.Sprintf("%d %s", d.Day(), months[d.Month()-1])
}
