package booking

import (
	"errors"
	"fmt"
)

var ErrNothingSelected = errors.New("no slot selected")

type Phase string

const (
	PhaseIdle      Phase = "idle"
	PhaseSelected  Phase = "selected"
	PhaseConfirmed Phase = "confirmed"
)

const confirmationMessage = "आपकी अपॉइंटमेंट सफलतापूर्वक बुक हो गई है! हम जल्द ही आपसे संपर्क करेंगे।"

// Summary is what the user sees before confirming.
type Summary struct {
	When      string `json:"when"`
	Time      string `json:"time"`
	TypeLabel string `json:"type_label"`
	Slot      Slot   `json:"slot"`
}

type Confirmation struct {
	Summary Summary `json:"summary"`
	Message string  `json:"message"`
}

// Flow is the booking dialog state. It holds no calendar and performs no
// conflict detection; a confirmed slot is not reserved anywhere.
type Flow struct {
	Phase    Phase
	Selected *Slot
}

func NewFlow() Flow {
	return Flow{Phase: PhaseIdle}
}

func (f Flow) Select(s Slot) (Flow, Summary, error) {
	if !s.Available {
		return f, Summary{}, fmt.Errorf("%w: %s %s", ErrSlotUnavailable, s.Date, s.Time)
	}
	sel := s
	return Flow{Phase: PhaseSelected, Selected: &sel}, summarize(s), nil
}

func (f Flow) Confirm() (Flow, Confirmation, error) {
	if f.Phase != PhaseSelected || f.Selected == nil {
		return f, Confirmation{}, ErrNothingSelected
	}
	c := Confirmation{
		Summary: summarize(*f.Selected),
		Message: confirmationMessage,
	}
	return Flow{Phase: PhaseConfirmed}, c, nil
}

func summarize(s Slot) Summary {
	return Summary{
		When:      fmt.Sprintf("%s, %s", s.Weekday, s.DateLabel),
		Time:      s.Time,
		TypeLabel: s.Type.Label(),
		Slot:      s,
	}
}
