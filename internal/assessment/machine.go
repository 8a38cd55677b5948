package assessment

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrIncompleteStep is matched by *ValidationError.
var ErrIncompleteStep = errors.New("assessment step incomplete")

// AnswerSet maps question ids to the selected option value.
type AnswerSet map[string]int

func (a AnswerSet) Sum() int {
	total := 0
	for _, v := range a {
		total += v
	}
	return total
}

func (a AnswerSet) clone() AnswerSet {
	out := make(AnswerSet, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// State is the wizard position plus every answer recorded so far.
// Transition never mutates a State it receives.
type State struct {
	Step    int       `json:"step"`
	Answers AnswerSet `json:"answers"`
}

func NewState() State {
	return State{Step: 1, Answers: AnswerSet{}}
}

type Event interface{ isEvent() }

// Advance submits the selections for the current step.
type Advance struct {
	Selections map[string]int
}

type Retreat struct{}

type Restart struct{}

func (Advance) isEvent() {}
func (Retreat) isEvent() {}
func (Restart) isEvent() {}

type Effect interface{ isEffect() }

// ValidationFailed reports the step that could not be advanced.
type ValidationFailed struct {
	Err *ValidationError
}

type ProgressChanged struct {
	Progress Progress
}

type ResultProduced struct {
	Result Result
}

func (ValidationFailed) isEffect() {}
func (ProgressChanged) isEffect()  {}
func (ResultProduced) isEffect()   {}

// ValidationError lists the questions of a step that are unanswered or
// answered with a value the question does not offer.
type ValidationError struct {
	Step    int
	Missing []string
	Invalid []string
}

func (e *ValidationError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "missing "+strings.Join(e.Missing, ", "))
	}
	if len(e.Invalid) > 0 {
		parts = append(parts, "invalid "+strings.Join(e.Invalid, ", "))
	}
	return fmt.Sprintf("step %d incomplete: %s", e.Step, strings.Join(parts, "; "))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrIncompleteStep
}

// ValidateStep checks selections against the questions of step.
// Selections for questions outside the step are ignored.
func ValidateStep(bank *Bank, step int, selections map[string]int) *ValidationError {
	st, ok := bank.StepAt(step)
	if !ok {
		return &ValidationError{Step: step}
	}
	verr := &ValidationError{Step: step}
	for _, q := range st.Questions {
		v, answered := selections[q.ID]
		switch {
		case !answered:
			verr.Missing = append(verr.Missing, q.ID)
		case !q.hasValue(v):
			verr.Invalid = append(verr.Invalid, q.ID)
		}
	}
	if len(verr.Missing) == 0 && len(verr.Invalid) == 0 {
		return nil
	}
	return verr
}

// Transition applies ev to s and returns the next state together with the
// effects the caller should act on. It performs no I/O.
func Transition(bank *Bank, s State, ev Event, now time.Time) (State, []Effect) {
	total := bank.StepCount()
	s = normalize(s, total)

	switch e := ev.(type) {
	case Advance:
		if verr := ValidateStep(bank, s.Step, e.Selections); verr != nil {
			return s, []Effect{ValidationFailed{Err: verr}}
		}

		next := State{Step: s.Step, Answers: s.Answers.clone()}
		st, _ := bank.StepAt(s.Step)
		for _, q := range st.Questions {
			next.Answers[q.ID] = e.Selections[q.ID]
		}

		if s.Step < total {
			next.Step = s.Step + 1
			return next, []Effect{ProgressChanged{Progress: NewProgress(next.Step, total)}}
		}

		result := Score(bank, next.Answers, now)
		return NewState(), []Effect{
			ResultProduced{Result: result},
			ProgressChanged{Progress: NewProgress(1, total)},
		}

	case Retreat:
		if s.Step <= 1 {
			return s, nil
		}
		next := State{Step: s.Step - 1, Answers: s.Answers.clone()}
		return next, []Effect{ProgressChanged{Progress: NewProgress(next.Step, total)}}

	case Restart:
		return NewState(), []Effect{ProgressChanged{Progress: NewProgress(1, total)}}
	}

	return s, nil
}

func normalize(s State, total int) State {
	if s.Step < 1 || s.Step > total {
		s.Step = 1
	}
	if s.Answers == nil {
		s.Answers = AnswerSet{}
	}
	return s
}

// AnswersFor returns the recorded answers for the questions of step, used
// to pre-fill a revisited step.
func AnswersFor(bank *Bank, s State, step int) map[string]int {
	out := make(map[string]int)
	st, ok := bank.StepAt(step)
	if !ok {
		return out
	}
	for _, q := range st.Questions {
		if v, ok := s.Answers[q.ID]; ok {
			out[q.ID] = v
		}
	}
	return out
}
