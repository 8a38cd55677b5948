package assessment

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed bank.yaml
var defaultBankYAML []byte

// ErrInvalidBank is returned when a question bank fails structural checks.
var ErrInvalidBank = errors.New("invalid question bank")

type Severity string

const (
	SeverityMild     Severity = "mild"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
)

func (s Severity) Valid() bool {
	switch s {
	case SeverityMild, SeverityModerate, SeveritySevere:
		return true
	}
	return false
}

type Option struct {
	Label string `yaml:"label" json:"label"`
	Value int    `yaml:"value" json:"value"`
}

type Question struct {
	ID      string   `yaml:"id" json:"id"`
	Text    string   `yaml:"text" json:"text"`
	Options []Option `yaml:"options" json:"options"`
}

// MaxValue returns the highest option value of the question.
func (q Question) MaxValue() int {
	max := 0
	for i, o := range q.Options {
		if i == 0 || o.Value > max {
			max = o.Value
		}
	}
	return max
}

func (q Question) hasValue(v int) bool {
	for _, o := range q.Options {
		if o.Value == v {
			return true
		}
	}
	return false
}

type Step struct {
	Title     string     `yaml:"title" json:"title"`
	Questions []Question `yaml:"questions" json:"questions"`
}

// Tier maps an upper percent bound to a severity and its advice.
type Tier struct {
	Severity        Severity `yaml:"severity" json:"severity"`
	Label           string   `yaml:"label" json:"label"`
	MaxPercent      int      `yaml:"max_percent" json:"max_percent"`
	Recommendations []string `yaml:"recommendations" json:"recommendations"`
}

// Bank is an ordered list of steps plus the severity tiers used to
// classify a completed answer set.
type Bank struct {
	Name     string `yaml:"name"`
	Steps    []Step `yaml:"steps"`
	MaxScore int    `yaml:"max_score"`
	Tiers    []Tier `yaml:"tiers"`
}

// DefaultBank returns the embedded ISI bank.
func DefaultBank() (*Bank, error) {
	return ParseBank(defaultBankYAML)
}

// LoadBank reads a bank from path, or the embedded bank when path is empty.
func LoadBank(path string) (*Bank, error) {
	if path == "" {
		return DefaultBank()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read question bank: %w", err)
	}
	return ParseBank(data)
}

func ParseBank(data []byte) (*Bank, error) {
	var b Bank
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("failed to parse question bank: %w", err)
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return &b, nil
}

// Validate checks that every question is uniquely identified and answerable
// and that the tiers cover 0..100 in ascending order.
func (b *Bank) Validate() error {
	if len(b.Steps) == 0 {
		return fmt.Errorf("%w: no steps", ErrInvalidBank)
	}
	seen := make(map[string]bool)
	for i, step := range b.Steps {
		if len(step.Questions) == 0 {
			return fmt.Errorf("%w: step %d has no questions", ErrInvalidBank, i+1)
		}
		for _, q := range step.Questions {
			if q.ID == "" {
				return fmt.Errorf("%w: step %d has a question without id", ErrInvalidBank, i+1)
			}
			if seen[q.ID] {
				return fmt.Errorf("%w: duplicate question id %q", ErrInvalidBank, q.ID)
			}
			seen[q.ID] = true
			if len(q.Options) < 2 {
				return fmt.Errorf("%w: question %q needs at least two options", ErrInvalidBank, q.ID)
			}
			values := make(map[int]bool, len(q.Options))
			for _, o := range q.Options {
				if o.Value < 0 {
					return fmt.Errorf("%w: question %q has a negative option value", ErrInvalidBank, q.ID)
				}
				if values[o.Value] {
					return fmt.Errorf("%w: question %q repeats option value %d", ErrInvalidBank, q.ID, o.Value)
				}
				values[o.Value] = true
			}
		}
	}

	if b.MaxScore < 0 {
		return fmt.Errorf("%w: max_score must not be negative", ErrInvalidBank)
	}
	if b.MaxPossibleScore() == 0 {
		return fmt.Errorf("%w: max score is zero", ErrInvalidBank)
	}

	if len(b.Tiers) == 0 {
		return fmt.Errorf("%w: no severity tiers", ErrInvalidBank)
	}
	prev := -1
	for _, t := range b.Tiers {
		if !t.Severity.Valid() {
			return fmt.Errorf("%w: unknown severity %q", ErrInvalidBank, t.Severity)
		}
		if t.MaxPercent <= prev {
			return fmt.Errorf("%w: tiers must be in ascending order", ErrInvalidBank)
		}
		prev = t.MaxPercent
	}
	if prev != 100 {
		return fmt.Errorf("%w: last tier must end at 100", ErrInvalidBank)
	}
	return nil
}

func (b *Bank) StepCount() int {
	return len(b.Steps)
}

// StepAt returns the 1-based step.
func (b *Bank) StepAt(step int) (Step, bool) {
	if step < 1 || step > len(b.Steps) {
		return Step{}, false
	}
	return b.Steps[step-1], true
}

// MaxPossibleScore is the configured max_score, or the sum of every
// question's highest option value.
func (b *Bank) MaxPossibleScore() int {
	if b.MaxScore > 0 {
		return b.MaxScore
	}
	total := 0
	for _, step := range b.Steps {
		for _, q := range step.Questions {
			total += q.MaxValue()
		}
	}
	return total
}

// Classify returns the first tier whose bound covers percent.
func (b *Bank) Classify(percent int) Tier {
	for _, t := range b.Tiers {
		if percent <= t.MaxPercent {
			return t
		}
	}
	return b.Tiers[len(b.Tiers)-1]
}
