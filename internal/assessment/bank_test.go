package assessment

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultBank(t *testing.T) {
	b, err := DefaultBank()
	require.NoError(t, err)

	assert.Equal(t, 3, b.StepCount())
	assert.Equal(t, 28, b.MaxPossibleScore())

	var ids []string
	for _, st := range b.Steps {
		for _, q := range st.Questions {
			ids = append(ids, q.ID)
			assert.Len(t, q.Options, 5)
			assert.Equal(t, 4, q.MaxValue())
		}
	}
	assert.Equal(t, []string{"isi_1", "isi_2", "isi_3", "isi_4", "isi_5", "isi_6", "isi_7"}, ids)

	assert.Equal(t, "हल्का", b.Classify(30).Label)
	assert.Equal(t, "मध्यम", b.Classify(31).Label)
	assert.Equal(t, "गंभीर", b.Classify(61).Label)
}

func TestLoadBank_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bank.yaml")
	require.NoError(t, os.WriteFile(path, []byte(fourQuestionBank), 0o600))

	b, err := LoadBank(path)
	require.NoError(t, err)
	assert.Equal(t, "test", b.Name)
	assert.Equal(t, 20, b.MaxPossibleScore())
}

func TestLoadBank_MissingFile(t *testing.T) {
	_, err := LoadBank(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestParseBank_Invalid(t *testing.T) {
	tiers := `
tiers:
  - {severity: mild, label: a, max_percent: 30}
  - {severity: severe, label: c, max_percent: 100}
`
	tests := []struct {
		name string
		src  string
	}{
		{"no steps", "steps: []" + tiers},
		{"step without questions", "steps: [{title: a, questions: []}]" + tiers},
		{"question without id", "steps: [{title: a, questions: [{text: x, options: [{label: a, value: 0}, {label: b, value: 1}]}]}]" + tiers},
		{"duplicate ids", "steps: [{title: a, questions: [{id: x, options: [{label: a, value: 0}, {label: b, value: 1}]}, {id: x, options: [{label: a, value: 0}, {label: b, value: 1}]}]}]" + tiers},
		{"no options", "steps: [{title: a, questions: [{id: x}]}]" + tiers},
		{"single option", "steps: [{title: a, questions: [{id: x, options: [{label: a, value: 1}]}]}]" + tiers},
		{"repeated option value", "steps: [{title: a, questions: [{id: x, options: [{label: a, value: 1}, {label: b, value: 1}]}]}]" + tiers},
		{"no tiers", "steps: [{title: a, questions: [{id: x, options: [{label: a, value: 0}, {label: b, value: 1}]}]}]"},
		{"tiers not ending at 100", `steps: [{title: a, questions: [{id: x, options: [{label: a, value: 0}, {label: b, value: 1}]}]}]
tiers: [{severity: mild, label: a, max_percent: 30}]`},
		{"tiers out of order", `steps: [{title: a, questions: [{id: x, options: [{label: a, value: 0}, {label: b, value: 1}]}]}]
tiers: [{severity: mild, label: a, max_percent: 60}, {severity: moderate, label: b, max_percent: 30}, {severity: severe, label: c, max_percent: 100}]`},
		{"unknown severity", `steps: [{title: a, questions: [{id: x, options: [{label: a, value: 0}, {label: b, value: 1}]}]}]
tiers: [{severity: extreme, label: a, max_percent: 100}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBank([]byte(tt.src))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidBank), "got %v", err)
		})
	}
}

func TestParseBank_Malformed(t *testing.T) {
	_, err := ParseBank([]byte("steps: [unclosed"))
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrInvalidBank))
}
