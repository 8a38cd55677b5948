package assessment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercent(t *testing.T) {
	tests := []struct {
		sum, max, want int
	}{
		{11, 20, 55},
		{4, 20, 20},
		{0, 28, 0},
		{28, 28, 100},
		{1, 28, 4},    // 3.57
		{5, 28, 18},   // 17.86
		{7, 28, 25},   // exact
		{1, 8, 13},    // 12.5 rounds half up
		{3, 8, 38},    // 37.5 rounds half up
		{30, 20, 100}, // clamped
		{5, 0, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Percent(tt.sum, tt.max), "Percent(%d, %d)", tt.sum, tt.max)
	}
}

func TestScore_DefaultBank(t *testing.T) {
	b, err := DefaultBank()
	assert.NoError(t, err)

	answers := AnswerSet{"isi_1": 2, "isi_2": 2, "isi_3": 2, "isi_4": 2, "isi_5": 2, "isi_6": 2, "isi_7": 2}
	res := Score(b, answers, testNow)

	assert.Equal(t, 50, res.TotalScore)
	assert.Equal(t, 14, res.RawScore)
	assert.Equal(t, 28, res.MaxScore)
	assert.Equal(t, SeverityModerate, res.Severity)
	assert.Equal(t, "मध्यम", res.SeverityLabel)
	assert.Len(t, res.Recommendations, 4)

	res.Recommendations[0] = "changed"
	assert.NotEqual(t, "changed", b.Classify(50).Recommendations[0])
}
