package domain

import (
	"errors"
	"testing"
	"time"
)

func TestSleepDuration(t *testing.T) {
	tests := []struct {
		name    string
		bed     string
		wake    string
		want    string
		wantErr bool
	}{
		{name: "crosses midnight", bed: "23:00", wake: "07:00", want: "8 घंटे 0 मिनट"},
		{name: "same day", bed: "01:15", wake: "07:45", want: "6 घंटे 30 मिनट"},
		{name: "equal times", bed: "22:00", wake: "22:00", want: "0 घंटे 0 मिनट"},
		{name: "one minute before", bed: "22:00", wake: "21:59", want: "23 घंटे 59 मिनट"},
		{name: "late bedtime", bed: "23:45", wake: "06:10", want: "6 घंटे 25 मिनट"},
		{name: "bad bedtime", bed: "25:00", wake: "07:00", wantErr: true},
		{name: "bad wake time", bed: "23:00", wake: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := SleepDuration(tt.bed, tt.wake)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidInput) {
					t.Fatalf("expected ErrInvalidInput, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := FormatDuration(d); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDiaryEntry_ToResponse(t *testing.T) {
	e := DiaryEntry{
		Date:         "2024-01-15",
		Bedtime:      "23:00",
		WakeTime:     "07:00",
		SleepQuality: 7,
		Timestamp:    time.Date(2024, 1, 16, 7, 5, 0, 0, time.UTC),
	}

	resp := e.ToResponse()
	if resp.Duration != "8 घंटे 0 मिनट" {
		t.Errorf("duration = %q", resp.Duration)
	}
	if resp.DurationMinutes != 480 {
		t.Errorf("duration minutes = %d", resp.DurationMinutes)
	}

	e.WakeTime = ""
	if got := e.ToResponse().Duration; got != "N/A" {
		t.Errorf("missing wake time duration = %q, want N/A", got)
	}
}
