package service

import (
	"math"

	"github.com/blaisecz/sleepmitra/internal/domain"
)

// wakeUpPenaltyHours is the sleep lost per night-time wake-up.
const wakeUpPenaltyHours = 0.25

// nightData holds the values derived from one diary entry.
type nightData struct {
	inBedHours float64
	sleepHours float64
	latency    float64
	wakeUps    float64
	quality    float64
}

// extractNightData derives the per-night values. Missing latency and
// wake-up counts count as zero.
func extractNightData(e domain.DiaryEntry) (nightData, bool) {
	d, err := domain.SleepDuration(e.Bedtime, e.WakeTime)
	if err != nil {
		return nightData{}, false
	}

	n := nightData{
		inBedHours: d.Hours(),
		quality:    float64(e.SleepQuality),
	}
	if e.SleepLatency != nil {
		n.latency = float64(*e.SleepLatency)
	}
	if e.WakeUps != nil {
		n.wakeUps = float64(*e.WakeUps)
	}
	n.sleepHours = n.inBedHours - n.latency/60 - n.wakeUps*wakeUpPenaltyHours
	return n, true
}

// ComputeDiaryMetrics summarises diary entries. Entries whose times do not
// parse are skipped.
func ComputeDiaryMetrics(entries []domain.DiaryEntry) domain.DiaryMetrics {
	var result domain.DiaryMetrics

	var inBed, sleep, latency, wakeUps, quality []float64
	var totalInBed, totalSleep float64

	for _, e := range entries {
		n, ok := extractNightData(e)
		if !ok {
			continue
		}
		inBed = append(inBed, n.inBedHours)
		sleep = append(sleep, n.sleepHours)
		latency = append(latency, n.latency)
		wakeUps = append(wakeUps, n.wakeUps)
		quality = append(quality, n.quality)

		totalInBed += n.inBedHours
		totalSleep += n.sleepHours
	}

	result.EntryCount = len(inBed)
	if result.EntryCount == 0 {
		return result
	}

	if totalInBed > 0 {
		result.SleepEfficiency = math.Round(totalSleep/totalInBed*1000) / 10
	}
	result.SleepHours = computeStats(sleep)
	result.TimeInBedHours = computeStats(inBed)
	result.LatencyMinutes = computeStats(latency)
	result.WakeUps = computeStats(wakeUps)
	result.Quality = computeStats(quality)

	return result
}

// computeStats calculates descriptive statistics for a slice of values.
func computeStats(values []float64) domain.DescriptiveStats {
	if len(values) == 0 {
		return domain.DescriptiveStats{}
	}

	// Calculate mean
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	avg := sum / float64(len(values))

	// Calculate min/max
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}

	// Calculate standard deviation
	sumSquares := 0.0
	for _, v := range values {
		diff := v - avg
		sumSquares += diff * diff
	}
	std := 0.0
	if len(values) > 1 {
		std = math.Sqrt(sumSquares / float64(len(values)-1))
	}

	return domain.DescriptiveStats{
		Avg: math.Round(avg*100) / 100,
		Std: math.Round(std*100) / 100,
		Min: math.Round(minVal*100) / 100,
		Max: math.Round(maxVal*100) / 100,
	}
}
