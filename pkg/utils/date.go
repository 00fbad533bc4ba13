package utils

import (
	"errors"
	"time"
)

var ErrEmptyDate = errors.New("date is empty")

// ParseDate interpreta uma data no formato YYYY-MM-DD como meia-noite UTC
func ParseDate(dateStr string) (time.Time, error) {
	if dateStr == "" {
		return time.Time{}, ErrEmptyDate
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return time.Time{}, err
	}

	return date, nil
}

// DateOnly descarta o horário e devolve a data civil em UTC
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

const secondsPerDay = 24 * 60 * 60

// DaysInRange conta os dias do intervalo fechado [start, end]; zero quando start > end.
// Conta em segundos Unix porque time.Duration satura em ~292 anos.
func DaysInRange(start, end time.Time) int {
	start, end = DateOnly(start), DateOnly(end)
	if start.After(end) {
		return 0
	}
	return int((end.Unix()-start.Unix())/secondsPerDay) + 1
}

// DateRange lista todas as datas do intervalo fechado [start, end]
func DateRange(start, end time.Time) []time.Time {
	n := DaysInRange(start, end)
	dates := make([]time.Time, 0, n)
	current := DateOnly(start)
	for i := 0; i < n; i++ {
		dates = append(dates, current)
		current = current.AddDate(0, 0, 1)
	}
	return dates
}
