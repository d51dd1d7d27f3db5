package utils

import "time"

// ParseDate converte uma data no formato YYYY-MM-DD. String vazia resulta
// na data zero, não em erro.
func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// SameCalendarMonth compara ano e mês de duas datas, ignorando o dia.
func SameCalendarMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
