// Package report computes descriptive statistics over the user table.
package report

import (
	"fmt"
	"io"

	"gonum.org/v1/gonum/stat"

	"github.com/kina524/sql-data-analyzy-app/internal/models"
)

// Summary holds the aggregate figures shown by the statistics view.
type Summary struct {
	Count     int
	MeanAge   float64
	MeanIQ    float64
	MeanBench float64
	MaxBench  int
	MinBench  int
}

// Summarize computes a Summary over the full record set. It reports false on
// an empty set and performs no arithmetic in that case.
func Summarize(users []models.User) (Summary, bool) {
	if len(users) == 0 {
		return Summary{}, false
	}

	ages := make([]float64, len(users))
	iqs := make([]float64, len(users))
	bench := make([]float64, len(users))
	maxBench, minBench := users[0].BenchPress, users[0].BenchPress
	for i, u := range users {
		ages[i] = float64(u.Age)
		iqs[i] = float64(u.IQ)
		bench[i] = float64(u.BenchPress)
		if u.BenchPress > maxBench {
			maxBench = u.BenchPress
		}
		if u.BenchPress < minBench {
			minBench = u.BenchPress
		}
	}

	return Summary{
		Count:     len(users),
		MeanAge:   stat.Mean(ages, nil),
		MeanIQ:    stat.Mean(iqs, nil),
		MeanBench: stat.Mean(bench, nil),
		MaxBench:  maxBench,
		MinBench:  minBench,
	}, true
}

// Format renders the summary block the menu prints.
func (s Summary) Format(w io.Writer) {
	fmt.Fprintln(w, "\nData Statistics:")
	fmt.Fprintln(w, "==============================")
	fmt.Fprintf(w, "Total users: %d\n", s.Count)
	fmt.Fprintf(w, "Average age: %.1f\n", s.MeanAge)
	fmt.Fprintf(w, "Average IQ: %.1f\n", s.MeanIQ)
	fmt.Fprintf(w, "Average bench press: %.1f kg\n", s.MeanBench)
	fmt.Fprintf(w, "Max bench press: %d kg\n", s.MaxBench)
	fmt.Fprintf(w, "Min bench press: %d kg\n", s.MinBench)
}
