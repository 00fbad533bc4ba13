package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	vegeta "github.com/tsenart/vegeta/v12/lib"
)

// presets de período do dashboard, em dias
var presets = []int{7, 30, 90, 365}

func main() {
	target := flag.String("target", "http://localhost:5000", "URL base da API")
	duration := flag.Duration("duration", 10*time.Second, "duração do teste")
	rate := flag.Int("rate", 50, "requisições por segundo")
	summary := flag.Bool("summary", false, "usa /api/summary em vez de /api/data")
	anchor := flag.String("anchor", "2024-05-31", "data final mais recente dos períodos sorteados")
	flag.Parse()

	anchorDate, err := time.Parse(time.DateOnly, *anchor)
	if err != nil {
		logrus.WithError(err).Fatal("anchor inválido")
	}

	endpoint := "/api/data"
	if *summary {
		endpoint = "/api/summary"
	}
	baseURL := strings.TrimRight(*target, "/") + endpoint

	targeter := func(t *vegeta.Target) error {
		start, end := randomRange(anchorDate)
		t.Method = http.MethodGet
		t.URL = fmt.Sprintf("%s?start_date=%s&end_date=%s", baseURL, start.Format(time.DateOnly), end.Format(time.DateOnly))
		t.Header = http.Header{"Accept": []string{"application/json"}}
		return nil
	}

	logrus.WithFields(logrus.Fields{
		"target":   baseURL,
		"duration": duration.String(),
		"rate":     *rate,
	}).Info("Iniciando benchmark")

	attacker := vegeta.NewAttacker(vegeta.KeepAlive(true))
	var metrics vegeta.Metrics

	for res := range attacker.Attack(targeter, vegeta.Rate{Freq: *rate, Per: time.Second}, *duration, "sales-dashboard") {
		metrics.Add(res)
	}
	metrics.Close()

	fmt.Println("--------------------------------------------------")
	fmt.Println("99th percentile: ", metrics.Latencies.P99)
	fmt.Println("95th percentile: ", metrics.Latencies.P95)
	fmt.Println("Mean:            ", metrics.Latencies.Mean)
	fmt.Println("Max:             ", metrics.Latencies.Max)
	fmt.Printf("Success:         %.2f%%\n", metrics.Success*100)
	fmt.Println("Status codes:    ", metrics.StatusCodes)
	fmt.Println("--------------------------------------------------")

	if len(metrics.Errors) > 0 {
		for _, e := range metrics.Errors {
			logrus.Warn(e)
		}
	}

	if metrics.Success < 0.99 {
		os.Exit(1)
	}
}

// randomRange sorteia um preset e um fim de período dentro do último ano antes de anchor
func randomRange(anchor time.Time) (time.Time, time.Time) {
	days := presets[rand.IntN(len(presets))]
	end := anchor.AddDate(0, 0, -rand.IntN(365))
	return end.AddDate(0, 0, -(days - 1)), end
}
