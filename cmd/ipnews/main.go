package main

import (
	"encoding/json"
	"log"
	"net/http"
	"os"

	"github.com/tidemark/ipnews/internal/app"
	"github.com/tidemark/ipnews/internal/metrics"
)

func main() {
	// Monitoring endpoints are opt-in; cron-style runs usually skip them.
	if os.Getenv("ENABLE_HTTP_MONITORING") == "true" {
		go serveMonitoring()
	}

	app.Run()
}

func serveMonitoring() {
	port := os.Getenv("MONITORING_PORT")
	if port == "" {
		port = "8080"
	}

	http.HandleFunc("/health", healthHandler)
	http.HandleFunc("/metrics", metricsHandler)

	log.Printf("monitoring endpoints on :%s", port)
	if err := http.ListenAndServe(":"+port, nil); err != nil {
		log.Printf("monitoring server stopped: %v", err)
	}
}

// healthHandler reports aggregation liveness plus the failure counters an
// operator needs to tell a healthy pass from one that degraded to
// placeholders.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	stats := metrics.Global.GetStats()

	status := "ok"
	if !stats["is_healthy"].(bool) {
		status = "error"
		w.WriteHeader(http.StatusServiceUnavailable)
	}

	response := map[string]interface{}{
		"status":               status,
		"last_run":             stats["last_run_time"],
		"last_error":           stats["last_error"],
		"feed_failures":        stats["feed_failures"],
		"placeholders_emitted": stats["placeholders_emitted"],
		"articles_produced":    stats["articles_produced"],
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func metricsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(metrics.Global.GetStats())
}
