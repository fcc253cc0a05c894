package api

import (
	"encoding/json"
	"net/http"
	"os"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/quillcms/wayfind/internal/pkg/utils"
)

// StatusResponse represents the structure of the status API response.
type StatusResponse struct {
	Role      string `json:"role"`
	Version   string `json:"version"`
	Host      string `json:"host"`
	StartTime string `json:"start_time"`
	Uptime    string `json:"uptime"`
}

var startTime = time.Now()

// statusHandler handles GET requests to /status
func statusHandler(w http.ResponseWriter, r *http.Request) {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}

	version := utils.GetVersion()

	response := StatusResponse{
		Role:      "wayfind",
		Version:   version.Version,
		Host:      hostname,
		StartTime: startTime.Format(time.RFC3339),
		Uptime:    humanize.Time(startTime),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
