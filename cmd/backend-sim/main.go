package main

// Local stand-in for the resume generation backend. It accepts job
// submissions from the relay and fires the resume-ready callback back at it
// after a short delay, so the full round trip can be exercised without the
// real service.

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

// jobSubmission mirrors the payload the relay POSTs to /apply.
type jobSubmission struct {
	UserID int64  `json:"userId"`
	JD     string `json:"jd"`
	Meta   struct {
		Username string `json:"username"`
		ChatID   int64  `json:"chatId"`
	} `json:"meta"`
}

// completionNotice mirrors the callback the real backend fires when a resume
// is ready.
type completionNotice struct {
	UserID  int64  `json:"userId"`
	Status  string `json:"status"`
	PDFURL  string `json:"pdf_url"`
	HREmail string `json:"hrEmail,omitempty"`
	JobID   string `json:"jobId"`
}

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, using process environment")
	}

	apiKey := os.Getenv("RESUME_BACKEND_API_KEY")
	if apiKey == "" {
		log.Fatal("RESUME_BACKEND_API_KEY environment variable is not set")
	}
	relayURL := os.Getenv("RELAY_URL")
	if relayURL == "" {
		relayURL = "http://localhost:8080"
	}
	pdfURL := os.Getenv("SIM_PDF_URL")
	if pdfURL == "" {
		pdfURL = "https://www.w3.org/WAI/ER/tests/xhtml/testfiles/resources/pdf/dummy.pdf"
	}
	hrEmail := os.Getenv("SIM_HR_EMAIL")
	port := os.Getenv("SIM_PORT")
	if port == "" {
		port = "8090"
	}

	http.HandleFunc("/apply", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-api-key") != apiKey {
			http.Error(w, "invalid api key", http.StatusForbidden)
			return
		}
		var job jobSubmission
		if err := json.NewDecoder(r.Body).Decode(&job); err != nil {
			http.Error(w, "invalid payload", http.StatusBadRequest)
			return
		}

		jobID := uuid.New().String()
		log.Printf("Accepted job %s for user %d (%d chars of JD)", jobID, job.UserID, len(job.JD))

		go func() {
			time.Sleep(2 * time.Second)
			notifyReady(relayURL, apiKey, completionNotice{
				UserID:  job.UserID,
				Status:  "completed",
				PDFURL:  pdfURL,
				HREmail: hrEmail,
				JobID:   jobID,
			})
		}()

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"jobId": jobID})
	})

	log.Printf("Backend simulator listening on :%s, calling back %s", port, relayURL)
	log.Fatal(http.ListenAndServe(":"+port, nil))
}

func notifyReady(relayURL, apiKey string, notice completionNotice) {
	body, err := json.Marshal(notice)
	if err != nil {
		log.Printf("Failed to marshal callback: %v", err)
		return
	}

	req, err := http.NewRequest(http.MethodPost, relayURL+"/resume-ready", bytes.NewReader(body))
	if err != nil {
		log.Printf("Failed to build callback request: %v", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", apiKey)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Printf("Callback for job %s failed: %v", notice.JobID, err)
		return
	}
	defer resp.Body.Close()
	log.Printf("Callback for job %s answered %d", notice.JobID, resp.StatusCode)
}
