//go:build ignore

package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"
)

// Manual smoke check against a running instance: walks the lookup endpoints,
// creates a station and a cafe, verifies the delete guard, then cleans up.
//
//	go run scripts/smoke_api.go -addr http://localhost:3000

func main() {
	addr := flag.String("addr", "http://localhost:3000", "API base URL")
	flag.Parse()

	client := &http.Client{Timeout: 10 * time.Second}

	get(client, *addr+"/health")
	get(client, *addr+"/api/regions")
	get(client, *addr+"/api/prefectures?region_id=3")
	get(client, *addr+"/api/stations")

	stationID := create(client, *addr+"/api/stations", map[string]string{
		"name":     "スモーク検証駅",
		"location": "新宿区",
	})

	cafeID := create(client, *addr+"/api/cafes", map[string]string{
		"name":          "スモーク検証カフェ",
		"googleMapsUrl": "https://maps.google.com/?q=smoke",
		"station":       "スモーク検証駅",
		"walkingTime":   "3",
	})

	// The station is now referenced; deleting it must fail.
	resp, err := do(client, http.MethodDelete, fmt.Sprintf("%s/api/stations/%d", *addr, stationID), nil)
	if err != nil {
		log.Fatalf("delete station: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		log.Fatalf("expected the delete guard to fire, got %d", resp.StatusCode)
	}
	fmt.Println("delete guard OK")

	mustStatus(client, http.MethodDelete, fmt.Sprintf("%s/api/cafes/%d", *addr, cafeID), http.StatusOK)
	mustStatus(client, http.MethodDelete, fmt.Sprintf("%s/api/stations/%d", *addr, stationID), http.StatusOK)

	fmt.Println("smoke check passed")
}

func get(client *http.Client, url string) {
	resp, err := client.Get(url)
	if err != nil {
		log.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatalf("GET %s: status %d", url, resp.StatusCode)
	}
	fmt.Printf("GET %s OK\n", url)
}

func create(client *http.Client, url string, body map[string]string) int {
	resp, err := do(client, http.MethodPost, url, body)
	if err != nil {
		log.Fatalf("POST %s: %v", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		log.Fatalf("POST %s: status %d", url, resp.StatusCode)
	}

	var created struct {
		ID int `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		log.Fatalf("POST %s: decode: %v", url, err)
	}
	fmt.Printf("POST %s OK (id=%d)\n", url, created.ID)
	return created.ID
}

func do(client *http.Client, method, url string, body map[string]string) (*http.Response, error) {
	var payload *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		payload = bytes.NewReader(data)
	} else {
		payload = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, payload)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return client.Do(req)
}

func mustStatus(client *http.Client, method, url string, want int) {
	resp, err := do(client, method, url, nil)
	if err != nil {
		log.Fatalf("%s %s: %v", method, url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != want {
		log.Fatalf("%s %s: status %d, want %d", method, url, resp.StatusCode, want)
	}
	fmt.Printf("%s %s OK\n", method, url)
}
