// Command client is a throwaway script that exercises every endpoint of
// the advertisement board API in sequence and prints each response. It
// assumes a running server and an empty-ish database.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
)

func baseURL() string {
	if v := os.Getenv("ADBOARD_URL"); v != "" {
		return v
	}
	return "http://127.0.0.1:8080"
}

// do sends one JSON request and prints the status code and body.
// The decoded body is returned so callers can chain generated IDs.
func do(method, path string, payload any) map[string]any {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			log.Fatalf("marshal request: %v", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL()+path, body)
	if err != nil {
		log.Fatalf("build request: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Fatalf("read response: %v", err)
	}

	fmt.Printf("%s %s -> %d\n%s\n", method, path, resp.StatusCode, raw)

	var decoded map[string]any
	_ = json.Unmarshal(raw, &decoded)
	return decoded
}

func main() {
	// Create a user
	created := do(http.MethodPost, "/user",
		map[string]any{"username": "final_test_user", "password": "1234"})
	userID := fmt.Sprintf("%v", created["id"])

	// Create an advertisement owned by that user
	ad := do(http.MethodPost, "/advertisement",
		map[string]any{"title": "final_test_title", "description": "some_description", "user_id": created["id"]})
	adID := fmt.Sprintf("%v", ad["id_adv"])

	// Read both back
	do(http.MethodGet, "/user/"+userID, nil)
	do(http.MethodGet, "/advertisement/"+adID, nil)

	// Rename the user, verify with a follow-up get
	do(http.MethodPatch, "/user/"+userID, map[string]any{"username": "final_user"})
	do(http.MethodGet, "/user/"+userID, nil)

	// Retitle the advertisement, verify with a follow-up get
	do(http.MethodPatch, "/advertisement/"+adID,
		map[string]any{"title": "final_title", "description": "another_description"})
	do(http.MethodGet, "/advertisement/"+adID, nil)

	// Delete the user; the follow-up get must fail
	do(http.MethodDelete, "/user/"+userID, nil)
	do(http.MethodGet, "/user/"+userID, nil)

	// Delete the advertisement; the follow-up get must fail
	do(http.MethodDelete, "/advertisement/"+adID, nil)
	do(http.MethodGet, "/advertisement/"+adID, nil)
}
