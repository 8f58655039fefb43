package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorCyan   = "\033[36m"
)

type SmokeClient struct {
	baseURL string
	client  *http.Client
}

func NewSmokeClient(baseURL string) *SmokeClient {
	return &SmokeClient{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

func main() {
	baseURL := flag.String("url", "http://localhost:5000", "Base URL of the backend")
	testType := flag.String("test", "all", "Test type: all, health, bio, project")
	keywords := flag.String("keywords", "golang, distributed systems, open source", "Keywords for the bio test")
	role := flag.String("role", "", "Role for the project test (empty uses the server default)")
	flag.Parse()

	client := NewSmokeClient(*baseURL)

	printHeader("Portfolio AI Backend - Smoke Tests")
	fmt.Printf("%sBase URL: %s%s\n\n", colorCyan, *baseURL, colorReset)

	switch *testType {
	case "all":
		client.runAllTests(*keywords, *role)
	case "health":
		client.testHealth()
	case "bio":
		client.testBio(*keywords)
	case "project":
		client.testProject(*role)
	default:
		printError(fmt.Sprintf("Unknown test type: %s", *testType))
		fmt.Println("\nAvailable tests: all, health, bio, project")
		os.Exit(1)
	}
}

func (sc *SmokeClient) runAllTests(keywords, role string) {
	tests := []struct {
		name string
		fn   func() bool
	}{
		{"Health Check", sc.testHealth},
		{"Bio Generation", func() bool { return sc.testBio(keywords) }},
		{"Project Generation", func() bool { return sc.testProject(role) }},
	}

	passed := 0
	failed := 0

	for _, test := range tests {
		if test.fn() {
			passed++
		} else {
			failed++
		}
		fmt.Println()
	}

	printHeader("Test Summary")
	fmt.Printf("%sPassed: %d%s\n", colorGreen, passed, colorReset)
	fmt.Printf("%sFailed: %d%s\n", colorRed, failed, colorReset)
	fmt.Printf("Total: %d\n", passed+failed)

	if failed > 0 {
		os.Exit(1)
	}
}

func (sc *SmokeClient) testHealth() bool {
	printTestHeader("Testing Health Check Endpoint")

	url := fmt.Sprintf("%s/health", sc.baseURL)
	fmt.Printf("GET %s\n", url)

	resp, err := sc.client.Get(url)
	if err != nil {
		printError(fmt.Sprintf("Request failed: %v", err))
		return false
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		printError(fmt.Sprintf("Expected status 200, got %d", resp.StatusCode))
		return false
	}

	if string(body) != "OK" {
		printError(fmt.Sprintf("Expected body 'OK', got '%s'", string(body)))
		return false
	}

	printSuccess("Health check passed")
	return true
}

func (sc *SmokeClient) testBio(keywords string) bool {
	printTestHeader("Testing Bio Generation")

	url := fmt.Sprintf("%s/api/bio", sc.baseURL)
	fmt.Printf("POST %s\n", url)
	fmt.Printf("%sKeywords:%s %s\n\n", colorCyan, colorReset, keywords)

	payload := map[string]string{"keywords": keywords}
	body, status, ok := sc.post(url, payload)
	if !ok {
		return false
	}

	if status != http.StatusOK {
		printError(fmt.Sprintf("Expected status 200, got %d", status))
		fmt.Printf("Response: %s\n", string(body))
		return false
	}

	var response struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		printError(fmt.Sprintf("Invalid JSON response: %v", err))
		return false
	}

	if strings.HasPrefix(response.Text, "Error") {
		printError("Backend answered with an error sentence")
		fmt.Println(response.Text)
		return false
	}

	printSuccess("Bio generated")
	printResult(response.Text)
	return true
}

func (sc *SmokeClient) testProject(role string) bool {
	printTestHeader("Testing Project Generation")

	url := fmt.Sprintf("%s/api/project", sc.baseURL)
	fmt.Printf("POST %s\n", url)
	if role == "" {
		fmt.Printf("%sRole:%s (server default)\n\n", colorCyan, colorReset)
	} else {
		fmt.Printf("%sRole:%s %s\n\n", colorCyan, colorReset, role)
	}

	payload := map[string]string{"role": role}
	body, status, ok := sc.post(url, payload)
	if !ok {
		return false
	}

	if status != http.StatusOK {
		printError(fmt.Sprintf("Expected status 200, got %d", status))
		fmt.Printf("Response: %s\n", string(body))
		return false
	}

	var response struct {
		HTML string `json:"html"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		printError(fmt.Sprintf("Invalid JSON response: %v", err))
		return false
	}

	if strings.HasPrefix(response.HTML, "Error") {
		printError("Backend answered with an error sentence")
		fmt.Println(response.HTML)
		return false
	}

	printSuccess("Project idea generated")
	printResult(response.HTML)
	return true
}

func (sc *SmokeClient) post(url string, payload interface{}) ([]byte, int, bool) {
	jsonData, _ := json.MarshalIndent(payload, "", "  ")
	fmt.Printf("%sRequest:%s\n%s\n\n", colorYellow, colorReset, string(jsonData))

	resp, err := sc.client.Post(url, "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		printError(fmt.Sprintf("Request failed: %v", err))
		return nil, 0, false
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	return body, resp.StatusCode, true
}

func printHeader(text string) {
	fmt.Printf("\n%s%s%s\n", colorBlue, strings.Repeat("=", len(text)+4), colorReset)
	fmt.Printf("%s= %s =%s\n", colorBlue, text, colorReset)
	fmt.Printf("%s%s%s\n\n", colorBlue, strings.Repeat("=", len(text)+4), colorReset)
}

func printTestHeader(text string) {
	fmt.Printf("%s[TEST] %s%s\n", colorCyan, text, colorReset)
	fmt.Println(strings.Repeat("-", 80))
}

func printSuccess(text string) {
	fmt.Printf("%s✓ %s%s\n", colorGreen, text, colorReset)
}

func printError(text string) {
	fmt.Printf("%s✗ %s%s\n", colorRed, text, colorReset)
}

func printResult(text string) {
	fmt.Printf("\n%sGenerated:%s\n", colorGreen, colorReset)
	fmt.Println(strings.Repeat("=", 80))
	fmt.Println(text)
	fmt.Println(strings.Repeat("=", 80))
}
