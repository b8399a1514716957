// Package main provides a CLI tool for smoke-checking a running finsight
// server's API endpoints.
package main

import (
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

type endpoint struct {
	path        string
	method      string
	contentType string
	contains    []string
}

var endpoints = []endpoint{
	{path: "/api/hello", method: "GET", contentType: "application/json", contains: []string{`"status":"connected"`}},
	{path: "/api/transactions", method: "GET", contentType: "application/json", contains: nil},
	{path: "/api/insights/spending", method: "GET", contentType: "application/json", contains: nil},
	{path: "/api/subscriptions", method: "GET", contentType: "application/json", contains: nil},
	{path: "/api/goals", method: "GET", contentType: "application/json", contains: []string{"Emergency Fund"}},
	{path: "/api/goals/1/forecast", method: "GET", contentType: "application/json", contains: []string{`"likelihood"`}},
	{path: "/api/analytics/summary", method: "GET", contentType: "application/json", contains: []string{`"transaction_count"`}},
	{path: "/", method: "GET", contentType: "text/html", contains: nil},
}

type result struct {
	endpoint endpoint
	status   int
	duration time.Duration
	err      error
	body     string
}

func main() {
	url := flag.String("url", "http://localhost:5000", "Base URL of the server to validate")
	verbose := flag.Bool("v", false, "Verbose output")
	timeout := flag.Int("timeout", 10, "Request timeout in seconds")
	flag.Parse()

	client := &http.Client{
		Timeout: time.Duration(*timeout) * time.Second,
	}

	fmt.Printf("Validating server at %s\n", *url)
	fmt.Printf("Testing %d endpoints...\n\n", len(endpoints))

	var passed, failed int
	var results []result

	for _, ep := range endpoints {
		res := check(client, *url, ep)
		results = append(results, res)

		if res.err != nil {
			failed++
			fmt.Printf("FAIL %-35s %v\n", ep.path, res.err)
			continue
		}
		passed++
		fmt.Printf("PASS %-35s %d (%v)\n", ep.path, res.status, res.duration.Round(time.Millisecond))
		if *verbose {
			fmt.Printf("     body: %s\n", truncate(res.body, 120))
		}
	}

	fmt.Printf("\n%d passed, %d failed\n", passed, failed)
	if failed > 0 {
		os.Exit(1)
	}
}

func check(client *http.Client, baseURL string, ep endpoint) result {
	start := time.Now()

	req, err := http.NewRequest(ep.method, baseURL+ep.path, nil)
	if err != nil {
		return result{endpoint: ep, err: err}
	}

	resp, err := client.Do(req)
	if err != nil {
		return result{endpoint: ep, err: err}
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	res := result{
		endpoint: ep,
		status:   resp.StatusCode,
		duration: time.Since(start),
		body:     string(body),
	}

	if resp.StatusCode != http.StatusOK {
		res.err = fmt.Errorf("status %d", resp.StatusCode)
		return res
	}

	ct := resp.Header.Get("Content-Type")
	if ep.contentType != "" && !strings.Contains(ct, ep.contentType) {
		res.err = fmt.Errorf("content type %q does not contain %q", ct, ep.contentType)
		return res
	}

	for _, substr := range ep.contains {
		if !strings.Contains(res.body, substr) {
			res.err = fmt.Errorf("body missing %q", substr)
			return res
		}
	}

	return res
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
