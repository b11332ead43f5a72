// Command jungleworker renders one Welcome to the Jungle search page in a
// headless Chromium, extracts job posting links from the DOM, and prints
// them as a JSON array on stdout. It exists as a separate executable so the
// engine can give the browser a hard wall-clock budget and kill the whole
// process tree without caring why it hung.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/exec"
	"regexp"
	"strings"
	"time"

	"jobscout-engine/internal/scrape/jungle"

	"github.com/PuerkitoBio/goquery"
)

var (
	reJobSlug     = regexp.MustCompile(`/jobs/([^/?#]+)`)
	reCompanySlug = regexp.MustCompile(`/companies/([^/?#]+)`)
)

func main() {
	var (
		pageURL    = flag.String("url", "", "search page URL to render")
		maxResults = flag.Int("max", 50, "maximum links to emit")
		browserBin = flag.String("browser", defaultBrowser(), "headless chromium binary")
		budget     = flag.Duration("budget", 55*time.Second, "local render budget")
	)
	flag.Parse()

	if *pageURL == "" {
		log.Fatal("jungleworker: -url is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), *budget)
	defer cancel()

	dom, err := renderDOM(ctx, *browserBin, *pageURL)
	if err != nil {
		log.Fatalf("jungleworker: render: %v", err)
	}

	jobs, err := extractJobs(dom, *maxResults)
	if err != nil {
		log.Fatalf("jungleworker: parse: %v", err)
	}

	enc := json.NewEncoder(os.Stdout)
	if err := enc.Encode(jobs); err != nil {
		log.Fatalf("jungleworker: encode: %v", err)
	}
}

func defaultBrowser() string {
	if b := os.Getenv("JOBSCOUT_BROWSER"); b != "" {
		return b
	}
	return "chromium"
}

// renderDOM lets Chromium run the page's JavaScript under a virtual time
// budget and hands back the settled DOM.
func renderDOM(ctx context.Context, browserBin, pageURL string) (string, error) {
	cmd := exec.CommandContext(ctx, browserBin,
		"--headless=new",
		"--disable-gpu",
		"--no-sandbox",
		"--hide-scrollbars",
		"--virtual-time-budget=10000",
		"--timeout=30000",
		"--dump-dom",
		pageURL,
	)
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("%s: %w", browserBin, err)
	}
	return string(out), nil
}

// extractJobs pulls company job links out of the rendered DOM. Titles and
// companies come from the URL path slugs — the listing markup churns too
// often to scrape text nodes reliably, the slugs don't.
func extractJobs(dom string, max int) ([]jungle.WorkerJob, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(dom))
	if err != nil {
		return nil, err
	}

	seen := map[string]bool{}
	jobs := []jungle.WorkerJob{}

	doc.Find(`a[href*="/companies/"]`).EachWithBreak(func(_ int, a *goquery.Selection) bool {
		if len(jobs) >= max {
			return false
		}

		href, ok := a.Attr("href")
		href = strings.TrimSpace(href)
		if !ok || href == "" || seen[href] {
			return true
		}
		if !strings.Contains(href, "/companies/") || !strings.Contains(href, "/jobs/") {
			return true
		}
		seen[href] = true

		full := href
		if strings.HasPrefix(href, "/") {
			full = "https://www.welcometothejungle.com" + href
		}

		jobs = append(jobs, jungle.WorkerJob{
			Title:   slugToTitle(reJobSlug, href, "Job Posting"),
			Company: slugToTitle(reCompanySlug, href, "Unknown Company"),
			URL:     full,
		})
		return true
	})

	return jobs, nil
}

func slugToTitle(re *regexp.Regexp, href, fallback string) string {
	m := re.FindStringSubmatch(href)
	if m == nil {
		return fallback
	}
	words := strings.Split(m[1], "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
