// Command textflow-fetch downloads a web page, strips its markup, and
// runs analysis operations over the page text.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/textflow/textflow/pkg/textflow/pipeline"
)

func main() {
	var (
		url        = flag.String("url", "", "Page URL (required)")
		operations = flag.String("ops", "Summarization,Keyword Extraction", "Comma-separated operation names")
		timeout    = flag.Duration("timeout", 20*time.Second, "HTTP timeout")
	)
	flag.Parse()

	if *url == "" {
		log.Fatal("--url required")
	}

	text, err := fetchPageText(*url, *timeout)
	if err != nil {
		log.Fatal("fetch page: ", err)
	}
	if text == "" {
		log.Fatal("page has no text content")
	}

	var names []string
	for _, name := range strings.Split(*operations, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}

	p := pipeline.New(pipeline.Options{})
	out := p.Run(context.Background(), text, names, nil)
	for _, r := range out.Results {
		fmt.Printf("[%s]\n%s\n\n", r.Title, r.Output)
	}
}

func fetchPageText(url string, timeout time.Duration) (string, error) {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(url)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return extractText(string(body)), nil
}

// extractText walks the parsed document and collects text nodes,
// skipping script and style elements.
func extractText(page string) string {
	doc, err := html.Parse(strings.NewReader(page))
	if err != nil {
		return strings.TrimSpace(page)
	}

	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				buf.WriteString(t)
				buf.WriteString("\n")
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return strings.TrimSpace(buf.String())
}
