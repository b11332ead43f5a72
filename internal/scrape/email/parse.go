package email

import (
	"bytes"
	"encoding/base64"
	"io"
	"mime"
	"mime/multipart"
	"mime/quotedprintable"
	"net/mail"
	"net/url"
	"strings"

	"jobscout-engine/internal/scrape/util"

	"github.com/PuerkitoBio/goquery"
)

// Alert is one job link extracted from an alert mail body.
type Alert struct {
	Title   string
	Company string
	URL     string
}

// HTMLPart walks the MIME tree of a raw message and returns the first
// text/html part, decoded per its transfer encoding.
func HTMLPart(raw []byte) (string, error) {
	msg, err := mail.ReadMessage(bytes.NewReader(raw))
	if err != nil {
		return "", err
	}
	return findHTML(msg.Header.Get("Content-Type"), msg.Header.Get("Content-Transfer-Encoding"), msg.Body)
}

func findHTML(contentType, transferEncoding string, body io.Reader) (string, error) {
	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType = "text/plain"
	}

	if strings.HasPrefix(mediaType, "multipart/") {
		mr := multipart.NewReader(body, params["boundary"])
		for {
			part, err := mr.NextPart()
			if err != nil {
				return "", io.EOF
			}
			html, err := findHTML(part.Header.Get("Content-Type"), part.Header.Get("Content-Transfer-Encoding"), part)
			if err == nil {
				return html, nil
			}
		}
	}

	if mediaType != "text/html" {
		return "", io.EOF
	}
	b, err := io.ReadAll(decodeTransferEncoding(body, transferEncoding))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decodeTransferEncoding(r io.Reader, encoding string) io.Reader {
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "base64":
		return base64.NewDecoder(base64.StdEncoding, r)
	case "quoted-printable":
		return quotedprintable.NewReader(r)
	default:
		return r
	}
}

// ParseJobAlertHTML pulls job postings out of a LinkedIn alert mail. Each
// posting appears as one or more anchors pointing at /jobs/view/<id>; rows
// for the same id are merged, keeping the longest title seen.
func ParseJobAlertHTML(html string) ([]Alert, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	byID := map[string]*Alert{}
	var order []string

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		if !strings.Contains(href, "/jobs/view/") {
			return
		}
		id := jobViewID(href)
		if id == "" {
			return
		}
		text := util.CleanText(sel.Text())

		a, ok := byID[id]
		if !ok {
			a = &Alert{URL: "https://www.linkedin.com/jobs/view/" + id}
			byID[id] = a
			order = append(order, id)
		}
		title, company := splitAlertText(text)
		if len(title) > len(a.Title) {
			a.Title = title
		}
		if a.Company == "" {
			a.Company = company
		}
	})

	var out []Alert
	for _, id := range order {
		a := byID[id]
		if a.Title == "" {
			continue
		}
		out = append(out, *a)
	}
	return out, nil
}

// jobViewID extracts the numeric posting id from a /jobs/view/ link,
// tolerating tracking query params and path suffixes.
func jobViewID(href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return ""
	}
	path := u.Path
	i := strings.Index(path, "/jobs/view/")
	if i < 0 {
		return ""
	}
	rest := path[i+len("/jobs/view/"):]
	var id strings.Builder
	for _, r := range rest {
		if r < '0' || r > '9' {
			break
		}
		id.WriteRune(r)
	}
	return id.String()
}

// splitAlertText separates "Title - Company" anchor text. LinkedIn alert
// mails render the company either after a hyphen or in a sibling anchor, so
// missing company here is fine.
func splitAlertText(text string) (title, company string) {
	for _, sep := range []string{" - ", " · "} {
		if i := strings.Index(text, sep); i > 0 {
			return strings.TrimSpace(text[:i]), strings.TrimSpace(text[i+len(sep):])
		}
	}
	return text, ""
}
