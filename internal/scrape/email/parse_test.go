package email

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const alertHTML = `<html><body>
<table>
  <tr><td>
    <a href="https://www.linkedin.com/comm/jobs/view/4012345678/?trackingId=abc&refId=def">Senior Go Engineer - Acme</a>
  </td></tr>
  <tr><td>
    <a href="https://www.linkedin.com/comm/jobs/view/4012345678/?trackingId=xyz"><img src="logo.png"/></a>
  </td></tr>
  <tr><td>
    <a href="https://www.linkedin.com/comm/jobs/view/4098765432/">Backend Developer · Beta Labs</a>
  </td></tr>
  <tr><td>
    <a href="https://www.linkedin.com/psettings/unsubscribe">Unsubscribe</a>
  </td></tr>
</body></html>`

func TestParseJobAlertHTML(t *testing.T) {
	alerts, err := ParseJobAlertHTML(alertHTML)
	require.NoError(t, err)
	require.Len(t, alerts, 2)

	require.Equal(t, "Senior Go Engineer", alerts[0].Title)
	require.Equal(t, "Acme", alerts[0].Company)
	require.Equal(t, "https://www.linkedin.com/jobs/view/4012345678", alerts[0].URL)

	require.Equal(t, "Backend Developer", alerts[1].Title)
	require.Equal(t, "Beta Labs", alerts[1].Company)
}

func TestParseJobAlertHTMLMergesDuplicateAnchors(t *testing.T) {
	alerts, err := ParseJobAlertHTML(alertHTML)
	require.NoError(t, err)
	// The image-only anchor for 4012345678 merged into the titled one.
	for _, a := range alerts {
		require.NotEmpty(t, a.Title)
	}
}

func TestHTMLPartMultipart(t *testing.T) {
	raw := strings.Join([]string{
		"From: jobs-noreply@linkedin.com",
		"Subject: 30+ new jobs for \"golang\"",
		"MIME-Version: 1.0",
		`Content-Type: multipart/alternative; boundary="BOUND"`,
		"",
		"--BOUND",
		"Content-Type: text/plain; charset=UTF-8",
		"",
		"plain fallback",
		"--BOUND",
		"Content-Type: text/html; charset=UTF-8",
		"Content-Transfer-Encoding: quoted-printable",
		"",
		"<html><body><a href=3D\"https://www.linkedin.com/jobs/view/123/\">Go Dev - Acme</a></body></html>",
		"--BOUND--",
		"",
	}, "\r\n")

	html, err := HTMLPart([]byte(raw))
	require.NoError(t, err)
	require.Contains(t, html, `href="https://www.linkedin.com/jobs/view/123/"`)

	alerts, err := ParseJobAlertHTML(html)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	require.Equal(t, "Go Dev", alerts[0].Title)
	require.Equal(t, "Acme", alerts[0].Company)
}

func TestHTMLPartMissing(t *testing.T) {
	raw := "From: a@b.c\r\nContent-Type: text/plain\r\n\r\nno html here\r\n"
	_, err := HTMLPart([]byte(raw))
	require.Error(t, err)
}
