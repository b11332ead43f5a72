package email

import (
	"crypto/tls"
	"fmt"
	"strings"
	"time"

	"jobscout-engine/internal/config"

	"github.com/emersion/go-imap/v2"
	"github.com/emersion/go-imap/v2/imapclient"
)

// Message is one raw job-alert mail pulled from the mailbox.
type Message struct {
	UID     imap.UID
	Subject string
	Date    time.Time
	Raw     []byte
}

// Client wraps an authenticated IMAP session against the configured inbox.
type Client struct {
	cc  *imapclient.Client
	cfg config.EmailConfig
}

func DialAndLogin(cfg config.EmailConfig, password string) (*Client, error) {
	addr := fmt.Sprintf("%s:%d", cfg.IMAPHost, cfg.IMAPPort)
	cc, err := imapclient.DialTLS(addr, &imapclient.Options{
		TLSConfig: &tls.Config{ServerName: cfg.IMAPHost},
	})
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", addr, err)
	}
	if err := cc.Login(cfg.Username, password).Wait(); err != nil {
		_ = cc.Close()
		return nil, fmt.Errorf("login as %s: %w", cfg.Username, err)
	}
	return &Client{cc: cc, cfg: cfg}, nil
}

func (c *Client) Logout() {
	if c == nil || c.cc == nil {
		return
	}
	_ = c.cc.Logout().Wait()
	_ = c.cc.Close()
}

// FetchAlerts selects the configured mailbox and returns the newest messages
// whose subject matches one of the configured alert subjects, capped at max.
func (c *Client) FetchAlerts(max int) ([]Message, error) {
	mailbox := c.cfg.Mailbox
	if mailbox == "" {
		mailbox = "INBOX"
	}
	if _, err := c.cc.Select(mailbox, &imap.SelectOptions{ReadOnly: true}).Wait(); err != nil {
		return nil, fmt.Errorf("select %s: %w", mailbox, err)
	}

	data, err := c.cc.UIDSearch(&imap.SearchCriteria{}, nil).Wait()
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	uids := data.AllUIDs()
	if len(uids) == 0 {
		return nil, nil
	}

	// Newest first; the server returns ascending UIDs.
	var pick []imap.UID
	for i := len(uids) - 1; i >= 0 && len(pick) < max*4; i-- {
		pick = append(pick, uids[i])
	}

	var set imap.UIDSet
	set.AddNum(pick...)

	section := &imap.FetchItemBodySection{Peek: true}
	fetchCmd := c.cc.Fetch(set, &imap.FetchOptions{
		UID:          true,
		Envelope:     true,
		InternalDate: true,
		BodySection:  []*imap.FetchItemBodySection{section},
	})
	defer fetchCmd.Close()

	var out []Message
	for {
		msg := fetchCmd.Next()
		if msg == nil {
			break
		}
		buf, err := msg.Collect()
		if err != nil {
			continue
		}
		subject := ""
		date := buf.InternalDate
		if buf.Envelope != nil {
			subject = buf.Envelope.Subject
			if !buf.Envelope.Date.IsZero() {
				date = buf.Envelope.Date
			}
		}
		if !c.subjectMatches(subject) {
			continue
		}
		raw := buf.FindBodySection(section)
		if len(raw) == 0 {
			continue
		}
		out = append(out, Message{UID: buf.UID, Subject: subject, Date: date, Raw: raw})
		if len(out) >= max {
			break
		}
	}
	return out, nil
}

func (c *Client) subjectMatches(subject string) bool {
	if len(c.cfg.SearchSubjectAny) == 0 {
		return true
	}
	s := strings.ToLower(subject)
	for _, want := range c.cfg.SearchSubjectAny {
		if strings.Contains(s, strings.ToLower(want)) {
			return true
		}
	}
	return false
}
