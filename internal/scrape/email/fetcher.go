package email

import (
	"context"
	"log"
	"time"

	"jobscout-engine/internal/config"
	"jobscout-engine/internal/domain"
	"jobscout-engine/internal/scrape/types"
	"jobscout-engine/internal/scrape/util"
	"jobscout-engine/internal/secrets"
)

// Fetcher turns LinkedIn job-alert mails into job records. Opt-in: it only
// runs for users who enable it and store an IMAP password in the keychain.
type Fetcher struct {
	Cfg config.EmailConfig
}

func (f *Fetcher) Name() string { return "linkedin-email" }

func (f *Fetcher) Fetch(ctx context.Context, q types.Query) ([]domain.JobRecord, error) {
	password, err := secrets.GetIMAPPassword(secrets.IMAPKeyringAccount(f.Cfg))
	if err != nil {
		return nil, types.Errf(types.KindNetwork, "imap credentials: %v", err)
	}

	client, err := DialAndLogin(f.Cfg, password)
	if err != nil {
		return nil, types.Errf(types.KindNetwork, "imap: %v", err)
	}
	defer client.Logout()

	max := f.Cfg.MaxMessages
	if max <= 0 {
		max = 20
	}
	msgs, err := client.FetchAlerts(max)
	if err != nil {
		return nil, types.Errf(types.KindStatus, "imap fetch: %v", err)
	}

	now := domain.Timestamp(time.Now())
	seen := map[string]bool{}
	var records []domain.JobRecord
	for _, msg := range msgs {
		if ctx.Err() != nil {
			return records, ctx.Err()
		}
		html, err := HTMLPart(msg.Raw)
		if err != nil {
			log.Printf("[linkedin-email] uid=%d no html part", msg.UID)
			continue
		}
		alerts, err := ParseJobAlertHTML(html)
		if err != nil {
			log.Printf("[linkedin-email] uid=%d parse error: %v", msg.UID, err)
			continue
		}
		for _, a := range alerts {
			if seen[a.URL] {
				continue
			}
			seen[a.URL] = true
			if !util.MatchesKeywords(q.Keywords, a.Title+" "+a.Company) {
				continue
			}
			company := a.Company
			if company == "" {
				company = "Unknown Company"
			}
			postedAt := ""
			if !msg.Date.IsZero() {
				postedAt = domain.Timestamp(msg.Date)
			}
			records = append(records, domain.JobRecord{
				ID:        domain.NewID(),
				Title:     a.Title,
				Company:   company,
				Location:  "Unknown",
				URL:       a.URL,
				Source:    f.Name(),
				PostedAt:  postedAt,
				ScrapedAt: now,
			})
		}
	}
	return records, nil
}
