package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	var c Config
	c.App.Port = 38472
	c.Scrape.MaxResults = 50
	c.Scrape.RetryMaxAttempts = 3
	c.Scrape.RetryBaseDelaySeconds = 1
	c.Sources.Default = []string{"remoteok", "jobicy"}
	c.Pagination.DefaultLimit = 20
	c.Pagination.MaxLimit = 100
	return c
}

func TestNormalizeAndValidateAccepts(t *testing.T) {
	_, vr := NormalizeAndValidate(validConfig())
	require.True(t, vr.OK(), "errors: %v", vr.Errors)
}

func TestValidateRejectsUnknownSource(t *testing.T) {
	c := validConfig()
	c.Sources.Default = []string{"remoteok", "monster"}
	_, vr := NormalizeAndValidate(c)
	require.False(t, vr.OK())
	require.Contains(t, vr.Errors[0], "monster")
}

func TestNormalizeTrimsAndDedupes(t *testing.T) {
	c := validConfig()
	c.Sources.Default = []string{" remoteok ", "remoteok", "", "jobicy"}
	out, vr := NormalizeAndValidate(c)
	require.True(t, vr.OK())
	require.Equal(t, []string{"remoteok", "jobicy"}, out.Sources.Default)
}

func TestValidateEmailRequiresConnectionFields(t *testing.T) {
	c := validConfig()
	c.Email.Enabled = true
	_, vr := NormalizeAndValidate(c)
	require.False(t, vr.OK())
	require.GreaterOrEqual(t, len(vr.Errors), 3)
}

func TestValidatePaginationBounds(t *testing.T) {
	c := validConfig()
	c.Pagination.MaxLimit = 10 // below default_limit
	_, vr := NormalizeAndValidate(c)
	require.False(t, vr.OK())
}
