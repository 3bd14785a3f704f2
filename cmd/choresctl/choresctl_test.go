package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := rootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCycleCommand(t *testing.T) {
	out, err := execute(t, "cycle", "--at", "2026-10-19T20:00:00Z")
	require.NoError(t, err)
	require.Contains(t, out, "Oct 13, 2026 - Oct 19, 2026")
	require.Contains(t, out, "next cycle:        2026-10-20")
	require.Contains(t, out, "rated cycle:       2026-10-06")
	require.Contains(t, out, "quality check day: true (Monday)")
	require.Contains(t, out, "rotation day:      false (Tuesday)")
}

func TestCycleCommandTimezone(t *testing.T) {
	out, err := execute(t, "cycle", "--at", "2026-10-19T20:00:00Z", "--tz", "Asia/Tokyo")
	require.NoError(t, err)
	require.Contains(t, out, "week_start_date:   2026-10-20")
	require.Contains(t, out, "rotation day:      true (Tuesday)")
}

func TestCycleCommandRejectsBadInput(t *testing.T) {
	_, err := execute(t, "cycle", "--at", "yesterday")
	require.Error(t, err)
	_, err = execute(t, "cycle", "--tz", "Mars/Olympus")
	require.Error(t, err)
}

func TestTriggerCommand(t *testing.T) {
	var gotPath, gotAuth, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath, gotAuth, gotQuery = r.URL.Path, r.Header.Get("Authorization"), r.URL.RawQuery
		if gotAuth != "Bearer s3cret" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":{"code":"UNAUTHORIZED","message":"Unauthorized"}}`))
			return
		}
		_, _ = w.Write([]byte(`{"success":true,"marked":2}`))
	}))
	defer srv.Close()

	out, err := execute(t, "trigger", "mark-late", "--url", srv.URL+"/", "--secret", "s3cret", "--week", "2026-10-06")
	require.NoError(t, err)
	require.Equal(t, "/api/mark-late", gotPath)
	require.Equal(t, "week_start_date=2026-10-06", gotQuery)
	require.Contains(t, out, `"marked": 2`)

	_, err = execute(t, "trigger", "rotate", "--url", srv.URL, "--secret", "nope")
	require.Error(t, err)
	require.Equal(t, "/api/rotate-chores", gotPath)
	require.Empty(t, gotQuery)
}

func TestTriggerCommandValidation(t *testing.T) {
	t.Setenv("AUTH_CRON_SECRET", "")

	_, err := execute(t, "trigger", "rotate")
	require.ErrorContains(t, err, "secret")

	_, err = execute(t, "trigger", "shuffle", "--secret", "x")
	require.Error(t, err)
}
