package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFetcher(stdin string) *fetcher {
	f := newFetcher()
	f.stdin = strings.NewReader(stdin)
	return f
}

func TestRun_Formats(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		stdin    string
		contains []string
	}{
		{
			name:     "ios from file",
			args:     []string{"-format", "ios", "-in", "testdata/booking.json", "-log-level", "disabled"},
			contains: []string{`"loc-key": "NotificationBookingConfirmedKey"`, `"content-available": 1`, `"bookingId": 42`},
		},
		{
			name:     "xml from stdin",
			args:     []string{"-format", "xml", "-log-level", "disabled"},
			stdin:    `{"eventType": "BOOKING_CONFIRMED", "eventDescription": {"title": "Done"}}`,
			contains: []string{"<notification>", "<message><title>Done</title></message>", "<eventType>BOOKING_CONFIRMED</eventType>"},
		},
		{
			name:     "doc with root",
			args:     []string{"-format", "doc", "-root", "root", "-log-level", "disabled"},
			stdin:    "a: 1\nb: [2, 3]\n",
			contains: []string{"<root>", "<a>1</a>", "<b>2</b><b>3</b>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			require.NoError(t, run(tt.args, testFetcher(tt.stdin), &out))
			for _, s := range tt.contains {
				assert.Contains(t, out.String(), s)
			}
		})
	}
}

func TestRun_UUIDAndTimestamp(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"-uuid"}, testFetcher(""), &out))
	assert.Len(t, strings.TrimSpace(out.String()), 36)

	out.Reset()
	require.NoError(t, run([]string{"-timestamp"}, testFetcher(""), &out))
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out.String()), ".000Z"))
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		stdin string
	}{
		{name: "unknown format", args: []string{"-format", "pdf"}, stdin: `{}`},
		{name: "missing file", args: []string{"-in", "testdata/missing.json"}},
		{name: "not a mapping", args: []string{"-format", "ios"}, stdin: `[1, 2]`},
		{name: "missing config", args: []string{"-config", "testdata/missing.yml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			assert.Error(t, run(tt.args, testFetcher(tt.stdin), &out))
		})
	}
}

func TestFetcher_HTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(`{"eventType":"X"}`))
	}))
	defer srv.Close()

	f := newFetcher()
	b, err := f.fetch(srv.URL + "/event")
	require.NoError(t, err)
	assert.Equal(t, `{"eventType":"X"}`, string(b))

	_, err = f.fetch(srv.URL + "/missing")
	assert.Error(t, err)
}
