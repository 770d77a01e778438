package statsd

import (
	"net"
	"strings"
	"testing"
	"time"
)

func TestMetricName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		prefix, name, want string
	}{
		{"barberdash", "guard.decision", "barberdash.guard.decision"},
		{"barberdash", " backend/request ", "barberdash.backend_request"},
		{"", "foo..bar", "foo.bar"},
		{"barberdash", "", ""},
		{"barberdash", "a:b|c", "barberdash.a_b_c"},
	}

	for _, tt := range tests {
		if got := metricName(tt.prefix, tt.name); got != tt.want {
			t.Fatalf("metricName(%q, %q) = %q, want %q", tt.prefix, tt.name, got, tt.want)
		}
	}
}

func TestClientLine(t *testing.T) {
	t.Parallel()

	c := &Client{
		prefix:     "barberdash",
		globalTags: cleanTags(map[string]string{"env": "prod", " service ": " dashboard "}),
	}

	got, ok := c.line("guard.decision", "1", "c", map[string]string{
		"action": " redirect ",
		"":       "ignored",
		"env":    "stage",
	})
	if !ok {
		t.Fatal("line() reported no metric")
	}
	want := "barberdash.guard.decision:1|c|#action:redirect,env:stage,service:dashboard"
	if got != want {
		t.Fatalf("line mismatch\n got: %q\nwant: %q", got, want)
	}

	if got, _ := (&Client{}).line("x", "2", "ms", nil); got != "x:2|ms" {
		t.Fatalf("line without tags = %q", got)
	}
}

func TestClientWritesOverConnection(t *testing.T) {
	t.Parallel()

	clientConn, peerConn := net.Pipe()
	defer peerConn.Close()

	client := &Client{prefix: "app", conn: clientConn}
	received := make(chan string, 1)
	go func() {
		buf := make([]byte, 256)
		n, _ := peerConn.Read(buf)
		received <- string(buf[:n])
	}()

	client.Timing("backend.duration", 1500*time.Microsecond, map[string]string{"endpoint": "me"})

	select {
	case line := <-received:
		if line != "app.backend.duration:1.5|ms|#endpoint:me" {
			t.Fatalf("unexpected line %q", line)
		}
	case <-time.After(time.Second):
		t.Fatal("no metric written")
	}
	_ = client.Close()
}

func TestClientEnabledAndClose(t *testing.T) {
	t.Parallel()

	clientConn, peerConn := net.Pipe()
	defer peerConn.Close()

	client := &Client{conn: clientConn}
	if !client.Enabled() {
		t.Fatal("expected client.Enabled to report true with active connection")
	}
	if err := client.Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}
	if client.Enabled() {
		t.Fatal("expected client.Enabled to report false after Close")
	}
	if err := client.Close(); err != nil {
		t.Fatalf("Close (second call) error: %v", err)
	}

	var nilClient *Client
	if nilClient.Enabled() {
		t.Fatal("nil client should report disabled")
	}
	nilClient.Count("ignored", 1, nil)
	if err := nilClient.Close(); err != nil {
		t.Fatalf("nil client Close error: %v", err)
	}
}

func TestNewClientDisabledWithoutAddress(t *testing.T) {
	t.Parallel()

	client, err := NewClient(Config{Enabled: true, Address: "   "})
	if err != nil {
		t.Fatalf("NewClient error: %v", err)
	}
	if client.Enabled() {
		t.Fatal("expected client to stay disabled when address is empty")
	}
	client.Count("dropped", 1, nil)
}

func TestNewClientDialError(t *testing.T) {
	t.Parallel()

	_, err := NewClient(Config{Enabled: true, Address: "bad address"})
	if err == nil {
		t.Fatal("expected NewClient to error for invalid address")
	}
	if !strings.Contains(err.Error(), "statsd dial") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRecorder(t *testing.T) {
	t.Parallel()

	var r Recorder
	r.Count("guard.decision", 1, map[string]string{"action": "allow"})
	r.Count("other", 1, nil)
	r.Timing("backend.duration", time.Second, nil)

	got := r.Counts("guard.decision")
	if len(got) != 1 || got[0].Tags["action"] != "allow" {
		t.Fatalf("unexpected counts: %+v", got)
	}
	if len(r.Timings("backend.duration")) != 1 {
		t.Fatal("expected one timing")
	}
}
