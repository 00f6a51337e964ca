package share

import (
	"strings"
	"testing"

	"github.com/camdenreyes/loci/internal/feed"
)

func TestBuildMapURL(t *testing.T) {
	tests := []struct {
		name string
		item feed.Item
		want string
	}{
		{
			"item URL wins",
			feed.Item{Name: "Canal Cafe", URL: "https://canalcafe.example/"},
			"https://canalcafe.example/",
		},
		{
			"coordinates fallback",
			feed.Item{Name: "Bandstand", Lat: 52.3579, Lng: 4.8686},
			"https://www.google.com/maps/search/?api=1&query=52.357900%2C4.868600",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BuildMapURL(tt.item); got != tt.want {
				t.Errorf("BuildMapURL = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildMessage(t *testing.T) {
	msg := Build(feed.Item{Name: "Canal Cafe", URL: "https://canalcafe.example/"})

	if msg.Title != "Canal Cafe" {
		t.Errorf("title = %q", msg.Title)
	}
	if !strings.Contains(msg.Text, "Canal Cafe") || !strings.Contains(msg.Text, msg.URL) {
		t.Errorf("text = %q, want name and URL", msg.Text)
	}
}

func TestBuildIsIdempotent(t *testing.T) {
	item := feed.Item{Name: "Bandstand", Lat: 52.3579, Lng: 4.8686}
	if Build(item) != Build(item) {
		t.Error("Build should be deterministic per item")
	}
}

func TestBrowserRejectsBadSchemes(t *testing.T) {
	b := Browser{}
	for _, raw := range []string{"javascript:alert(1)", "file:///etc/passwd", "::bad::"} {
		if err := b.Share(Message{URL: raw}); err == nil {
			t.Errorf("Share(%q) should fail", raw)
		}
	}
}
