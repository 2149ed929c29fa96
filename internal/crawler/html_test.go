package crawler

import (
	"strings"
	"testing"
)

func TestParseHTML(t *testing.T) {
	body := `<html>
<head><title> Acme   Corp </title><style>.hero { color: red; }</style></head>
<body>
  <nav><a href="/about">About</a> <a href="https://other.com/">Other</a> <a href=" ">Blank</a></nav>
  <h1>Welcome</h1>
  <p>We build
     <b>APIs</b> for teams.</p>
  <ul><li><p>Fast</p></li><li>Secure</li></ul>
  <script>var tracking = "should not appear";</script>
  <h3>Customers</h3>
  <blockquote>Great partner</blockquote>
</body>
</html>`

	page, err := ParseHTML("https://acme.com", []byte(body))
	if err != nil {
		t.Fatalf("ParseHTML returned error: %v", err)
	}
	if page.URL != "https://acme.com" {
		t.Fatalf("unexpected url: %s", page.URL)
	}
	if !strings.HasPrefix(page.Text, "# Acme Corp\n\n## Welcome\n\nWe build APIs for teams.") {
		t.Fatalf("unexpected text start:\n%s", page.Text)
	}
	for _, want := range []string{"- Fast\n- Secure\n", "#### Customers", "> Great partner"} {
		if !strings.Contains(page.Text, want) {
			t.Fatalf("expected text to contain %q:\n%s", want, page.Text)
		}
	}
	if strings.Contains(page.Text, "tracking") || strings.Contains(page.Text, "color") {
		t.Fatalf("script or style leaked into text:\n%s", page.Text)
	}
	if strings.Count(page.Text, "Fast") != 1 {
		t.Fatalf("nested block written more than once:\n%s", page.Text)
	}
	if len(page.Links) != 2 || page.Links[0] != "/about" || page.Links[1] != "https://other.com/" {
		t.Fatalf("unexpected links: %v", page.Links)
	}
}

func TestParseHTMLFallsBackToBodyText(t *testing.T) {
	page, err := ParseHTML("https://acme.com", []byte(`<html><body><div>Just   some <span>text</span></div></body></html>`))
	if err != nil {
		t.Fatalf("ParseHTML returned error: %v", err)
	}
	if page.Text != "Just some text" {
		t.Fatalf("unexpected text: %q", page.Text)
	}
	if len(page.Links) != 0 {
		t.Fatalf("expected no links, got %v", page.Links)
	}
}

func TestParseHTMLEmptyDocument(t *testing.T) {
	page, err := ParseHTML("https://acme.com", []byte(""))
	if err != nil {
		t.Fatalf("ParseHTML returned error: %v", err)
	}
	if page.Text != "" {
		t.Fatalf("expected empty text, got %q", page.Text)
	}
}
