package cleanse

import (
	"strings"
	"testing"
)

func TestText_PlainTextWhitespaceOnly(t *testing.T) {
	got := Text("Last  Date:   15/03/2026\n\n\n\nGeneral:  Rs. 100")

	want := "Last Date: 15/03/2026\n\nGeneral: Rs. 100"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestText_HTMLStripped(t *testing.T) {
	raw := `<html><head><title>ignore</title><script>var x=1;</script></head>
	<body><nav>Home | Jobs</nav>
	<h1>SSC CGL Recruitment 2026</h1>
	<p>Last Date: 15/03/2026</p>
	<footer>copyright</footer></body></html>`

	got := Text(raw)
	if !strings.Contains(got, "SSC CGL Recruitment 2026") {
		t.Fatalf("missing heading in %q", got)
	}
	if !strings.Contains(got, "Last Date: 15/03/2026") {
		t.Fatalf("missing paragraph in %q", got)
	}
	if strings.Contains(got, "Home | Jobs") || strings.Contains(got, "copyright") {
		t.Fatalf("boilerplate not stripped: %q", got)
	}
	if strings.Contains(got, "var x=1") {
		t.Fatalf("script content leaked: %q", got)
	}
}

func TestText_TableRowsBecomeLabelValueLines(t *testing.T) {
	raw := `<table>
	<tr><td>Constable GD</td><td>45000</td></tr>
	<tr><td>Sub Inspector</td><td>1200</td></tr>
	</table>`

	got := Text(raw)
	if !strings.Contains(got, "Constable GD : 45000") {
		t.Fatalf("expected joined table cells, got %q", got)
	}
	if !strings.Contains(got, "Sub Inspector : 1200") {
		t.Fatalf("expected joined table cells, got %q", got)
	}
}

func TestText_AngleBracketInProseIsNotHTML(t *testing.T) {
	raw := "age < 30 and score > 50 required"
	if got := Text(raw); got != raw {
		t.Fatalf("got %q, want input unchanged", got)
	}
}
