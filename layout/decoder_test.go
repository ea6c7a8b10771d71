package layout

import (
	"testing"

	"github.com/ardnew/softkbd/hid"
)

func TestDecodeRoundTrip(t *testing.T) {
	tests := []string{
		"Hello World\n",
		"Grüezi mitenand!",
		"ÄÖÜ äöü éÉ èÈ àÀ Ç ç",
		"user@example.ch; pw=(5*3)/2 - 1 + 0 & 7%?",
		"§|€ x",
		"tab\tseparated_value.",
	}

	for _, text := range tests {
		t.Run(text, func(t *testing.T) {
			if got := Decode(Steps(text)); got != text {
				t.Errorf("Decode(Steps(%q)) = %q", text, got)
			}
		})
	}
}

func TestDecodeAmbiguities(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"a<b", "a:b"},
		{"€2", "é"},
		{"€", "€"},
	}
	for _, tt := range tests {
		if got := Decode(Steps(tt.text)); got != tt.want {
			t.Errorf("Decode(Steps(%q)) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestDecoderReports(t *testing.T) {
	rec := &reportRecorder{}
	tr, _ := newTestTranslator(rec)
	if _, err := tr.WriteString("Éa@"); err != nil {
		t.Fatalf("WriteString() error = %v", err)
	}

	var d Decoder
	var got string
	for _, r := range rec.reports {
		got += d.Report(r)
	}
	got += d.Flush()
	if got != "Éa@" {
		t.Errorf("decoded reports = %q, want %q", got, "Éa@")
	}
}

// reportRecorder keeps the report stream a real keyboard would send.
type reportRecorder struct {
	cur     hid.KeyboardReport
	reports []hid.KeyboardReport
}

func (r *reportRecorder) Press(code hid.Usage) error {
	r.cur.Press(code)
	r.reports = append(r.reports, r.cur)
	return nil
}

func (r *reportRecorder) ReleaseAll() error {
	r.cur.Clear()
	r.reports = append(r.reports, r.cur)
	return nil
}
