package slug

import (
	"strings"
	"testing"
)

func sampleSlug() JobSlug {
	return JobSlug{
		JobID:        "J-1001",
		Customer:     "Acme Publishing",
		Contact:      "jane@acme.test",
		Filename:     "novel-final.pdf",
		Quantity:     500,
		DueDate:      "08/15/26",
		TrimWidthIn:  5.5,
		TrimHeightIn: 8.5,
		InteriorSpec: "BW-80-TEXT",
		CoverSpec:    "COVER-100-SILK",
		Finishing:    "Gloss",
		Binding:      "Perfect",
		Notes:        "rush job",
	}
}

func TestPayloadFieldOrder(t *testing.T) {
	payload := Payload(sampleSlug(), 2, 10)
	lines := strings.Split(payload, "\n")
	if !strings.HasPrefix(lines[0], "Sheet: 3/10") {
		t.Errorf("first line = %q, want Sheet prefix", lines[0])
	}
	if !strings.HasPrefix(lines[1], "JobID: J-1001") {
		t.Errorf("second line = %q, want JobID prefix", lines[1])
	}
	if lines[len(lines)-1] != "Notes: rush job" {
		t.Error("expected Notes field to be present and last")
	}
}

func TestSummaryLineIncludesKeyFields(t *testing.T) {
	line := SummaryLine(sampleSlug(), 0, 4)
	for _, want := range []string{"Sheet 1/4", "J-1001", "Qty 500", "08/15/26", "5.50 x 8.50"} {
		if !strings.Contains(line, want) {
			t.Errorf("summary line %q missing %q", line, want)
		}
	}
}

func TestPNGProducesNonEmptyData(t *testing.T) {
	data, err := PNG("Sheet: 1/1\nJobID: J-1", 128)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(data) == 0 {
		t.Error("expected non-empty PNG bytes")
	}
}
