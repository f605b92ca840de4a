package program

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPage_UnmarshalCapturesExtraFields(t *testing.T) {
	payload := []byte(`{
		"count": 2,
		"next": "/api/v1/programs/?page=2",
		"previous": null,
		"results": [
			{"id": "1", "name": "Intro"},
			{"id": "2", "name": "Advanced"}
		],
		"num_pages": 4,
		"current_page": 1
	}`)

	var page Page
	if err := json.Unmarshal(payload, &page); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if page.Count != 2 {
		t.Fatalf("count mismatch: want 2, got %d", page.Count)
	}
	if page.Next != "/api/v1/programs/?page=2" {
		t.Fatalf("next mismatch: %q", page.Next)
	}

	want := []Program{{ID: "1", Name: "Intro"}, {ID: "2", Name: "Advanced"}}
	if diff := cmp.Diff(want, page.Results); diff != "" {
		t.Fatalf("results mismatch (-want +got):\n%s", diff)
	}

	wantExtra := map[string]any{"num_pages": float64(4), "current_page": float64(1)}
	if diff := cmp.Diff(wantExtra, page.Extra); diff != "" {
		t.Fatalf("extra mismatch (-want +got):\n%s", diff)
	}
}

func TestPage_UnmarshalMissingResults(t *testing.T) {
	var page Page
	if err := json.Unmarshal([]byte(`{"count": 0}`), &page); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if page.Results != nil {
		t.Fatalf("expected nil results, got %v", page.Results)
	}
	if len(page.Extra) != 0 {
		t.Fatalf("expected no extra fields, got %v", page.Extra)
	}
}

func TestCourseDefaults_ReturnsFreshCopies(t *testing.T) {
	first := CourseDefaults()
	if len(first) != 4 {
		t.Fatalf("expected 4 default courses, got %d", len(first))
	}
	first[0].Name = "mutated"
	if got := CourseDefaults()[0].Name; got == "mutated" {
		t.Fatalf("defaults should not share backing storage")
	}
}
