package analysis

import (
	"encoding/json"
	"testing"
)

func TestRatingDecodesLenient(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{`8.5`, 8.5},
		{`"7"`, 7},
		{`null`, 0},
		{`"excellent"`, 0},
		{`0`, 0},
	}
	for _, tc := range cases {
		var r Rating
		if err := json.Unmarshal([]byte(tc.in), &r); err != nil {
			t.Fatalf("unmarshal %s: %v", tc.in, err)
		}
		if r.Float() != tc.want {
			t.Errorf("rating %s: got %v, want %v", tc.in, r.Float(), tc.want)
		}
	}
}

func TestLinesDecodesBothForms(t *testing.T) {
	var fromString, fromArray Lines
	if err := json.Unmarshal([]byte(`"first\nsecond"`), &fromString); err != nil {
		t.Fatalf("string form: %v", err)
	}
	if err := json.Unmarshal([]byte(`["first","second"]`), &fromArray); err != nil {
		t.Fatalf("array form: %v", err)
	}
	if len(fromString) != 2 || len(fromArray) != 2 {
		t.Fatalf("expected 2 lines each, got %d and %d", len(fromString), len(fromArray))
	}
	for i := range fromString {
		if fromString[i] != fromArray[i] {
			t.Errorf("line %d: %q != %q", i, fromString[i], fromArray[i])
		}
	}
}

func TestLinesEmpty(t *testing.T) {
	var l Lines
	if err := json.Unmarshal([]byte(`""`), &l); err != nil {
		t.Fatalf("empty string: %v", err)
	}
	if !l.IsEmpty() {
		t.Error("expected empty lines for empty string")
	}
	if err := json.Unmarshal([]byte(`["  ", ""]`), &l); err != nil {
		t.Fatalf("blank array: %v", err)
	}
	if !l.IsEmpty() {
		t.Error("expected blank-only lines to be empty")
	}
}

func TestRecordDecodeMissingFields(t *testing.T) {
	var rec Record
	if err := json.Unmarshal([]byte(`{"name":"Ada Lovelace","resume_rating":9.1}`), &rec); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if rec.Name != "Ada Lovelace" {
		t.Errorf("name: got %q", rec.Name)
	}
	if rec.ResumeRating.Float() != 9.1 {
		t.Errorf("rating: got %v", rec.ResumeRating.Float())
	}
	if rec.WorkExperience != nil || rec.Email != "" {
		t.Error("absent fields should stay zero-valued")
	}
}
