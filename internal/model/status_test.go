package model

import (
	"encoding/json"
	"testing"
)

func TestToStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    Status
		wantErr bool
	}{
		{"active", StatusActive, false},
		{"inactive", StatusInactive, false},
		{"all", StatusAll, false},
		{"", StatusAll, false},
		{"enabled", 0, true},
		{"ACTIVE", 0, true},
	}

	for _, tc := range tests {
		got, err := ToStatus(tc.in)
		if tc.wantErr {
			if err != ErrInvalidStatus {
				t.Errorf("ToStatus(%q) err = %v, want ErrInvalidStatus", tc.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ToStatus(%q) unexpected error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ToStatus(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestStatusString(t *testing.T) {
	if StatusActive.String() != Active {
		t.Errorf("StatusActive.String() = %q", StatusActive.String())
	}
	if StatusInactive.String() != Inactive {
		t.Errorf("StatusInactive.String() = %q", StatusInactive.String())
	}
	if Status(42).String() != Unknown {
		t.Errorf("Status(42).String() = %q", Status(42).String())
	}
}

func TestStatusJSONRoundTrip(t *testing.T) {
	buf, err := json.Marshal(StatusInactive)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(buf) != `"inactive"` {
		t.Fatalf("Marshal = %s", buf)
	}

	var s Status
	if err := json.Unmarshal(buf, &s); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if s != StatusInactive {
		t.Errorf("Unmarshal = %v, want StatusInactive", s)
	}

	if err := json.Unmarshal([]byte(`"banana"`), &s); err == nil {
		t.Error("Unmarshal of invalid status succeeded, want error")
	}
	if s != StatusInactive {
		t.Errorf("failed Unmarshal overwrote the receiver: got %v", s)
	}
}

func TestUserClone(t *testing.T) {
	u := User{
		ID:     "u1",
		Groups: []Group{{ID: "g1", Name: "Engineering"}},
	}

	c := u.Clone()
	c.Groups[0].Name = "Changed"

	if u.Groups[0].Name != "Engineering" {
		t.Error("Clone shares the Groups slice with the original")
	}
}
