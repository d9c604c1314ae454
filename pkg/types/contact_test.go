package types

import "testing"

func TestContactMatches(t *testing.T) {
	c := NewContact("Robyn Liu", "0433123123", "robyn.liu@hotmail.com")

	tests := []struct {
		name            string
		n, phone, email string
		want            bool
	}{
		{"all fields equal", "Robyn Liu", "0433123123", "robyn.liu@hotmail.com", true},
		{"name differs in case", "robyn liu", "0433123123", "robyn.liu@hotmail.com", false},
		{"phone differs", "Robyn Liu", "0433123124", "robyn.liu@hotmail.com", false},
		{"email differs", "Robyn Liu", "0433123123", "Robyn.liu@hotmail.com", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Matches(tt.n, tt.phone, tt.email); got != tt.want {
				t.Fatalf("Matches() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRowContact(t *testing.T) {
	got := Row{"Bill", "555-555-4854", "bill@blocmail.com"}.Contact()
	want := Contact{Name: "Bill", PhoneNumber: "555-555-4854", Email: "bill@blocmail.com"}
	if got != want {
		t.Fatalf("Contact() = %+v, want %+v", got, want)
	}
}
