package model

import "testing"

func TestTravelPackageTrim_Defaults(t *testing.T) {
	p := &TravelPackage{
		Title:       "  Sundarbans Explorer  ",
		Destination: " Khulna ",
		Category:    "Adventure",
		Duration:    3,
	}
	p.Trim()

	if p.Title != "Sundarbans Explorer" || p.Destination != "Khulna" {
		t.Errorf("trim left %q / %q", p.Title, p.Destination)
	}
	if p.Description != DefaultPackageDescription {
		t.Errorf("description = %q, want %q", p.Description, DefaultPackageDescription)
	}
	if p.Availability == nil || !*p.Availability {
		t.Errorf("availability = %v, want true", p.Availability)
	}
}

func TestTravelPackageTrim_KeepsExplicitValues(t *testing.T) {
	unavailable := false
	p := &TravelPackage{
		Title:        "City Lights",
		Destination:  "Dhaka",
		Description:  "Two nights downtown",
		Availability: &unavailable,
	}
	p.Trim()

	if p.Description != "Two nights downtown" {
		t.Errorf("description = %q", p.Description)
	}
	if p.Availability == nil || *p.Availability {
		t.Errorf("availability = %v, want false", p.Availability)
	}
}
