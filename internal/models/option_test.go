package models

import "testing"

func TestInitials(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"John Cooper", "JC"},
		{"Dr. Sarah Johnson", "DSJ"},
		{"  emma   williams ", "EW"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Initials(tt.name); got != tt.want {
				t.Fatalf("Initials(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestFindOption(t *testing.T) {
	options := []Option{{ID: "P001", Name: "John Cooper"}, {ID: "P002", Name: "Emma Williams"}}

	got, ok := FindOption(options, "P002")
	if !ok || got.Name != "Emma Williams" {
		t.Fatalf("FindOption(P002) = %+v, %v", got, ok)
	}
	if _, ok := FindOption(options, "P999"); ok {
		t.Fatal("expected unknown id to be missing")
	}
}

func TestRoleValid(t *testing.T) {
	if !RoleReceptionist.Valid() {
		t.Fatal("receptionist should be a valid role")
	}
	if Role("owner").Valid() {
		t.Fatal("owner should not be a valid role")
	}
}
