package enums

import "testing"

func TestUserRole(t *testing.T) {
	if !UserRoleAdmin.IsValid() || !UserRoleUser.IsValid() {
		t.Fatal("canonical roles must be valid")
	}
	if UserRole("superuser").IsValid() {
		t.Fatal("unknown role must be invalid")
	}
	if _, err := ParseUserRole("admin"); err != nil {
		t.Fatalf("parse admin: %v", err)
	}
	if _, err := ParseUserRole("root"); err == nil {
		t.Fatal("expected error for unknown role")
	}
	if got := UserRoleOrDefault(""); got != UserRoleUser {
		t.Fatalf("absent role defaults to user, got %s", got)
	}
	if got := UserRoleOrDefault("admin"); got != UserRoleAdmin {
		t.Fatalf("expected admin, got %s", got)
	}
}

func TestOrderStatus(t *testing.T) {
	for _, status := range OrderStatuses() {
		if !status.IsValid() {
			t.Fatalf("status %s should be valid", status)
		}
	}
	if OrderStatus("returned").IsValid() {
		t.Fatal("unknown status must be invalid")
	}
	if _, err := ParseOrderStatus("shipped"); err != nil {
		t.Fatalf("parse shipped: %v", err)
	}
	if _, err := ParseOrderStatus("SHIPPED"); err == nil {
		t.Fatal("statuses are case sensitive on the wire")
	}
}
