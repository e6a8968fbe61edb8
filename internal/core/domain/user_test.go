package domain

import "testing"

func TestParseRole(t *testing.T) {
	for _, s := range []string{"community", "researcher", "government", "admin"} {
		role, ok := ParseRole(s)
		if !ok || string(role) != s {
			t.Errorf("ParseRole(%q) = %q, %v", s, role, ok)
		}
	}

	role, ok := ParseRole("superuser")
	if ok {
		t.Fatal("unknown role must not parse")
	}
	if role != RoleCommunity {
		t.Fatalf("unknown role must fall back to community, got %q", role)
	}
}

func TestRoleCapabilities(t *testing.T) {
	cases := []struct {
		role       Role
		canViewAll bool
		canEditAll bool
		isAdmin    bool
	}{
		{RoleCommunity, false, false, false},
		{RoleResearcher, true, false, false},
		{RoleGovernment, true, true, false},
		{RoleAdmin, true, true, true},
		{Role("observer"), false, false, false},
		{Role(""), false, false, false},
	}

	for _, tc := range cases {
		if got := tc.role.CanViewAll(); got != tc.canViewAll {
			t.Errorf("%q.CanViewAll() = %v, want %v", tc.role, got, tc.canViewAll)
		}
		if got := tc.role.CanEditAll(); got != tc.canEditAll {
			t.Errorf("%q.CanEditAll() = %v, want %v", tc.role, got, tc.canEditAll)
		}
		if got := tc.role.IsAdmin(); got != tc.isAdmin {
			t.Errorf("%q.IsAdmin() = %v, want %v", tc.role, got, tc.isAdmin)
		}
	}
}
