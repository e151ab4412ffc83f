package domain

import "testing"

func TestParseRole(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"ADMIN", "RESPONDER", "ANALYST"} {
		role, err := ParseRole(raw)
		if err != nil {
			t.Fatalf("ParseRole(%q): %v", raw, err)
		}
		if string(role) != raw {
			t.Fatalf("ParseRole(%q) = %q", raw, role)
		}
	}
}

func TestParseRoleRejectsUnknown(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"", "admin", "SUPERUSER", "Responder"} {
		if _, err := ParseRole(raw); err == nil {
			t.Fatalf("ParseRole(%q) accepted an unknown role", raw)
		}
	}
}

func TestRoleSatisfies(t *testing.T) {
	t.Parallel()

	cases := []struct {
		role     Role
		required Role
		want     bool
	}{
		{RoleAdmin, RoleAdmin, true},
		{RoleAdmin, RoleResponder, true},
		{RoleAdmin, RoleAnalyst, true},
		{RoleResponder, RoleResponder, true},
		{RoleResponder, RoleAdmin, false},
		{RoleResponder, RoleAnalyst, false},
		{RoleAnalyst, RoleAnalyst, true},
		{RoleAnalyst, RoleAdmin, false},
	}
	for _, tc := range cases {
		if got := tc.role.Satisfies(tc.required); got != tc.want {
			t.Errorf("%s satisfies %s = %v, want %v", tc.role, tc.required, got, tc.want)
		}
	}
}
