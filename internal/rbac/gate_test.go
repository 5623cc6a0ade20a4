package rbac

import "testing"

func TestDecideUnauthenticatedRedirectsToSignIn(t *testing.T) {
	out := Decide(Request{
		IdentityPresent: false,
		AllowedRoles:    []Role{RoleAdmin},
		Path:            "/admin/members",
	})

	if out.Decision != DecisionAuthRedirect {
		t.Fatalf("expected auth redirect, got %s", out.Decision)
	}
	if out.ReturnPath != "/admin/members" {
		t.Fatalf("return path not preserved: %q", out.ReturnPath)
	}
}

func TestDecideSuperAdminOverridesAnyAllowList(t *testing.T) {
	out := Decide(Request{
		IdentityPresent: true,
		Role:            RoleSuperAdmin,
		RoleKnown:       true,
		AllowedRoles:    []Role{RoleVisitor},
	})

	if out.Decision != DecisionAllowed {
		t.Fatalf("expected allowed, got %s", out.Decision)
	}
}

func TestDecideVisitorDeniedAdminResource(t *testing.T) {
	out := Decide(Request{
		IdentityPresent: true,
		Role:            RoleVisitor,
		RoleKnown:       true,
		AllowedRoles:    []Role{RoleAdmin, RoleSuperAdmin},
	})

	if out.Decision != DecisionDeniedRedirect {
		t.Fatalf("expected denied redirect, got %s", out.Decision)
	}
	if out.ReturnPath != "" {
		t.Fatalf("denied outcome must not leak a return path: %q", out.ReturnPath)
	}
}

func TestDecideEmptyAllowListAdmitsAnyAuthenticatedRole(t *testing.T) {
	for _, role := range AllRoles() {
		out := Decide(Request{
			IdentityPresent: true,
			Role:            role,
			RoleKnown:       true,
		})
		if out.Decision != DecisionAllowed {
			t.Fatalf("role %s denied on an unrestricted resource: %s", role, out.Decision)
		}
	}
}

func TestDecideUnknownRoleFailsClosed(t *testing.T) {
	cases := []Request{
		{IdentityPresent: true, RoleKnown: false, AllowedRoles: []Role{RoleVisitor}},
		{IdentityPresent: true, Role: Role("owner"), RoleKnown: true, AllowedRoles: []Role{RoleVisitor}},
		{IdentityPresent: true, Role: Role(""), RoleKnown: true},
	}
	for i, req := range cases {
		if out := Decide(req); out.Decision != DecisionDeniedRedirect {
			t.Fatalf("case %d: expected denied redirect, got %s", i, out.Decision)
		}
	}
}

func TestDecideMembershipIsExact(t *testing.T) {
	out := Decide(Request{
		IdentityPresent: true,
		Role:            RoleAdmin,
		RoleKnown:       true,
		AllowedRoles:    []Role{RoleAdmin},
	})
	if out.Decision != DecisionAllowed {
		t.Fatalf("expected allowed, got %s", out.Decision)
	}

	out = Decide(Request{
		IdentityPresent: true,
		Role:            RoleAdmin,
		RoleKnown:       true,
		AllowedRoles:    []Role{RoleVisitor},
	})
	if out.Decision != DecisionDeniedRedirect {
		t.Fatalf("admin admitted to visitor-only resource: %s", out.Decision)
	}
}
