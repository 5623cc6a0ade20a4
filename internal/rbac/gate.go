package rbac

// Decision is the terminal outcome of an access check.
type Decision int

const (
	// DecisionAllowed lets the request through.
	DecisionAllowed Decision = iota
	// DecisionAuthRedirect sends an unauthenticated caller to sign-in.
	DecisionAuthRedirect
	// DecisionDeniedRedirect sends an authenticated but under-privileged
	// caller to the unauthorized notice.
	DecisionDeniedRedirect
)

func (d Decision) String() string {
	switch d {
	case DecisionAllowed:
		return "allowed"
	case DecisionAuthRedirect:
		return "auth_redirect"
	case DecisionDeniedRedirect:
		return "denied_redirect"
	}
	return "unknown"
}

// Request describes one guarded navigation.
type Request struct {
	// IdentityPresent is true when an authenticated principal exists.
	IdentityPresent bool
	// Role is the resolved role. Only meaningful when RoleKnown is true.
	Role Role
	// RoleKnown is false while resolution is pending or after it errored;
	// an unknown role never grants access.
	RoleKnown bool
	// AllowedRoles is the resource's allow-list. Empty means any
	// authenticated identity may proceed.
	AllowedRoles []Role
	// Path is the originally requested path, preserved for post-login return.
	Path string
}

// Outcome carries the decision plus the path to return to after sign-in.
type Outcome struct {
	Decision   Decision
	ReturnPath string
}

// Decide evaluates a guarded request. super_admin overrides any allow-list;
// every other role is matched by strict membership. An absent or unknown role
// fails closed.
func Decide(req Request) Outcome {
	if !req.IdentityPresent {
		return Outcome{Decision: DecisionAuthRedirect, ReturnPath: req.Path}
	}

	if !req.RoleKnown || !req.Role.Valid() {
		return Outcome{Decision: DecisionDeniedRedirect}
	}

	if req.Role == RoleSuperAdmin {
		return Outcome{Decision: DecisionAllowed}
	}

	if len(req.AllowedRoles) == 0 {
		return Outcome{Decision: DecisionAllowed}
	}

	for _, allowed := range req.AllowedRoles {
		if req.Role == allowed {
			return Outcome{Decision: DecisionAllowed}
		}
	}

	return Outcome{Decision: DecisionDeniedRedirect}
}
