package rbac

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type EnforceRequest struct {
	Role     string `json:"role"`
	Resource string `json:"resource"`
	Action   string `json:"action"`
}

// Policy grants role the action on resource. "*" matches anything.
type Policy struct {
	Role     string
	Resource string
	Action   string
}

// DefaultPolicies gives admins every administrative permission. Regular
// users hold none; routes they may call only pass the identity guard.
func DefaultPolicies() []Policy {
	return []Policy{
		{Role: RoleAdmin, Resource: "*", Action: "*"},
	}
}

// RoleOf derives the casbin subject from the is_admin claim.
func RoleOf(isAdmin bool) string {
	if isAdmin {
		return RoleAdmin
	}
	return RoleUser
}
