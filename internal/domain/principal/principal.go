package principal

// ===============================
// Roles
// ===============================

// Role names the identity table a principal was resolved from. The four
// tables are disjoint: ids repeat across tables and emails are only unique
// within a table, so a role tag must accompany every id.
type Role string

const (
	RoleClient         Role = "client"
	RoleExternEmployee Role = "extern_employee"
	RoleInternEmployee Role = "intern_employee"
	RoleAdmin          Role = "admin"
)

func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleClient, RoleExternEmployee, RoleInternEmployee, RoleAdmin:
		return Role(s), true
	}
	return "", false
}

// ===============================
// Principal
// ===============================

// Principal is a resolved identity: the row the token pointed at, with the
// role tag attached. Resolving by id alone is never safe.
type Principal struct {
	ID       uint
	Role     Role
	FullName string
	Email    string
}

func (p *Principal) Is(role Role) bool {
	return p != nil && p.Role == role
}
