package access

import "strings"

// Role is a canonical dashboard role.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleDoctor  Role = "doctor"
	RoleStaff   Role = "staff"
	RolePatient Role = "patient"
)

var roleAliases = map[string]Role{
	"admin":            RoleAdmin,
	"owner":            RoleAdmin,
	"clinic-admin":     RoleAdmin,
	"doctor":           RoleDoctor,
	"staff":            RoleStaff,
	"receptionist":     RoleStaff,
	"patient":          RolePatient,
	"patient-register": RolePatient,
}

// NormalizeRole maps a raw role name to its canonical role. Matching ignores
// case and surrounding whitespace. ok is false for names outside the table.
func NormalizeRole(raw string) (Role, bool) {
	role, ok := roleAliases[strings.ToLower(strings.TrimSpace(raw))]
	return role, ok
}

// AllowList is a normalized set of roles permitted on a view.
type AllowList map[Role]struct{}

// NewAllowList normalizes every entry. Unrecognized entries are dropped.
func NewAllowList(raw ...string) AllowList {
	allow := make(AllowList, len(raw))
	for _, entry := range raw {
		if role, ok := NormalizeRole(entry); ok {
			allow[role] = struct{}{}
		}
	}
	return allow
}

func (a AllowList) Contains(role Role) bool {
	_, ok := a[role]
	return ok
}

// AnyRecognizedRole admits every canonical role.
func AnyRecognizedRole() AllowList {
	return NewAllowList(string(RoleAdmin), string(RoleDoctor), string(RoleStaff), string(RolePatient))
}
