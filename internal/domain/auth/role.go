package auth

import "errors"

var ErrInvalidRole = errors.New("invalid role")

// Role of a back-office operator. Public checkout callers carry no role.
type Role string

const (
	RoleMonitor Role = "monitor"
	RoleAdmin   Role = "admin"
)

var roleLevels = map[Role]int{
	RoleMonitor: 1,
	RoleAdmin:   2,
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	_, ok := roleLevels[r]
	return ok
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// AtLeast reports whether r grants everything min grants.
func (r Role) AtLeast(min Role) bool {
	have, okHave := roleLevels[r]
	need, okNeed := roleLevels[min]
	return okHave && okNeed && have >= need
}

type Principal struct {
	Subject string
	Role    Role
}
