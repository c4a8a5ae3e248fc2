package models

type Role string

const (
	RoleProfessor Role = "professor"
	RoleStudent   Role = "student"
	RoleSecretary Role = "secretary"
	// анонимный посетитель, а также роль публичных страниц
	RoleAnonymous Role = ""
)

// ParseRole принимает только три именованные роли, всё остальное — аноним.
func ParseRole(s string) (Role, bool) {
	switch r := Role(s); r {
	case RoleProfessor, RoleStudent, RoleSecretary:
		return r, true
	default:
		return RoleAnonymous, false
	}
}

func (r Role) Valid() bool {
	switch r {
	case RoleProfessor, RoleStudent, RoleSecretary, RoleAnonymous:
		return true
	}
	return false
}

// Landing — стартовая страница роли, куда ведёт редирект с "/".
func (r Role) Landing() string {
	switch r {
	case RoleProfessor, RoleStudent, RoleSecretary:
		return "/" + string(r)
	default:
		return "/login"
	}
}

func (r Role) String() string {
	if r == RoleAnonymous {
		return "anonymous"
	}
	return string(r)
}
