package pages

import (
	"fmt"
	"strings"

	"thesis-portal/internal/models"
)

// PageDescriptor описывает одну страницу портала. Таблица собирается при старте
// и дальше не меняется.
type PageDescriptor struct {
	Path         string
	Title        string
	Role         models.Role
	PageKey      string
	DisplayLabel string
}

type Table struct {
	pages  []PageDescriptor
	byPath map[string]int
}

// New копирует описания, так что вызывающий не может поменять таблицу потом.
func New(descs ...PageDescriptor) Table {
	t := Table{
		pages:  make([]PageDescriptor, len(descs)),
		byPath: make(map[string]int, len(descs)),
	}
	copy(t.pages, descs)
	for i, d := range t.pages {
		if _, dup := t.byPath[d.Path]; !dup {
			t.byPath[d.Path] = i
		}
	}
	return t
}

func page(path, title string, role models.Role, key string) PageDescriptor {
	return PageDescriptor{
		Path:         path,
		Title:        title,
		Role:         role,
		PageKey:      key,
		DisplayLabel: title,
	}
}

// Default — все страницы портала.
func Default() Table {
	return New(
		// ПРЕПОДАВАТЕЛЬ
		page("/professor", "Αρχική", models.RoleProfessor, "home"),
		page("/professor/topics", "Θέματα", models.RoleProfessor, "topics"),
		page("/professor/assignments", "Αναθέσεις", models.RoleProfessor, "assignments"),
		page("/professor/invitations", "Προσκλήσεις", models.RoleProfessor, "invitations"),
		page("/professor/stats", "Στατιστικά", models.RoleProfessor, "stats"),
		page("/professor/announcements", "Ανακοινώσεις", models.RoleProfessor, "announcements"),

		// СТУДЕНТ
		page("/student", "Αρχική", models.RoleStudent, "home"),
		page("/student/topics", "Θέματα", models.RoleStudent, "topics"),
		page("/student/thesis", "Η Διπλωματική μου", models.RoleStudent, "thesis"),
		page("/student/announcements", "Ανακοινώσεις", models.RoleStudent, "announcements"),

		// СЕКРЕТАРИАТ
		page("/secretary", "Αρχική", models.RoleSecretary, "home"),
		page("/secretary/users", "Χρήστες", models.RoleSecretary, "users"),
		page("/secretary/announcements", "Ανακοινώσεις", models.RoleSecretary, "announcements"),

		// публичные
		page("/login", "Σύνδεση", models.RoleAnonymous, "login"),
		page("/announcements", "Ανακοινώσεις", models.RoleAnonymous, "announcements"),
	)
}

func (t Table) All() []PageDescriptor {
	out := make([]PageDescriptor, len(t.pages))
	copy(out, t.pages)
	return out
}

func (t Table) Len() int {
	return len(t.pages)
}

func (t Table) Lookup(path string) (PageDescriptor, bool) {
	i, ok := t.byPath[path]
	if !ok {
		return PageDescriptor{}, false
	}
	return t.pages[i], true
}

// ForRole — пункты меню роли в порядке таблицы.
func (t Table) ForRole(role models.Role) []PageDescriptor {
	var out []PageDescriptor
	for _, d := range t.pages {
		if d.Role == role {
			out = append(out, d)
		}
	}
	return out
}

// Validate проверяет таблицу перед запуском сервера.
func (t Table) Validate() error {
	if len(t.pages) == 0 {
		return fmt.Errorf("page table is empty")
	}

	seen := map[string]struct{}{}
	for _, d := range t.pages {
		if !strings.HasPrefix(d.Path, "/") {
			return fmt.Errorf("page %q: path must be absolute", d.Path)
		}
		if d.Path == "/" {
			return fmt.Errorf("page %q: root path is reserved for the role redirect", d.Path)
		}
		if !d.Role.Valid() {
			return fmt.Errorf("page %q: unknown role %q", d.Path, string(d.Role))
		}
		if d.PageKey == "" {
			return fmt.Errorf("page %q: empty page key", d.Path)
		}
		if _, dup := seen[d.Path]; dup {
			return fmt.Errorf("page %q: duplicate path", d.Path)
		}
		seen[d.Path] = struct{}{}
	}

	// у каждой роли (и у анонима) должна быть ровно одна стартовая страница
	for _, r := range []models.Role{
		models.RoleProfessor,
		models.RoleStudent,
		models.RoleSecretary,
		models.RoleAnonymous,
	} {
		d, ok := t.Lookup(r.Landing())
		if !ok {
			return fmt.Errorf("role %s: landing page %s is missing", r, r.Landing())
		}
		if d.Role != r {
			return fmt.Errorf("role %s: landing page %s belongs to %s", r, d.Path, d.Role)
		}
	}
	return nil
}
