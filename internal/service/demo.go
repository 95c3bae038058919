// File: internal/service/demo.go
package service

import "eduai-api/internal/model"

// DemoAccount is a hard-coded demonstration credential. Demo accounts are
// checked before the user store and bypass it entirely on a hit; the
// password comparison is an exact plaintext match.
type DemoAccount struct {
	Email    string
	Password string
	Name     string
	Role     model.Role
}

// DemoAccounts is the static demo-account table, injected into the auth
// handlers rather than consulted as a package global.
type DemoAccounts []DemoAccount

// DefaultDemoAccounts returns the built-in demo credential set.
func DefaultDemoAccounts() DemoAccounts {
	return DemoAccounts{
		{Email: "admin@eduai.com", Password: "admin123", Name: "Demo Admin", Role: model.RoleAdmin},
		{Email: "superadmin@eduai.com", Password: "super123", Name: "Demo Superadmin", Role: model.RoleSuperAdmin},
		{Email: "teacher@eduai.com", Password: "teacher123", Name: "Demo Teacher", Role: model.RoleTeacher},
		{Email: "student@eduai.com", Password: "student123", Name: "Demo Student", Role: model.RoleStudent},
		{Email: "parent@eduai.com", Password: "parent123", Name: "Demo Parent", Role: model.RoleParent},
		{Email: "demo@eduai.com", Password: "demo123", Name: "Demo User", Role: model.RoleStudent},
	}
}

// Lookup returns the account matching both email and password exactly,
// case-sensitive.
func (a DemoAccounts) Lookup(email, password string) (*DemoAccount, bool) {
	for i := range a {
		if a[i].Email == email && a[i].Password == password {
			return &a[i], true
		}
	}
	return nil, false
}

// Has reports whether any demo account claims the given email.
func (a DemoAccounts) Has(email string) bool {
	for i := range a {
		if a[i].Email == email {
			return true
		}
	}
	return false
}
