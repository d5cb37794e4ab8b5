package access

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeRole(t *testing.T) {
	tests := []struct {
		raw    string
		want   Role
		wantOk bool
	}{
		{"admin", RoleAdmin, true},
		{"owner", RoleAdmin, true},
		{"clinic-admin", RoleAdmin, true},
		{"ADMIN", RoleAdmin, true},
		{"  Owner ", RoleAdmin, true},
		{"doctor", RoleDoctor, true},
		{"DOCTOR", RoleDoctor, true},
		{"staff", RoleStaff, true},
		{"receptionist", RoleStaff, true},
		{"Receptionist", RoleStaff, true},
		{"patient", RolePatient, true},
		{"patient-register", RolePatient, true},
		{"", "", false},
		{"nurse", "", false},
		{"superuser", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := NormalizeRole(tt.raw)
			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeRole_Idempotent(t *testing.T) {
	for alias := range roleAliases {
		first, ok := NormalizeRole(alias)
		assert.True(t, ok)
		second, ok := NormalizeRole(string(first))
		assert.True(t, ok)
		assert.Equal(t, first, second, alias)
	}
}

func TestNewAllowList_IgnoresUnrecognized(t *testing.T) {
	allow := NewAllowList("owner", "nurse", "receptionist")
	assert.Len(t, allow, 2)
	assert.True(t, allow.Contains(RoleAdmin))
	assert.True(t, allow.Contains(RoleStaff))
	assert.False(t, allow.Contains(RoleDoctor))
}

func TestDecide(t *testing.T) {
	ownerAdmin := NewAllowList("owner", "admin")

	tests := []struct {
		name     string
		present  bool
		expired  bool
		role     string
		allow    AllowList
		want     Decision
		wantRole Role
	}{
		{"no session", false, false, "admin", ownerAdmin, RedirectLogin, ""},
		{"no session wins over expiry", false, true, "admin", ownerAdmin, RedirectLogin, ""},
		{"expired", true, true, "admin", ownerAdmin, RedirectExpired, ""},
		{"unrecognized role", true, false, "nurse", ownerAdmin, Denied, ""},
		{"role not allowed", true, false, "doctor", ownerAdmin, RedirectHome, RoleDoctor},
		{"legacy clinic-admin allowed", true, false, "clinic-admin", ownerAdmin, Allow, RoleAdmin},
		{"receptionist on staff list", true, false, "receptionist", NewAllowList("staff"), Allow, RoleStaff},
		{"empty allow list", true, false, "admin", NewAllowList(), RedirectHome, RoleAdmin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, role := Decide(tt.present, tt.expired, tt.role, tt.allow)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantRole, role)
		})
	}
}

func TestDecide_DependsOnlyOnMembership(t *testing.T) {
	allow := NewAllowList("doctor", "staff")
	for alias, canonical := range roleAliases {
		got, _ := Decide(true, false, alias, allow)
		if allow.Contains(canonical) {
			assert.Equal(t, Allow, got, alias)
		} else {
			assert.Equal(t, RedirectHome, got, alias)
		}
		again, _ := Decide(true, false, alias, allow)
		assert.Equal(t, got, again, alias)
	}
}

func TestDecision_Location(t *testing.T) {
	assert.Equal(t, "/login", RedirectLogin.Location())
	assert.Equal(t, "/login?timeout", RedirectExpired.Location())
	assert.Equal(t, "/dashboard", RedirectHome.Location())
	assert.Empty(t, Allow.Location())
	assert.Empty(t, Denied.Location())
}
