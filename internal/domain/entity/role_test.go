package entity

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		input string
		want  Role
		ok    bool
	}{
		{"admin", RoleAdmin, true},
		{"user", RoleUser, true},
		{"read-only", RoleReadOnly, true},
		{"readonly", 0, false},
		{"Admin", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseRole(tt.input)
			if ok != tt.ok || got != tt.want {
				t.Errorf("ParseRole(%q) = (%v, %v), want (%v, %v)", tt.input, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestRoleCapabilities(t *testing.T) {
	tests := []struct {
		role      Role
		canMutate bool
		bypass    bool
	}{
		{RoleAdmin, true, true},
		{RoleUser, true, false},
		{RoleReadOnly, false, false},
		{Role(0), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.role.String(), func(t *testing.T) {
			if got := tt.role.CanMutate(); got != tt.canMutate {
				t.Errorf("CanMutate() = %v, want %v", got, tt.canMutate)
			}
			if got := tt.role.BypassesOwnership(); got != tt.bypass {
				t.Errorf("BypassesOwnership() = %v, want %v", got, tt.bypass)
			}
		})
	}
}

func TestRoleJSON(t *testing.T) {
	t.Run("round trips through wire names", func(t *testing.T) {
		for _, role := range AllRoles() {
			data, err := json.Marshal(role)
			if err != nil {
				t.Fatalf("Marshal(%v) error = %v", role, err)
			}
			var decoded Role
			if err := json.Unmarshal(data, &decoded); err != nil {
				t.Fatalf("Unmarshal(%s) error = %v", data, err)
			}
			if decoded != role {
				t.Errorf("decoded %v, want %v", decoded, role)
			}
		}
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		var decoded Role
		if err := json.Unmarshal([]byte(`"superuser"`), &decoded); err == nil {
			t.Error("expected error for unknown role")
		}
	})
}

func TestNewScope(t *testing.T) {
	actor := uuid.New()
	other := uuid.New()

	t.Run("user is pinned to self", func(t *testing.T) {
		scope := NewScope(Identity{UserID: actor, Role: RoleUser}, &other)
		if scope.Unrestricted() {
			t.Fatal("user scope must be restricted")
		}
		if scope.Owner() != actor {
			t.Errorf("Owner() = %s, want %s", scope.Owner(), actor)
		}
	})

	t.Run("read-only is pinned to self", func(t *testing.T) {
		scope := NewScope(Identity{UserID: actor, Role: RoleReadOnly}, &other)
		if *scope.Filter() != actor {
			t.Errorf("Filter() = %s, want %s", *scope.Filter(), actor)
		}
	})

	t.Run("admin without target is unrestricted", func(t *testing.T) {
		scope := NewScope(Identity{UserID: actor, Role: RoleAdmin}, nil)
		if !scope.Unrestricted() {
			t.Fatal("admin scope should be unrestricted")
		}
		if scope.Owner() != actor {
			t.Errorf("Owner() = %s, want actor %s", scope.Owner(), actor)
		}
	})

	t.Run("admin may target another owner", func(t *testing.T) {
		scope := NewScope(Identity{UserID: actor, Role: RoleAdmin}, &other)
		if scope.Owner() != other {
			t.Errorf("Owner() = %s, want %s", scope.Owner(), other)
		}
	})
}
