package guard

import (
	"net/http"
	"testing"

	"hrms/internal/core"
	cErr "hrms/internal/pkg/error"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionWith(role core.Role, employeeID *int) *core.Session {
	return &core.Session{UserID: 1, Username: "tester", Role: role, EmployeeID: employeeID}
}

func TestAuthorize_NilSession(t *testing.T) {
	err := Authorize(nil, Managers())
	require.Error(t, err)

	appErr, ok := err.(*cErr.Error)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, appErr.HttpCode())
}

func TestAuthorize_RoleMatch(t *testing.T) {
	tests := []struct {
		name        string
		session     *core.Session
		requirement Requirement
		wantErr     bool
	}{
		{"admin passes manager check", sessionWith(core.RoleAdmin, nil), Managers(), false},
		{"hr staff passes manager check", sessionWith(core.RoleHRStaff, nil), Managers(), false},
		{"employee fails manager check", sessionWith(core.RoleEmployee, intPtr(3)), Managers(), true},
		{"employee passes authenticated check", sessionWith(core.RoleEmployee, intPtr(3)), Authenticated(), false},
		{"admin-only rejects hr staff", sessionWith(core.RoleHRStaff, nil), Roles(core.RoleAdmin), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Authorize(tt.session, tt.requirement)
			if tt.wantErr {
				require.Error(t, err)
				appErr, ok := err.(*cErr.Error)
				require.True(t, ok)
				assert.Equal(t, http.StatusForbidden, appErr.HttpCode())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuthorize_Owner(t *testing.T) {
	owner := sessionWith(core.RoleEmployee, intPtr(5))

	assert.NoError(t, Authorize(owner, SelfOrManagers(5)))
	assert.Error(t, Authorize(owner, SelfOrManagers(6)))

	// Employee 帳號未綁定員工時不能走本人條款
	unbound := sessionWith(core.RoleEmployee, nil)
	assert.Error(t, Authorize(unbound, SelfOrManagers(5)))

	// 管理角色不需要是本人
	assert.NoError(t, Authorize(sessionWith(core.RoleHRStaff, nil), SelfOrManagers(5)))
}

func TestIsManagerAndIsSelf(t *testing.T) {
	assert.True(t, IsManager(sessionWith(core.RoleAdmin, nil)))
	assert.False(t, IsManager(sessionWith(core.RoleEmployee, intPtr(2))))
	assert.False(t, IsManager(nil))

	assert.True(t, IsSelf(sessionWith(core.RoleEmployee, intPtr(2)), 2))
	assert.False(t, IsSelf(sessionWith(core.RoleEmployee, intPtr(2)), 9))
	assert.False(t, IsSelf(nil, 2))
}

func intPtr(v int) *int { return &v }
