package guard

import (
	"hrms/internal/core"
	cErr "hrms/internal/pkg/error"
)

// Requirement 宣告一個操作的存取條件：
// 角色命中 Roles 其中之一即可，或（AllowOwner 時）session 綁定的員工即為目標員工。
type Requirement struct {
	Roles      []core.Role
	OwnerOf    int
	AllowOwner bool
}

// Roles 僅允許指定角色
func Roles(roles ...core.Role) Requirement {
	return Requirement{Roles: roles}
}

// Managers 允許 Admin 與 HR Staff
func Managers() Requirement {
	return Requirement{Roles: core.ManagerRoles}
}

// SelfOrManagers 允許 Admin / HR Staff，或目標員工本人
func SelfOrManagers(employeeID int) Requirement {
	return Requirement{Roles: core.ManagerRoles, OwnerOf: employeeID, AllowOwner: true}
}

// Authenticated 僅要求已登入
func Authenticated() Requirement {
	return Requirement{Roles: []core.Role{core.RoleAdmin, core.RoleHRStaff, core.RoleEmployee}}
}

// Authorize 檢查 session 是否符合 Requirement。
// 未登入一律回 unauthorized；已登入但不符回 forbidden，錯誤訊息不揭露目標是否存在。
func Authorize(session *core.Session, requirement Requirement) error {
	if session == nil {
		return cErr.Unauthorized("login required")
	}
	for _, role := range requirement.Roles {
		if session.Role == role {
			return nil
		}
	}
	if requirement.AllowOwner && session.EmployeeID != nil && *session.EmployeeID == requirement.OwnerOf {
		return nil
	}
	return cErr.Forbidden("insufficient permission")
}

// IsManager 判斷 session 是否具 Admin / HR Staff 權限
func IsManager(session *core.Session) bool {
	if session == nil {
		return false
	}
	for _, role := range core.ManagerRoles {
		if session.Role == role {
			return true
		}
	}
	return false
}

// IsSelf 判斷 session 是否綁定目標員工
func IsSelf(session *core.Session, employeeID int) bool {
	return session != nil && session.EmployeeID != nil && *session.EmployeeID == employeeID
}
