package perm

import "time"

type Role string

const (
	RoleAdmin  Role = "Admin"
	RoleClient Role = "Client"
	RoleStaff  Role = "Staff"
	RoleEditor Role = "Editor"
	RoleGuest  Role = "Guest"
)

// IsStaff reports whether the role is scoped by department and project
// assignments.
func (r Role) IsStaff() bool {
	return r == RoleStaff || r == RoleEditor
}

type Category string

const (
	CategoryRepairs         Category = "repairs"
	CategoryRenovations     Category = "renovations"
	CategoryNewConstruction Category = "new-construction"
	CategoryMaintenance     Category = "maintenance"
	CategorySpacePlanning   Category = "space-planning"
	CategoryInsights        Category = "insights"
)

type User struct {
	Email      string `json:"email"`
	Role       Role   `json:"role"`
	Department string `json:"department"`
}

type AssignmentPermissions struct {
	CanEdit            bool `json:"canEdit"`
	CanDelete          bool `json:"canDelete"`
	CanViewDocuments   bool `json:"canViewDocuments"`
	CanUploadDocuments bool `json:"canUploadDocuments"`
}

// Assignment grants one staff member a set of permissions on one project.
// ProjectTitle and StaffName are copied at assignment time.
type Assignment struct {
	ProjectID    string                `json:"projectId"`
	ProjectTitle string                `json:"projectTitle"`
	StaffEmail   string                `json:"staffEmail"`
	StaffName    string                `json:"staffName"`
	Role         string                `json:"role"`
	AssignedBy   string                `json:"assignedBy"`
	AssignedDate time.Time             `json:"assignedDate"`
	Permissions  AssignmentPermissions `json:"permissions"`
}

type UserPermissions struct {
	CanView            bool     `json:"canView"`
	CanAdd             bool     `json:"canAdd"`
	CanEdit            bool     `json:"canEdit"`
	CanDelete          bool     `json:"canDelete"`
	CanApprove         bool     `json:"canApprove"`
	CanAssignStaff     bool     `json:"canAssignStaff"`
	CanManageDocuments bool     `json:"canManageDocuments"`
	CanExport          bool     `json:"canExport"`
	CanManageInsights  bool     `json:"canManageInsights"`
	AssignedProjects   []string `json:"assignedProjects"`
}
