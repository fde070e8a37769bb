package protos

import "time"

type AssignmentPermissions struct {
	CanEdit            bool `json:"canEdit"`
	CanDelete          bool `json:"canDelete"`
	CanViewDocuments   bool `json:"canViewDocuments"`
	CanUploadDocuments bool `json:"canUploadDocuments"`
}

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

type User struct {
	Email      string `json:"email" validate:"max=255"`
	Role       string `json:"role" validate:"required"`
	Department string `json:"department"`
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

type AssignStaffRequest struct {
	ProjectID    string                `json:"projectId" validate:"required,max=255"`
	ProjectTitle string                `json:"projectTitle" validate:"max=255"`
	StaffEmail   string                `json:"staffEmail" validate:"required,max=255"`
	StaffName    string                `json:"staffName" validate:"max=255"`
	Role         string                `json:"role" validate:"max=255"`
	AssignedBy   string                `json:"assignedBy" validate:"max=255"`
	Permissions  AssignmentPermissions `json:"permissions"`
}

// AssignStaffResponse reports Persisted false when the assignment was
// applied but could not be written to durable storage.
type AssignStaffResponse struct {
	Persisted bool `json:"persisted"`
}

type RemoveStaffRequest struct {
	ProjectID  string `json:"projectId" validate:"required"`
	StaffEmail string `json:"staffEmail" validate:"required"`
}

type RemoveStaffResponse struct {
	Persisted bool `json:"persisted"`
}

type ListProjectAssignmentsRequest struct {
	ProjectID string `json:"projectId" validate:"required"`
}

type ListStaffAssignmentsRequest struct {
	StaffEmail string `json:"staffEmail" validate:"required"`
}

type ListAssignmentsResponse struct {
	Assignments []Assignment `json:"assignments"`
}

type CanAccessPageRequest struct {
	User     User   `json:"user"`
	Category string `json:"category" validate:"required"`
}

type CanAccessPageResponse struct {
	Allowed bool `json:"allowed"`
}

type GetUserPermissionsRequest struct {
	User     User   `json:"user"`
	Category string `json:"category" validate:"required"`
}

type GetUserPermissionsResponse struct {
	Permissions UserPermissions `json:"permissions"`
}

type ProjectAccessRequest struct {
	User      User   `json:"user"`
	ProjectID string `json:"projectId" validate:"required"`
}

type ProjectAccessResponse struct {
	Allowed bool `json:"allowed"`
}
