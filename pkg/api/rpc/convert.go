package rpc

import (
	"github.com/campusfm/projectperm/pkg/api/protos"
	"github.com/campusfm/projectperm/pkg/perm"
)

func toUser(u protos.User) perm.User {
	return perm.User{
		Email:      u.Email,
		Role:       perm.Role(u.Role),
		Department: u.Department,
	}
}

func toProtoAssignments(assignments []perm.Assignment) []protos.Assignment {
	pAssignments := make([]protos.Assignment, 0, len(assignments))
	for _, a := range assignments {
		pAssignments = append(pAssignments, protos.Assignment{
			ProjectID:    a.ProjectID,
			ProjectTitle: a.ProjectTitle,
			StaffEmail:   a.StaffEmail,
			StaffName:    a.StaffName,
			Role:         a.Role,
			AssignedBy:   a.AssignedBy,
			AssignedDate: a.AssignedDate,
			Permissions:  protos.AssignmentPermissions(a.Permissions),
		})
	}

	return pAssignments
}

func toProtoUserPermissions(p perm.UserPermissions) protos.UserPermissions {
	return protos.UserPermissions(p)
}
