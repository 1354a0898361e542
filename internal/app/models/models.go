package models

// RoleType defines the user role type
type RoleType string

const (
	RoleStudent   RoleType = "student"
	RoleModerator RoleType = "moderator"
	RoleAdmin     RoleType = "admin"
)

// ValidRole reports whether the given role is one of the known roles.
func ValidRole(role RoleType) bool {
	switch role {
	case RoleStudent, RoleModerator, RoleAdmin:
		return true
	}
	return false
}

// CanModerate reports whether the role may approve or deny materials.
func (r RoleType) CanModerate() bool {
	return r == RoleModerator || r == RoleAdmin
}

// MaterialStatus represents the lifecycle status of an uploaded material
type MaterialStatus string

const (
	MaterialStatusPending  MaterialStatus = "pending"
	MaterialStatusApproved MaterialStatus = "approved"
	MaterialStatusDenied   MaterialStatus = "denied"
)

// ValidMaterialStatus reports whether the given status is one of the three
// lifecycle values. Any of them may be assigned through the status endpoint;
// there is no transition table.
func ValidMaterialStatus(status MaterialStatus) bool {
	switch status {
	case MaterialStatusPending, MaterialStatusApproved, MaterialStatusDenied:
		return true
	}
	return false
}
