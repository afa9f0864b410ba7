package auth

const (
	RoleEmployee = "employee"
	RoleManager  = "manager"
	RoleHR       = "hr"
)

const (
	PermAssessmentRead     = "assessment:read"
	PermAssessmentWrite    = "assessment:write"
	PermAssessmentEvaluate = "assessment:evaluate"
	PermEmployeeRead       = "employee:read"
	PermEmployeeWrite      = "employee:write"
	PermReportsRead        = "reports:read"
	PermAuditRead          = "audit:read"
)

// rolePermissions is the fixed role model. Employees see their own data,
// managers additionally score and report on their team, HR does everything.
var rolePermissions = map[string]map[string]bool{
	RoleEmployee: {
		PermAssessmentRead: true,
		PermEmployeeRead:   true,
	},
	RoleManager: {
		PermAssessmentRead:     true,
		PermAssessmentWrite:    true,
		PermAssessmentEvaluate: true,
		PermEmployeeRead:       true,
		PermReportsRead:        true,
	},
	RoleHR: {
		PermAssessmentRead:     true,
		PermAssessmentWrite:    true,
		PermAssessmentEvaluate: true,
		PermEmployeeRead:       true,
		PermEmployeeWrite:      true,
		PermReportsRead:        true,
		PermAuditRead:          true,
	},
}

func HasPermission(role, permission string) bool {
	return rolePermissions[role][permission]
}

func ValidRole(role string) bool {
	_, ok := rolePermissions[role]
	return ok
}
