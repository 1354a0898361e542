package validation

import (
	"regexp"
	"strings"
)

// Validation rule patterns
var (
	// Institutional email: 11-digit student id, department code, fixed domain
	InstitutionalEmailPattern = `^[0-9]{11}@(cse|bba|eee|txt|mcn|llb|eng)\.bubt\.edu\.bd$`

	// Student identifier pattern - exactly 11 digits
	StudentIDPattern = `^[0-9]{11}$`

	// Password min length
	PasswordMinLength = 6
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	InstitutionalEmail *regexp.Regexp
	StudentID          *regexp.Regexp
}{
	InstitutionalEmail: regexp.MustCompile(InstitutionalEmailPattern),
	StudentID:          regexp.MustCompile(StudentIDPattern),
}

// IsInstitutionalEmail reports whether the email matches the institutional
// format (studentId@departmentCode.bubt.edu.bd).
func IsInstitutionalEmail(email string) bool {
	return CompiledPatterns.InstitutionalEmail.MatchString(strings.ToLower(email))
}

// IsStudentID reports whether the value is an 11-digit student id.
func IsStudentID(studentID string) bool {
	return CompiledPatterns.StudentID.MatchString(studentID)
}

// EmailStudentID returns the student id embedded in an institutional email,
// or "" when the email does not match the institutional format.
func EmailStudentID(email string) string {
	email = strings.ToLower(email)
	if !IsInstitutionalEmail(email) {
		return ""
	}
	return email[:11]
}

// EmailDepartmentCode returns the department code segment of an
// institutional email (e.g. "cse"), or "" when it does not match.
func EmailDepartmentCode(email string) string {
	email = strings.ToLower(email)
	if !IsInstitutionalEmail(email) {
		return ""
	}
	at := strings.IndexByte(email, '@')
	rest := email[at+1:]
	dot := strings.IndexByte(rest, '.')
	return rest[:dot]
}

// IsValidPassword reports whether the password meets the minimum length.
func IsValidPassword(password string) bool {
	return len(password) >= PasswordMinLength
}
