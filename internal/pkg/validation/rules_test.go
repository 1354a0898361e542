package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsInstitutionalEmail(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{"19202103001@cse.bubt.edu.bd", true},
		{"19202103001@bba.bubt.edu.bd", true},
		{"19202103001@eee.bubt.edu.bd", true},
		{"19202103001@txt.bubt.edu.bd", true},
		{"19202103001@CSE.bubt.edu.bd", true}, // case-insensitive
		{"1920210300@cse.bubt.edu.bd", false}, // 10 digits
		{"192021030011@cse.bubt.edu.bd", false},
		{"19202103001@math.bubt.edu.bd", false},
		{"19202103001@cse.other.edu.bd", false},
		{"someone@gmail.com", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.valid, IsInstitutionalEmail(tt.email), "email: %s", tt.email)
	}
}

func TestIsStudentID(t *testing.T) {
	assert.True(t, IsStudentID("19202103001"))
	assert.False(t, IsStudentID("1920210300"))
	assert.False(t, IsStudentID("192021030011"))
	assert.False(t, IsStudentID("1920210300a"))
	assert.False(t, IsStudentID(""))
}

func TestEmailStudentID(t *testing.T) {
	assert.Equal(t, "19202103001", EmailStudentID("19202103001@cse.bubt.edu.bd"))
	assert.Equal(t, "", EmailStudentID("someone@gmail.com"))
}

func TestEmailDepartmentCode(t *testing.T) {
	assert.Equal(t, "cse", EmailDepartmentCode("19202103001@cse.bubt.edu.bd"))
	assert.Equal(t, "bba", EmailDepartmentCode("19202103001@BBA.bubt.edu.bd"))
	assert.Equal(t, "", EmailDepartmentCode("someone@gmail.com"))
}

func TestIsValidPassword(t *testing.T) {
	assert.True(t, IsValidPassword("123456"))
	assert.True(t, IsValidPassword("a longer password"))
	assert.False(t, IsValidPassword("12345"))
	assert.False(t, IsValidPassword(""))
}
