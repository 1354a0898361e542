package models

import "time"

// User defines the user model based on the 'users' table
type User struct {
	ID                   int64      `json:"id" db:"id" example:"1"`
	Name                 string     `json:"name" db:"name" example:"Rahim Uddin"`
	Email                string     `json:"email" db:"email" example:"20234103077@cse.bubt.edu.bd"`
	Password             string     `json:"-" db:"password"` // bcrypt hash, excluded from JSON
	Role                 RoleType   `json:"role" db:"role" example:"student"`
	Department           string     `json:"department" db:"department" example:"Computer Science"`
	StudentID            string     `json:"studentId" db:"student_id" example:"20234103077"`
	Gender               *string    `json:"gender,omitempty" db:"gender" example:"male"`
	Section              int        `json:"section" db:"section" example:"3"`
	Intake               *string    `json:"intake,omitempty" db:"intake" example:"49"`
	ProfilePicURL        string     `json:"profilePicUrl" db:"profile_pic_url"`
	IsActive             bool       `json:"isActive" db:"is_active" example:"true"`
	ResetPasswordToken   *string    `json:"-" db:"reset_password_token"`
	ResetPasswordExpires *time.Time `json:"-" db:"reset_password_expires"`
	CreatedAt            time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt            time.Time  `json:"updatedAt" db:"updated_at"`
}
