package domain

// Roles a user can hold
const (
	RoleUser  = "user"  // Regular bettor
	RoleAdmin = "admin" // Can manage subscription tiers
)

// User Model
type User struct {
	ID       uint    `gorm:"primaryKey" json:"id"`                                         // Primary key
	Username string  `gorm:"size:64;unique;not null" json:"username"`                      // Unique username
	Password string  `gorm:"not null" json:"-"`                                            // Hashed password
	Role     string  `gorm:"size:16;default:user" json:"role"`                             // Role: user or admin
	Profile  Profile `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"profile"` // One-to-one relationship with Profile
}
