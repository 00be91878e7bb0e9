package staff

// DefaultAdminID is the seeded administrator account. It can never be
// soft-deleted through the service.
const DefaultAdminID int64 = 1

type User struct {
	ID           int64
	Username     string
	Name         string
	Gender       string
	DepartmentID int64
	PasswordHash string
	Title        string
	Mobile       string
	Email        string
	ADTag        int
}

// UserDetail is a read model: a user together with the display names the
// grid and show views need.
type UserDetail struct {
	User
	DepartmentName string
	Roles          []string
	Deleted        bool
}

type SelectOption struct {
	ID   int64  `json:"id"`
	Text string `json:"text"`
}
