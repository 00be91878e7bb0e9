package staff

import "context"

// MatchState tags the result of a username lookup that includes soft-deleted
// rows, so callers must handle all three outcomes.
type MatchState int

const (
	MatchNone MatchState = iota
	MatchActive
	MatchSoftDeleted
)

type UsernameMatch struct {
	State MatchState
	User  User
}

type UserListFilter struct {
	Query        string
	DepartmentID int64
	Page         int
	PageSize     int
}

type UserRepository interface {
	// FindByUsernameAnyState looks the username up across active and
	// soft-deleted rows. Lookup-then-write is not guarded against
	// concurrent imports.
	FindByUsernameAnyState(ctx context.Context, username string) (UsernameMatch, error)
	Create(ctx context.Context, user *User) error
	// Resurrect clears the soft-delete marker of the row identified by
	// user.ID and overwrites its columns with the given values.
	Resurrect(ctx context.Context, user *User) error
	// SoftDeleteDirectoryUsersExcept soft-deletes every AD-tagged user
	// whose username is not in keep. Used by the rewrite sync mode.
	SoftDeleteDirectoryUsersExcept(ctx context.Context, keep []string) (int64, error)

	GetDetail(ctx context.Context, id int64) (*UserDetail, error)
	List(ctx context.Context, filter UserListFilter) ([]UserDetail, int64, error)
	Update(ctx context.Context, user *User) error
	SoftDelete(ctx context.Context, id int64) error
	SelectList(ctx context.Context, query string) ([]SelectOption, error)
}

type DepartmentRepository interface {
	// GetOrCreate resolves a department by exact name, creating it on
	// first reference.
	GetOrCreate(ctx context.Context, name string) (Department, error)
	List(ctx context.Context) ([]Department, error)
}

type RoleRepository interface {
	ListRoles(ctx context.Context) ([]Role, error)
	ListPermissions(ctx context.Context) ([]Permission, error)
}

type ImportRunRepository interface {
	Record(ctx context.Context, run *ImportRun) error
}

// DirectoryImporter syncs accounts from an external directory service. The
// import pipeline only forwards the requested mode and interprets the error.
type DirectoryImporter interface {
	ImportUsers(ctx context.Context, mode string) error
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hash, password string) bool
}
