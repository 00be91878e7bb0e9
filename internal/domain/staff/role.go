package staff

type Role struct {
	ID   int64
	Name string
	Slug string
}

type Permission struct {
	ID       int64
	Name     string
	Slug     string
	ParentID int64
}
