package directory

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-ldap/ldap/v3"

	app "github.com/mohammadpnp/staff-admin/internal/application/staff"
	"github.com/mohammadpnp/staff-admin/internal/config"
	domain "github.com/mohammadpnp/staff-admin/internal/domain/staff"
	"github.com/mohammadpnp/staff-admin/internal/translit"
)

// LDAPDirectory syncs accounts from an external LDAP directory. The import
// pipeline hands it a mode and interprets only success or failure; fetching,
// reconciling and writing all happen here. Synced accounts carry ad_tag = 1.
type LDAPDirectory struct {
	cfg         config.LDAP
	users       domain.UserRepository
	departments domain.DepartmentRepository
	hasher      domain.PasswordHasher
}

func NewLDAPDirectory(
	cfg config.LDAP,
	users domain.UserRepository,
	departments domain.DepartmentRepository,
	hasher domain.PasswordHasher,
) *LDAPDirectory {
	return &LDAPDirectory{cfg: cfg, users: users, departments: departments, hasher: hasher}
}

// ImportUsers runs one blocking sync. Any failure aborts the whole sync;
// entries written before the failure stay committed.
func (d *LDAPDirectory) ImportUsers(ctx context.Context, mode string) error {
	if d.cfg.URL == "" {
		return fmt.Errorf("directory url not configured")
	}

	conn, err := ldap.DialURL(d.cfg.URL)
	if err != nil {
		return fmt.Errorf("dial directory: %w", err)
	}
	defer conn.Close()

	if d.cfg.BindDN != "" {
		if err := conn.Bind(d.cfg.BindDN, d.cfg.BindPassword); err != nil {
			return fmt.Errorf("bind directory: %w", err)
		}
	}

	request := ldap.NewSearchRequest(
		d.cfg.BaseDN,
		ldap.ScopeWholeSubtree,
		ldap.NeverDerefAliases,
		0, 0, false,
		d.cfg.Filter,
		d.attributes(),
		nil,
	)

	result, err := conn.SearchWithPaging(request, d.cfg.PageSize)
	if err != nil {
		return fmt.Errorf("search directory: %w", err)
	}

	candidates := make([]domain.Candidate, 0, len(result.Entries))
	for _, entry := range result.Entries {
		candidate := entryCandidate(d.cfg, entry)
		if candidate.LoginName == "" {
			continue
		}
		candidates = append(candidates, candidate)
	}

	if mode == app.ModeRewrite {
		keep := make([]string, 0, len(candidates))
		for _, candidate := range candidates {
			keep = append(keep, translit.LoginName(candidate.LoginName))
		}
		if _, err := d.users.SoftDeleteDirectoryUsersExcept(ctx, keep); err != nil {
			return err
		}
	}

	for _, candidate := range candidates {
		if err := d.syncCandidate(ctx, candidate); err != nil {
			return err
		}
	}
	return nil
}

// syncCandidate upserts one directory entry by its normalized login. The
// directory is authoritative for its own accounts, so no disambiguation
// suffix is applied here; an existing row (active or soft-deleted) is taken
// over and tagged.
func (d *LDAPDirectory) syncCandidate(ctx context.Context, candidate domain.Candidate) error {
	login := translit.LoginName(candidate.LoginName)

	var departmentID int64
	if candidate.DepartmentName != "" {
		department, err := d.departments.GetOrCreate(ctx, candidate.DepartmentName)
		if err != nil {
			return err
		}
		departmentID = department.ID
	}

	match, err := d.users.FindByUsernameAnyState(ctx, login)
	if err != nil {
		return err
	}

	user := match.User
	user.Username = login
	user.Name = candidate.DisplayName
	user.Gender = candidate.Gender
	user.ADTag = 1
	if departmentID > 0 {
		user.DepartmentID = departmentID
	}
	if candidate.Title != "" {
		user.Title = candidate.Title
	}
	if candidate.Mobile != "" {
		user.Mobile = candidate.Mobile
	}
	if candidate.Email != "" {
		user.Email = candidate.Email
	}

	switch match.State {
	case domain.MatchNone:
		// New directory accounts default to the login name as password.
		hash, err := d.hasher.Hash(login)
		if err != nil {
			return err
		}
		user.PasswordHash = hash
		return d.users.Create(ctx, &user)
	case domain.MatchSoftDeleted:
		return d.users.Resurrect(ctx, &user)
	default:
		return d.users.Update(ctx, &user)
	}
}

func (d *LDAPDirectory) attributes() []string {
	attrs := []string{d.cfg.LoginAttr, "sAMAccountName", d.cfg.NameAttr, "cn",
		d.cfg.DepartmentAttr, d.cfg.TitleAttr, d.cfg.MobileAttr, d.cfg.EmailAttr}
	if d.cfg.GenderAttr != "" {
		attrs = append(attrs, d.cfg.GenderAttr)
	}
	return attrs
}

// entryCandidate maps one LDAP entry onto a candidate record. Directory
// schemas carry no gender, so a configured attribute is consulted first and
// the configured fallback fills the gap.
func entryCandidate(cfg config.LDAP, entry *ldap.Entry) domain.Candidate {
	login := firstAttr(entry, cfg.LoginAttr, "sAMAccountName", "uid")
	name := firstAttr(entry, cfg.NameAttr, "cn")
	if name == "" {
		name = login
	}

	gender := ""
	if cfg.GenderAttr != "" {
		gender = strings.TrimSpace(entry.GetAttributeValue(cfg.GenderAttr))
	}
	if gender == "" {
		gender = cfg.GenderFallback
	}

	return domain.Candidate{
		LoginName:      login,
		DisplayName:    name,
		Gender:         gender,
		DepartmentName: strings.TrimSpace(entry.GetAttributeValue(cfg.DepartmentAttr)),
		Title:          strings.TrimSpace(entry.GetAttributeValue(cfg.TitleAttr)),
		Mobile:         strings.TrimSpace(entry.GetAttributeValue(cfg.MobileAttr)),
		Email:          strings.TrimSpace(entry.GetAttributeValue(cfg.EmailAttr)),
	}
}

func firstAttr(entry *ldap.Entry, names ...string) string {
	for _, name := range names {
		if name == "" {
			continue
		}
		if value := strings.TrimSpace(entry.GetAttributeValue(name)); value != "" {
			return value
		}
	}
	return ""
}
