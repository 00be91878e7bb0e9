package directory

import (
	"testing"

	"github.com/go-ldap/ldap/v3"

	"github.com/mohammadpnp/staff-admin/internal/config"
)

func testLDAPConfig() config.LDAP {
	return config.LDAP{
		LoginAttr:      "uid",
		NameAttr:       "displayName",
		DepartmentAttr: "ou",
		GenderFallback: "unknown",
		TitleAttr:      "title",
		MobileAttr:     "mobile",
		EmailAttr:      "mail",
	}
}

func TestEntryCandidateMapsAttributes(t *testing.T) {
	t.Parallel()

	entry := ldap.NewEntry("uid=zhangsan,ou=Radiology,dc=example,dc=org", map[string][]string{
		"uid":         {"zhangsan"},
		"displayName": {"Zhang San"},
		"ou":          {"Radiology"},
		"title":       {"Physician"},
		"mobile":      {"13800000000"},
		"mail":        {"zhangsan@example.org"},
	})

	candidate := entryCandidate(testLDAPConfig(), entry)

	if candidate.LoginName != "zhangsan" {
		t.Fatalf("login: got %q", candidate.LoginName)
	}
	if candidate.DisplayName != "Zhang San" {
		t.Fatalf("name: got %q", candidate.DisplayName)
	}
	if candidate.DepartmentName != "Radiology" {
		t.Fatalf("department: got %q", candidate.DepartmentName)
	}
	if candidate.Title != "Physician" || candidate.Mobile != "13800000000" || candidate.Email != "zhangsan@example.org" {
		t.Fatalf("optional fields: %+v", candidate)
	}
}

func TestEntryCandidateGenderFallback(t *testing.T) {
	t.Parallel()

	cfg := testLDAPConfig()
	cfg.GenderAttr = "gender"

	withGender := ldap.NewEntry("uid=alice", map[string][]string{
		"uid":    {"alice"},
		"gender": {"female"},
	})
	if got := entryCandidate(cfg, withGender).Gender; got != "female" {
		t.Fatalf("expected attribute value, got %q", got)
	}

	withoutGender := ldap.NewEntry("uid=bob", map[string][]string{
		"uid": {"bob"},
	})
	if got := entryCandidate(cfg, withoutGender).Gender; got != "unknown" {
		t.Fatalf("expected fallback, got %q", got)
	}
}

func TestEntryCandidateNameDefaultsToLogin(t *testing.T) {
	t.Parallel()

	entry := ldap.NewEntry("uid=carol", map[string][]string{
		"uid": {"carol"},
	})
	if got := entryCandidate(testLDAPConfig(), entry).DisplayName; got != "carol" {
		t.Fatalf("expected login as display name, got %q", got)
	}
}

func TestFirstAttrPrecedence(t *testing.T) {
	t.Parallel()

	entry := ldap.NewEntry("cn=dave", map[string][]string{
		"sAMAccountName": {"dave.ad"},
		"uid":            {"dave"},
	})

	// The configured attribute wins over the built-in alternatives.
	if got := firstAttr(entry, "uid", "sAMAccountName"); got != "dave" {
		t.Fatalf("got %q", got)
	}
	// Empty and absent names are skipped.
	if got := firstAttr(entry, "", "missing", "sAMAccountName"); got != "dave.ad" {
		t.Fatalf("got %q", got)
	}
	if got := firstAttr(entry, "missing"); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}
