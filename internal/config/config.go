package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is read once at startup and passed explicitly into constructors.
type Config struct {
	Port          string `env:"PORT" env-default:"8080"`
	DatabaseURL   string `env:"DATABASE_URL"`
	ImportBaseDir string `env:"IMPORT_BASE_DIR" env-default:"."`
	BcryptCost    int    `env:"BCRYPT_COST" env-default:"10"`

	Headers ImportHeaders
	LDAP    LDAP
}

// ImportHeaders are the spreadsheet column headers in the deployment's
// locale. Unknown headers in the file are ignored; a missing header reads as
// an absent value.
type ImportHeaders struct {
	Username   string `env:"IMPORT_HEADER_USERNAME" env-default:"username"`
	Name       string `env:"IMPORT_HEADER_NAME" env-default:"name"`
	Gender     string `env:"IMPORT_HEADER_GENDER" env-default:"gender"`
	Department string `env:"IMPORT_HEADER_DEPARTMENT" env-default:"department"`
	Password   string `env:"IMPORT_HEADER_PASSWORD" env-default:"password"`
	Title      string `env:"IMPORT_HEADER_TITLE" env-default:"title"`
	Mobile     string `env:"IMPORT_HEADER_MOBILE" env-default:"mobile"`
	Email      string `env:"IMPORT_HEADER_EMAIL" env-default:"email"`
}

type LDAP struct {
	URL          string `env:"LDAP_URL"`
	BindDN       string `env:"LDAP_BIND_DN"`
	BindPassword string `env:"LDAP_BIND_PASSWORD"`
	BaseDN       string `env:"LDAP_BASE_DN"`
	Filter       string `env:"LDAP_FILTER" env-default:"(objectClass=person)"`
	PageSize     uint32 `env:"LDAP_PAGE_SIZE" env-default:"500"`

	LoginAttr      string `env:"LDAP_ATTR_LOGIN" env-default:"uid"`
	NameAttr       string `env:"LDAP_ATTR_NAME" env-default:"displayName"`
	DepartmentAttr string `env:"LDAP_ATTR_DEPARTMENT" env-default:"ou"`
	GenderAttr     string `env:"LDAP_ATTR_GENDER"`
	GenderFallback string `env:"LDAP_GENDER_FALLBACK" env-default:"unknown"`
	TitleAttr      string `env:"LDAP_ATTR_TITLE" env-default:"title"`
	MobileAttr     string `env:"LDAP_ATTR_MOBILE" env-default:"mobile"`
	EmailAttr      string `env:"LDAP_ATTR_EMAIL" env-default:"mail"`
}

func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("DATABASE_URL is required")
	}
	return cfg, nil
}
