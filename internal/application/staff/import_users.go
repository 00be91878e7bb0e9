package staff

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"

	domain "github.com/mohammadpnp/staff-admin/internal/domain/staff"
	"github.com/mohammadpnp/staff-admin/internal/translit"
)

const (
	SourceFile      = "file"
	SourceDirectory = "ldap"

	ModeMerge   = "merge"
	ModeRewrite = "rewrite"

	StatusSuccess = "success"
	StatusError   = "error"
)

// Row maps a source-specific column header to its cell value.
type Row map[string]string

// SpreadsheetSource normalizes an uploaded spreadsheet into rows. Errors are
// classified with the staff.ErrSource* sentinels.
type SpreadsheetSource interface {
	Rows(ctx context.Context, path string) ([]Row, error)
}

// Headers names the spreadsheet columns in the deployment's locale.
type Headers struct {
	Username   string
	Name       string
	Gender     string
	Department string
	Password   string
	Title      string
	Mobile     string
	Email      string
}

type ImportUsersInput struct {
	Type string `json:"type"`
	File string `json:"file"`
	Mode string `json:"mode"`
}

// ImportUsersOutput is the structured result consumed by the UI layer. No
// error crosses this boundary; failures are folded into Status and Message.
type ImportUsersOutput struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Refresh bool   `json:"refresh"`
}

type ImportUsers interface {
	Execute(ctx context.Context, in ImportUsersInput) ImportUsersOutput
}

type importUsers struct {
	source      SpreadsheetSource
	directory   domain.DirectoryImporter
	users       domain.UserRepository
	departments domain.DepartmentRepository
	runs        domain.ImportRunRepository
	hasher      domain.PasswordHasher
	headers     Headers
}

func NewImportUsers(
	source SpreadsheetSource,
	directory domain.DirectoryImporter,
	users domain.UserRepository,
	departments domain.DepartmentRepository,
	runs domain.ImportRunRepository,
	hasher domain.PasswordHasher,
	headers Headers,
) ImportUsers {
	return &importUsers{
		source:      source,
		directory:   directory,
		users:       users,
		departments: departments,
		runs:        runs,
		hasher:      hasher,
		headers:     headers,
	}
}

func (uc *importUsers) Execute(ctx context.Context, in ImportUsersInput) ImportUsersOutput {
	switch in.Type {
	case SourceFile:
		return uc.importFile(ctx, in.File)
	case SourceDirectory:
		return uc.importDirectory(ctx, in.Mode)
	default:
		return ImportUsersOutput{Status: StatusError, Message: fmt.Sprintf("unknown import type %q", in.Type)}
	}
}

// importFile runs the whole spreadsheet synchronously, row by row. Each
// successful row is committed immediately; the first failure aborts the
// batch, and earlier rows stay committed.
func (uc *importUsers) importFile(ctx context.Context, path string) ImportUsersOutput {
	run := &domain.ImportRun{Source: SourceFile, SourcePath: path, StartedAt: time.Now()}

	rows, err := uc.source.Rows(ctx, path)
	if err != nil {
		return uc.fail(ctx, run, err.Error())
	}

	for _, row := range rows {
		candidate := uc.candidateFromRow(row)
		if err := candidate.Validate(); err != nil {
			return uc.fail(ctx, run, err.Error())
		}

		resurrected, err := uc.importCandidate(ctx, candidate)
		if err != nil {
			return uc.fail(ctx, run, err.Error())
		}

		run.Processed++
		if resurrected {
			run.Resurrected++
		} else {
			run.Created++
		}
	}

	uc.finish(ctx, run)
	return ImportUsersOutput{Status: StatusSuccess, Message: "upload succeeded", Refresh: true}
}

func (uc *importUsers) importDirectory(ctx context.Context, mode string) ImportUsersOutput {
	run := &domain.ImportRun{Source: SourceDirectory, Mode: mode, StartedAt: time.Now()}

	if mode != ModeMerge && mode != ModeRewrite {
		return uc.fail(ctx, run, fmt.Sprintf("unknown sync mode %q", mode))
	}

	if err := uc.directory.ImportUsers(ctx, mode); err != nil {
		message := strings.TrimSpace(err.Error())
		if message == "" {
			message = "directory sync failed"
		}
		return uc.fail(ctx, run, message)
	}

	uc.finish(ctx, run)
	return ImportUsersOutput{Status: StatusSuccess, Message: "directory sync succeeded", Refresh: true}
}

// importCandidate converts one validated candidate into a committed write:
// create, create-with-suffix on an active collision, or resurrect the
// soft-deleted row in place. Reports whether the row was a resurrection.
func (uc *importUsers) importCandidate(ctx context.Context, candidate domain.Candidate) (bool, error) {
	department, err := uc.departments.GetOrCreate(ctx, candidate.DepartmentName)
	if err != nil {
		return false, err
	}

	login := translit.LoginName(candidate.LoginName)

	match, err := uc.users.FindByUsernameAnyState(ctx, login)
	if err != nil {
		return false, err
	}

	var user domain.User
	switch match.State {
	case domain.MatchNone:
		user.Username = login
	case domain.MatchSoftDeleted:
		// Keeps the original row and id; the suffix is applied here too,
		// mirroring the collision branch.
		user = match.User
		user.Username = login + randomNumericSuffix()
	case domain.MatchActive:
		user.Username = login + randomNumericSuffix()
	}

	user.Name = candidate.DisplayName
	user.Gender = candidate.Gender
	user.DepartmentID = department.ID

	rawPassword := candidate.RawPassword
	if rawPassword == "" {
		// Fallback default password is the normalized login name itself,
		// never the empty string.
		rawPassword = login
	}
	hash, err := uc.hasher.Hash(rawPassword)
	if err != nil {
		return false, err
	}
	user.PasswordHash = hash

	if candidate.Title != "" {
		user.Title = candidate.Title
	}
	if candidate.Mobile != "" {
		user.Mobile = candidate.Mobile
	}
	if candidate.Email != "" {
		user.Email = candidate.Email
	}

	if match.State == domain.MatchSoftDeleted {
		return true, uc.users.Resurrect(ctx, &user)
	}
	return false, uc.users.Create(ctx, &user)
}

func (uc *importUsers) candidateFromRow(row Row) domain.Candidate {
	return domain.Candidate{
		LoginName:      strings.TrimSpace(row[uc.headers.Username]),
		DisplayName:    strings.TrimSpace(row[uc.headers.Name]),
		Gender:         strings.TrimSpace(row[uc.headers.Gender]),
		DepartmentName: strings.TrimSpace(row[uc.headers.Department]),
		RawPassword:    row[uc.headers.Password],
		Title:          strings.TrimSpace(row[uc.headers.Title]),
		Mobile:         strings.TrimSpace(row[uc.headers.Mobile]),
		Email:          strings.TrimSpace(row[uc.headers.Email]),
	}
}

func (uc *importUsers) fail(ctx context.Context, run *domain.ImportRun, message string) ImportUsersOutput {
	run.Status = domain.RunFailed
	run.ErrorMessage = truncateReason(message)
	run.FinishedAt = time.Now()
	if err := uc.runs.Record(ctx, run); err != nil {
		slog.Warn("record import run", "source", run.Source, "error", err)
	}
	return ImportUsersOutput{Status: StatusError, Message: message}
}

func (uc *importUsers) finish(ctx context.Context, run *domain.ImportRun) {
	run.Status = domain.RunSucceeded
	run.FinishedAt = time.Now()
	if err := uc.runs.Record(ctx, run); err != nil {
		slog.Warn("record import run", "source", run.Source, "error", err)
	}
}

// randomNumericSuffix is the 4-digit disambiguation suffix appended on login
// name collisions.
func randomNumericSuffix() string {
	return fmt.Sprintf("%04d", rand.IntN(10000))
}

func truncateReason(reason string) string {
	const maxLen = 1000
	reason = strings.TrimSpace(reason)
	if len(reason) <= maxLen {
		return reason
	}
	return reason[:maxLen]
}
