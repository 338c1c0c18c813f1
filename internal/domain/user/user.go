package user

import (
	"fmt"
	"strings"
	"time"

	vo "deskd/internal/domain/user/valueobjects"
	"deskd/internal/shared/authorization"
	"deskd/internal/shared/biztime"
)

// User is the aggregate root for an account. Agents additionally carry a
// skill list consulted by the routing engine.
type User struct {
	id           uint
	email        *vo.Email
	name         *vo.Name
	passwordHash string
	role         authorization.UserRole
	status       vo.Status
	skills       []*vo.Skill
	teamID       *uint
	lastLoginAt  *time.Time
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(
	email *vo.Email,
	name *vo.Name,
	passwordHash string,
	role authorization.UserRole,
) (*User, error) {
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}
	if name == nil {
		return nil, fmt.Errorf("name is required")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	now := biztime.NowUTC()
	return &User{
		email:        email,
		name:         name,
		passwordHash: passwordHash,
		role:         role,
		status:       vo.StatusActive,
		skills:       []*vo.Skill{},
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructUser(
	id uint,
	email *vo.Email,
	name *vo.Name,
	passwordHash string,
	role authorization.UserRole,
	status vo.Status,
	skills []*vo.Skill,
	teamID *uint,
	lastLoginAt *time.Time,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}
	if name == nil {
		return nil, fmt.Errorf("name is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}

	if skills == nil {
		skills = []*vo.Skill{}
	}

	return &User{
		id:           id,
		email:        email,
		name:         name,
		passwordHash: passwordHash,
		role:         role,
		status:       status,
		skills:       skills,
		teamID:       teamID,
		lastLoginAt:  lastLoginAt,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() uint                      { return u.id }
func (u *User) Email() *vo.Email              { return u.email }
func (u *User) Name() *vo.Name                { return u.name }
func (u *User) PasswordHash() string          { return u.passwordHash }
func (u *User) Role() authorization.UserRole  { return u.role }
func (u *User) Status() vo.Status             { return u.status }
func (u *User) TeamID() *uint                 { return u.teamID }
func (u *User) LastLoginAt() *time.Time       { return u.lastLoginAt }
func (u *User) CreatedAt() time.Time          { return u.createdAt }
func (u *User) UpdatedAt() time.Time          { return u.updatedAt }

func (u *User) Skills() []*vo.Skill {
	skillsCopy := make([]*vo.Skill, len(u.skills))
	copy(skillsCopy, u.skills)
	return skillsCopy
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

func (u *User) IsActive() bool {
	return u.status.IsActive()
}

func (u *User) IsAgent() bool {
	return u.role.IsAgent()
}

func (u *User) IsStaff() bool {
	return u.role.IsStaff()
}

// HasSkill reports whether the user has a skill with the given name,
// compared case-insensitively.
func (u *User) HasSkill(name string) bool {
	for _, skill := range u.skills {
		if skill.Matches(name) {
			return true
		}
	}
	return false
}

// HasAllSkills reports whether the user's skill set is a superset of the
// required names. An empty requirement list is satisfied by every user.
func (u *User) HasAllSkills(required []string) bool {
	for _, name := range required {
		if strings.TrimSpace(name) == "" {
			continue
		}
		if !u.HasSkill(name) {
			return false
		}
	}
	return true
}

func (u *User) AddSkill(skill *vo.Skill) error {
	if skill == nil {
		return fmt.Errorf("skill cannot be nil")
	}
	if u.HasSkill(skill.Name()) {
		return fmt.Errorf("user already has skill: %s", skill.Name())
	}

	u.skills = append(u.skills, skill)
	u.updatedAt = biztime.NowUTC()
	return nil
}

func (u *User) RemoveSkill(name string) error {
	for i, skill := range u.skills {
		if skill.Matches(name) {
			u.skills = append(u.skills[:i], u.skills[i+1:]...)
			u.updatedAt = biztime.NowUTC()
			return nil
		}
	}
	return fmt.Errorf("user does not have skill: %s", name)
}

// ReplaceSkills swaps the full skill list.
func (u *User) ReplaceSkills(skills []*vo.Skill) {
	if skills == nil {
		skills = []*vo.Skill{}
	}
	u.skills = skills
	u.updatedAt = biztime.NowUTC()
}

func (u *User) JoinTeam(teamID uint) error {
	if teamID == 0 {
		return fmt.Errorf("team ID cannot be zero")
	}
	u.teamID = &teamID
	u.updatedAt = biztime.NowUTC()
	return nil
}

func (u *User) LeaveTeam() {
	u.teamID = nil
	u.updatedAt = biztime.NowUTC()
}

func (u *User) Suspend() error {
	if u.status.IsSuspended() {
		return fmt.Errorf("user is already suspended")
	}
	u.status = vo.StatusSuspended
	u.updatedAt = biztime.NowUTC()
	return nil
}

func (u *User) Activate() error {
	if u.status.IsActive() {
		return fmt.Errorf("user is already active")
	}
	u.status = vo.StatusActive
	u.updatedAt = biztime.NowUTC()
	return nil
}

func (u *User) RecordLogin() {
	now := biztime.NowUTC()
	u.lastLoginAt = &now
	u.updatedAt = now
}

func (u *User) ChangeRole(role authorization.UserRole) error {
	if !role.IsValid() {
		return fmt.Errorf("invalid role: %s", role)
	}
	u.role = role
	u.updatedAt = biztime.NowUTC()
	return nil
}

func (u *User) UpdateName(name *vo.Name) error {
	if name == nil {
		return fmt.Errorf("name is required")
	}
	u.name = name
	u.updatedAt = biztime.NowUTC()
	return nil
}

func (u *User) ChangePasswordHash(hash string) error {
	if hash == "" {
		return fmt.Errorf("password hash cannot be empty")
	}
	u.passwordHash = hash
	u.updatedAt = biztime.NowUTC()
	return nil
}
