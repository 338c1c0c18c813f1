package team

import (
	"fmt"
	"time"

	"deskd/internal/shared/biztime"
)

type MemberRole string

const (
	MemberRoleLead   MemberRole = "lead"
	MemberRoleMember MemberRole = "member"
)

func (r MemberRole) IsValid() bool {
	return r == MemberRoleLead || r == MemberRoleMember
}

func (r MemberRole) String() string {
	return string(r)
}

// Member is a user's membership in a team.
type Member struct {
	UserID   uint
	Role     MemberRole
	JoinedAt time.Time
}

// Team groups agents for organizational purposes.
type Team struct {
	id          uint
	name        string
	description string
	members     []Member
	createdAt   time.Time
	updatedAt   time.Time
}

func NewTeam(name, description string) (*Team, error) {
	if name == "" {
		return nil, fmt.Errorf("team name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("team name cannot exceed 100 characters")
	}

	now := biztime.NowUTC()
	return &Team{
		name:        name,
		description: description,
		members:     []Member{},
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructTeam(
	id uint,
	name string,
	description string,
	members []Member,
	createdAt, updatedAt time.Time,
) (*Team, error) {
	if id == 0 {
		return nil, fmt.Errorf("team ID cannot be zero")
	}
	if name == "" {
		return nil, fmt.Errorf("team name is required")
	}

	if members == nil {
		members = []Member{}
	}

	return &Team{
		id:          id,
		name:        name,
		description: description,
		members:     members,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (t *Team) ID() uint             { return t.id }
func (t *Team) Name() string         { return t.name }
func (t *Team) Description() string  { return t.description }
func (t *Team) CreatedAt() time.Time { return t.createdAt }
func (t *Team) UpdatedAt() time.Time { return t.updatedAt }

func (t *Team) Members() []Member {
	membersCopy := make([]Member, len(t.members))
	copy(membersCopy, t.members)
	return membersCopy
}

func (t *Team) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("team ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("team ID cannot be zero")
	}
	t.id = id
	return nil
}

func (t *Team) Update(name, description string) error {
	if name == "" {
		return fmt.Errorf("team name is required")
	}
	if len(name) > 100 {
		return fmt.Errorf("team name cannot exceed 100 characters")
	}

	t.name = name
	t.description = description
	t.updatedAt = biztime.NowUTC()
	return nil
}

func (t *Team) HasMember(userID uint) bool {
	for _, m := range t.members {
		if m.UserID == userID {
			return true
		}
	}
	return false
}

func (t *Team) AddMember(userID uint, role MemberRole) error {
	if userID == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	if !role.IsValid() {
		return fmt.Errorf("invalid member role: %s", role)
	}
	if t.HasMember(userID) {
		return fmt.Errorf("user %d is already a member", userID)
	}

	t.members = append(t.members, Member{
		UserID:   userID,
		Role:     role,
		JoinedAt: biztime.NowUTC(),
	})
	t.updatedAt = biztime.NowUTC()
	return nil
}

func (t *Team) RemoveMember(userID uint) error {
	for i, m := range t.members {
		if m.UserID == userID {
			t.members = append(t.members[:i], t.members[i+1:]...)
			t.updatedAt = biztime.NowUTC()
			return nil
		}
	}
	return fmt.Errorf("user %d is not a member", userID)
}
