package user

type Role string

const (
	RoleMember Role = "member"
	RoleAdmin  Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleMember, RoleAdmin:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

type MembershipType string

const (
	MembershipBasic   MembershipType = "basic"
	MembershipPremium MembershipType = "premium"
	MembershipStudent MembershipType = "student"
	MembershipFamily  MembershipType = "family"
)

// NewMembershipType returns basic for an empty input.
func NewMembershipType(s string) (MembershipType, error) {
	if s == "" {
		return MembershipBasic, nil
	}
	m := MembershipType(s)
	switch m {
	case MembershipBasic, MembershipPremium, MembershipStudent, MembershipFamily:
		return m, nil
	default:
		return "", ErrInvalidMembershipType
	}
}

func (m MembershipType) String() string {
	return string(m)
}

type SkillLevel string

const (
	SkillBeginner     SkillLevel = "beginner"
	SkillIntermediate SkillLevel = "intermediate"
	SkillAdvanced     SkillLevel = "advanced"
)

// NewSkillLevel returns beginner for an empty input.
func NewSkillLevel(s string) (SkillLevel, error) {
	if s == "" {
		return SkillBeginner, nil
	}
	l := SkillLevel(s)
	switch l {
	case SkillBeginner, SkillIntermediate, SkillAdvanced:
		return l, nil
	default:
		return "", ErrInvalidSkillLevel
	}
}

func (l SkillLevel) String() string {
	return string(l)
}
