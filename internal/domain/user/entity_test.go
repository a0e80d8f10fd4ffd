//go:build unit

package user_test

import (
	"strings"
	"testing"
	"time"

	"badminton-club/internal/domain/user"
	"badminton-club/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmpopts.IgnoreUnexported(user.User{}),
	cmpopts.EquateEmpty(),
}

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestNewMember(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	email, err := user.NewEmail("Player@Example.com")
	require.NoError(t, err)
	name, err := user.NewName("Jane", "Smith")
	require.NoError(t, err)
	phone, err := user.NewPhone("0412345678")
	require.NoError(t, err)

	u := user.NewMember(email, "hash", name, phone, user.MembershipBasic, user.SkillBeginner, now)

	assert.NotEqual(t, uuid.Nil, u.ID())
	assert.Equal(t, "player@example.com", u.Email().Value())
	assert.Equal(t, user.RoleMember, u.Role())
	assert.True(t, u.IsActive())
	assert.False(t, u.IsAdmin())
	assert.Equal(t, now.AddDate(1, 0, 0), u.MembershipExpiry())
	assert.Equal(t, now, u.CreatedAt())
	assert.Equal(t, now, u.UpdatedAt())
	assert.Equal(t, "Jane Smith", u.Name().Full())
}

func TestUser(t *testing.T) {
	t.Run("builder produces a valid member", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().WithPasswordHash("hashed_password").BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		expected, err := builder.NewUserBuilder().WithID(actual.ID()).WithPasswordHash("hashed_password").BuildDomain()
		require.NoError(t, err)
		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("User mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, "hashed_password", actual.PasswordHash())
	})

	t.Run("email", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "valid", mutate: func(b *builder.UserBuilder) { b.WithEmail("valid@example.com") }},
			{name: "empty", mutate: func(b *builder.UserBuilder) { b.WithEmail("") }, errIs: user.ErrInvalidEmail},
			{name: "no domain", mutate: func(b *builder.UserBuilder) { b.WithEmail("invalid-email") }, errIs: user.ErrInvalidEmail},
			{name: "no at sign", mutate: func(b *builder.UserBuilder) { b.WithEmail("invalidemail.com") }, errIs: user.ErrInvalidEmail},
		})
	})

	t.Run("role", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "member", mutate: func(b *builder.UserBuilder) { b.WithRole("member") }},
			{name: "admin", mutate: func(b *builder.UserBuilder) { b.WithRole("admin") }},
			{name: "unknown", mutate: func(b *builder.UserBuilder) { b.WithRole("operator") }, errIs: user.ErrInvalidRole},
			{name: "empty", mutate: func(b *builder.UserBuilder) { b.WithRole("") }, errIs: user.ErrInvalidRole},
		})
	})

	t.Run("profile fields", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "short phone", mutate: func(b *builder.UserBuilder) { b.WithPhone("12345") }, errIs: user.ErrInvalidPhone},
			{name: "missing last name", mutate: func(b *builder.UserBuilder) { b.WithName("Jane", " ") }, errIs: user.ErrEmptyName},
			{name: "unknown membership", mutate: func(b *builder.UserBuilder) { b.MembershipType = "gold" }, errIs: user.ErrInvalidMembershipType},
			{name: "empty membership defaults", mutate: func(b *builder.UserBuilder) { b.MembershipType = "" }},
			{name: "unknown skill", mutate: func(b *builder.UserBuilder) { b.SkillLevel = "pro" }, errIs: user.ErrInvalidSkillLevel},
		})
	})
}

func TestApplyProfile(t *testing.T) {
	u := builder.NewUserBuilder().WithPasswordHash("hash").MustBuildDomain()
	later := u.UpdatedAt().Add(time.Hour)

	name, err := user.NewName("Janet", "Smith")
	require.NoError(t, err)
	level := user.SkillAdvanced

	u.ApplyProfile(user.ProfileChanges{Name: &name, SkillLevel: &level}, later)

	assert.Equal(t, "Janet", u.Name().First())
	assert.Equal(t, user.SkillAdvanced, u.SkillLevel())
	assert.Equal(t, "0412345678", u.Phone().Value())
	assert.Equal(t, later, u.UpdatedAt())
	assert.True(t, user.ProfileChanges{}.IsEmpty())
}

func TestNewCredentials(t *testing.T) {
	c, err := user.NewCredentials(" Player@Example.com ", "x")
	require.NoError(t, err)
	assert.Equal(t, "player@example.com", c.Email().Value())
	assert.Equal(t, "x", c.Password())

	_, err = user.NewCredentials("nope", "password123")
	assert.ErrorIs(t, err, user.ErrInvalidEmail)

	_, err = user.NewPassword("12345")
	assert.ErrorIs(t, err, user.ErrPasswordTooWeak)

	_, err = user.NewPassword(strings.Repeat("a", user.MaxPasswordLength+1))
	assert.ErrorIs(t, err, user.ErrPasswordTooLong)
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewUserBuilder().WithPasswordHash("hash").With(c.mutate).BuildDomain()
			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
