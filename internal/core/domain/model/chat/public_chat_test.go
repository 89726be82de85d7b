package chat_test

import (
	"testing"

	"dilivry/internal/core/domain/model/chat"
	"dilivry/internal/core/domain/model/kernel"
	"dilivry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPublicChat(t *testing.T) {
	c, err := chat.NewPublicChat(-100500, "Yerevan deliveries")
	require.NoError(t, err)

	assert.Equal(t, kernel.ChatID(-100500), c.ID())
	assert.Equal(t, "Yerevan deliveries", c.Title())
	assert.Empty(t, c.Members())
	assert.NoError(t, c.Validate())
}

func TestNewPublicChatRejectsPrivateIDs(t *testing.T) {
	_, err := chat.NewPublicChat(42, "private dialog")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = chat.NewPublicChat(0, "")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestMembershipIsIdempotent(t *testing.T) {
	c, err := chat.NewPublicChat(-1, "pack")
	require.NoError(t, err)

	c.AddMember(7)
	c.AddMember(8)
	c.AddMember(7)
	assert.Equal(t, []kernel.UserID{7, 8}, c.Members())
	assert.True(t, c.HasMember(7))

	c.RemoveMember(7)
	c.RemoveMember(7)
	assert.Equal(t, []kernel.UserID{8}, c.Members())
	assert.False(t, c.HasMember(7))
}

func TestCloneIsIndependent(t *testing.T) {
	c, err := chat.NewPublicChat(-1, "pack")
	require.NoError(t, err)
	c.AddMember(7)

	dup := c.Clone()
	dup.AddMember(8)
	dup.Rename("renamed")

	assert.Equal(t, []kernel.UserID{7}, c.Members())
	assert.Equal(t, "pack", c.Title())
	assert.Equal(t, []kernel.UserID{7, 8}, dup.Members())
}
