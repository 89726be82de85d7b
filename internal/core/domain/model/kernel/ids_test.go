package kernel_test

import (
	"testing"

	"dilivry/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
)

func TestIDFormatting(t *testing.T) {
	assert.Equal(t, "42", kernel.OrderID(42).String())
	assert.Equal(t, "7", kernel.UserID(7).String())
	assert.Equal(t, "-100123", kernel.ChatID(-100123).String())
	assert.Equal(t, "55", kernel.MessageID(55).String())
}

func TestChatIDIsPrivate(t *testing.T) {
	assert.True(t, kernel.ChatID(12345).IsPrivate())
	assert.False(t, kernel.ChatID(-100123).IsPrivate())
	assert.False(t, kernel.ChatID(0).IsPrivate())
}

func TestPrivateChatOf(t *testing.T) {
	uid := kernel.UserID(998877)
	cid := kernel.PrivateChatOf(uid)

	assert.True(t, cid.IsPrivate())
	assert.Equal(t, kernel.ChatID(998877), cid)
}
