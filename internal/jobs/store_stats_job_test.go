package jobs_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"dilivry/internal/adapters/out/mem"
	"dilivry/internal/core/domain/model/chat"
	"dilivry/internal/jobs"
)

func TestJobManager_StartStop(t *testing.T) {
	store := mem.NewStore()
	c, err := chat.NewPublicChat(-1001, "Neighborhood")
	require.NoError(t, err)
	require.NoError(t, store.UpdateChat(context.Background(), c))

	jm := jobs.NewJobManager(store, slog.Default())

	require.NoError(t, jm.StartAll())
	jm.StopAll()
}
