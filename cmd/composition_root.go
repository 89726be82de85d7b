package cmd

import (
	"log/slog"

	rd "github.com/redis/go-redis/v9"

	httpin "dilivry/internal/adapters/in/http"
	"dilivry/internal/adapters/out/mem"
	"dilivry/internal/adapters/out/redisstore"
	"dilivry/internal/core/application/usecases/commands"
	"dilivry/internal/core/application/usecases/queries"
	"dilivry/internal/core/ports"
	"dilivry/internal/jobs"
	"dilivry/internal/pkg/errs"
)

type CompositionRoot struct {
	store  ports.Store
	logger *slog.Logger
}

// NewCompositionRoot builds the object graph for the configured store
// backend.
func NewCompositionRoot(configs Config, logger *slog.Logger) (CompositionRoot, error) {
	store, err := newStore(configs, logger)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		store:  store,
		logger: logger,
	}, nil
}

func newStore(configs Config, logger *slog.Logger) (ports.Store, error) {
	switch configs.StoreBackend {
	case StoreBackendMem, "":
		return mem.NewStore(), nil
	case StoreBackendRedis:
		client := rd.NewClient(&rd.Options{
			Addr: configs.RedisAddr,
			DB:   configs.RedisDB,
		})
		return redisstore.NewStore(client, configs.RedisKeyPrefix, logger)
	default:
		return nil, errs.NewValueIsInvalidError("storeBackend")
	}
}

func (c *CompositionRoot) Store() ports.Store {
	return c.store
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		commands.NewCreateOrderCommandHandler(c.store),
		commands.NewPerformActionCommandHandler(c.store),
		commands.NewTrackPresenceCommandHandler(c.store),
		commands.NewRemoveMemberCommandHandler(c.store),
		commands.NewRecordPostingCommandHandler(c.store),
		queries.NewOrdersByStatusQueryHandler(c.store),
		queries.NewOrdersSubmittedByQueryHandler(c.store),
		queries.NewActiveAssignmentsQueryHandler(c.store),
		queries.NewResolvePublicChatQueryHandler(c.store),
		queries.NewOrderPostingsQueryHandler(c.store),
		queries.NewStoreStatsQueryHandler(c.store),
		queries.NewUserProfileQueryHandler(c.store),
		c.logger,
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.store, c.logger)
}
