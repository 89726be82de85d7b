package cmd

// Store backends selectable via STORE_BACKEND.
const (
	StoreBackendMem   = "mem"
	StoreBackendRedis = "redis"
)

type Config struct {
	HTTPPort       string
	StoreBackend   string
	RedisAddr      string
	RedisDB        int
	RedisKeyPrefix string
}
