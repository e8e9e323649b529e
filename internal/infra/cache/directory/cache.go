package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-AvailabilityService/internal/integrations/directoryservice"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// DirectoryClient интерфейс нижележащего клиента DirectoryService
type DirectoryClient interface {
	GetBusinessBySlug(ctx context.Context, slug string) (*directoryservice.Business, error)
	GetServices(ctx context.Context, businessID int64, serviceIDs []int64) ([]directoryservice.Service, error)
}

// Cache cache-aside обертка над клиентом DirectoryService: снапшот бизнеса
// кешируется в Redis с TTL. Снапшот - консистентная единица чтения, поэтому
// кешируется целиком, а не по частям.
//
// Ошибки Redis не фатальны: кеш деградирует до прямого похода в сервис
// с логированием на уровне Warn.
type Cache struct {
	client DirectoryClient
	rdb    *redis.Client
	ttl    time.Duration
	log    Logger
}

// New создает кеширующую обертку
func New(client DirectoryClient, rdb *redis.Client, ttl time.Duration, log Logger) *Cache {
	return &Cache{
		client: client,
		rdb:    rdb,
		ttl:    ttl,
		log:    log,
	}
}

// GetBusinessBySlug возвращает снапшот бизнеса из кеша либо из сервиса
func (c *Cache) GetBusinessBySlug(ctx context.Context, slug string) (*directoryservice.Business, error) {
	key := cacheKey(slug)

	cached, err := c.rdb.Get(ctx, key).Result()
	if err == nil {
		var business directoryservice.Business
		if unmarshalErr := json.Unmarshal([]byte(cached), &business); unmarshalErr == nil {
			return &business, nil
		}
		// Битое значение в кеше - перечитываем из сервиса
		c.log.Warn("directory cache: corrupted entry for slug=%s, refetching", slug)
	} else if err != redis.Nil {
		c.log.Warn("directory cache: redis get failed for slug=%s: %v", slug, err)
	}

	business, err := c.client.GetBusinessBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(business)
	if err == nil {
		if setErr := c.rdb.Set(ctx, key, payload, c.ttl).Err(); setErr != nil {
			c.log.Warn("directory cache: redis set failed for slug=%s: %v", slug, setErr)
		}
	}

	return business, nil
}

// GetServices проксирует запрос услуг без кеширования: набор ID в запросе
// произвольный, а каталог меняется чаще снапшота бизнеса
func (c *Cache) GetServices(ctx context.Context, businessID int64, serviceIDs []int64) ([]directoryservice.Service, error) {
	return c.client.GetServices(ctx, businessID, serviceIDs)
}

func cacheKey(slug string) string {
	return fmt.Sprintf("availability:business:%s", slug)
}
