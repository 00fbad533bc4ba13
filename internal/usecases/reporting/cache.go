package reporting

import (
	"context"
	"fmt"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	cacheVersionKey = "sales_data:version"
	cacheKeyPrefix  = "sales_data:range"
)

// RangeCache guarda no Redis os intervalos já lidos do banco.
// Um RangeCache nil (ou sem cliente) é válido e nunca encontra nada.
type RangeCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRangeCache(client *redis.Client, ttl time.Duration) *RangeCache {
	return &RangeCache{client: client, ttl: ttl}
}

func (c *RangeCache) enabled() bool {
	return c != nil && c.client != nil
}

func (c *RangeCache) version(ctx context.Context) (int64, error) {
	ver, err := c.client.Get(ctx, cacheVersionKey).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	return ver, err
}

func (c *RangeCache) key(ctx context.Context, startDate, endDate time.Time) (string, error) {
	ver, err := c.version(ctx)
	if err != nil {
		return "", err
	}

	return strings.Join([]string{
		cacheKeyPrefix,
		startDate.Format(time.DateOnly),
		endDate.Format(time.DateOnly),
		fmt.Sprintf("v%d", ver),
	}, ":"), nil
}

// Get devolve os registros em cache; qualquer falha do Redis conta como miss
func (c *RangeCache) Get(ctx context.Context, startDate, endDate time.Time) ([]*domain.DailyMetric, bool) {
	if !c.enabled() {
		return nil, false
	}

	key, err := c.key(ctx, startDate, endDate)
	if err != nil {
		log.ForContext(ctx).WithError(err).Warn("Erro ao montar chave do cache")
		return nil, false
	}

	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.ForContext(ctx).WithError(err).Warn("Erro ao ler cache")
		}
		return nil, false
	}

	var records []*domain.DailyMetric
	if err := json.Unmarshal(payload, &records); err != nil {
		log.ForContext(ctx).WithError(err).Warn("Cache corrompido, ignorando")
		return nil, false
	}

	return records, len(records) > 0
}

func (c *RangeCache) Set(ctx context.Context, startDate, endDate time.Time, records []*domain.DailyMetric) {
	if !c.enabled() || len(records) == 0 {
		return
	}

	key, err := c.key(ctx, startDate, endDate)
	if err != nil {
		log.ForContext(ctx).WithError(err).Warn("Erro ao montar chave do cache")
		return
	}

	payload, err := json.Marshal(records)
	if err != nil {
		log.ForContext(ctx).WithError(err).Warn("Erro ao serializar registros para o cache")
		return
	}

	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		log.ForContext(ctx).WithError(err).Warn("Erro ao gravar cache")
	}
}

// Bump invalida todas as entradas incrementando a versão global
func (c *RangeCache) Bump(ctx context.Context) {
	if !c.enabled() {
		return
	}

	if err := c.client.Incr(ctx, cacheVersionKey).Err(); err != nil {
		log.ForContext(ctx).WithError(err).Warn("Erro ao invalidar cache")
	}
}
