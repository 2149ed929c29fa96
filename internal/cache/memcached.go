//go:generate mockgen -destination=../mocks/cached_client_mock.go -package=mocks . CachedClient

package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"log/slog"
	"os"
	"strings"

	"github.com/IliaW/partner-evaluator/config"
	"github.com/IliaW/partner-evaluator/internal/model"
	"github.com/bradfitz/gomemcache/memcache"
	jsoniter "github.com/json-iterator/go"
)

type CachedClient interface {
	GetReport(string) (*model.Report, bool)
	SaveReport(*model.Report)
	Close()
}

type MemcachedClient struct {
	client *memcache.Client
	cfg    *config.CacheConfig
	log    *slog.Logger
}

func NewMemcachedClient(cacheConfig *config.CacheConfig, log *slog.Logger) *MemcachedClient {
	log.Info("connecting to memcached...")
	ss := new(memcache.ServerList)
	servers := strings.Split(cacheConfig.Servers, ",")
	err := ss.SetServers(servers...)
	if err != nil {
		log.Error("failed to set memcached servers.", slog.String("err", err.Error()))
		os.Exit(1)
	}
	c := &MemcachedClient{
		client: memcache.NewFromSelector(ss),
		cfg:    cacheConfig,
		log:    log,
	}
	c.log.Info("pinging the memcached.")
	err = c.client.Ping()
	if err != nil {
		log.Error("connection to the memcached is failed.", slog.String("err", err.Error()))
		os.Exit(1)
	}
	c.log.Info("connected to memcached!")

	return c
}

func (mc *MemcachedClient) GetReport(url string) (*model.Report, bool) {
	key := reportKey(url)
	item, err := mc.client.Get(key)
	if err != nil {
		if errors.Is(err, memcache.ErrCacheMiss) {
			mc.log.Debug("cache miss.", slog.String("url", url))
		} else {
			mc.log.Warn("failed to read report from cache.", slog.String("key", key),
				slog.String("err", err.Error()))
		}
		return nil, false
	}
	var report model.Report
	if err = jsoniter.Unmarshal(item.Value, &report); err != nil {
		mc.log.Warn("failed to unmarshal cached report.", slog.String("key", key),
			slog.String("err", err.Error()))
		return nil, false
	}
	return &report, true
}

func (mc *MemcachedClient) SaveReport(report *model.Report) {
	key := reportKey(report.URL)
	if err := mc.set(key, report, int32((mc.cfg.TtlForEvaluation).Seconds())); err != nil {
		mc.log.Error("failed to save report to cache.", slog.String("key", key),
			slog.String("err", err.Error()))
		return
	}
	mc.log.Debug("report saved to cache.")
}

func (mc *MemcachedClient) Close() {
	mc.log.Info("closing memcached connection.")
	err := mc.client.Close()
	if err != nil {
		mc.log.Error("failed to close memcached connection.", slog.String("err", err.Error()))
	}
}

func (mc *MemcachedClient) set(key string, value any, expiration int32) error {
	byteValue, err := jsoniter.Marshal(value)
	if err != nil {
		return err
	}
	item := &memcache.Item{
		Key:        key,
		Value:      byteValue,
		Expiration: expiration,
	}

	return mc.client.Set(item)
}

func reportKey(url string) string {
	return hashURL(url) + "-evaluation"
}

func hashURL(url string) string {
	hash := sha256.New()
	hash.Write([]byte(url))
	return hex.EncodeToString(hash.Sum(nil))
}
