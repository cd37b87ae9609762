package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"tutorly/config"
	"tutorly/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

var (
	// CacheClient is the generic cache client.
	CacheClient *redis.Client
	// AuthCacheClient is the dedicated client for authorization caching.
	AuthCacheClient *redis.Client
)

// InitCache initializes the generic Redis cache client.
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := CacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// InitAuthCache initializes the Redis client for authorization caching.
func InitAuthCache() {
	AuthCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAuthDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := AuthCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Auth): %v", err)
	}
}

// GetAuthCacheClient returns the auth cache client.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		InitAuthCache()
	}
	return AuthCacheClient
}

// InitRedis initializes all Redis clients at startup.
func InitRedis() {
	InitCache()
	InitAuthCache()
}

// ===== Month-availability cache =====
//
// The availability service itself never caches; the request layer owns these
// entries and must invalidate a month whenever any slot write touches it.

func calendarCacheKey(teacherID string, year, month int) string {
	return fmt.Sprintf("calendar:%s:%04d-%02d", teacherID, year, month)
}

func calendarCacheTTL() time.Duration {
	return time.Duration(config.AppConfig.CalendarCacheTTLMin) * time.Minute
}

// GetCachedMonthAvailability returns the cached summary for the month, or nil
// on a miss. Cache errors are logged and treated as misses.
func GetCachedMonthAvailability(ctx context.Context, teacherID string, year, month int) *models.MonthAvailability {
	raw, err := GetCacheClient().Get(ctx, calendarCacheKey(teacherID, year, month)).Result()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		GetLogger().Warn("calendar cache read failed", zap.Error(err))
		return nil
	}
	var summary models.MonthAvailability
	if err := json.Unmarshal([]byte(raw), &summary); err != nil {
		GetLogger().Warn("calendar cache entry corrupt, dropping", zap.Error(err))
		GetCacheClient().Del(ctx, calendarCacheKey(teacherID, year, month))
		return nil
	}
	return &summary
}

// SetCachedMonthAvailability stores a month summary with the configured TTL.
func SetCachedMonthAvailability(ctx context.Context, summary *models.MonthAvailability) {
	raw, err := json.Marshal(summary)
	if err != nil {
		return
	}
	key := calendarCacheKey(summary.TeacherID, summary.Year, summary.Month)
	if err := GetCacheClient().Set(ctx, key, raw, calendarCacheTTL()).Err(); err != nil {
		GetLogger().Warn("calendar cache write failed", zap.Error(err))
	}
}

// InvalidateCalendarMonths drops the cached summaries for every month the
// given slot dates ("2006-01-02") fall into.
func InvalidateCalendarMonths(ctx context.Context, teacherID string, dates ...string) {
	seen := make(map[string]struct{}, len(dates))
	for _, date := range dates {
		day, err := time.Parse("2006-01-02", date)
		if err != nil {
			continue
		}
		key := calendarCacheKey(teacherID, day.Year(), int(day.Month()))
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		if err := GetCacheClient().Del(ctx, key).Err(); err != nil {
			GetLogger().Warn("calendar cache invalidation failed",
				zap.String("key", key), zap.Error(err))
		}
	}
}
