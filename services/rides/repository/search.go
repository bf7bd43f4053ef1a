package repository

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/lib/pq"
	"github.com/prasetyadi/nebeng/internal/pkg/constants"
	"github.com/prasetyadi/nebeng/internal/pkg/logger"
	"github.com/prasetyadi/nebeng/internal/pkg/models"
)

const searchQuery = `
	SELECT r.id, r.source, r.destination, r.departure_type, r.ride_time,
	       r.flexible_window_minutes, r.available_seats, r.price_per_person,
	       r.seat_layout, r.car_info, r.extra_notes,
	       u.id AS driver_id, u.name AS driver_name,
	       CASE WHEN r.departure_type = 'scheduled' THEN r.ride_time
	            ELSE r.window_updated_at + (r.flexible_window_minutes || ' minutes')::interval
	       END AS effective_time
	FROM rides r
	JOIN users u ON u.id = r.driver_id
	WHERE r.status = 'active'
	  AND r.available_seats > 0
	  AND ($1::text[] IS NULL OR r.source && $1)
	  AND ($2::text[] IS NULL OR r.destination && $2)
	  AND (
	       (r.departure_type = 'scheduled'
	          AND r.ride_time >= $3 AND r.ride_time < $4
	          AND r.ride_time > NOW())
	    OR (r.departure_type = 'window'
	          AND r.window_updated_at >= $3 AND r.window_updated_at < $4
	          AND r.window_updated_at + (r.flexible_window_minutes || ' minutes')::interval > NOW())
	  )
	ORDER BY effective_time ASC, r.created_at DESC
	LIMIT $5 OFFSET $6`

// Search returns active rides with seats left that match the filters,
// ordered by soonest effective departure. Results are served from a short
// TTL cache; slightly stale rows are acceptable because seat availability
// is re-checked at accept time.
func (r *RideRepo) Search(ctx context.Context, params models.RideSearchParams) ([]models.RideSummary, error) {
	cacheKey := searchCacheKey(params)

	if cached, err := r.cache.Get(ctx, cacheKey); err == nil {
		var results []models.RideSummary
		if err := json.Unmarshal([]byte(cached), &results); err == nil {
			return results, nil
		}
		logger.Warn("discarding unreadable search cache entry", logger.String("key", cacheKey))
	} else if !errors.Is(err, redis.Nil) {
		logger.Warn("ride search cache read failed", logger.Err(err))
	}

	var sourceFilter, destinationFilter interface{}
	if len(params.SourceFilters) > 0 {
		sourceFilter = pq.StringArray(params.SourceFilters)
	}
	if len(params.DestinationFilters) > 0 {
		destinationFilter = pq.StringArray(params.DestinationFilters)
	}

	dayStart := time.Date(params.Date.Year(), params.Date.Month(), params.Date.Day(), 0, 0, 0, 0, params.Date.Location())
	dayEnd := dayStart.Add(24 * time.Hour)
	offset := (params.Page - 1) * params.Limit

	results := []models.RideSummary{}
	err := r.db.SelectContext(ctx, &results, searchQuery,
		sourceFilter, destinationFilter, dayStart, dayEnd, params.Limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to search rides: %w", err)
	}

	// The driver block is attached before caching; the flat driver columns
	// are not serialized into cache entries.
	for i := range results {
		results[i].Driver = &models.RideDriver{
			ID:   results[i].DriverID,
			Name: results[i].DriverName,
		}
	}

	if payload, err := json.Marshal(results); err == nil {
		ttl := time.Duration(r.cfg.Search.CacheTTLSeconds) * time.Second
		if err := r.cache.Set(ctx, cacheKey, payload, ttl); err != nil {
			logger.Warn("ride search cache write failed", logger.Err(err))
		}
	}
	return results, nil
}

// searchCacheKey builds a deterministic key from the policed parameters
func searchCacheKey(params models.RideSearchParams) string {
	canonical := fmt.Sprintf("%s|%s|%s|%d|%d",
		strings.Join(params.SourceFilters, ","),
		strings.Join(params.DestinationFilters, ","),
		params.Date.Format("2006-01-02"),
		params.Page,
		params.Limit,
	)
	sum := sha256.Sum256([]byte(canonical))
	return fmt.Sprintf(constants.KeyRideSearch, hex.EncodeToString(sum[:]))
}
