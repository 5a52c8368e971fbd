package cache

import (
	"context"
	"strings"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/suchimauz/clinic-schedule-viewer/internal/config"
	"github.com/suchimauz/clinic-schedule-viewer/internal/core/domain"
	"github.com/suchimauz/clinic-schedule-viewer/internal/core/ports/out"
)

// CacheAdapter - LRU-кэш собранных сеток расписания.
// Ключ - врач плюс дата вида, дневные и недельные сетки живут раздельно.
type CacheAdapter struct {
	dayGrids  *lru.Cache[string, *domain.DayGrid]
	weekGrids *lru.Cache[string, *domain.WeekGrid]
	mu        sync.RWMutex
	logger    out.LoggerPort
}

func NewCacheAdapter(cfg *config.Config, logger out.LoggerPort) (*CacheAdapter, error) {
	if !cfg.Cache.Enabled {
		logger.Info("cache.disabled", out.LogFields{
			"message": "Cache is disabled",
		})
		return nil, nil
	}

	dayGrids, err := lru.New[string, *domain.DayGrid](cfg.Cache.Size)
	if err != nil {
		logger.Error("cache.day_grids.init.failed", out.LogFields{
			"error": err.Error(),
			"size":  cfg.Cache.Size,
		})
		return nil, err
	}

	weekGrids, err := lru.New[string, *domain.WeekGrid](cfg.Cache.Size)
	if err != nil {
		logger.Error("cache.week_grids.init.failed", out.LogFields{
			"error": err.Error(),
			"size":  cfg.Cache.Size,
		})
		return nil, err
	}

	return &CacheAdapter{
		dayGrids:  dayGrids,
		weekGrids: weekGrids,
		logger:    logger.WithModule("CacheAdapter"),
	}, nil
}

func gridKey(doctorID string, date time.Time) string {
	return doctorID + "|" + date.Format("2006-01-02")
}

func (c *CacheAdapter) GetDayGrid(ctx context.Context, doctorID string, day time.Time) (*domain.DayGrid, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	grid, exists := c.dayGrids.Get(gridKey(doctorID, day))
	if !exists {
		c.logger.Debug("cache.day_grid.miss", out.LogFields{
			"doctorId": doctorID,
			"date":     day.Format("2006-01-02"),
		})
		return nil, false
	}

	c.logger.Debug("cache.day_grid.hit", out.LogFields{
		"doctorId": doctorID,
		"date":     day.Format("2006-01-02"),
	})
	return grid, true
}

func (c *CacheAdapter) StoreDayGrid(ctx context.Context, grid *domain.DayGrid) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.logger.Debug("cache.day_grid.store", out.LogFields{
		"doctorId":   grid.DoctorID,
		"slotsCount": len(grid.Slots),
	})

	c.dayGrids.Add(gridKey(grid.DoctorID, grid.Date.Date), grid)
}

func (c *CacheAdapter) GetWeekGrid(ctx context.Context, doctorID string, weekStart time.Time) (*domain.WeekGrid, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	grid, exists := c.weekGrids.Get(gridKey(doctorID, weekStart))
	if !exists {
		c.logger.Debug("cache.week_grid.miss", out.LogFields{
			"doctorId":  doctorID,
			"weekStart": weekStart.Format("2006-01-02"),
		})
		return nil, false
	}

	c.logger.Debug("cache.week_grid.hit", out.LogFields{
		"doctorId":  doctorID,
		"weekStart": weekStart.Format("2006-01-02"),
	})
	return grid, true
}

func (c *CacheAdapter) StoreWeekGrid(ctx context.Context, grid *domain.WeekGrid) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.logger.Debug("cache.week_grid.store", out.LogFields{
		"doctorId":  grid.DoctorID,
		"daysCount": len(grid.Days),
	})

	c.weekGrids.Add(gridKey(grid.DoctorID, grid.WeekStart.Date), grid)
}

// InvalidateDoctor удаляет все дневные и недельные сетки одного врача.
func (c *CacheAdapter) InvalidateDoctor(ctx context.Context, doctorID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	prefix := doctorID + "|"

	removed := 0
	for _, key := range c.dayGrids.Keys() {
		if strings.HasPrefix(key, prefix) {
			c.dayGrids.Remove(key)
			removed++
		}
	}
	for _, key := range c.weekGrids.Keys() {
		if strings.HasPrefix(key, prefix) {
			c.weekGrids.Remove(key)
			removed++
		}
	}

	c.logger.Debug("cache.invalidate_doctor", out.LogFields{
		"doctorId":     doctorID,
		"removedCount": removed,
	})
}

func (c *CacheAdapter) InvalidateAll(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.dayGrids.Purge()
	c.weekGrids.Purge()

	c.logger.Debug("cache.invalidate_all", out.LogFields{})
}
