package service

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/gomodule/redigo/redis"
	"go.uber.org/zap"

	"briskr-go/constant"
	"briskr-go/internal/model"
	"briskr-go/internal/repository"
	"briskr-go/pkg/logging"
)

// TotalsSnapshot 聚合总量快照（首页头部展示用）
type TotalsSnapshot struct {
	TotalLinks  int64 `json:"totalLinks"`
	TotalClicks int64 `json:"totalClicks"`
	GeneratedAt int64 `json:"generatedAt"`
}

// SnapshotTotals 定时任务：聚合总链接数与总点击数，写入 Redis 快照
func SnapshotTotals() error {
	logging.Logger.Info("SnapshotTotals start")

	snapshot, err := computeTotals()
	if err != nil {
		return err
	}

	conn := repository.RedisPool.Get()
	defer closeRedisConn(conn)

	if err := storeTotals(conn, snapshot); err != nil {
		return err
	}

	logging.Logger.Info("SnapshotTotals end",
		zap.Int64("total_links", snapshot.TotalLinks),
		zap.Int64("total_clicks", snapshot.TotalClicks),
	)
	return nil
}

// GetTotalsSnapshot 读取总量快照；缓存缺失时回源计算并回填
func GetTotalsSnapshot() (*TotalsSnapshot, error) {
	conn := repository.RedisPool.Get()
	defer closeRedisConn(conn)

	cachedValue, err := redis.Bytes(conn.Do("GET", constant.GetTotalsKey()))
	if err == nil {
		var snapshot TotalsSnapshot
		if unmarshalErr := json.Unmarshal(cachedValue, &snapshot); unmarshalErr == nil {
			return &snapshot, nil
		}
	} else if !errors.Is(err, redis.ErrNil) {
		logging.Logger.Warn("Error getting totals snapshot from Redis", zap.Error(err))
	}

	snapshot, err := computeTotals()
	if err != nil {
		return nil, err
	}
	if storeErr := storeTotals(conn, snapshot); storeErr != nil {
		logging.Logger.Warn("Failed to backfill totals snapshot", zap.Error(storeErr))
	}
	return snapshot, nil
}

func computeTotals() (*TotalsSnapshot, error) {
	var totalLinks int64
	if err := repository.DB.Model(&model.ShortLink{}).Count(&totalLinks).Error; err != nil {
		logging.Logger.Error("统计短链总数失败", zap.Error(err))
		return nil, err
	}

	// COALESCE：空表时 SUM 为 NULL
	var totalClicks int64
	if err := repository.DB.Model(&model.ShortLink{}).
		Select("COALESCE(SUM(click_count), 0)").
		Scan(&totalClicks).Error; err != nil {
		logging.Logger.Error("统计总点击数失败", zap.Error(err))
		return nil, err
	}

	return &TotalsSnapshot{
		TotalLinks:  totalLinks,
		TotalClicks: totalClicks,
		GeneratedAt: time.Now().UnixMilli(),
	}, nil
}

func storeTotals(conn redis.Conn, snapshot *TotalsSnapshot) error {
	value, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	if _, err := conn.Do("SET", constant.GetTotalsKey(), value, "EX", constant.TotalsTTL); err != nil {
		logging.Logger.Error("写入总量快照失败", zap.Error(err))
		return err
	}
	return nil
}
