package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/gomodule/redigo/redis"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"briskr-go/constant"
	"briskr-go/internal/apperrors"
	"briskr-go/internal/dto"
	"briskr-go/internal/model"
	"briskr-go/internal/repository"
	"briskr-go/pkg/logging"
	"briskr-go/pkg/shortcode"
	"briskr-go/pkg/utils"
)

// DefaultCreatedBy 未提供创建者标识时的占位值
const DefaultCreatedBy = "anonymous"

// RecentLimit 统计接口返回的最近记录条数上限
const RecentLimit = 100

// CreateShortLink 创建短链。自定义短码冲突返回 409；
// 未指定短码时按长度递增生成，靠唯一索引冲突重试（乐观并发）。
func CreateShortLink(ctx context.Context, req dto.CreateShortLinkRequest) (*model.ShortLink, error) {
	// 规范化：补全协议、短码转小写
	req.URL = utils.NormalizeLongURL(req.URL)
	req.Code = utils.NormalizeShortCode(req.Code)

	if err := req.Validate(); err != nil {
		return nil, apperrors.InvalidRequestError(err.Error())
	}

	createdBy := strings.TrimSpace(req.CreatedBy)
	if createdBy == "" {
		createdBy = DefaultCreatedBy
	}

	// 自定义短码：直接插入，靠唯一索引检测占用
	if req.Code != "" {
		link := &model.ShortLink{
			ShortCode: req.Code,
			LongURL:   req.URL,
			CreatedBy: createdBy,
		}
		if err := repository.DB.WithContext(ctx).Create(link).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				logging.Logger.Info("短码已被占用", zap.String("short_code", req.Code))
				return nil, apperrors.ConflictError("error.shortcode_taken")
			}
			logging.Logger.Error("数据库操作失败", zap.Error(err))
			return nil, apperrors.SystemErrorDefault()
		}
		primeCache(link)
		return link, nil
	}

	// 生成短码：从最短长度开始，每个长度尝试若干次，
	// INSERT 撞唯一索引则换一个候选（check-then-insert 存在竞态，必须以索引为准）
	for length := shortcode.MinLength; length <= shortcode.MaxLength; length++ {
		for attempt := 0; attempt < shortcode.AttemptsPerLength; attempt++ {
			code, err := shortcode.Generate(length)
			if err != nil {
				logging.Logger.Error("短码生成失败", zap.Error(err))
				return nil, apperrors.SystemErrorDefault()
			}
			if utils.IsReservedCode(code) {
				continue
			}

			link := &model.ShortLink{
				ShortCode: code,
				LongURL:   req.URL,
				CreatedBy: createdBy,
			}
			err = repository.DB.WithContext(ctx).Create(link).Error
			if err == nil {
				primeCache(link)
				return link, nil
			}
			if !errors.Is(err, gorm.ErrDuplicatedKey) {
				logging.Logger.Error("数据库操作失败", zap.Error(err))
				return nil, apperrors.SystemErrorDefault()
			}
			// 冲突，重试下一个候选
		}
	}

	// 码空间耗尽：配置问题（MaxLength 过小），不是常规错误
	logging.Logger.Error("Short code space exhausted",
		zap.Int("max_length", shortcode.MaxLength),
	)
	return nil, apperrors.SystemError("error.code_space_exhausted")
}

// ResolveAndCount 解析短码并完成点击计数。
// 计数与 last_clicked 必须在同一条 UPDATE 中落库（原子，不做读改写）。
func ResolveAndCount(ctx context.Context, code string) (string, error) {
	code = utils.NormalizeShortCode(code)
	if code == "" || utils.IsReservedCode(code) || utils.ValidateShortCode(code) != nil {
		return "", apperrors.NotFoundError()
	}

	conn := repository.RedisPool.Get()
	defer closeRedisConn(conn)

	cacheKey := constant.GetShortCodeKey(code)

	// 先查缓存：负缓存直接 404，命中则免去目标 URL 的 SELECT
	var cachedLink *model.ShortLink
	cachedValue, err := redis.Bytes(conn.Do("GET", cacheKey))
	if err == nil {
		if len(cachedValue) == 0 {
			// 负缓存命中，表不受影响
			return "", apperrors.NotFoundError()
		}
		var link model.ShortLink
		if unmarshalErr := json.Unmarshal(cachedValue, &link); unmarshalErr == nil {
			cachedLink = &link
		} else {
			logging.Logger.Warn("Failed to unmarshal cached value",
				zap.String("cache_key", cacheKey),
				zap.Error(unmarshalErr))
		}
	} else if !errors.Is(err, redis.ErrNil) {
		logging.Logger.Warn("Error getting from Redis",
			zap.String("cache_key", cacheKey),
			zap.Error(err))
	}

	// 单条原子 UPDATE：click_count 自增 + last_clicked 同步更新
	res := repository.DB.WithContext(ctx).Model(&model.ShortLink{}).
		Where("short_code = ?", code).
		Updates(map[string]interface{}{
			"click_count":  gorm.Expr("click_count + 1"),
			"last_clicked": time.Now(),
		})
	if res.Error != nil {
		logging.Logger.Error("点击计数更新失败",
			zap.String("short_code", code),
			zap.Error(res.Error))
		return "", apperrors.SystemErrorDefault()
	}
	if res.RowsAffected == 0 {
		// 缓存空值，防止缓存穿透
		if _, setErr := conn.Do("SET", cacheKey, "", "EX", constant.NegativeTTL); setErr != nil {
			logging.Logger.Error("设置缓存失败",
				zap.String("cache_key", cacheKey),
				zap.Error(setErr))
		}
		return "", apperrors.NotFoundError()
	}

	if cachedLink != nil {
		return cachedLink.LongURL, nil
	}

	// 缓存未命中，回源查目标 URL 并回填缓存
	var link model.ShortLink
	if err := repository.DB.WithContext(ctx).Where("short_code = ?", code).First(&link).Error; err != nil {
		// 行刚更新成功，此处失败只可能是存储异常
		logging.Logger.Error("查询短链失败",
			zap.String("short_code", code),
			zap.Error(err))
		return "", apperrors.SystemErrorDefault()
	}
	setCache(conn, cacheKey, &link, constant.ShortCodeTTL)

	return link.LongURL, nil
}

// GetStats 管理端统计：总数 + 最近 RecentLimit 条（按创建时间倒序）
func GetStats(ctx context.Context) (int64, []model.ShortLink, error) {
	var total int64
	if err := repository.DB.WithContext(ctx).Model(&model.ShortLink{}).Count(&total).Error; err != nil {
		logging.Logger.Error("统计短链记录数失败", zap.Error(err))
		return 0, nil, apperrors.SystemErrorDefault()
	}

	var links []model.ShortLink
	if err := repository.DB.WithContext(ctx).
		Order("created_at DESC").
		Limit(RecentLimit).
		Find(&links).Error; err != nil {
		logging.Logger.Error("查询短链列表失败", zap.Error(err))
		return 0, nil, apperrors.SystemErrorDefault()
	}

	return total, links, nil
}

// primeCache 创建成功后写入缓存（同时覆盖可能存在的负缓存）
func primeCache(link *model.ShortLink) {
	conn := repository.RedisPool.Get()
	defer closeRedisConn(conn)

	setCache(conn, constant.GetShortCodeKey(link.ShortCode), link, constant.ShortCodeTTL)
}

func setCache(conn redis.Conn, cacheKey string, link *model.ShortLink, ttl int) {
	value, err := json.Marshal(link)
	if err != nil {
		return
	}
	if _, err := conn.Do("SET", cacheKey, value, "EX", ttl); err != nil {
		logging.Logger.Error("设置缓存失败",
			zap.String("cache_key", cacheKey),
			zap.Error(err))
	}
}

func closeRedisConn(conn redis.Conn) {
	if err := conn.Close(); err != nil {
		logging.Logger.Error("Failed to close Redis connection",
			zap.Error(err),
			zap.String("connection_type", "redis"),
		)
	}
}
