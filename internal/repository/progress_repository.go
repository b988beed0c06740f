package repository

import (
	"context"
	"course_builder_backend/internal/model"
	"course_builder_backend/internal/progress"
	"encoding/json"
	"errors"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProgressStateRepository 以 JSON 行的形式在 MySQL 中保存学习者进度快照
type ProgressStateRepository struct {
	DB *gorm.DB
}

func NewProgressStateRepository(db *gorm.DB) *ProgressStateRepository {
	return &ProgressStateRepository{DB: db}
}

func (r *ProgressStateRepository) Name() string {
	return "mysql"
}

// Load 没有记录时返回 nil, nil
func (r *ProgressStateRepository) Load(ctx context.Context, learnerID string) (*progress.State, error) {
	var rec model.ProgressStateRecord
	err := r.DB.WithContext(ctx).Where("learner_id = ?", learnerID).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var state progress.State
	if err := json.Unmarshal([]byte(rec.State), &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (r *ProgressStateRepository) Save(ctx context.Context, learnerID string, state progress.State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}

	rec := model.ProgressStateRecord{
		LearnerID: learnerID,
		State:     string(data),
	}
	return r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "learner_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"state", "updated_at"}),
	}).Create(&rec).Error
}

const redisProgressKeyPrefix = "course_builder:progress:"

// RedisProgressSink 将进度快照以 JSON 字符串存入 Redis
type RedisProgressSink struct {
	Redis *redis.Client
}

func NewRedisProgressSink(rdb *redis.Client) *RedisProgressSink {
	return &RedisProgressSink{Redis: rdb}
}

func (s *RedisProgressSink) Name() string {
	return "redis"
}

func (s *RedisProgressSink) Load(ctx context.Context, learnerID string) (*progress.State, error) {
	data, err := s.Redis.Get(ctx, redisProgressKeyPrefix+learnerID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var state progress.State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (s *RedisProgressSink) Save(ctx context.Context, learnerID string, state progress.State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return s.Redis.Set(ctx, redisProgressKeyPrefix+learnerID, data, 0).Err()
}
