// 手动把数据目录中的 user-progress.json 写入持久化存储
//
// 服务启动时只在存储中没有记录时才使用快照种子；
// 首次切换到 redis/mysql 或者需要重置演示数据时运行此脚本。
//
// 用法: go run scripts/seed_progress.go -config configs

package main

import (
	"context"
	"course_builder_backend/internal/config"
	"course_builder_backend/internal/repository"
	"course_builder_backend/internal/service"
	"course_builder_backend/pkg/database"
	"course_builder_backend/pkg/logger"
	"flag"
	"fmt"
	"log"
	"sort"
	"time"

	"go.uber.org/zap"
)

func main() {
	configDir := flag.String("config", "configs", "配置文件所在目录")
	flag.Parse()

	if err := run(*configDir); err != nil {
		log.Fatal(err)
	}
}

func run(configDir string) error {
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return fmt.Errorf("无法读取配置: %w", err)
	}

	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	var sink service.ProgressSink
	switch cfg.Progress.Sink {
	case config.SinkRedis:
		rdb, err := database.InitRedis(&cfg.Redis)
		if err != nil {
			return fmt.Errorf("Redis 连接失败: %w", err)
		}
		defer rdb.Close()
		sink = repository.NewRedisProgressSink(rdb)
	case config.SinkMySQL:
		db, err := database.InitDB(&cfg.Database, cfg.Server.Mode)
		if err != nil {
			return fmt.Errorf("数据库连接失败: %w", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return fmt.Errorf("获取数据库连接失败: %w", err)
		}
		defer sqlDB.Close()
		sink = repository.NewProgressStateRepository(db)
	default:
		return fmt.Errorf("progress.sink=%s 不需要写入种子数据", cfg.Progress.Sink)
	}

	snap, err := repository.LoadSnapshot(cfg.Data.Dir)
	if err != nil {
		return fmt.Errorf("加载数据目录失败: %w", err)
	}

	learners := make([]string, 0, len(snap.UserProgress))
	for id := range snap.UserProgress {
		learners = append(learners, id)
	}
	sort.Strings(learners)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	failed := 0
	for _, id := range learners {
		if err := sink.Save(ctx, id, snap.UserProgress[id]); err != nil {
			failed++
			logger.Log.Error("写入学习进度失败", zap.String("learnerId", id), zap.Error(err))
			continue
		}
		logger.Log.Info("写入学习进度", zap.String("learnerId", id), zap.String("sink", sink.Name()))
	}

	log.Printf("完成，共处理 %d 个学习者，失败 %d 个", len(learners), failed)
	if failed > 0 {
		return fmt.Errorf("%d 个学习者写入失败", failed)
	}
	return nil
}
