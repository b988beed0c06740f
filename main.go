// @title Course Builder API
// @version 1.0.0
// @description 课程目录、选课与学习进度服务

// @host localhost:3000
// @BasePath /

package main

import (
	"course_builder_backend/internal/app"
	"course_builder_backend/internal/config"
	"course_builder_backend/pkg/logger"
	"flag"
	"log"
)

func main() {
	// 命令行参数
	configDir := flag.String("config", "configs", "配置文件所在目录")
	flag.Parse()

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	application.Run()
}
