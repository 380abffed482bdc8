// @title InterviewHub 后端 API
// @version 1.0
// @description 技术面试刷题平台的后端服务器：题库目录、学习进度与 AI 导师。

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"flag"
	"log"
	"path/filepath"

	"interview_hub_backend/internal/app"
	"interview_hub_backend/internal/config"
	"interview_hub_backend/pkg/configwatcher"
	"interview_hub_backend/pkg/logger"
)

func main() {
	// 命令行参数
	configDir := flag.String("config", "configs", "配置文件目录")
	watch := flag.Bool("watch-config", true, "监听配置文件变更并热更新限流参数")
	flag.Parse()

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	if *watch {
		go configwatcher.WatchConfig(filepath.Join(*configDir, "config.yaml"), application.ApplyConfig)
	}

	application.Run()
}
