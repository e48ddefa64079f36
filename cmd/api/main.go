package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sysu-ecnc-dev/muster/backend/internal/config"
	"github.com/sysu-ecnc-dev/muster/backend/internal/handler"
	"github.com/sysu-ecnc-dev/muster/backend/internal/logger"
	"github.com/sysu-ecnc-dev/muster/backend/internal/mock"
	"github.com/sysu-ecnc-dev/muster/backend/internal/repository"
	"go.uber.org/zap"
)

func main() {
	/**********************************************
	 * 加载配置
	 **********************************************/
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "无法加载配置文件: %v\n", err)
		os.Exit(1)
	}

	/**********************************************
	 * 创建 logger
	 **********************************************/
	log, err := logger.NewLogger(cfg.Log.Level, cfg.Log.Format, "muster-api")
	if err != nil {
		fmt.Fprintf(os.Stderr, "无法创建 logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	/**********************************************
	 * 生成模拟数据
	 **********************************************/
	dataset, err := mock.NewDataset(mock.ParamsFromConfig(cfg))
	if err != nil {
		log.Error("无法生成模拟数据", zap.Error(err))
		return
	}

	/**********************************************
	 * 连接 redis，共享数据快照
	 **********************************************/
	if cfg.Redis.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Redis.ConnectTimeout)*time.Second)
		err := rdb.Ping(ctx).Err()
		cancel()

		if err != nil {
			// 快照只是为了多实例一致，连不上时退回本地数据
			log.Warn("无法连接到 redis，使用本地生成的数据", zap.Error(err))
		} else {
			repo := repository.NewRepository(cfg, repository.NewRedisKVStore(rdb))
			ds, reused, err := repo.EnsureDataset(dataset)
			if err != nil {
				log.Warn("无法同步数据快照，使用本地生成的数据", zap.Error(err))
			}
			dataset = ds
			log.Info("数据快照已就绪", zap.Bool("reused", reused), zap.Time("generated_at", dataset.GeneratedAt))
		}
	}

	log.Info("模拟数据已生成",
		zap.Uint32("seed", dataset.Seed),
		zap.Int("arrived", len(dataset.Arrived)),
		zap.Int("not_arrived", len(dataset.NotArrived)),
	)

	fetcher := mock.NewFetcher(dataset, time.Duration(cfg.Fetch.Latency)*time.Millisecond)

	/**********************************************
	 * 创建 handler
	 **********************************************/
	h, err := handler.NewHandler(cfg, fetcher, log)
	if err != nil {
		log.Error("无法创建 handler", zap.Error(err))
		return
	}
	h.RegisterRoutes()

	/**********************************************
	 * 启动 HTTP 服务器
	 **********************************************/
	errorLog, err := zap.NewStdLogAt(log, zap.ErrorLevel)
	if err != nil {
		log.Error("无法创建 HTTP 错误日志", zap.Error(err))
		return
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      h.Mux,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		ErrorLog:     errorLog,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Info("正在启动服务器...", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("无法启动服务器", zap.Error(err))
			quit <- syscall.SIGTERM
		}
	}()

	<-quit
	log.Info("正在关闭服务器...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("关闭服务器失败", zap.Error(err))
	}
	log.Info("服务器已成功关闭")
}
