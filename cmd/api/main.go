package main

import (
	"context"
	"log"
	"os"

	"Ming_Social/internal/config"
	"Ming_Social/internal/model"
	"Ming_Social/internal/pkg"
	"Ming_Social/internal/repository/mysql"
	"Ming_Social/internal/repository/redis"
	"Ming_Social/internal/router"
	"Ming_Social/internal/service"
)

func main() {
	cfg := config.Load()
	pkg.SetSecrets(cfg.AccessSecret, cfg.RefreshSecret)

	if err := mysql.InitDB(cfg.MySQLDSN); err != nil {
		panic(err)
	}

	if err := redis.Init(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB); err != nil {
		panic(err)
	}
	defer redis.Close()

	// 自动建表（开发阶段 OK）
	if err := mysql.DB.AutoMigrate(
		&model.User{},
		&model.UserProfile{},
		&model.Post{},
		&model.Comment{},
		&model.Like{},
		&model.Follow{},
		&model.SocialOutbox{},
	); err != nil {
		panic(err)
	}

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		panic(err)
	}

	// outbox投递器：配置了kafka就发kafka，否则只打日志
	sender := service.LogSender
	if len(cfg.KafkaBrokers) > 0 {
		producer := pkg.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic)
		defer producer.Close()
		sender = service.KafkaSender(producer)
	}
	relayer := service.NewOutboxRelayer(&mysql.OutboxRepository{DB: mysql.DB}, sender)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go relayer.Run(ctx)

	r := router.InitRouter(cfg.UploadDir)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
