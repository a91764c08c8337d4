package main

import (
	"context"

	"Founder_Circle/internal/config"
	"Founder_Circle/internal/model"
	"Founder_Circle/internal/pkg"
	"Founder_Circle/internal/repository/mysql"
	"Founder_Circle/internal/repository/redis"
	"Founder_Circle/internal/router"
	"Founder_Circle/internal/service"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	if err = pkg.InitLogger(cfg.Debug); err != nil {
		panic(err)
	}
	defer pkg.Logger.Sync()

	pkg.SetSecrets(cfg.JWTAccessSecret, cfg.JWTRefreshSecret)

	if err = mysql.InitDB(cfg.MySQLDSN); err != nil {
		panic(err)
	}
	if err = redis.Init(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB); err != nil {
		panic(err)
	}
	defer redis.Close()

	// 自动建表（开发阶段 OK）
	if err = mysql.DB.AutoMigrate(
		&model.User{},
		&model.Tag{},
		&model.TagBinding{},
		&model.Post{},
		&model.PostLike{},
		&model.Comment{},
		&model.Community{},
		&model.CommunityMember{},
		&model.Follow{},
		&model.Launch{},
		&model.LaunchUpvote{},
		&model.LaunchComment{},
		&model.Conversation{},
		&model.Message{},
		&model.Broadcast{},
		&model.EventOutbox{},
	); err != nil {
		panic(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 标签目录为空时灌默认标签
	if err = service.NewTagService(mysql.DB).SeedIfEmpty(ctx); err != nil {
		panic(err)
	}

	// outbox 投递到 kafka
	producer := pkg.NewKafkaProducer(pkg.KafkaConfig{
		Brokers: cfg.KafkaBrokers,
		Topic:   cfg.KafkaTopic,
	})
	defer producer.Close()
	relayer := service.NewOutboxRelayer(mysql.DB, cfg.OutboxInterval, service.KafkaSender(producer))
	go relayer.Run(ctx)

	// 过期发布兜底清理
	go service.NewLaunchService(mysql.DB).RunSweeper(ctx, cfg.LaunchSweepInterval)

	r := router.InitRouter(cfg, mysql.DB)
	pkg.Logger.Info("listening", zap.String("addr", cfg.Addr))
	if err = r.Run(cfg.Addr); err != nil {
		pkg.Logger.Fatal("server exited", zap.Error(err))
	}
}
