package main

import (
	"context"
	"flag"
	"log"

	"Event_Admin/internal/config"
	"Event_Admin/internal/model"
	"Event_Admin/internal/pkg"
	"Event_Admin/internal/repository/mysql"
	"Event_Admin/internal/repository/redis"
	"Event_Admin/internal/router"
	"Event_Admin/internal/service"
)

func main() {
	cfgPath := flag.String("config", "", "path to yaml config")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		panic(err)
	}
	pkg.SetSecrets(cfg.JWT.AccessSecret, cfg.JWT.RefreshSecret)

	if err := mysql.InitDB(cfg.MySQLDSN); err != nil {
		panic(err)
	}

	// 连接redis
	if err := redis.Init(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB); err != nil {
		panic(err)
	}
	defer redis.Close()

	// 自动建表（开发阶段 OK）
	mysql.DB.AutoMigrate(
		&model.User{},
		&model.Event{},
		&model.Report{},
		&model.Notification{},
		&model.ModerationOutbox{},
	)

	// 审计事件投递：配了 kafka 走 kafka，否则打日志
	sender := service.LogSender
	if len(cfg.Kafka.Brokers) > 0 {
		producer, err := pkg.NewKafkaProducer(pkg.KafkaConfig{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.Topic,
		})
		if err != nil {
			panic(err)
		}
		defer producer.Close()
		sender = service.KafkaSender(producer)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go service.NewOutboxRelayer(sender).Run(ctx)

	// Gin
	r := router.InitRouter(cfg)
	if err := r.Run(cfg.Listen); err != nil {
		log.Printf("server stopped: %v", err)
	}
}
