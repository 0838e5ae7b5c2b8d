package main

import (
	"context"
	"fmt"
	"log"

	"github.com/Misheck-bot/transport-system-sub001/configs"
	"github.com/Misheck-bot/transport-system-sub001/middlewares"
	"github.com/Misheck-bot/transport-system-sub001/pkg/metrics"
	"github.com/Misheck-bot/transport-system-sub001/queue"
	"github.com/Misheck-bot/transport-system-sub001/repository"
	"github.com/Misheck-bot/transport-system-sub001/routes"
	"github.com/Misheck-bot/transport-system-sub001/services"
	"github.com/Misheck-bot/transport-system-sub001/ws"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()

	// migrate
	configs.SetupDatabase()

	if err := configs.SeedAdmin(); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}

	// optional collaborators
	events := queue.NewPublisher(cfg.RabbitURL)
	if cfg.RabbitURL != "" {
		go queue.StartConsumer(cfg.RabbitURL)
	}
	rdb := configs.NewRedis(cfg)

	// background settlement
	settler := services.NewSettlementWorker(repository.NewPaymentRepository(db), events)
	go settler.Run(context.Background())

	// live alert feed
	hub := ws.NewAlertHub()
	go hub.Run()

	// HTTP
	metrics.Init()
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())
	r.Use(metrics.Middleware())

	// serve uploaded files (documents, alert photos)
	r.Static("/uploads", "./uploads")

	routes.RegisterRoutes(r, db, cfg, hub, events, rdb)

	port := cfg.Port
	addr := fmt.Sprintf(":%s", port)
	log.Println("🚀 Server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
