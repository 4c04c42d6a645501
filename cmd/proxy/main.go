package main

import (
	"fmt"
	"log"
	"time"

	"github.com/AkhilKonduru1/Eventure/internal/config"
	"github.com/AkhilKonduru1/Eventure/internal/proxy"

	"github.com/gin-gonic/gin"
)

// The proxy runs as its own process with a single generate route plus a
// health check. It shares config.yaml with the API server.
func main() {
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if cfg.Proxy.APIKey == "" {
		log.Fatal("proxy api_key is not configured (set proxy.api_key or EVT_PROXY_API_KEY)")
	}

	client := proxy.NewClient(
		cfg.Proxy.Endpoint,
		cfg.Proxy.APIKey,
		time.Duration(cfg.Proxy.TimeoutSeconds)*time.Second,
	)
	h := proxy.NewHandler(client)

	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	r.POST("/generate-adventure", h.GenerateAdventure)
	r.GET("/health", h.Health)

	addr := fmt.Sprintf("%s:%d", cfg.Proxy.Address, cfg.Proxy.Port)
	log.Printf("proxy listening on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("run proxy: %v", err)
	}
}
