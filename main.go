package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/saiyam0211/frontend-restaurant-qr/configs"
	"github.com/saiyam0211/frontend-restaurant-qr/entity"
	"github.com/saiyam0211/frontend-restaurant-qr/middlewares"
	"github.com/saiyam0211/frontend-restaurant-qr/repository"
	"github.com/saiyam0211/frontend-restaurant-qr/routes"
	"github.com/saiyam0211/frontend-restaurant-qr/services"
	"github.com/saiyam0211/frontend-restaurant-qr/ws"
)

func main() {
	cfg := configs.LoadConfig()
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	// REST ไป backend หลัก
	client := repository.NewClient(cfg.BackendURL, cfg.HTTPTimeout)
	menuRepo := repository.NewMenuRepository(client)
	orderRepo := repository.NewOrderRepository(client)
	qrRepo := repository.NewQRRepository(client)

	// core state
	catalog := services.NewCatalogService(menuRepo, logger)
	selection := services.NewSelectionService(catalog)
	reconciler := services.NewReconcilerService(logger)
	notifier := services.NewNotifyService(cfg.NotifyTTL)

	// browser feed
	hub := ws.NewHub(logger)
	go hub.Run()
	reconciler.SetOnChange(hub.BroadcastState)
	notifier.SetOnChange(func() {
		data, _ := json.Marshal(notifier.Current())
		hub.BroadcastJSON(entity.EventNotification, data)
	})

	// push channel จาก backend
	push := ws.NewPushClient(cfg.PushURL, logger)
	orderSvc := services.NewOrderService(orderRepo, selection, reconciler, notifier, push, logger)
	push.SetHandler(orderSvc.HandlePush)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := push.Connect(ctx); err != nil {
		// ไม่ fatal: REST ยังใช้ได้ แค่ไม่มี live update จนกว่าจะ restart
		logger.Error().Err(err).Msg("push channel unavailable")
	}

	// โหลดรอบแรก พังก็แค่เริ่มแบบว่าง ๆ แล้วให้หน้าเว็บ refresh เอา
	startCtx, cancel := context.WithTimeout(ctx, cfg.HTTPTimeout)
	if err := catalog.Load(startCtx); err != nil {
		logger.Warn().Err(err).Msg("initial catalog load failed")
	}
	if err := orderSvc.Refresh(startCtx); err != nil {
		logger.Warn().Err(err).Msg("initial order snapshot failed")
	}
	cancel()

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())
	routes.RegisterRoutes(r, routes.Deps{
		Catalog:    catalog,
		Selection:  selection,
		Reconciler: reconciler,
		Notifier:   notifier,
		Orders:     orderSvc,
		QR:         qrRepo,
		Hub:        hub,
	})

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		logger.Info().Str("addr", srv.Addr).Msg("🚀 gateway running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("http shutdown failed")
	}
	push.Close()
	notifier.Close()
	hub.Close()
}
