package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Astemirdum/car-rental-storefront/pkg/kafka"
	"github.com/Astemirdum/car-rental-storefront/pkg/kvstore"
	"github.com/Astemirdum/car-rental-storefront/pkg/logger"
	"github.com/Astemirdum/car-rental-storefront/pkg/validate"
	"github.com/Astemirdum/car-rental-storefront/storefront/config"
	"github.com/Astemirdum/car-rental-storefront/storefront/internal/checkout"
	"github.com/Astemirdum/car-rental-storefront/storefront/internal/draft"
	"github.com/Astemirdum/car-rental-storefront/storefront/internal/handler"
	"github.com/Astemirdum/car-rental-storefront/storefront/internal/server"
	"github.com/Astemirdum/car-rental-storefront/storefront/internal/service/auth"
	"github.com/Astemirdum/car-rental-storefront/storefront/internal/service/booking"
	"github.com/Astemirdum/car-rental-storefront/storefront/internal/service/car"
	"github.com/Astemirdum/car-rental-storefront/storefront/internal/session"
	"github.com/IBM/sarama"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func Run(cfg config.Config) {
	log := logger.NewLogger(cfg.Log, "storefront")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := kvstore.New(ctx, cfg.Store, log)
	if err != nil {
		log.Fatal("kvstore init", zap.Error(err))
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Error("kvstore close", zap.Error(err))
		}
	}()

	sessions := session.New(auth.NewService(log, cfg), store, log)
	if err := sessions.Rehydrate(ctx); err != nil {
		log.Fatal("session rehydrate", zap.Error(err))
	}
	drafts := draft.New()
	bookings := booking.NewService(log, cfg)
	v := validate.NewCustomValidator()

	var producer sarama.SyncProducer
	if cfg.Kafka.Enabled() {
		producer, err = kafka.NewProducer(cfg.Kafka)
		if err != nil {
			log.Fatal("kafka.NewProducer", zap.Error(err))
		}
		defer func() { _ = producer.Close() }()
	}

	h := handler.New(log, handler.Deps{
		Session:  sessions,
		Cars:     car.NewService(log, cfg),
		Bookings: bookings,
		Checkout: checkout.NewService(log, v, bookings, sessions, drafts),
		Drafts:   drafts,
		Stats:    handler.NewStatsLog(producer, kafka.StatsTopic),

		Validator: v,
	})
	srv := server.NewServer(cfg.Server, h.NewRouter())

	gr, ctx := errgroup.WithContext(ctx)
	gr.Go(func() error {
		log.Info("http server start ON: ", zap.String("addr", srv.Addr()))
		return srv.Run()
	})
	gr.Go(func() error {
		<-ctx.Done()
		log.Debug("Graceful shutdown")

		closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
		defer cancel()
		return srv.Stop(closeCtx)
	})

	if err := gr.Wait(); err != nil {
		log.Error("storefront stopped", zap.Error(err))
		return
	}
	log.Info("Graceful shutdown finished")
}
