package main

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/platterhq/platter/internal/adapters/http/api"
	"github.com/platterhq/platter/internal/adapters/source"
	"github.com/platterhq/platter/internal/app"
	"github.com/platterhq/platter/internal/config"
	"github.com/platterhq/platter/pkg/logger"
	"github.com/smartystreets/goconvey/convey"
)

func TestMainWiring(t *testing.T) {
	if err := logger.Init(); err != nil {
		t.Fatalf("logger init: %v", err)
	}

	convey.Convey("Given the main application", t, func() {
		convey.Convey("When loading configuration from the environment", func() {
			t.Setenv("PLATTER_ADDR", ":8080")
			t.Setenv("PLATTER_MOCK_COUNT", "10")

			cfg, err := config.Load(context.Background())

			convey.Convey("Then configuration is loadable", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.MockCount, convey.ShouldEqual, 10)
			})
		})

		convey.Convey("When creating the service", func() {
			svc := app.New(
				app.WithLogger(logger.Get()),
				app.WithSource(source.NewMockSource()),
			)

			convey.Convey("Then it starts and serves routes", func() {
				ctx := context.Background()
				convey.So(svc.Start(ctx), convey.ShouldBeNil)
				defer svc.Stop()

				mux := http.NewServeMux()
				api.NewServer(svc, svc).Register(ctx, mux)

				srv := &http.Server{
					Addr:              ":0",
					Handler:           mux,
					ReadHeaderTimeout: time.Second,
				}
				convey.So(srv, convey.ShouldNotBeNil)
			})
		})
	})
}
