package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/real-dev404/mern-whatsapp-clone-api/internal/db"
	"github.com/real-dev404/mern-whatsapp-clone-api/internal/platform/config"
	phttp "github.com/real-dev404/mern-whatsapp-clone-api/internal/platform/http"
	"github.com/real-dev404/mern-whatsapp-clone-api/internal/platform/logging"
	"github.com/real-dev404/mern-whatsapp-clone-api/internal/platform/notify"

	usershttp "github.com/real-dev404/mern-whatsapp-clone-api/internal/modules/users/http"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load failed", "err", err)
		os.Exit(1)
	}
	log := logging.New(cfg.Env)
	slog.SetDefault(log)

	if err := db.Migrate(context.Background(), cfg.PGDSN); err != nil {
		log.Error("migrations failed", "err", err)
		os.Exit(1)
	}
	dbpool := db.MustOpen(cfg.PGDSN)
	defer dbpool.Close()

	module := usershttp.NewModulePG(dbpool, cfg.JWTSecret, cfg.AccessTTL).WithLogger(log)
	if cfg.TwilioAccountSID != "" {
		module = module.WithSender(notify.NewTwilioSender(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.OtpPhoneNumber))
	} else {
		log.Warn("twilio credentials not set, otp delivery disabled")
	}

	app := phttp.NewServer(phttp.Options{AppName: "whatsapp-clone-auth"}, module)

	log.Info("listening", "addr", cfg.HTTPAddr)
	if err := app.Listen(cfg.HTTPAddr); err != nil {
		log.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
