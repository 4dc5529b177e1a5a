package http

import (
	"context"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/real-dev404/mern-whatsapp-clone-api/internal/modules/users/domain"
	"github.com/real-dev404/mern-whatsapp-clone-api/internal/modules/users/infra"
	pg "github.com/real-dev404/mern-whatsapp-clone-api/internal/modules/users/infra/pg"
	"github.com/real-dev404/mern-whatsapp-clone-api/internal/modules/users/service"
	plathttp "github.com/real-dev404/mern-whatsapp-clone-api/internal/platform/http"
	"github.com/real-dev404/mern-whatsapp-clone-api/internal/platform/security"
)

// Module wires up dependencies for the users HTTP module.
type Module struct {
	users  domain.UserRepo
	otps   domain.OtpRepo
	sender service.SMSSender
	tokens *security.JWTManager
	log    *slog.Logger
}

// NewModule builds a module on in-memory repos, for local development and
// tests.
func NewModule(jwtSecret string, accessTTL time.Duration) *Module {
	if accessTTL == 0 {
		accessTTL = 24 * time.Hour
	}
	return &Module{
		users:  infra.NewMemUserRepo(),
		otps:   infra.NewMemOtpRepo(),
		sender: devSender{},
		tokens: security.NewJWTManager(jwtSecret, accessTTL),
		log:    slog.Default(),
	}
}

// NewModulePG builds the production module on Postgres-backed repos.
func NewModulePG(db *pgxpool.Pool, jwtSecret string, accessTTL time.Duration) *Module {
	if accessTTL == 0 {
		accessTTL = 24 * time.Hour
	}
	return &Module{
		users:  pg.NewUserRepo(db),
		otps:   pg.NewOtpRepo(db),
		sender: devSender{},
		tokens: security.NewJWTManager(jwtSecret, accessTTL),
		log:    slog.Default(),
	}
}

// WithSender swaps in the delivery gateway (Twilio in production, a fake
// in tests).
func (m *Module) WithSender(s service.SMSSender) *Module {
	m.sender = s
	return m
}

func (m *Module) WithLogger(l *slog.Logger) *Module {
	m.log = l
	return m
}

func (m *Module) Register(r fiber.Router) {
	svc := service.New(m.users, m.otps, m.sender, m.tokens, m.log)

	users := r.Group("/users")
	users.Post("/check", CheckUserHandler(svc))
	users.Post("/register", RegisterUserHandler(svc))
	users.Post("/login", LoginHandler(svc))
	users.Get("/", plathttp.JWTAuth(m.tokens), SearchUsersHandler(svc))
}

// devSender stands in when no gateway is configured; it logs the message
// instead of delivering it so local registration flows stay usable.
type devSender struct{}

func (devSender) Send(_ context.Context, to, body string) error {
	slog.Debug("sms delivery skipped, no gateway configured", "to", to, "body", body)
	return nil
}
