package handler

import (
	"github.com/go-chi/chi/v5"
	zh_Hant_TW "github.com/go-playground/locales/zh_Hant_TW"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	zh_tw_translations "github.com/go-playground/validator/v10/translations/zh_tw"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"

	"github.com/artale-crew/boss-scheduler/backend/internal/config"
	"github.com/artale-crew/boss-scheduler/backend/internal/repository"
)

type Handler struct {
	validate          *validator.Validate
	config            *config.Config
	repository        *repository.Repository
	translator        ut.Translator
	mailChannel       *amqp.Channel
	redisClient       *redis.Client
	adminPasswordHash []byte

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, mailCh *amqp.Channel, rdb *redis.Client) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	locale := zh_Hant_TW.New()
	uni := ut.New(locale, locale)
	trans, _ := uni.GetTranslator("zh_Hant_TW")
	if err := zh_tw_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	// 管理員密碼只在記憶體中保留哈希，登入時用 bcrypt 比對
	adminPasswordHash, err := bcrypt.GenerateFromPassword([]byte(cfg.Admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return &Handler{
		validate:          validate,
		config:            cfg,
		repository:        repo,
		translator:        trans,
		mailChannel:       mailCh,
		redisClient:       rdb,
		adminPasswordHash: adminPasswordHash,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	// 註冊與登入用玩家名稱即可，不需要先有身分
	h.Mux.Route("/players", func(r chi.Router) {
		r.Post("/", h.RegisterPlayer)
		r.Get("/", h.GetPlayers)
	})

	h.Mux.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
		r.Post("/admin-login", h.AdminLogin)
	})

	// 行情快照只是對外部 API 的轉發，不需要登入
	h.Mux.Get("/market-price", h.GetMarketPrice)

	// 以下 API 必須要在登入後才允許呼叫
	h.Mux.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/availability", func(r chi.Router) {
			r.Get("/", h.GetAvailability)
			r.Put("/", h.ReplaceAvailability)
		})

		r.Get("/matches", h.GetMatches)

		r.Route("/admin", func(r chi.Router) {
			r.Use(h.requireAdmin)
			r.Delete("/availability/expired", h.CleanupAvailability)
			r.Post("/matches/digest", h.SendMatchDigest)
		})
	})
}
