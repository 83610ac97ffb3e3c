package main

import (
	"log"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"stock_dashboard/internal/app/di"
	"stock_dashboard/internal/app/router"
	authadapters "stock_dashboard/internal/feature/auth/adapters"
	authentity "stock_dashboard/internal/feature/auth/domain/entity"
	authhandler "stock_dashboard/internal/feature/auth/transport/handler"
	authusecase "stock_dashboard/internal/feature/auth/usecase"
	companyadapters "stock_dashboard/internal/feature/companies/adapters"
	companyentity "stock_dashboard/internal/feature/companies/domain/entity"
	companyhandler "stock_dashboard/internal/feature/companies/transport/handler"
	companyusecase "stock_dashboard/internal/feature/companies/usecase"
	dividendhandler "stock_dashboard/internal/feature/dividends/transport/handler"
	dividendusecase "stock_dashboard/internal/feature/dividends/usecase"
	quotehandler "stock_dashboard/internal/feature/quotes/transport/handler"
	quoteusecase "stock_dashboard/internal/feature/quotes/usecase"
	"stock_dashboard/internal/platform/cache"
	"stock_dashboard/internal/platform/config"
	infradb "stock_dashboard/internal/platform/db"
	jwtmw "stock_dashboard/internal/platform/jwt"
	infraredis "stock_dashboard/internal/platform/redis"
	"stock_dashboard/internal/shared/ratelimiter"
)

// dartRequestsPerMinute stays well under the open DART API quota.
const dartRequestsPerMinute = 100

func main() {
	cfg, err := config.Load("")
	if err != nil {
		log.Fatal(err)
	}

	// db
	db := infradb.OpenDB(cfg.DB)
	if err := infradb.Migrate(db, &authentity.User{}, &companyentity.Company{}); err != nil {
		log.Fatal("migration failed:", err)
	}

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(cfg.Redis); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Upstream API clients
	dartClient := di.NewDisclosureClient(cfg.DART)
	marketClient := di.NewMarketClient(cfg.Yahoo)

	// Repository
	userRepo := authadapters.NewUserRepository(db)
	companyRepo := companyadapters.NewCompanyRepository(db)

	// Redis caching decorators. Disclosures change at most daily; quotes are
	// kept fresh on a short TTL.
	cachedDisclosures := cache.NewCachingDisclosureRepository(
		rdb, cache.TimeUntilNextDisclosureRefresh(), dartClient, "dividends")
	cachedMarket := cache.NewCachingMarketRepository(
		rdb, 5*time.Minute, marketClient, "market")

	// Usecase
	companyUC := companyusecase.NewCompanyUsecase(companyRepo)
	refreshUC := companyusecase.NewRefreshUsecase(dartClient, companyRepo)
	dartLimiter := ratelimiter.NewRateLimiter(dartRequestsPerMinute, time.Minute)
	dividendsUC := dividendusecase.NewDividendsUsecase(cachedDisclosures, companyUC, dartLimiter)
	quotesUC := quoteusecase.NewQuotesUsecase(cachedMarket)
	jwtGen := jwtmw.NewGenerator(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	authUC := authusecase.NewAuthUsecase(userRepo, jwtGen)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	dividendH := dividendhandler.NewDividendHandler(dividendsUC)
	quoteH := quotehandler.NewQuoteHandler(quotesUC)
	companyH := companyhandler.NewCompanyHandler(companyUC, refreshUC)

	r := router.NewRouter(authH, dividendH, quoteH, companyH, cfg.Auth.JWTSecret)

	if cfg.Auth.JWTSecret == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}
	if cfg.DART.APIKey == "" {
		log.Println("[WARN] DART_API_KEY is not set. Korean disclosure lookups will fail.")
	}

	if err := r.Run(cfg.Server.Addr); err != nil {
		log.Fatal(err)
	}
}
