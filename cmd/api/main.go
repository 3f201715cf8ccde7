package main

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	httpadp "collateralbook/internal/adapter/http"
	"collateralbook/internal/adapter/middleware"
	"collateralbook/internal/adapter/repository/mysql"
	"collateralbook/internal/adapter/tokenstore"
	"collateralbook/internal/config"
	"collateralbook/internal/infrastructure/cache"
	"collateralbook/internal/infrastructure/db"
	"collateralbook/internal/metrics"
	"collateralbook/internal/token"
	authuc "collateralbook/internal/usecase/auth"
	borroweruc "collateralbook/internal/usecase/borrower"
	changeloguc "collateralbook/internal/usecase/changelog"
	collateraluc "collateralbook/internal/usecase/collateral"
	loanuc "collateralbook/internal/usecase/loan"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logrus.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		logrus.Fatalf("mysql: %v", err)
	}
	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		logrus.Fatalf("redis: %v", err)
	}

	// repositories + unit of work
	users := mysql.NewUserRepository(gdb)
	borrowers := mysql.NewBorrowerRepository(gdb)
	loans := mysql.NewLoanRepository(gdb)
	collaterals := mysql.NewCollateralRepository(gdb)
	changelogs := mysql.NewChangeLogRepository(gdb)
	guow := mysql.NewGormUoW(gdb)

	// services
	tokens := token.NewService(cfg.JWTSecret, cfg.JWTIssuer)
	refreshStore := tokenstore.NewRedisStore(rdb)

	// usecases
	authUC := authuc.NewUsecase(users, tokens, refreshStore, cfg.AccessTTL, cfg.RefreshTTL)
	borrowerUC := borroweruc.NewUsecase(borrowers, guow)
	loanUC := loanuc.NewUsecase(loans, borrowers, guow)
	collateralUC := collateraluc.NewUsecase(collaterals, loans, borrowers, guow)
	changelogUC := changeloguc.NewUsecase(changelogs, collaterals, users)

	// handlers
	h := httpadp.NewHandler()
	authH := httpadp.NewAuthHandler(authUC)
	borrowerH := httpadp.NewBorrowerHandler(borrowerUC)
	loanH := httpadp.NewLoanHandler(loanUC)
	collateralH := httpadp.NewCollateralHandler(collateralUC)
	changelogH := httpadp.NewChangeLogHandler(changelogUC)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover(), metrics.Middleware())

	e.GET("/health", h.Health)
	e.GET("/metrics", metrics.Handler())

	e.POST("/auth/register", authH.Register)
	e.POST("/auth/login", authH.Login)
	e.POST("/auth/token/refresh", authH.Refresh)

	api := e.Group("", middleware.JWTAuth(tokens))

	api.GET("/borrowers", borrowerH.List)
	api.POST("/borrowers", borrowerH.Create)
	api.GET("/borrowers/:id", borrowerH.Get)
	api.PUT("/borrowers/:id", borrowerH.Update)
	api.PATCH("/borrowers/:id", borrowerH.Update)
	api.DELETE("/borrowers/:id", borrowerH.Delete)

	api.GET("/loans", loanH.List)
	api.POST("/loans", loanH.Create)
	api.GET("/loans/:id", loanH.Get)
	api.PUT("/loans/:id", loanH.Update)
	api.PATCH("/loans/:id", loanH.Update)
	api.DELETE("/loans/:id", loanH.Delete)

	api.GET("/collaterals", collateralH.List)
	api.POST("/collaterals", collateralH.Create)
	api.GET("/collaterals/:id", collateralH.Get)
	api.PUT("/collaterals/:id", collateralH.Update)
	api.PATCH("/collaterals/:id", collateralH.Update)
	api.DELETE("/collaterals/:id", collateralH.Delete)

	api.GET("/changelogs", changelogH.List)

	addr := ":" + cfg.AppPort
	logrus.Infof("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		logrus.Fatal(err)
	}
}
