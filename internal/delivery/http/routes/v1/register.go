package v1

import (
	"logistaff/internal/config"
	"logistaff/internal/database"
	"logistaff/internal/delivery/http/handler"
	"logistaff/internal/delivery/http/middleware"
	"logistaff/internal/pkg/jwt"
	"logistaff/internal/repository"
	"logistaff/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

func Register(r fiber.Router, cfg config.Config, db database.DB, cache usecase.MatchCache) {
	if r == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(cfg.JWT.Secret, cfg.JWT.ExpiresIn)
	authMw := middleware.NewAuthMiddleware(jwtSvc)

	candidateRepo := repository.NewPostgresCandidateRepository(db)
	requestRepo := repository.NewPostgresRequestRepository(db)
	matchRepo := repository.NewPostgresMatchRepository(db)

	matchingUC := usecase.NewMatchingUsecase(requestRepo, candidateRepo, cache, cfg.Redis.ResultTTL)
	decisionUC := usecase.NewDecisionUsecase(matchRepo, requestRepo, candidateRepo, cache, cfg.Redis.LockTTL)

	matchHandler := handler.NewMatchHandler(matchingUC, decisionUC)

	protected := r.Group("", authMw.Middleware())
	matchHandler.RegisterRoutes(protected)
}
