package http

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	customfieldusecases "deskd/internal/application/customfield/usecases"
	routingusecases "deskd/internal/application/routing/usecases"
	teamusecases "deskd/internal/application/team/usecases"
	ticketusecases "deskd/internal/application/ticket/usecases"
	userusecases "deskd/internal/application/user/usecases"
	"deskd/internal/domain/shared/events"
	"deskd/internal/domain/ticket"
	"deskd/internal/infrastructure/auth"
	"deskd/internal/infrastructure/cache"
	"deskd/internal/infrastructure/config"
	"deskd/internal/infrastructure/permission"
	"deskd/internal/infrastructure/ratelimit"
	"deskd/internal/infrastructure/repository"
	"deskd/internal/infrastructure/services"
	"deskd/internal/interfaces/http/handlers"
	"deskd/internal/interfaces/http/middleware"
	"deskd/internal/interfaces/http/routes"
	"deskd/internal/shared/logger"
	sharedmarkdown "deskd/internal/shared/services/markdown"

	_ "deskd/docs"
)

// Router wires repositories, use cases, handlers and middleware into a
// configured Gin engine.
type Router struct {
	engine *gin.Engine
}

// NewRouter builds the full dependency graph. redisClient may be nil, in
// which case token revocation and rate limiting are disabled.
func NewRouter(db *gorm.DB, cfg *config.Config, redisClient *redis.Client, enforcer *permission.Enforcer, log logger.Interface) *Router {
	engine := gin.New()

	engine.Use(middleware.Recovery())
	engine.Use(middleware.Logger(log))
	engine.Use(middleware.ErrorHandler())
	engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	engine.Use(middleware.SecurityHeaders())

	// Repositories
	ticketRepo := repository.NewTicketRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	userRepo := repository.NewUserRepository(db)
	ruleRepo := repository.NewRoutingRuleRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	fieldRepo := repository.NewCustomFieldRepository(db)

	// Infrastructure services
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes, cfg.Auth.JWT.RefreshExpDays)
	numberGen := services.NewTicketNumberGenerator(db)
	markdownSvc := sharedmarkdown.NewMarkdownService()

	var blacklist userusecases.TokenBlacklist
	var rateLimitMw *middleware.RateLimitMiddleware
	if redisClient != nil {
		blacklist = cache.NewRedisTokenBlacklist(redisClient)
		rateLimitMw = middleware.NewRateLimitMiddleware(
			ratelimit.NewRedisRateLimiter(redisClient),
			ratelimit.Config{RequestsPerMinute: 30, RequestsPerHour: 300},
			log,
		)
	}

	dispatcher := newEventDispatcher(log)

	// Routing use cases
	autoAssignUC := routingusecases.NewAutoAssignTicketUseCase(ticketRepo, userRepo, ruleRepo, log).WithDispatcher(dispatcher)
	createRuleUC := routingusecases.NewCreateRuleUseCase(ruleRepo, log)
	getRuleUC := routingusecases.NewGetRuleUseCase(ruleRepo, log)
	listRulesUC := routingusecases.NewListRulesUseCase(ruleRepo, log)
	updateRuleUC := routingusecases.NewUpdateRuleUseCase(ruleRepo, log)
	deleteRuleUC := routingusecases.NewDeleteRuleUseCase(ruleRepo, log)
	matchingRulesUC := routingusecases.NewGetMatchingRulesUseCase(ruleRepo, log)
	availAgentsUC := routingusecases.NewGetAvailableAgentsUseCase(userRepo, ticketRepo, log)
	bestAgentUC := routingusecases.NewFindBestAgentUseCase(userRepo, ticketRepo, log)

	// Ticket use cases
	createTicketUC := ticketusecases.NewCreateTicketUseCase(ticketRepo, fieldRepo, numberGen, autoAssignUC, cfg.Routing.AutoAssignOnCreate, log).WithDispatcher(dispatcher)
	getTicketUC := ticketusecases.NewGetTicketUseCase(ticketRepo, log)
	listTicketsUC := ticketusecases.NewListTicketsUseCase(ticketRepo, log)
	updateTicketUC := ticketusecases.NewUpdateTicketUseCase(ticketRepo, log)
	deleteTicketUC := ticketusecases.NewDeleteTicketUseCase(ticketRepo, log)
	changeStatusUC := ticketusecases.NewChangeTicketStatusUseCase(ticketRepo, log).WithDispatcher(dispatcher)
	changePriorityUC := ticketusecases.NewChangeTicketPriorityUseCase(ticketRepo, log)
	assignTicketUC := ticketusecases.NewAssignTicketUseCase(ticketRepo, userRepo, log).WithDispatcher(dispatcher)
	addCommentUC := ticketusecases.NewAddCommentUseCase(ticketRepo, commentRepo, markdownSvc, log)
	listCommentsUC := ticketusecases.NewListCommentsUseCase(ticketRepo, commentRepo, markdownSvc, log)
	ticketStatsUC := ticketusecases.NewGetTicketStatsUseCase(ticketRepo, log)

	// User use cases
	registerUC := userusecases.NewRegisterUserUseCase(userRepo, hasher, log)
	loginUC := userusecases.NewLoginUserUseCase(userRepo, hasher, jwtService, log)
	refreshUC := userusecases.NewRefreshTokenUseCase(userRepo, jwtService, blacklist, log)
	logoutUC := userusecases.NewLogoutUserUseCase(blacklist, log)
	getUserUC := userusecases.NewGetUserUseCase(userRepo, log)
	listAgentsUC := userusecases.NewListAgentsUseCase(userRepo, log)
	updateSkillsUC := userusecases.NewUpdateUserSkillsUseCase(userRepo, log)

	// Team use cases
	createTeamUC := teamusecases.NewCreateTeamUseCase(teamRepo, log)
	getTeamUC := teamusecases.NewGetTeamUseCase(teamRepo, log)
	listTeamsUC := teamusecases.NewListTeamsUseCase(teamRepo, log)
	updateTeamUC := teamusecases.NewUpdateTeamUseCase(teamRepo, log)
	deleteTeamUC := teamusecases.NewDeleteTeamUseCase(teamRepo, log)
	addMemberUC := teamusecases.NewAddTeamMemberUseCase(teamRepo, userRepo, log)
	removeMemberUC := teamusecases.NewRemoveTeamMemberUseCase(teamRepo, userRepo, log)

	// Custom field use cases
	createFieldUC := customfieldusecases.NewCreateDefinitionUseCase(fieldRepo, log)
	getFieldUC := customfieldusecases.NewGetDefinitionUseCase(fieldRepo, log)
	listFieldsUC := customfieldusecases.NewListDefinitionsUseCase(fieldRepo, log)
	updateFieldUC := customfieldusecases.NewUpdateDefinitionUseCase(fieldRepo, log)
	deleteFieldUC := customfieldusecases.NewDeleteDefinitionUseCase(fieldRepo, log)

	// Handlers
	authHandler := handlers.NewAuthHandler(registerUC, loginUC, refreshUC, logoutUC, getUserUC)
	userHandler := handlers.NewUserHandler(getUserUC, listAgentsUC, updateSkillsUC)
	ticketHandler := handlers.NewTicketHandler(
		createTicketUC, getTicketUC, listTicketsUC, updateTicketUC, deleteTicketUC,
		changeStatusUC, changePriorityUC, assignTicketUC, addCommentUC, listCommentsUC,
	)
	routingHandler := handlers.NewRoutingHandler(
		createRuleUC, getRuleUC, listRulesUC, updateRuleUC, deleteRuleUC,
		matchingRulesUC, availAgentsUC, bestAgentUC, autoAssignUC,
	)
	teamHandler := handlers.NewTeamHandler(
		createTeamUC, getTeamUC, listTeamsUC, updateTeamUC, deleteTeamUC,
		addMemberUC, removeMemberUC,
	)
	fieldHandler := handlers.NewCustomFieldHandler(createFieldUC, getFieldUC, listFieldsUC, updateFieldUC, deleteFieldUC)
	statsHandler := handlers.NewStatsHandler(ticketStatsUC)

	// Middleware
	authMw := middleware.NewAuthMiddleware(jwtService, blacklist, log)
	permissionMw := middleware.NewPermissionMiddleware(enforcer, log)

	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	routes.SetupAuthRoutes(engine, &routes.AuthRouteConfig{
		AuthHandler:    authHandler,
		AuthMiddleware: authMw,
		RateLimit:      rateLimitMw,
	})
	routes.SetupUserRoutes(engine, &routes.UserRouteConfig{
		UserHandler:    userHandler,
		AuthMiddleware: authMw,
	})
	routes.SetupTicketRoutes(engine, &routes.TicketRouteConfig{
		TicketHandler:  ticketHandler,
		RoutingHandler: routingHandler,
		AuthMiddleware: authMw,
	})
	routes.SetupRoutingRoutes(engine, &routes.RoutingRouteConfig{
		RoutingHandler: routingHandler,
		AuthMiddleware: authMw,
		Permission:     permissionMw,
	})
	routes.SetupTeamRoutes(engine, &routes.TeamRouteConfig{
		TeamHandler:    teamHandler,
		AuthMiddleware: authMw,
	})
	routes.SetupCustomFieldRoutes(engine, &routes.CustomFieldRouteConfig{
		CustomFieldHandler: fieldHandler,
		AuthMiddleware:     authMw,
	})
	routes.SetupAdminRoutes(engine, &routes.AdminRouteConfig{
		StatsHandler:   statsHandler,
		AuthMiddleware: authMw,
		Permission:     permissionMw,
	})

	return &Router{engine: engine}
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// newEventDispatcher builds the in-process dispatcher with an audit-log
// subscriber for ticket lifecycle events.
func newEventDispatcher(log logger.Interface) *events.InMemoryDispatcher {
	dispatcher := events.NewInMemoryDispatcher()
	auditLog := log.Named("audit")

	logEvent := func(ctx context.Context, event events.DomainEvent) error {
		auditLog.Infow("domain event", "event", event.EventName(), "occurred_at", event.OccurredAt())
		return nil
	}

	dispatcher.Subscribe(ticket.EventTicketCreated, logEvent)
	dispatcher.Subscribe(ticket.EventTicketAssigned, logEvent)
	dispatcher.Subscribe(ticket.EventTicketAutoAssigned, logEvent)
	dispatcher.Subscribe(ticket.EventTicketStatusChanged, logEvent)

	return dispatcher
}
