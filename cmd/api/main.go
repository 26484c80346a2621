package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/sinergi-org/sinergi-backend/internal/config"
	"github.com/sinergi-org/sinergi-backend/internal/handler"
	"github.com/sinergi-org/sinergi-backend/internal/middleware"
	"github.com/sinergi-org/sinergi-backend/internal/migration"
	"github.com/sinergi-org/sinergi-backend/internal/repository"
	"github.com/sinergi-org/sinergi-backend/internal/routes"
	"github.com/sinergi-org/sinergi-backend/internal/service"
	pkgcache "github.com/sinergi-org/sinergi-backend/pkg/cache"
	"github.com/sinergi-org/sinergi-backend/pkg/jwt"
	pkglogger "github.com/sinergi-org/sinergi-backend/pkg/logger"
	pkgredis "github.com/sinergi-org/sinergi-backend/pkg/redis"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// @title           Sinergi Backend API
// @version         1.0
// @description     Organization administration backend - meetings, programs and attendance
//
// @host            localhost:8080
// @BasePath        /api/v1
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Authorization header using the Bearer scheme. Example: "Bearer {token}"

// getConfigPath returns config file path based on APP_ENV environment variable
func getConfigPath() string {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	return fmt.Sprintf("configs/config.%s.yaml", env)
}

func main() {
	dotenvFiles := config.LoadDotEnv()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	pkglogger.Init(env)
	pkglogger.Info("APP_ENV=%s, loaded env files: %v", env, dotenvFiles)

	configPath := getConfigPath()
	pkglogger.Info("Loading config from: %s", configPath)
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// MySQL
	db, err := initDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	pkglogger.Info("Connected to MySQL")
	if err := migration.Run(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	// Redis (optional)
	var cacheService pkgcache.Service
	redisClient, err := connectRedis(cfg)
	if err != nil {
		pkglogger.Error("Failed to connect to Redis: %v (continuing without Redis)", err)
		redisClient = nil
	} else if redisClient != nil {
		pkglogger.Info("Connected to Redis")
		cacheService = pkgcache.NewService(redisClient)
	}

	// JWT Manager
	jwtManager := jwt.NewManager(cfg.JWT.Secret, cfg.JWT.ExpiresIn)

	// Router
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	// CORS
	allowOrigins := cfg.CORS.AllowOrigins
	if allowOrigins == "" {
		allowOrigins = "http://localhost:3000"
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     splitAndTrim(allowOrigins, ","),
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		AllowCredentials: true,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Remaining"},
		MaxAge:           86400,
	}))

	// Middleware
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.Metrics())
	router.Use(middleware.RequestLogger())

	if redisClient != nil && !cfg.IsDevelopment() {
		router.Use(middleware.RateLimit(redisClient, middleware.DefaultRateLimitConfig()))
	}

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health Check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "sinergi-backend",
			"cache":   cacheService != nil && cacheService.IsAvailable(),
			"time":    time.Now().Unix(),
		})
	})

	// Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Repositories
	memberRepo := repository.NewMemberRepository(db)
	staffRepo := repository.NewStaffRepository(db)
	programRepo := repository.NewProgramRepository(db)
	meetingRepo := repository.NewMeetingRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)

	// Services
	guard := service.NewAccessGuard()
	resolver := service.NewAudienceResolver(memberRepo, staffRepo)
	programService := service.NewProgramService(programRepo, memberRepo, staffRepo, guard, cacheService)
	meetingService := service.NewMeetingService(meetingRepo, programRepo, resolver, guard)
	attendanceService := service.NewAttendanceService(meetingRepo, memberRepo, attendanceRepo, resolver, guard)
	memberService := service.NewMemberService(memberRepo, cacheService)

	// Handlers
	programHandler := handler.NewProgramHandler(programService)
	meetingHandler := handler.NewMeetingHandler(meetingService)
	attendanceHandler := handler.NewAttendanceHandler(attendanceService)
	memberHandler := handler.NewMemberHandler(memberService)

	routes.Setup(router, programHandler, meetingHandler, attendanceHandler, memberHandler, jwtManager)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	pkglogger.Info("Listening on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func initDB(cfg *config.Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{}
	if cfg.IsDevelopment() {
		gormCfg.Logger = gormlogger.Default.LogMode(gormlogger.Info)
	} else {
		gormCfg.Logger = gormlogger.Default.LogMode(gormlogger.Warn)
	}
	return gorm.Open(mysql.Open(cfg.DSN()), gormCfg)
}

func connectRedis(cfg *config.Config) (*goredis.Client, error) {
	if !cfg.Redis.Enabled {
		return nil, nil
	}
	return pkgredis.NewClient(
		cfg.Redis.Host,
		cfg.Redis.Port,
		cfg.Redis.Password,
		cfg.Redis.DB,
		cfg.Redis.PoolSize,
	)
}

func splitAndTrim(s, sep string) []string {
	parts := strings.Split(s, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
