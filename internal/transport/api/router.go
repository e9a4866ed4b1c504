package api

import (
	"net/http"
	"time"

	"github.com/fsdevblog/flashboard/internal/service/tokens"
	"github.com/fsdevblog/flashboard/internal/transport/api/middlewares"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	DefaultServiceTimeout = 3 * time.Second
	// DefaultUploadTimeout для запросов с загрузкой изображений.
	DefaultUploadTimeout = 30 * time.Second
	maxMultipartMemory   = 32 << 20
)

const (
	RouteGroup           = "/api"
	BoardsRoute          = "/boards"
	BoardRoute           = "/boards/:boardID"
	QueueRoute           = "/boards/:boardID/queue"
	OrdersRoute          = "/orders"
	OrderRoute           = "/orders/:orderID"
	OrderCompleteRoute   = "/orders/:orderID/complete"
	OrderCancelRoute     = "/orders/:orderID/cancel"
	VerificationRoute    = "/verification/email"
	VerificationAckRoute = "/verification/email/confirm"
	HealthRoute          = "/healthz"
)

type RouterArgs struct {
	Logger              *logrus.Logger
	BoardService        BoardServicer
	QueueService        QueueServicer
	OrderService        OrderServicer
	VerificationService VerificationServicer
	JWTSecretKey        []byte
	CORSOrigins         []string
	// StaticURL/StaticDir раздают загруженные изображения. Пустые значения отключают раздачу.
	StaticURL string
	StaticDir string
}

func New(args RouterArgs) (*gin.Engine, error) {
	if err := registerValidators(); err != nil {
		return nil, err
	}

	r := gin.New()
	r.MaxMultipartMemory = maxMultipartMemory
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(cors.New(corsConfig(args.CORSOrigins)))
	r.Use(middlewares.Errors())

	r.GET(HealthRoute, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if args.StaticURL != "" && args.StaticDir != "" {
		r.Static(args.StaticURL, args.StaticDir)
	}

	boardHandler := NewBoardHandler(args.BoardService)
	queueHandler := NewQueueHandler(args.QueueService)
	ordersHandler := NewOrdersHandler(args.OrderService)
	verificationHandler := NewVerificationHandler(args.VerificationService)

	api := r.Group(RouteGroup)

	api.GET(BoardRoute, boardHandler.Show)
	api.POST(VerificationRoute, verificationHandler.Send)
	api.POST(VerificationAckRoute, verificationHandler.Confirm)

	api.Use(middlewares.AuthRequired(args.JWTSecretKey))
	// ниже все роуты группы требуют авторизованного пользователя.
	api.POST(BoardsRoute, middlewares.RoleRequired(tokens.RoleCompany), boardHandler.Create)

	api.POST(QueueRoute, queueHandler.Join)
	api.GET(QueueRoute, queueHandler.Status)
	api.DELETE(QueueRoute, queueHandler.Exit)

	api.POST(OrdersRoute, ordersHandler.Register)
	api.GET(OrderRoute, ordersHandler.Show)
	api.POST(OrderCompleteRoute, ordersHandler.Complete)
	api.POST(OrderCancelRoute, ordersHandler.Cancel)
	return r, nil
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization")
	cfg.ExposeHeaders = []string{"Content-Length"}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}
