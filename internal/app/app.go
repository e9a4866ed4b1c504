package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsdevblog/flashboard/internal/admission"
	"github.com/fsdevblog/flashboard/internal/config"
	"github.com/fsdevblog/flashboard/internal/observability"
	"github.com/fsdevblog/flashboard/internal/repository/pgrepo"
	"github.com/fsdevblog/flashboard/internal/repository/repoargs"
	"github.com/fsdevblog/flashboard/internal/service"
	"github.com/fsdevblog/flashboard/internal/service/hasher"
	"github.com/fsdevblog/flashboard/internal/storage/images"
	"github.com/fsdevblog/flashboard/internal/transport/api"
	"github.com/fsdevblog/flashboard/internal/transport/events"
	"github.com/fsdevblog/flashboard/internal/transport/mail"
	"github.com/fsdevblog/flashboard/internal/transport/payment"
	"github.com/fsdevblog/flashboard/pkg/uow"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	// driver for migration applying postgres.
	_ "github.com/golang-migrate/migrate/v4/database/postgres" //nolint:revive
	// driver to get migrations from files (*.sql in our case).
	_ "github.com/golang-migrate/migrate/v4/source/file" //nolint:revive
)

const (
	shutdownTimeout   = 10 * time.Second
	readHeaderTimeout = 5 * time.Second
)

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

// Run поднимает зависимости и запускает HTTP сервер вместе с фоновыми процессами (допуск из очереди,
// сверка платежей, отправка событий). Возвращает context.Canceled после SIGINT/SIGTERM.
func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.Logger.Infof("Starting app with config: %s", a.Config)

	shutdownTracing, tracingErr := observability.SetupTracing(notifyCtx, a.Config.OTelEndpoint)
	if tracingErr != nil {
		return fmt.Errorf("app run: %s", tracingErr.Error())
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTracing(ctx); err != nil {
			a.Logger.WithError(err).Error("shutdown tracing")
		}
	}()

	conn, connErr := pgrepo.Connect(notifyCtx, a.Config.MigrationsDir, a.Config.DatabaseDSN, a.Logger)
	if connErr != nil {
		return fmt.Errorf("app run: %s", connErr.Error())
	}
	defer conn.Close()

	unitOfWork, uowErr := initUOW(conn, a.Config.LockTimeout)
	if uowErr != nil {
		return fmt.Errorf("app run: %s", uowErr.Error())
	}

	rdb := redis.NewClient(&redis.Options{Addr: a.Config.RedisAddr})
	defer func() {
		if err := rdb.Close(); err != nil {
			a.Logger.WithError(err).Error("close redis client")
		}
	}()
	if err := rdb.Ping(notifyCtx).Err(); err != nil {
		return fmt.Errorf("app run: ping redis: %s", err.Error())
	}
	queue := admission.NewQueue(rdb)

	mailer, mailerErr := a.initMailer()
	if mailerErr != nil {
		return fmt.Errorf("app run: %s", mailerErr.Error())
	}

	g, gCtx := errgroup.WithContext(notifyCtx)

	publisher := a.initPublisher(gCtx, g)
	gateway := payment.NewGateway(a.Config.PaymentAPIURL, a.Config.PaymentAPIKey)

	services, sErr := service.Factory(unitOfWork, service.FactoryArgs{
		Queue:            queue,
		Payments:         gateway,
		Events:           publisher,
		Uploader:         images.NewDiskUploader(a.Config.UploadDir, a.Config.UploadBaseURL),
		Mailer:           mailer,
		Hasher:           hasher.NewBcrypt(),
		Logger:           a.Logger,
		RequireAdmission: a.Config.RequireAdmission,
		RestockOnCancel:  a.Config.RestockOnCancel,
	})
	if sErr != nil {
		return fmt.Errorf("app run: %s", sErr.Error())
	}
	services.VerificationService.
		SetTTL(a.Config.VerificationCodeTTL).
		SetMaxAttempts(a.Config.VerificationAttempts)

	router, routerErr := api.New(api.RouterArgs{
		Logger:              a.Logger,
		BoardService:        services.BoardService,
		QueueService:        queue,
		OrderService:        services.OrderService,
		VerificationService: services.VerificationService,
		JWTSecretKey:        []byte(a.Config.JWTSecret),
		CORSOrigins:         a.Config.CORSOrigins,
		StaticURL:           a.Config.UploadBaseURL,
		StaticDir:           a.Config.UploadDir,
	})
	if routerErr != nil {
		return fmt.Errorf("app run: %s", routerErr.Error())
	}

	admitter := admission.NewAdmitter(queue, a.Logger).
		SetBatch(a.Config.AdmitBatch).
		SetCapacity(a.Config.AdmitCapacity).
		SetInterval(a.Config.AdmitInterval).
		SetAdmissionTTL(a.Config.AdmissionTTL)
	g.Go(func() error {
		return admitter.Run(gCtx)
	})

	processor := payment.NewProcessor(services.OrderService, gateway, a.Logger).
		SetWorkers(a.Config.ReconcileWorkers).
		SetPaymentWaitTTL(a.Config.PaymentWaitTTL).
		SetInterval(a.Config.ReconcileInterval).
		SetLimitPerIteration(100) //nolint:mnd
	g.Go(func() error {
		return processor.Run(gCtx)
	})

	server := &http.Server{
		Addr:              a.Config.RunAddress,
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
	}
	g.Go(func() error {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(ctx) //nolint:wrapcheck
	})

	if err := g.Wait(); err != nil {
		return err //nolint:wrapcheck
	}
	return notifyCtx.Err() //nolint:wrapcheck
}

// initPublisher возвращает kafka producer, если заданы брокеры, иначе события только пишутся в лог.
func (a *App) initPublisher(ctx context.Context, g *errgroup.Group) service.EventPublisher {
	if len(a.Config.KafkaBrokers) == 0 {
		a.Logger.Warn("KAFKA_BROKERS is empty, order events go to the log")
		return events.NewLogPublisher(a.Logger)
	}
	producer := events.NewProducer(a.Config.KafkaBrokers, a.Config.KafkaTopic, observability.ServiceName, a.Logger)
	g.Go(func() error {
		return producer.Run(ctx)
	})
	return producer
}

func (a *App) initMailer() (service.Mailer, error) {
	if a.Config.SMTPAddr == "" {
		a.Logger.Warn("SMTP_ADDR is empty, verification codes go to the log")
		return mail.NewLogSender(a.Logger), nil
	}
	sender, err := mail.NewSMTPSender(a.Config.SMTPAddr, a.Config.SMTPFrom, a.Config.SMTPUsername, a.Config.SMTPPassword)
	if err != nil {
		return nil, fmt.Errorf("init mailer: %w", err)
	}
	return sender, nil
}

func initUOW(conn *pgxpool.Pool, lockTimeout time.Duration) (*uow.UnitOfWork, error) {
	unitOfWork := uow.NewUnitOfWork(conn, uow.WithLockTimeout(lockTimeout))

	repos := map[repoargs.RepositoryName]uow.RepositoryFactory{
		repoargs.UserRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewUserRepository(dbtx)
		},
		repoargs.BoardRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewBoardRepository(dbtx)
		},
		repoargs.ProductRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewProductRepository(dbtx)
		},
		repoargs.OrderRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewOrderRepository(dbtx)
		},
		repoargs.VerificationRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewVerificationRepository(dbtx)
		},
	}
	for name, factory := range repos {
		if regErr := unitOfWork.Register(uow.RepositoryName(name), factory); regErr != nil {
			return nil, fmt.Errorf("init UOW: %s", regErr.Error())
		}
	}

	return unitOfWork, nil
}
