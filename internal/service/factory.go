package service

import (
	"fmt"

	"github.com/fsdevblog/flashboard/pkg/uow"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("github.com/fsdevblog/flashboard/internal/service")

type AppServices struct {
	OrderService        *OrderService
	BoardService        *BoardService
	VerificationService *VerificationService
}

type FactoryArgs struct {
	Queue            AdmissionQueue
	Payments         PaymentGateway
	Events           EventPublisher
	Uploader         ImageUploader
	Mailer           Mailer
	Hasher           CodeHasher
	Logger           *logrus.Logger
	RequireAdmission bool
	RestockOnCancel  bool
}

func Factory(unitOfWork uow.UOW, args FactoryArgs) (*AppServices, error) {
	validator := NewOrderValidator(args.Queue, args.Logger).SetRequireAdmission(args.RequireAdmission)

	orderService, orderServiceErr := NewOrderService(unitOfWork, OrderServiceDeps{
		Validator: validator,
		Queue:     args.Queue,
		Payments:  args.Payments,
		Events:    args.Events,
		Logger:    args.Logger,
	})
	if orderServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", orderServiceErr.Error())
	}
	orderService.SetRestockOnCancel(args.RestockOnCancel)

	boardService, boardServiceErr := NewBoardService(unitOfWork, args.Queue, args.Uploader)
	if boardServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", boardServiceErr.Error())
	}

	verificationService, verificationErr := NewVerificationService(unitOfWork, args.Hasher, args.Mailer)
	if verificationErr != nil {
		return nil, fmt.Errorf("service factory: %s", verificationErr.Error())
	}

	return &AppServices{
		OrderService:        orderService,
		BoardService:        boardService,
		VerificationService: verificationService,
	}, nil
}
