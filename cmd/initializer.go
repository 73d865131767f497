package main

import (
	"database/sql"
	"log"
	"net/http"
	"time"

	"firebase.google.com/go/messaging"
	"github.com/redis/go-redis/v9"

	"rentora/internal/config"
	"rentora/internal/handlers"
	"rentora/internal/repositories"
	"rentora/internal/services"
	"rentora/utils"
)

type application struct {
	errorLog *log.Logger
	infoLog  *log.Logger
	db       *sql.DB

	userRepo         *repositories.UserRepository
	customerRepo     *repositories.CustomerRepository
	categoryRepo     *repositories.CategoryRepository
	productRepo      *repositories.ProductRepository
	subscriptionRepo *repositories.SubscriptionRepository
	paymentRepo      *repositories.PaymentRepository
	invoiceRepo      *repositories.InvoiceRepository
	deviceTokenRepo  *repositories.DeviceTokenRepository
	viewCounter      *repositories.ViewCounter

	userHandler         *handlers.UserHandler
	customerHandler     *handlers.CustomerHandler
	categoryHandler     *handlers.CategoryHandler
	productHandler      *handlers.ProductHandler
	subscriptionHandler *handlers.SubscriptionHandler
	paymentHandler      *handlers.PaymentHandler
	fcmHandler          *handlers.FCMHandler

	signingKey string
}

func initializeApp(db *sql.DB, rdb *redis.Client, fcmClient *messaging.Client, cfg config.Config, errorLog, infoLog *log.Logger) *application {
	tokenManager, err := utils.NewManager(cfg.JWT.SigningKey)
	if err != nil {
		errorLog.Fatal(err)
	}

	// Repositories
	userRepo := repositories.UserRepository{DB: db}
	customerRepo := repositories.CustomerRepository{DB: db}
	categoryRepo := repositories.CategoryRepository{DB: db}
	productRepo := repositories.ProductRepository{DB: db}
	subscriptionRepo := repositories.SubscriptionRepository{DB: db}
	paymentRepo := repositories.PaymentRepository{DB: db}
	invoiceRepo := repositories.InvoiceRepository{DB: db}
	deviceTokenRepo := repositories.DeviceTokenRepository{DB: db}
	viewCounter := repositories.NewViewCounter(rdb)

	// Services
	userService := &services.UserService{UserRepo: &userRepo, TokenManager: tokenManager}
	customerService := &services.CustomerService{CustomerRepo: &customerRepo, UserRepo: &userRepo}
	categoryService := &services.CategoryService{CategoryRepo: &categoryRepo}
	productService := &services.ProductService{ProductRepo: &productRepo, ViewCounter: viewCounter}
	subscriptionService := &services.SubscriptionService{
		SubscriptionRepo: &subscriptionRepo,
		ProductRepo:      &productRepo,
		CustomerRepo:     &customerRepo,
	}
	notificationService := &services.NotificationService{
		Client:    fcmClient,
		TokenRepo: &deviceTokenRepo,
		ErrorLog:  errorLog,
	}
	paymentService := &services.PaymentService{
		SubscriptionRepo: &subscriptionRepo,
		PaymentRepo:      &paymentRepo,
		InvoiceRepo:      &invoiceRepo,
		CustomerRepo:     &customerRepo,
		Gateway:          services.NewSimulatedGateway(uint64(randomSeed())),
		Notifier:         notificationService,
	}
	pdfService := &services.InvoicePDFService{CompanyName: cfg.Company.Name}

	// Handlers
	userHandler := &handlers.UserHandler{Service: userService}
	customerHandler := &handlers.CustomerHandler{Service: customerService}
	categoryHandler := &handlers.CategoryHandler{Service: categoryService}
	productHandler := &handlers.ProductHandler{Service: productService}
	subscriptionHandler := &handlers.SubscriptionHandler{Service: subscriptionService}
	paymentHandler := &handlers.PaymentHandler{Service: paymentService, PDFService: pdfService}
	fcmHandler := &handlers.FCMHandler{Service: notificationService}

	return &application{
		errorLog:            errorLog,
		infoLog:             infoLog,
		db:                  db,
		userRepo:            &userRepo,
		customerRepo:        &customerRepo,
		categoryRepo:        &categoryRepo,
		productRepo:         &productRepo,
		subscriptionRepo:    &subscriptionRepo,
		paymentRepo:         &paymentRepo,
		invoiceRepo:         &invoiceRepo,
		deviceTokenRepo:     &deviceTokenRepo,
		viewCounter:         viewCounter,
		userHandler:         userHandler,
		customerHandler:     customerHandler,
		categoryHandler:     categoryHandler,
		productHandler:      productHandler,
		subscriptionHandler: subscriptionHandler,
		paymentHandler:      paymentHandler,
		fcmHandler:          fcmHandler,
		signingKey:          cfg.JWT.SigningKey,
	}
}

func randomSeed() int64 {
	return time.Now().UnixNano()
}

func addSecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cross-Origin-Opener-Policy", "same-origin")
		w.Header().Set("Cross-Origin-Resource-Policy", "same-origin")
		next.ServeHTTP(w, r)
	})
}
