package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/paycycle-hq/paycycle-backend-go/internal/config"
	appHTTP "github.com/paycycle-hq/paycycle-backend-go/internal/handler/http"
	"github.com/paycycle-hq/paycycle-backend-go/internal/pkg/database"
	"github.com/paycycle-hq/paycycle-backend-go/internal/pkg/email"
	"github.com/paycycle-hq/paycycle-backend-go/internal/pkg/jwt"
	"github.com/paycycle-hq/paycycle-backend-go/internal/pkg/oauth"
	"github.com/paycycle-hq/paycycle-backend-go/internal/pkg/storage"
	"github.com/paycycle-hq/paycycle-backend-go/internal/repository/postgresql"
	authService "github.com/paycycle-hq/paycycle-backend-go/internal/service/auth"
	currencyService "github.com/paycycle-hq/paycycle-backend-go/internal/service/currency"
	documentService "github.com/paycycle-hq/paycycle-backend-go/internal/service/document"
	employeeService "github.com/paycycle-hq/paycycle-backend-go/internal/service/employee"
	invitationService "github.com/paycycle-hq/paycycle-backend-go/internal/service/invitation"
	invoiceService "github.com/paycycle-hq/paycycle-backend-go/internal/service/invoice"
	organizationService "github.com/paycycle-hq/paycycle-backend-go/internal/service/organization"
	paymentService "github.com/paycycle-hq/paycycle-backend-go/internal/service/payment"
	timesheetService "github.com/paycycle-hq/paycycle-backend-go/internal/service/timesheet"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	orgRepo := postgresql.NewOrganizationRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	currencyRepo := postgresql.NewCurrencyRepository(db)
	invitationRepo := postgresql.NewInvitationRepository(db)
	invoiceRepo := postgresql.NewInvoiceRepository(db)
	paymentRepo := postgresql.NewPaymentRepository(db)
	timesheetRepo := postgresql.NewTimesheetRepository(db)
	documentRepo := postgresql.NewDocumentRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}

	authSvc := authService.NewAuthService(db, userRepo, orgRepo, employeeRepo, jwtService, googleService, emailService, cfg.App.FrontendURL)
	orgSvc := organizationService.NewOrganizationService(orgRepo, fileStorage)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, currencyRepo)
	currencySvc := currencyService.NewCurrencyService(currencyRepo)
	invitationSvc := invitationService.NewInvitationService(db, invitationRepo, employeeRepo, userRepo, orgRepo, emailService, cfg.App.FrontendURL)
	invoiceSvc := invoiceService.NewInvoiceService(db, invoiceRepo, employeeRepo, paymentRepo, timesheetRepo)
	paymentSvc := paymentService.NewPaymentService(db, paymentRepo, invoiceRepo, fileStorage)
	timesheetSvc := timesheetService.NewTimesheetService(db, timesheetRepo)
	documentSvc := documentService.NewDocumentService(documentRepo, employeeRepo, fileStorage)

	handlers := appHTTP.Handlers{
		Auth:         appHTTP.NewAuthHandler(jwtService, authSvc),
		Organization: appHTTP.NewOrganizationHandler(orgSvc),
		Employee:     appHTTP.NewEmployeeHandler(employeeSvc),
		Invitation:   appHTTP.NewInvitationHandler(invitationSvc),
		Currency:     appHTTP.NewCurrencyHandler(currencySvc),
		Invoice:      appHTTP.NewInvoiceHandler(invoiceSvc),
		Payment:      appHTTP.NewPaymentHandler(paymentSvc),
		Timesheet:    appHTTP.NewTimesheetHandler(timesheetSvc),
		Document:     appHTTP.NewDocumentHandler(documentSvc),
	}

	router := appHTTP.NewRouter(jwtService, cfg.App.FrontendURL, handlers)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
