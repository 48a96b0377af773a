package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/paycycle-hq/paycycle-backend-go/internal/handler/http/middleware"
	"github.com/paycycle-hq/paycycle-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth         AuthHandler
	Organization OrganizationHandler
	Employee     EmployeeHandler
	Invitation   InvitationHandler
	Currency     CurrencyHandler
	Invoice      InvoiceHandler
	Payment      PaymentHandler
	Timesheet    TimesheetHandler
	Document     DocumentHandler
}

func NewRouter(jwtService jwt.Service, frontendURL string, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "paycycle"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Auth.Register)
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
			r.Post("/forgot-password", h.Auth.ForgotPassword)
			r.Post("/reset-password", h.Auth.ResetPassword)

			r.Route("/login/oauth", func(r chi.Router) {
				r.Get("/google", h.Auth.LoginWithGoogle)
			})
			r.Route("/oauth/callback", func(r chi.Router) {
				r.Get("/google", h.Auth.OAuthCallbackGoogle)
			})

			r.Route("/invitations/{token}", func(r chi.Router) {
				r.Get("/", h.Invitation.GetByToken)
				r.Post("/accept", h.Invitation.Accept)
			})

			// Requires authentication
			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
				r.Use(middleware.AuthRequired(jwtService.JWTAuth()))
				r.Get("/me", h.Auth.Me)
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Get("/currencies", h.Currency.List)

			r.Route("/admin", func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Get("/organizations", h.Organization.List)
				r.Get("/organizations/{id}", h.Organization.Get)
				r.Post("/currencies", h.Currency.Create)

				r.Put("/invoices/{id}/invoiced", h.Invoice.MarkInvoiced)
				r.Put("/invoices/{id}/paid", h.Invoice.MarkPaid)
			})

			r.Route("/organization", func(r chi.Router) {
				r.Use(middleware.OrganizationOnly)

				r.Get("/my", h.Organization.GetMy)
				r.Put("/my", h.Organization.UpdateMy)

				r.Route("/invoices", func(r chi.Router) {
					r.Post("/", h.Invoice.CreateCycle)
					r.Get("/", h.Invoice.ListCycles)
					r.Get("/cycle-breakdown/{id}", h.Invoice.GetCycleBreakdown)
					r.Put("/complete-cycle/{id}", h.Invoice.CompleteCycle)
					r.Get("/employee-invoice-list/{cycleId}", h.Invoice.ListCycleInvoices)

					r.Route("/{id}", func(r chi.Router) {
						r.Get("/", h.Invoice.GetInvoice)
						r.Put("/", h.Invoice.EditInvoice)
						r.Put("/approve", h.Invoice.ApproveInvoice)
						r.Put("/resolve", h.Invoice.ResolveChangeRequest)
						r.Put("/create", h.Invoice.ReissueInvoice)
						r.Put("/void", h.Invoice.VoidInvoice)
						r.Put("/invoiced", h.Invoice.MarkInvoiced)
						r.Put("/paid", h.Invoice.MarkPaid)
					})
				})

				r.Route("/payments/{id}", func(r chi.Router) {
					r.Get("/", h.Payment.ListPayments)
					r.Post("/", h.Payment.RecordPayment)
				})
				r.Get("/receipts/{id}", h.Payment.DownloadReceipt)

				r.Get("/invoice-history/{id}", h.Invoice.GetHistory)

				r.Route("/invoice-items", func(r chi.Router) {
					r.Post("/", h.Invoice.CreateItem)
					r.Get("/", h.Invoice.ListItems)
					r.Put("/{id}", h.Invoice.UpdateItem)
					r.Delete("/{id}", h.Invoice.DeleteItem)
				})

				r.Route("/employees", func(r chi.Router) {
					r.Post("/", h.Employee.Create)
					r.Get("/", h.Employee.List)
					r.Get("/{id}", h.Employee.Get)
					r.Put("/{id}", h.Employee.Update)
					r.Put("/{id}/bank-detail", h.Employee.UpsertBankDetail)
				})

				r.Route("/invitations", func(r chi.Router) {
					r.Post("/", h.Invitation.Invite)
					r.Get("/", h.Invitation.List)
					r.Put("/{id}/resend", h.Invitation.Resend)
					r.Delete("/{id}", h.Invitation.Revoke)
				})

				r.Route("/timesheets", func(r chi.Router) {
					r.Get("/", h.Timesheet.ListTimesheets)
					r.Get("/{id}", h.Timesheet.GetTimesheet)
					r.Put("/{id}/approve", h.Timesheet.ApproveTimesheet)
					r.Put("/{id}/reject", h.Timesheet.RejectTimesheet)
				})

				r.Route("/documents", func(r chi.Router) {
					r.Post("/", h.Document.Upload)
					r.Get("/", h.Document.List)
					r.Get("/{id}", h.Document.Download)
					r.Delete("/{id}", h.Document.Delete)
				})
			})

			r.Route("/employee", func(r chi.Router) {
				r.Use(middleware.EmployeeOnly)

				r.Get("/profile", h.Employee.GetMyProfile)
				r.Put("/bank-detail", h.Employee.UpsertMyBankDetail)

				r.Route("/invoice", func(r chi.Router) {
					r.Get("/", h.Invoice.ListMyInvoices)
					r.Get("/{id}", h.Invoice.GetMyInvoice)
					r.Put("/{id}/submit", h.Invoice.SubmitInvoice)
					r.Put("/{id}/change-request", h.Invoice.RequestInvoiceChanges)
				})

				r.Get("/payments/{id}", h.Payment.ListPayments)
				r.Get("/invoice-history/{id}", h.Invoice.GetHistory)

				r.Route("/timesheets", func(r chi.Router) {
					r.Post("/", h.Timesheet.CreateTimesheet)
					r.Get("/", h.Timesheet.ListMyTimesheets)
					r.Get("/{id}", h.Timesheet.GetMyTimesheet)
					r.Put("/{id}", h.Timesheet.UpdateTimesheet)
					r.Put("/{id}/submit", h.Timesheet.SubmitTimesheet)
				})
			})
		})
	})

	return r
}
