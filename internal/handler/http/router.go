package http

import (
	"log/slog"
	"os"

	"github.com/Chaithanyaistharla/hrm/internal/domain/user"
	"github.com/Chaithanyaistharla/hrm/internal/handler/http/middleware"
	"github.com/Chaithanyaistharla/hrm/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type RouterDeps struct {
	JWTService jwt.Service
	UserRepo   user.UserRepository

	Auth       AuthHandler
	Users      UserHandler
	Employees  EmployeeHandler
	Leaves     LeaveHandler
	Attendance AttendanceHandler
	Projects   ProjectHandler
	Payroll    PayrollHandler

	Env         string
	FrontendURL string
}

func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hrm"),
		slog.String("env", deps.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{deps.FrontendURL},
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

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", deps.Auth.Login)
			r.Post("/refresh", deps.Auth.RefreshToken)
			r.Post("/logout", deps.Auth.Logout)

			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(deps.JWTService.JWTAuth()))
				r.Use(middleware.AuthRequired(deps.JWTService.JWTAuth(), deps.UserRepo))
				r.Get("/me", deps.Auth.Me)
				r.Post("/change-password", deps.Auth.ChangePassword)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(deps.JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(deps.JWTService.JWTAuth(), deps.UserRepo))

			r.Route("/users", func(r chi.Router) {
				r.Get("/", deps.Users.List)
				r.Get("/{id}", deps.Users.Get)
				r.Put("/{id}/role", deps.Users.AssignRole)
				r.Put("/{id}/active", deps.Users.SetActive)
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", deps.Employees.Directory)
				r.Get("/me", deps.Employees.GetOwn)
				r.Put("/me", deps.Employees.UpdateOwn)
				r.Get("/team", deps.Employees.Team)
				r.Get("/{id}", deps.Employees.Get)
				r.Put("/{id}/manager", deps.Employees.SetManager)
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Post("/", deps.Leaves.Submit)
				r.Get("/", deps.Leaves.ListOwn)
				r.Get("/pending", deps.Leaves.ListPending)
				r.Get("/balances", deps.Leaves.Balances)
				r.Post("/{id}/decision", deps.Leaves.Decide)
				r.Post("/{id}/cancel", deps.Leaves.Cancel)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/clock-in", deps.Attendance.ClockIn)
				r.Post("/clock-out", deps.Attendance.ClockOut)
				r.Get("/today", deps.Attendance.Today)
				r.Get("/", deps.Attendance.ListOwn)
				r.Get("/team", deps.Attendance.ListTeam)
			})

			r.Route("/projects", func(r chi.Router) {
				r.Get("/", deps.Projects.List)
				r.Post("/", deps.Projects.Create)
				r.Get("/my", deps.Projects.ListOwn)
				r.Get("/{id}", deps.Projects.Get)
				r.Put("/{id}", deps.Projects.Update)
				r.Get("/{id}/members", deps.Projects.ListMembers)
				r.Post("/{id}/members", deps.Projects.AddMember)
				r.Delete("/{id}/members/{employeeID}", deps.Projects.RemoveMember)
			})

			r.Route("/payslips", func(r chi.Router) {
				r.Post("/", deps.Payroll.Generate)
				r.Get("/", deps.Payroll.ListOwn)
				r.Get("/{id}", deps.Payroll.Get)
				r.Post("/{id}/finalize", deps.Payroll.Finalize)
				r.Get("/{id}/pdf", deps.Payroll.DownloadPDF)
			})
		})
	})

	return r
}
