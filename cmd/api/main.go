package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Chaithanyaistharla/hrm/internal/config"
	appHTTP "github.com/Chaithanyaistharla/hrm/internal/handler/http"
	"github.com/Chaithanyaistharla/hrm/internal/pkg/database"
	"github.com/Chaithanyaistharla/hrm/internal/pkg/jwt"
	"github.com/Chaithanyaistharla/hrm/internal/repository/postgresql"
	"github.com/Chaithanyaistharla/hrm/internal/service/access"
	attendanceService "github.com/Chaithanyaistharla/hrm/internal/service/attendance"
	authService "github.com/Chaithanyaistharla/hrm/internal/service/auth"
	employeeService "github.com/Chaithanyaistharla/hrm/internal/service/employee"
	leaveService "github.com/Chaithanyaistharla/hrm/internal/service/leave"
	payrollService "github.com/Chaithanyaistharla/hrm/internal/service/payroll"
	projectService "github.com/Chaithanyaistharla/hrm/internal/service/project"
	userService "github.com/Chaithanyaistharla/hrm/internal/service/user"
	"golang.org/x/sync/errgroup"
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
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	profileRepo := postgresql.NewProfileRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	leaveBalances := postgresql.NewLeaveBalanceStore(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	projectRepo := postgresql.NewProjectRepository(db)
	payslipRepo := postgresql.NewPayslipRepository(db)
	txManager := postgresql.NewTxManager(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	gate := access.NewGate()

	authSvc := authService.NewAuthService(userRepo, jwtService)
	userSvc := userService.NewUserService(userRepo, gate)
	employeeSvc := employeeService.NewEmployeeService(profileRepo, userRepo, gate)
	leaveSvc := leaveService.NewLeaveService(txManager, leaveRequestRepo, leaveBalances, profileRepo, gate)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, gate)
	projectSvc := projectService.NewProjectService(projectRepo, userRepo, gate)
	payrollSvc := payrollService.NewPayrollService(payslipRepo, profileRepo, leaveRequestRepo, gate)

	router := appHTTP.NewRouter(appHTTP.RouterDeps{
		JWTService:  jwtService,
		UserRepo:    userRepo,
		Auth:        appHTTP.NewAuthHandler(jwtService, authSvc),
		Users:       appHTTP.NewUserHandler(userSvc),
		Employees:   appHTTP.NewEmployeeHandler(employeeSvc),
		Leaves:      appHTTP.NewLeaveHandler(leaveSvc),
		Attendance:  appHTTP.NewAttendanceHandler(attendanceSvc),
		Projects:    appHTTP.NewProjectHandler(projectSvc),
		Payroll:     appHTTP.NewPayrollHandler(payrollSvc),
		Env:         cfg.App.Env,
		FrontendURL: cfg.App.FrontendURL,
	})

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		fmt.Printf("Server running at http://localhost%s\n", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal("Server error: ", err)
	}
}
