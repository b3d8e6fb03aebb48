package main

import (
	"fmt"
	"net/http"

	"github.com/staffsync/leave-backend-go/internal/config"
	appHTTP "github.com/staffsync/leave-backend-go/internal/handler/http"
	"github.com/staffsync/leave-backend-go/internal/pkg/database"
	"github.com/staffsync/leave-backend-go/internal/pkg/jwt"
	"github.com/staffsync/leave-backend-go/internal/repository/postgresql"
	leaveService "github.com/staffsync/leave-backend-go/internal/service/leave"
	statsService "github.com/staffsync/leave-backend-go/internal/service/stats"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	leaveRepo := postgresql.NewLeaveRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	lifecycleService := leaveService.NewLifecycleService(db, leaveRepo, employeeRepo, cfg.Leave.DefaultAllowance)
	statsSvc := statsService.NewStatsService(leaveRepo, employeeRepo, cfg.Leave.DefaultAllowance)

	leaveHandler := appHTTP.NewLeaveHandler(lifecycleService)
	statsHandler := appHTTP.NewStatsHandler(statsSvc)

	router := appHTTP.NewRouter(JWTService, leaveHandler, statsHandler, cfg.App.Env)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
