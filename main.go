// file: main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"

	"kampusku_backend/internals/configs"
	database "kampusku_backend/internals/databases"
	"kampusku_backend/internals/middlewares"
	"kampusku_backend/internals/route"

	staffModel "kampusku_backend/internals/features/academics/staff/model"
	studentModel "kampusku_backend/internals/features/academics/students/model"
	subjectModel "kampusku_backend/internals/features/academics/subjects/model"
	sessionModel "kampusku_backend/internals/features/academics/timetable/model"
	markingModel "kampusku_backend/internals/features/attendance/marking/model"
	reconcileService "kampusku_backend/internals/features/reconcile/service"
	settingsModel "kampusku_backend/internals/features/system/settings/model"
	userModel "kampusku_backend/internals/features/users/auth/model"
)

func main() {
	configs.LoadEnv()

	app := fiber.New(fiber.Config{
		AppName:     "kampusku_backend",
		JSONEncoder: sonic.Marshal,
		JSONDecoder: sonic.Unmarshal,
		ReadTimeout: 15 * time.Second,
	})

	middlewares.SetupMiddlewares(app)

	database.ConnectDB()
	database.TunePool()
	database.WarmUp()

	if err := database.DB.AutoMigrate(
		&studentModel.StudentModel{},
		&subjectModel.SubjectModel{},
		&staffModel.StaffModel{},
		&sessionModel.TimetableSessionModel{},
		&markingModel.SessionAttendanceModel{},
		&userModel.UserModel{},
		&userModel.RefreshTokenModel{},
		&settingsModel.SystemSettingModel{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	store := reconcileService.NewGormRosterStore(database.DB)
	runner := reconcileService.NewRunner(store, configs.SemesterSearchMax())

	// Startup reconciliation: clean the roster before serving traffic.
	// Non-fatal; a broken roster should not keep the API down.
	func() {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()
		report, err := runner.RunMaintenancePass(ctx)
		if err != nil {
			log.Printf("⚠️ startup maintenance pass failed: %v", err)
			return
		}
		log.Printf("✅ startup maintenance pass: %d writes, %d unresolved",
			report.Writes, len(report.Unresolved))
	}()

	route.SetupRoutes(app, database.DB, runner, store)

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("🛑 Shutting down...")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Printf("shutdown err: %v", err)
		}
	}()

	port := configs.GetEnv("PORT", "8080")
	log.Printf("🚀 kampusku_backend listening on :%s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("❌ server stopped: %v", err)
	}
}
