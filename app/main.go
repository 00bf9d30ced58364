package main

import (
	"os"
	"os/signal"
	"sync"
	"syscall"

	"clinic/config"
	"clinic/domain"
	"clinic/server"
	"clinic/services/clinic/repository"
	"clinic/services/clinic/usecase"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var log *logrus.Logger
var wg sync.WaitGroup

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Warn("No .env file found, using the process environment")
	}

	log = config.GetLogrusInstance()

	startHTTP()
}

func startHTTP() {
	log.Info("Starting HTTP")

	var (
		db          *gorm.DB
		patientRepo domain.RecordRepo[domain.Patient]
		doctorRepo  domain.RecordRepo[domain.Doctor]
	)

	switch driver := config.GetDBDriver(); driver {
	case config.DBDriverMemory:
		log.Warn("Using the in-memory store, records are lost on shutdown")
		patientRepo = repository.NewPatientMemoryRepository()
		doctorRepo = repository.NewDoctorMemoryRepository()
	case config.DBDriverPostgres:
		var err error
		db, err = config.BootDB()
		if err != nil {
			log.Fatalf("Failed to boot DB: %v", err)
			return
		}
		patientRepo = repository.NewPatientRepository(db)
		doctorRepo = repository.NewDoctorRepository(db)
	default:
		log.Fatalf("Unknown DB_DRIVER %q", driver)
		return
	}

	timeout := config.GetRequestTimeout()
	app := server.New(server.Deps{
		Patients:    usecase.NewRecordUseCase(patientRepo, timeout),
		Doctors:     usecase.NewRecordUseCase(doctorRepo, timeout),
		Logger:      log,
		AuthEnabled: config.GetJWTSecret() != "",
	})

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Infof("Starting HTTP server for Public on port %s", config.GetFiberHttpPort())
		if err := app.Listen(config.GetFiberListenAddress()); err != nil {
			log.Fatalf("Error starting server: %v", err)
		}
	}()

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)

	<-signalChan

	log.Info("Shutting down the server...")

	if err := app.Shutdown(); err != nil {
		log.Errorf("Error during server shutdown: %v", err)
	}

	wg.Wait()

	if db != nil {
		if sqlDB, err := db.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				log.Errorf("Error closing DB: %v", err)
			}
		}
	}

	log.Info("Server shut down gracefully")
}
