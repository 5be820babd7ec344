package main

import (
	"fmt"
	"net/http"

	"sreedamodar/config"
	"sreedamodar/db"
	"sreedamodar/db/mongo"
	"sreedamodar/db/postgres"
	"sreedamodar/handlers"
	"sreedamodar/repository"
	"sreedamodar/routes"
)

func main() {
	// Load config from .env or config file
	cfg := config.LoadConfig()

	var consignmentRepo repository.ConsignmentRepository
	var driverRepo repository.DriverRepository
	var customerRepo repository.CustomerRepository
	var enquiryRepo repository.EnquiryRepository
	var profileRepo repository.ProfileRepository
	var userRepo repository.UserRepository

	switch cfg.DBType {
	case "postgres":
		db.RunMigrations()

		pg := postgres.NewPostgresDB(cfg.PostgresURL)
		if err := pg.Connect(); err != nil {
			panic(err)
		}
		defer pg.Disconnect()

		consignmentRepo = repository.NewPostgresConsignmentRepo(pg.Conn)
		driverRepo = repository.NewPostgresDriverRepo(pg.Conn)
		customerRepo = repository.NewPostgresCustomerRepo(pg.Conn)
		enquiryRepo = repository.NewPostgresEnquiryRepo(pg.Conn)
		profileRepo = repository.NewPostgresProfileRepo(pg.Conn)
		userRepo = repository.NewPostgresUserRepo(pg.Conn)

	case "mongo":
		mg := mongo.NewMongoDB(cfg.MongoURL)
		if err := mg.Connect(); err != nil {
			panic(err)
		}
		defer mg.Disconnect()

		consignmentRepo = repository.NewMongoConsignmentRepo(mg.Client)
		driverRepo = repository.NewMongoDriverRepo(mg.Client)
		customerRepo = repository.NewMongoCustomerRepo(mg.Client)
		enquiryRepo = repository.NewMongoEnquiryRepo(mg.Client)
		profileRepo = repository.NewMongoProfileRepo(mg.Client)
		userRepo = repository.NewMongoUserRepo(mg.Client)

	default:
		panic("DB_TYPE not supported")
	}

	if err := repository.SeedProfiles(profileRepo); err != nil {
		panic(err)
	}

	// Handlers
	consignmentHandler := &handlers.ConsignmentHandler{Repo: consignmentRepo}
	driverHandler := &handlers.DriverHandler{Repo: driverRepo}
	customerHandler := &handlers.CustomerHandler{Repo: customerRepo}
	enquiryHandler := &handlers.EnquiryHandler{
		Repo:          enquiryRepo,
		MarkConverted: cfg.EnquiryMarkConverted,
	}
	profileHandler := &handlers.ProfileHandler{Repo: profileRepo}
	userHandler := &handlers.UserHandler{Repo: userRepo}
	reportHandler := &handlers.ReportHandler{Repo: consignmentRepo}

	// LR handler with combined repository
	lrRepo := repository.NewLRRepository(consignmentRepo, profileRepo)
	lrHandler := &handlers.LRHandler{Repo: lrRepo, SavePath: cfg.PDFDir}

	routes.SetupRoutes(userHandler, consignmentHandler, lrHandler, reportHandler,
		driverHandler, customerHandler, enquiryHandler, profileHandler)

	port := cfg.Port
	fmt.Printf("Server running on port %s\n", port)
	if err := http.ListenAndServe(":"+port, nil); err != nil {
		panic(err)
	}
}
