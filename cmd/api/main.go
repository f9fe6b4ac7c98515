package main

import (
	"context"
	"log"
	"os"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"ecosort/internal/adapter/api"
	"ecosort/internal/adapter/api/handler"
	apimiddleware "ecosort/internal/adapter/api/middleware"
	"ecosort/internal/adapter/api/router"
	"ecosort/internal/adapter/repository"
	domainrepo "ecosort/internal/domain/repository"
	"ecosort/internal/infrastructure/classifier"
	"ecosort/internal/infrastructure/firebase"
	"ecosort/internal/infrastructure/localstore"
	"ecosort/internal/infrastructure/storage"
	"ecosort/internal/infrastructure/websocket"
	"ecosort/internal/usecase"
	"ecosort/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opt option.ClientOption

	// Try to get service account from environment variable (for production)
	serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON")
	serviceAccountPath := ""
	if serviceAccountJSON != "" {
		log.Printf("Using Firebase service account from environment variable")
		opt = option.WithCredentialsJSON([]byte(serviceAccountJSON))
	} else {
		// Fallback to file path (for local development)
		serviceAccountPath = os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")
		if serviceAccountPath == "" {
			serviceAccountPath = "./service-account.json"
		}

		if _, err := os.Stat(serviceAccountPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", serviceAccountPath)
		}

		log.Printf("Using Firebase service account from file: %s", serviceAccountPath)
		opt = option.WithCredentialsFile(serviceAccountPath)
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{
		ProjectID:   cfg.FirebaseProject,
		DatabaseURL: cfg.DatabaseURL,
	}, opt)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opt)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	// Realtime database carries the smart-bin telemetry; optional.
	var binRepo domainrepo.BinRepository
	if cfg.DatabaseURL != "" {
		dbClient, err := firebaseApp.Database(ctx)
		if err != nil {
			log.Fatalf("Failed to initialize Realtime Database: %v", err)
		}
		binRepo = repository.NewRTDBBinRepository(dbClient)
	} else {
		log.Printf("FIREBASE_DATABASE_URL not set; bin telemetry disabled")
	}

	// Image archival is optional; classification works without a bucket.
	var archiver usecase.ImageArchiver
	if cfg.StorageBucket != "" {
		storageClient, err := storage.NewCloudStorageClient(ctx, cfg.StorageBucket, serviceAccountPath)
		if err != nil {
			log.Fatalf("Failed to initialize Cloud Storage: %v", err)
		}
		defer storageClient.Close()
		archiver = storageClient
	} else {
		log.Printf("STORAGE_BUCKET not set; image archival disabled")
	}

	profileStore, err := localstore.New(cfg.ProfileDataDir)
	if err != nil {
		log.Fatalf("Failed to open profile store: %v", err)
	}

	if cfg.ClassifierURL == "" {
		log.Fatalf("CLASSIFIER_URL is required")
	}
	aiClassifier := classifier.NewHTTPClassifier(
		cfg.ClassifierURL,
		cfg.ClassifierApiKey,
		time.Duration(cfg.ClassifierTimeout)*time.Second,
	)

	mirrorRepo := repository.NewFirestoreProfileRepository(firestoreClient)

	firebaseAuthClient := firebase.NewFirebaseAuthClient(authClient)

	wsManager := websocket.NewManager()
	wsManager.Start(ctx)

	if binRepo != nil {
		poller := firebase.NewTelemetryPoller(binRepo, wsManager, time.Duration(cfg.BinPollSeconds)*time.Second)
		poller.Start(ctx)
	}

	handler.SetupHealthHandler(firebaseAuthClient)
	handler.SetupDevTokenHandler(firebaseAuthClient)

	classificationUseCase := usecase.NewClassificationUseCase(profileStore, aiClassifier, mirrorRepo, archiver)
	profileUseCase := usecase.NewProfileUseCase(profileStore, firebaseAuthClient, wsManager)
	dashboardUseCase := usecase.NewDashboardUseCase(mirrorRepo, binRepo)

	handler.Setup(classificationUseCase, profileUseCase, dashboardUseCase)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(authClient)
	wsHandler := handler.NewWebSocketHandler(wsManager)

	router.Setup(e, authMiddleware)
	router.SetupDevRouter(e, cfg.Environment)
	router.SetupWebSocketRouter(e, wsHandler)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
