package database

import (
	"SiriaExpress/config/environment"
	"context"
	"encoding/base64"
	"log"

	"cloud.google.com/go/firestore"
	gcs "cloud.google.com/go/storage"
	firebase "firebase.google.com/go"
	"firebase.google.com/go/auth"
	"google.golang.org/api/option"
)

var FirebaseApp *firebase.App
var FirestoreClient *firestore.Client
var AuthClient *auth.Client
var StorageBucket *gcs.BucketHandle

// InitFirebase initializes the Firestore, Auth and Storage clients
func InitFirebase() {
	// Get Base64 encoded credentials from env
	encodedCredentials := environment.GetFirebaseKey()
	if encodedCredentials == "" {
		log.Fatal("FIREBASE_CREDENTIALS_BASE64 environment variable is missing")
	}

	// Decode Base64 string
	decodedCredentials, err := base64.StdEncoding.DecodeString(encodedCredentials)
	if err != nil {
		log.Fatalf("Failed to decode Firebase credentials: %v", err)
	}

	// Get Project ID from environment variables
	projectID := environment.GetFirebaseProjectID()
	if projectID == "" {
		log.Fatal("FIREBASE_PROJECT_ID environment variable is missing")
	}

	ctx := context.Background()
	firestoreOpt := option.WithCredentialsJSON(decodedCredentials)

	config := &firebase.Config{
		ProjectID:     projectID,
		StorageBucket: environment.GetStorageBucket(),
	}
	app, err := firebase.NewApp(ctx, config, firestoreOpt)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase app: %v", err)
	}
	FirebaseApp = app
	log.Println("Firebase app initialized successfully")

	// Initialize Firestore client
	FirestoreClient, err = app.Firestore(ctx)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}

	AuthClient, err = app.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth client: %v", err)
	}
	log.Println("Firebase Auth initialized successfully")

	// Storage bucket for menu images; optional outside of admin uploads
	if environment.GetStorageBucket() != "" {
		storageClient, err := app.Storage(ctx)
		if err != nil {
			log.Fatalf("Failed to initialize Firebase Storage client: %v", err)
		}
		StorageBucket, err = storageClient.DefaultBucket()
		if err != nil {
			log.Fatalf("Failed to open default storage bucket: %v", err)
		}
		log.Println("Firebase Storage initialized successfully")
	}
}

// GetFirestoreClient returns the Firestore client instance
func GetFirestoreClient() *firestore.Client {
	return FirestoreClient
}

func GetFirebaseAuthClient() *auth.Client {
	return AuthClient
}

// GetStorageBucket returns the default storage bucket handle
func GetStorageBucket() *gcs.BucketHandle {
	return StorageBucket
}
