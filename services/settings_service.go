package services

import (
	"SiriaExpress/config/database"
	"SiriaExpress/models"
	"SiriaExpress/utils"
	"context"
	"net/http"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

type SettingsService struct {
	FirestoreClient *firestore.Client
}

// NewSettingsService initializes SettingsService with the Firestore client
func NewSettingsService() *SettingsService {
	return &SettingsService{
		FirestoreClient: database.GetFirestoreClient(),
	}
}

// GetSettings returns the merchant configuration, creating the default
// document the first time it is read and found missing
func (s *SettingsService) GetSettings(ctx context.Context) (*models.Settings, error) {
	iter := s.FirestoreClient.Collection("settings").Limit(1).Documents(ctx)
	doc, err := iter.Next()
	if err == iterator.Done {
		return s.createDefault(ctx)
	}
	if err != nil {
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to fetch settings")
	}

	var settings models.Settings
	if err := doc.DataTo(&settings); err != nil {
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to parse settings data")
	}
	settings.ID = doc.Ref.ID
	return &settings, nil
}

func (s *SettingsService) createDefault(ctx context.Context) (*models.Settings, error) {
	settings := models.DefaultSettings()
	docRef := s.FirestoreClient.Collection("settings").NewDoc()
	settings.ID = docRef.ID

	if _, err := docRef.Set(ctx, settings); err != nil {
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to create default settings")
	}
	return &settings, nil
}

// UpdateSettings merges the given fields into the settings document.
// Omitted fields keep their stored values.
func (s *SettingsService) UpdateSettings(ctx context.Context, fields map[string]interface{}) (*models.Settings, error) {
	current, err := s.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	// Only known settings keys are merged; anything else in the payload
	// is dropped.
	allowed := map[string]string{
		"site_name":             "siteName",
		"site_description":      "siteDescription",
		"business_name":         "businessName",
		"business_address":      "businessAddress",
		"business_phone":        "businessPhone",
		"business_email":        "businessEmail",
		"theme_primary_color":   "themePrimaryColor",
		"theme_secondary_color": "themeSecondaryColor",
		"api_key":               "apiKey",
		"api_url":               "apiUrl",
	}

	update := make(map[string]interface{})
	for key, value := range fields {
		if firestoreKey, ok := allowed[key]; ok {
			update[firestoreKey] = value
		}
	}
	if len(update) == 0 {
		return current, nil
	}

	docRef := s.FirestoreClient.Collection("settings").Doc(current.ID)
	if _, err := docRef.Set(ctx, update, firestore.MergeAll); err != nil {
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to update settings")
	}

	return s.GetSettings(ctx)
}
