package models

// Settings is the single merchant configuration document. Sections map to
// the admin panels: site, business, theme and external API credentials.
type Settings struct {
	ID                  string `json:"id" firestore:"id"`
	SiteName            string `json:"site_name" firestore:"siteName"`
	SiteDescription     string `json:"site_description" firestore:"siteDescription"`
	BusinessName        string `json:"business_name" firestore:"businessName"`
	BusinessAddress     string `json:"business_address" firestore:"businessAddress"`
	BusinessPhone       string `json:"business_phone" firestore:"businessPhone"`
	BusinessEmail       string `json:"business_email" firestore:"businessEmail"`
	ThemePrimaryColor   string `json:"theme_primary_color" firestore:"themePrimaryColor"`
	ThemeSecondaryColor string `json:"theme_secondary_color" firestore:"themeSecondaryColor"`
	APIKey              string `json:"api_key,omitempty" firestore:"apiKey,omitempty"`
	APIURL              string `json:"api_url,omitempty" firestore:"apiUrl,omitempty"`
}

// DefaultSettings returns the values seeded the first time the settings
// document is read and found missing.
func DefaultSettings() Settings {
	return Settings{
		SiteName:            "SiriaExpress",
		SiteDescription:     "Comida Árabe Autêntica",
		BusinessName:        "SiriaExpress",
		BusinessAddress:     "Rua Exemplo, 123",
		BusinessPhone:       "(11) 99999-9999",
		BusinessEmail:       "contato@siriaexpress.com",
		ThemePrimaryColor:   "#10b981",
		ThemeSecondaryColor: "#6b7280",
	}
}
