package provider

// Reference is static vendor documentation data shown next to a provider's
// status: recommended scopes, the developer console where credentials are
// issued, and a short setup guide in markdown.
type Reference struct {
	RecommendedScopes []string
	ConsoleURL        string
	ConsoleLabel      string
	SetupGuide        string
}

var referenceTable = map[string]Reference{
	"github": {
		RecommendedScopes: []string{"user:email"},
		ConsoleURL:        "https://github.com/settings/developers",
		ConsoleLabel:      "GitHub Developer Settings",
		SetupGuide: "Create an **OAuth App** under *Developer Settings*, then copy the " +
			"client id and generate a client secret. Set the authorization callback " +
			"URL to the callback shown above.",
	},
	"google": {
		RecommendedScopes: []string{"profile", "email"},
		ConsoleURL:        "https://console.cloud.google.com/apis/credentials",
		ConsoleLabel:      "Google Cloud Console",
		SetupGuide: "Create an **OAuth client ID** of type *Web application* in the " +
			"credentials screen and add the callback URL to the authorized redirect URIs.",
	},
	"gitlab": {
		RecommendedScopes: []string{"read_user"},
		ConsoleURL:        "https://gitlab.com/-/user_settings/applications",
		ConsoleLabel:      "GitLab Applications",
		SetupGuide: "Register a new application with the `read_user` scope and the " +
			"callback URL above as redirect URI.",
	},
	"microsoft": {
		RecommendedScopes: []string{"User.Read"},
		ConsoleURL:        "https://portal.azure.com/#blade/Microsoft_AAD_RegisteredApps",
		ConsoleLabel:      "Azure App Registrations",
		SetupGuide: "Register an application in *Azure App Registrations*, add a web " +
			"redirect URI pointing at the callback above, and create a client secret.",
	},
	"twitter": {
		RecommendedScopes: []string{},
		ConsoleURL:        "https://developer.twitter.com/en/portal/projects-and-apps",
		ConsoleLabel:      "Twitter Developer Portal",
		SetupGuide: "Create a project and app in the developer portal, enable OAuth " +
			"with the callback URL above, then copy the client credentials.",
	},
	"facebook": {
		RecommendedScopes: []string{"email", "public_profile"},
		ConsoleURL:        "https://developers.facebook.com/apps/",
		ConsoleLabel:      "Meta for Developers",
		SetupGuide: "Create an app of type *Consumer*, add the **Facebook Login** " +
			"product, and register the callback URL as a valid OAuth redirect URI.",
	},
}

// ReferenceFor returns the reference data for a provider id. Providers
// absent from the table get empty reference data.
func ReferenceFor(id string) Reference {
	return referenceTable[id]
}
