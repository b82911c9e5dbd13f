package runblock

// ProxyLocation is a named proxy preset resolved to an endpoint by the engine.
type ProxyLocation string

const (
	ProxyLocationResidential    ProxyLocation = "RESIDENTIAL"
	ProxyLocationResidentialES  ProxyLocation = "RESIDENTIAL_ES"
	ProxyLocationResidentialIE  ProxyLocation = "RESIDENTIAL_IE"
	ProxyLocationResidentialGB  ProxyLocation = "RESIDENTIAL_GB"
	ProxyLocationResidentialIN  ProxyLocation = "RESIDENTIAL_IN"
	ProxyLocationResidentialJP  ProxyLocation = "RESIDENTIAL_JP"
	ProxyLocationResidentialFR  ProxyLocation = "RESIDENTIAL_FR"
	ProxyLocationResidentialDE  ProxyLocation = "RESIDENTIAL_DE"
	ProxyLocationResidentialNZ  ProxyLocation = "RESIDENTIAL_NZ"
	ProxyLocationResidentialZA  ProxyLocation = "RESIDENTIAL_ZA"
	ProxyLocationResidentialAR  ProxyLocation = "RESIDENTIAL_AR"
	ProxyLocationResidentialAU  ProxyLocation = "RESIDENTIAL_AU"
	ProxyLocationResidentialISP ProxyLocation = "RESIDENTIAL_ISP"
	ProxyLocationUSCA           ProxyLocation = "US-CA"
	ProxyLocationUSNY           ProxyLocation = "US-NY"
	ProxyLocationUSTX           ProxyLocation = "US-TX"
	ProxyLocationUSFL           ProxyLocation = "US-FL"
	ProxyLocationUSWA           ProxyLocation = "US-WA"
	ProxyLocationNone           ProxyLocation = "NONE"
)

var proxyLocations = map[ProxyLocation]struct{}{
	ProxyLocationResidential:    {},
	ProxyLocationResidentialES:  {},
	ProxyLocationResidentialIE:  {},
	ProxyLocationResidentialGB:  {},
	ProxyLocationResidentialIN:  {},
	ProxyLocationResidentialJP:  {},
	ProxyLocationResidentialFR:  {},
	ProxyLocationResidentialDE:  {},
	ProxyLocationResidentialNZ:  {},
	ProxyLocationResidentialZA:  {},
	ProxyLocationResidentialAR:  {},
	ProxyLocationResidentialAU:  {},
	ProxyLocationResidentialISP: {},
	ProxyLocationUSCA:           {},
	ProxyLocationUSNY:           {},
	ProxyLocationUSTX:           {},
	ProxyLocationUSFL:           {},
	ProxyLocationUSWA:           {},
	ProxyLocationNone:           {},
}

// Valid reports whether l is a known preset.
func (l ProxyLocation) Valid() bool {
	_, ok := proxyLocations[l]
	return ok
}

// RunConfiguration holds the fields shared by every run-block request.
// Every field is optional here; request types layer their own requirements.
type RunConfiguration struct {
	URL                         *string           `json:"url,omitempty"`
	WebhookURL                  *string           `json:"webhook_url,omitempty"`
	ProxyLocation               *ProxyLocation    `json:"proxy_location,omitempty"`
	ProxyURL                    *string           `json:"proxy_url,omitempty"`
	ModelID                     *string           `json:"op_model,omitempty"`
	ModelAPIKey                 *string           `json:"op_api_key,omitempty"`
	TOTPIdentifier              *string           `json:"totp_identifier,omitempty"`
	TOTPURL                     *string           `json:"totp_url,omitempty"`
	BrowserSessionID            *string           `json:"browser_session_id,omitempty"`
	BrowserProfileID            *string           `json:"browser_profile_id,omitempty"`
	BrowserAddress              *string           `json:"browser_address,omitempty"`
	ExtraHTTPHeaders            map[string]string `json:"extra_http_headers,omitempty"`
	MaxScreenshotScrollingTimes *int              `json:"max_screenshot_scrolling_times,omitempty"`
}

// LoginConfiguration is a run configuration for an automated login step.
type LoginConfiguration struct {
	RunConfiguration
	CredentialType CredentialType   `json:"credential_type"`
	Prompt         *string          `json:"prompt,omitempty"`
	Credential     CredentialSource `json:"credential"`
	// IgnoredFields lists populated identifiers that belong to a backend
	// other than the selected one. They are not carried into Credential.
	IgnoredFields []string `json:"ignored_fields,omitempty"`
}

// DownloadConfiguration is a run configuration for a file-download step.
type DownloadConfiguration struct {
	RunConfiguration
	NavigationGoal  string   `json:"navigation_goal"`
	DownloadSuffix  *string  `json:"download_suffix,omitempty"`
	DownloadTimeout *float64 `json:"download_timeout,omitempty"`
	MaxStepsPerRun  *int     `json:"max_steps_per_run,omitempty"`
}
