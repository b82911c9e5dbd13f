package runblock

// Wire names of the payload fields.
const (
	FieldURL                        = "url"
	FieldWebhookURL                 = "webhook_url"
	FieldProxyLocation              = "proxy_location"
	FieldProxyURL                   = "proxy_url"
	FieldModelID                    = "op_model"
	FieldModelAPIKey                = "op_api_key"
	FieldTOTPIdentifier             = "totp_identifier"
	FieldTOTPURL                    = "totp_url"
	FieldBrowserSessionID           = "browser_session_id"
	FieldBrowserProfileID           = "browser_profile_id"
	FieldBrowserAddress             = "browser_address"
	FieldExtraHTTPHeaders           = "extra_http_headers"
	FieldMaxScreenshotScrollingTime = "max_screenshot_scrolling_times"

	FieldCredentialType        = "credential_type"
	FieldPrompt                = "prompt"
	FieldCredentialID          = "credential_id"
	FieldBitwardenCollectionID = "bitwarden_collection_id"
	FieldBitwardenItemID       = "bitwarden_item_id"
	FieldOnePasswordVaultID    = "onepassword_vault_id"
	FieldOnePasswordItemID     = "onepassword_item_id"
	FieldAzureVaultName        = "azure_vault_name"
	FieldAzureVaultUsernameKey = "azure_vault_username_key"
	FieldAzureVaultPasswordKey = "azure_vault_password_key"
	FieldAzureVaultTOTPKey     = "azure_vault_totp_secret_key"

	FieldNavigationGoal  = "navigation_goal"
	FieldDownloadSuffix  = "download_suffix"
	FieldDownloadTimeout = "download_timeout"
	FieldMaxStepsPerRun  = "max_steps_per_run"
)
