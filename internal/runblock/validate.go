package runblock

// Validation runs in ordered passes over one payload:
//  1. structural: type of every known field, presence is not checked yet
//  2. proxy_url grammar
//  3. op_model/op_api_key pairing
//  4. request-type required fields
//
// A field that fails a pass is not checked again, but every independently
// failing field is reported.

// ValidateRun validates and normalizes the shared run configuration.
func ValidateRun(body []byte, defaults ModelDefaults) (RunConfiguration, error) {
	p, err := parsePayload(body)
	if err != nil {
		return RunConfiguration{}, err
	}
	cfg := p.runConfiguration()
	p.checkShared(&cfg, defaults)
	if p.err != nil {
		return RunConfiguration{}, p.err
	}
	return cfg, nil
}

// ValidateLogin validates a login request and selects its credential source.
func ValidateLogin(body []byte, defaults ModelDefaults) (LoginConfiguration, error) {
	p, err := parsePayload(body)
	if err != nil {
		return LoginConfiguration{}, err
	}
	cfg := p.runConfiguration()
	credType := p.str(FieldCredentialType)
	prompt := p.str(FieldPrompt)
	fields := p.credentialFields()

	p.checkShared(&cfg, defaults)

	login := LoginConfiguration{RunConfiguration: cfg, Prompt: prompt}
	switch {
	case credType != nil:
		src, ignored, err := ResolveCredentialSource(CredentialType(*credType), fields)
		if err != nil {
			p.add(err)
			break
		}
		login.CredentialType = src.Type()
		login.Credential = src
		login.IgnoredFields = ignored
	case !p.failedField(FieldCredentialType):
		p.fail(FieldCredentialType, KindCredentialType, "field required; "+credentialTypeMessage())
	}

	if p.err != nil {
		return LoginConfiguration{}, p.err
	}
	return login, nil
}

// ValidateDownload validates a file-download request.
func ValidateDownload(body []byte, defaults ModelDefaults) (DownloadConfiguration, error) {
	p, err := parsePayload(body)
	if err != nil {
		return DownloadConfiguration{}, err
	}
	cfg := p.runConfiguration()
	goal := p.str(FieldNavigationGoal)
	download := DownloadConfiguration{
		DownloadSuffix:  p.str(FieldDownloadSuffix),
		DownloadTimeout: p.number(FieldDownloadTimeout),
		MaxStepsPerRun:  p.integer(FieldMaxStepsPerRun),
	}

	p.checkShared(&cfg, defaults)
	download.RunConfiguration = cfg

	switch {
	case goal != nil:
		download.NavigationGoal = *goal
	case !p.failedField(FieldNavigationGoal):
		p.fail(FieldNavigationGoal, KindStructural, "field required")
	}

	if p.err != nil {
		return DownloadConfiguration{}, p.err
	}
	return download, nil
}

func (p *payload) checkShared(cfg *RunConfiguration, defaults ModelDefaults) {
	p.checkProxyURL(cfg)
	p.checkModelOverride(cfg, defaults)
}

func (p *payload) checkProxyURL(cfg *RunConfiguration) {
	if cfg.ProxyURL == nil {
		return
	}
	if _, err := ValidateProxyURL(*cfg.ProxyURL); err != nil {
		p.add(err)
	}
}

// Fields that failed the structural pass are nil here and count as absent.
func (p *payload) checkModelOverride(cfg *RunConfiguration, defaults ModelDefaults) {
	modelID := deref(cfg.ModelID)
	normalized, err := ValidateModelOverride(modelID, deref(cfg.ModelAPIKey), defaults)
	if err != nil {
		p.add(err)
		return
	}
	if modelID != "" {
		cfg.ModelID = &normalized
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
