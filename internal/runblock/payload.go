package runblock

import (
	"math"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	"go.uber.org/multierr"
)

// 2^63 and -2^63 as float64; float64(math.MaxInt64) rounds up to 2^63.
const (
	maxIntFloat = float64(1 << 63)
	minIntFloat = -float64(1 << 63)
)

// payload is the structural pass over a raw JSON object. Every accessor
// records at most one error per field and remembers which fields failed so
// later passes can skip them.
type payload struct {
	root   gjson.Result
	err    error
	failed map[string]struct{}
}

func parsePayload(body []byte) (*payload, error) {
	if !gjson.ValidBytes(body) {
		return nil, ErrMalformedPayload
	}
	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return nil, ErrMalformedPayload
	}
	return &payload{root: root, failed: make(map[string]struct{})}, nil
}

func (p *payload) add(err error) {
	for _, fe := range FieldErrors(err) {
		p.failed[fe.Field] = struct{}{}
	}
	p.err = multierr.Append(p.err, err)
}

func (p *payload) fail(field string, kind ErrorKind, msg string) {
	p.add(&FieldError{Field: field, Kind: kind, Message: msg})
}

func (p *payload) failedField(field string) bool {
	_, ok := p.failed[field]
	return ok
}

// lookup treats JSON null the same as an absent key.
func (p *payload) lookup(field string) (gjson.Result, bool) {
	r := p.root.Get(field)
	if !r.Exists() || r.Type == gjson.Null {
		return r, false
	}
	return r, true
}

func (p *payload) str(field string) *string {
	r, ok := p.lookup(field)
	if !ok {
		return nil
	}
	if r.Type != gjson.String {
		p.fail(field, KindStructural, "must be a string")
		return nil
	}
	s := r.Str
	return &s
}

func (p *payload) integer(field string) *int {
	r, ok := p.lookup(field)
	if !ok {
		return nil
	}
	n, valid := exactInt(r)
	if !valid {
		p.fail(field, KindStructural, "must be an integer")
		return nil
	}
	return &n
}

// exactInt accepts a JSON number only when it denotes an integer that fits
// in int without loss. Plain integer literals are parsed from the raw text;
// literals with a fraction or exponent must be integral and in range.
func exactInt(r gjson.Result) (int, bool) {
	if r.Type != gjson.Number {
		return 0, false
	}
	if !strings.ContainsAny(r.Raw, ".eE") {
		n, err := strconv.ParseInt(r.Raw, 10, strconv.IntSize)
		if err != nil {
			return 0, false
		}
		return int(n), true
	}
	if r.Num != math.Trunc(r.Num) || r.Num >= maxIntFloat || r.Num < minIntFloat {
		return 0, false
	}
	if strconv.IntSize == 32 && (r.Num > math.MaxInt32 || r.Num < math.MinInt32) {
		return 0, false
	}
	return int(r.Num), true
}

func (p *payload) number(field string) *float64 {
	r, ok := p.lookup(field)
	if !ok {
		return nil
	}
	if r.Type != gjson.Number {
		p.fail(field, KindStructural, "must be a number")
		return nil
	}
	f := r.Num
	return &f
}

func (p *payload) stringMap(field string) map[string]string {
	r, ok := p.lookup(field)
	if !ok {
		return nil
	}
	if !r.IsObject() {
		p.fail(field, KindStructural, "must be an object of string values")
		return nil
	}
	out := make(map[string]string)
	valid := true
	r.ForEach(func(k, v gjson.Result) bool {
		if v.Type != gjson.String {
			valid = false
			return false
		}
		out[k.String()] = v.Str
		return true
	})
	if !valid {
		p.fail(field, KindStructural, "must be an object of string values")
		return nil
	}
	return out
}

func (p *payload) proxyLocation() *ProxyLocation {
	s := p.str(FieldProxyLocation)
	if s == nil {
		return nil
	}
	if !ProxyLocation(*s).Valid() {
		p.fail(FieldProxyLocation, KindStructural, "must be a known proxy location preset")
		return nil
	}
	loc := ProxyLocation(*s)
	return &loc
}

func (p *payload) runConfiguration() RunConfiguration {
	return RunConfiguration{
		URL:                         p.str(FieldURL),
		WebhookURL:                  p.str(FieldWebhookURL),
		ProxyLocation:               p.proxyLocation(),
		ProxyURL:                    p.str(FieldProxyURL),
		ModelID:                     p.str(FieldModelID),
		ModelAPIKey:                 p.str(FieldModelAPIKey),
		TOTPIdentifier:              p.str(FieldTOTPIdentifier),
		TOTPURL:                     p.str(FieldTOTPURL),
		BrowserSessionID:            p.str(FieldBrowserSessionID),
		BrowserProfileID:            p.str(FieldBrowserProfileID),
		BrowserAddress:              p.str(FieldBrowserAddress),
		ExtraHTTPHeaders:            p.stringMap(FieldExtraHTTPHeaders),
		MaxScreenshotScrollingTimes: p.integer(FieldMaxScreenshotScrollingTime),
	}
}

func (p *payload) credentialFields() CredentialFields {
	return CredentialFields{
		CredentialID:          p.str(FieldCredentialID),
		BitwardenCollectionID: p.str(FieldBitwardenCollectionID),
		BitwardenItemID:       p.str(FieldBitwardenItemID),
		OnePasswordVaultID:    p.str(FieldOnePasswordVaultID),
		OnePasswordItemID:     p.str(FieldOnePasswordItemID),
		AzureVaultName:        p.str(FieldAzureVaultName),
		AzureVaultUsernameKey: p.str(FieldAzureVaultUsernameKey),
		AzureVaultPasswordKey: p.str(FieldAzureVaultPasswordKey),
		AzureVaultTOTPKey:     p.str(FieldAzureVaultTOTPKey),
	}
}
