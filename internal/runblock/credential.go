package runblock

import (
	"fmt"
	"strings"
)

// CredentialType selects the backend that supplies login secrets.
type CredentialType string

const (
	// CredentialTypeLocal is the platform's own credential vault.
	CredentialTypeLocal       CredentialType = "skyvern"
	CredentialTypeBitwarden   CredentialType = "bitwarden"
	CredentialTypeOnePassword CredentialType = "1password"
	CredentialTypeAzureVault  CredentialType = "azure_vault"
)

// CredentialTypes lists the accepted discriminator values.
var CredentialTypes = []CredentialType{
	CredentialTypeLocal,
	CredentialTypeBitwarden,
	CredentialTypeOnePassword,
	CredentialTypeAzureVault,
}

// Valid reports whether t is one of the supported backends.
func (t CredentialType) Valid() bool {
	for _, c := range CredentialTypes {
		if t == c {
			return true
		}
	}
	return false
}

func credentialTypeMessage() string {
	names := make([]string, len(CredentialTypes))
	for i, c := range CredentialTypes {
		names[i] = string(c)
	}
	return "credential_type must be one of: " + strings.Join(names, ", ")
}

// CredentialSource is one of LocalCredential, BitwardenCredential,
// OnePasswordCredential or AzureVaultCredential. Secrets are never resolved
// here; the source only identifies where the engine should fetch them.
type CredentialSource interface {
	Type() CredentialType
	isCredentialSource()
}

type LocalCredential struct {
	CredentialID *string `json:"credential_id,omitempty"`
}

type BitwardenCredential struct {
	CollectionID *string `json:"bitwarden_collection_id,omitempty"`
	ItemID       *string `json:"bitwarden_item_id,omitempty"`
}

type OnePasswordCredential struct {
	VaultID *string `json:"onepassword_vault_id,omitempty"`
	ItemID  *string `json:"onepassword_item_id,omitempty"`
}

type AzureVaultCredential struct {
	VaultName     *string `json:"azure_vault_name,omitempty"`
	UsernameKey   *string `json:"azure_vault_username_key,omitempty"`
	PasswordKey   *string `json:"azure_vault_password_key,omitempty"`
	TOTPSecretKey *string `json:"azure_vault_totp_secret_key,omitempty"`
}

func (LocalCredential) Type() CredentialType       { return CredentialTypeLocal }
func (BitwardenCredential) Type() CredentialType   { return CredentialTypeBitwarden }
func (OnePasswordCredential) Type() CredentialType { return CredentialTypeOnePassword }
func (AzureVaultCredential) Type() CredentialType  { return CredentialTypeAzureVault }

func (LocalCredential) isCredentialSource()       {}
func (BitwardenCredential) isCredentialSource()   {}
func (OnePasswordCredential) isCredentialSource() {}
func (AzureVaultCredential) isCredentialSource()  {}

// CredentialFields is the flat set of backend identifiers as submitted.
type CredentialFields struct {
	CredentialID          *string
	BitwardenCollectionID *string
	BitwardenItemID       *string
	OnePasswordVaultID    *string
	OnePasswordItemID     *string
	AzureVaultName        *string
	AzureVaultUsernameKey *string
	AzureVaultPasswordKey *string
	AzureVaultTOTPKey     *string
}

type credentialField struct {
	name    string
	owner   CredentialType
	present bool
}

func (f CredentialFields) list() []credentialField {
	return []credentialField{
		{FieldCredentialID, CredentialTypeLocal, f.CredentialID != nil},
		{FieldBitwardenCollectionID, CredentialTypeBitwarden, f.BitwardenCollectionID != nil},
		{FieldBitwardenItemID, CredentialTypeBitwarden, f.BitwardenItemID != nil},
		{FieldOnePasswordVaultID, CredentialTypeOnePassword, f.OnePasswordVaultID != nil},
		{FieldOnePasswordItemID, CredentialTypeOnePassword, f.OnePasswordItemID != nil},
		{FieldAzureVaultName, CredentialTypeAzureVault, f.AzureVaultName != nil},
		{FieldAzureVaultUsernameKey, CredentialTypeAzureVault, f.AzureVaultUsernameKey != nil},
		{FieldAzureVaultPasswordKey, CredentialTypeAzureVault, f.AzureVaultPasswordKey != nil},
		{FieldAzureVaultTOTPKey, CredentialTypeAzureVault, f.AzureVaultTOTPKey != nil},
	}
}

// ResolveCredentialSource selects the variant named by t and copies in only
// that variant's identifiers. Identifiers populated for other backends are
// returned as ignored rather than rejected. Identifiers of the selected
// variant are not required to be present.
func ResolveCredentialSource(t CredentialType, f CredentialFields) (CredentialSource, []string, error) {
	var src CredentialSource
	switch t {
	case CredentialTypeLocal:
		src = LocalCredential{CredentialID: f.CredentialID}
	case CredentialTypeBitwarden:
		src = BitwardenCredential{CollectionID: f.BitwardenCollectionID, ItemID: f.BitwardenItemID}
	case CredentialTypeOnePassword:
		src = OnePasswordCredential{VaultID: f.OnePasswordVaultID, ItemID: f.OnePasswordItemID}
	case CredentialTypeAzureVault:
		src = AzureVaultCredential{
			VaultName:     f.AzureVaultName,
			UsernameKey:   f.AzureVaultUsernameKey,
			PasswordKey:   f.AzureVaultPasswordKey,
			TOTPSecretKey: f.AzureVaultTOTPKey,
		}
	default:
		return nil, nil, &FieldError{
			Field:   FieldCredentialType,
			Kind:    KindCredentialType,
			Message: fmt.Sprintf("unrecognized credential_type %q; %s", string(t), credentialTypeMessage()),
		}
	}

	var ignored []string
	for _, cf := range f.list() {
		if cf.present && cf.owner != t {
			ignored = append(ignored, cf.name)
		}
	}
	return src, ignored, nil
}
