package runblock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestResolveCredentialSource_SelectsVariant(t *testing.T) {
	fields := CredentialFields{
		CredentialID:          strPtr("cred_123"),
		BitwardenCollectionID: strPtr("col_1"),
		BitwardenItemID:       strPtr("item_1"),
		OnePasswordVaultID:    strPtr("vault_1"),
		OnePasswordItemID:     strPtr("op_item_1"),
		AzureVaultName:        strPtr("kv-prod"),
		AzureVaultUsernameKey: strPtr("user"),
		AzureVaultPasswordKey: strPtr("pass"),
		AzureVaultTOTPKey:     strPtr("totp"),
	}

	src, ignored, err := ResolveCredentialSource(CredentialTypeBitwarden, fields)
	require.NoError(t, err)
	bw, ok := src.(BitwardenCredential)
	require.True(t, ok)
	assert.Equal(t, "col_1", *bw.CollectionID)
	assert.Equal(t, "item_1", *bw.ItemID)
	assert.Equal(t, []string{
		FieldCredentialID,
		FieldOnePasswordVaultID,
		FieldOnePasswordItemID,
		FieldAzureVaultName,
		FieldAzureVaultUsernameKey,
		FieldAzureVaultPasswordKey,
		FieldAzureVaultTOTPKey,
	}, ignored)

	src, _, err = ResolveCredentialSource(CredentialTypeAzureVault, fields)
	require.NoError(t, err)
	az, ok := src.(AzureVaultCredential)
	require.True(t, ok)
	assert.Equal(t, "kv-prod", *az.VaultName)
	assert.Equal(t, "totp", *az.TOTPSecretKey)
	assert.Equal(t, CredentialTypeAzureVault, src.Type())
}

func TestResolveCredentialSource_DoesNotRequireIdentifiers(t *testing.T) {
	src, ignored, err := ResolveCredentialSource(CredentialTypeBitwarden, CredentialFields{BitwardenItemID: strPtr("item_1")})
	require.NoError(t, err)
	assert.Empty(t, ignored)

	bw := src.(BitwardenCredential)
	assert.Nil(t, bw.CollectionID)
	assert.Equal(t, "item_1", *bw.ItemID)

	src, _, err = ResolveCredentialSource(CredentialTypeLocal, CredentialFields{})
	require.NoError(t, err)
	assert.Equal(t, LocalCredential{}, src)
}

func TestResolveCredentialSource_Unrecognized(t *testing.T) {
	_, _, err := ResolveCredentialSource(CredentialType("lastpass"), CredentialFields{})
	errs := FieldErrors(err)
	require.Len(t, errs, 1)
	assert.Equal(t, FieldCredentialType, errs[0].Field)
	assert.Equal(t, KindCredentialType, errs[0].Kind)
	assert.Contains(t, errs[0].Message, "lastpass")
}
