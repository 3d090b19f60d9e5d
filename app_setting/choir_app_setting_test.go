package app_setting

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSetting(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "app_setting.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseKeepsDefaults(t *testing.T) {
	path := writeSetting(t, `
HTTP_ADDR: "0.0.0.0:9090"
BLOB_STORE: "s3"
S3_BUCKET: "choir-media"
S3_REGION: "us-west-1"
`)
	c, err := ParseChoirAppSetting(path)
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:9090", c.HTTP_ADDR)
	assert.Equal(t, BlobStoreS3, c.BLOB_STORE)
	assert.Equal(t, "sqlite", c.CACHE_DRIVER)
	assert.Equal(t, DocStoreMemory, c.DOC_STORE)
}

func TestValidate(t *testing.T) {
	_, err := ParseChoirAppSetting(writeSetting(t, `DOC_STORE: "mongo"`))
	assert.EqualError(t, err, `unknown DOC_STORE "mongo"`)

	_, err = ParseChoirAppSetting(writeSetting(t, `BLOB_STORE: "s3"`))
	assert.Error(t, err)

	_, err = ParseChoirAppSetting(writeSetting(t, `IDENTITY: "cognito"`))
	assert.Error(t, err)

	_, err = ParseChoirAppSetting(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestShippedSettingIsValid(t *testing.T) {
	_, err := ParseChoirAppSetting("../cmd/choird/app_setting.yaml")
	assert.NoError(t, err)
}
