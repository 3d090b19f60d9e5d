package app_setting

import (
	"io/ioutil"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

const (
	DocStoreMemory = "memory"
	DocStoreGorm   = "gorm"
	DocStoreRedis  = "redis"

	BlobStoreMemory     = "memory"
	BlobStoreS3         = "s3"
	BlobStoreCloudinary = "cloudinary"

	IdentityMemory  = "memory"
	IdentityCognito = "cognito"
)

// ChoirAppSetting selects and configures the backends of choird.
type ChoirAppSetting struct {
	// Cache database driver, "sqlite" or "postgres".
	CACHE_DRIVER string `yaml:"CACHE_DRIVER"`
	// sqlite file path, or postgres connection string.
	CACHE_DSN string `yaml:"CACHE_DSN"`

	// Document store kind: "memory", "gorm" or "redis". The gorm store uses
	// the postgres database configured through DB_* env variables.
	DOC_STORE string `yaml:"DOC_STORE"`

	// Blob store kind: "memory", "s3" or "cloudinary".
	BLOB_STORE string `yaml:"BLOB_STORE"`
	// S3 bucket, region and the CDN prefix public URLs are built from.
	S3_BUCKET     string `yaml:"S3_BUCKET"`
	S3_REGION     string `yaml:"S3_REGION"`
	S3_CDN_PREFIX string `yaml:"S3_CDN_PREFIX"`
	// Cloudinary folder uploads land in. Credentials come from the
	// CLOUDINARY_URL env variable.
	CLOUDINARY_FOLDER string `yaml:"CLOUDINARY_FOLDER"`

	// Identity provider kind: "memory" or "cognito".
	IDENTITY          string `yaml:"IDENTITY"`
	COGNITO_REGION    string `yaml:"COGNITO_REGION"`
	COGNITO_CLIENT_ID string `yaml:"COGNITO_CLIENT_ID"`

	HTTP_ADDR   string `yaml:"HTTP_ADDR"`
	STATSD_ADDR string `yaml:"STATSD_ADDR"`

	// YAML fixture the seeder writes through the repositories.
	SEED_PATH string `yaml:"SEED_PATH"`
}

// Default is used for every key the settings file leaves empty.
func Default() ChoirAppSetting {
	return ChoirAppSetting{
		CACHE_DRIVER: "sqlite",
		CACHE_DSN:    "data/choir_cache.db",
		DOC_STORE:    DocStoreMemory,
		BLOB_STORE:   BlobStoreMemory,
		IDENTITY:     IdentityMemory,
		HTTP_ADDR:    "127.0.0.1:8080",
		STATSD_ADDR:  "127.0.0.1:8125",
		SEED_PATH:    "seed/data/default_seed.yaml",
	}
}

func ParseChoirAppSetting(path string) (ChoirAppSetting, error) {
	c := Default()
	yamlFile, err := ioutil.ReadFile(path)
	if err != nil {
		return c, errors.Wrap(err, "read app setting")
	}
	if err := yaml.Unmarshal(yamlFile, &c); err != nil {
		return c, errors.Wrap(err, "unmarshal app setting")
	}
	return c, c.Validate()
}

// Validate checks that every selected backend is known and has what it
// needs.
func (c ChoirAppSetting) Validate() error {
	switch c.DOC_STORE {
	case DocStoreMemory, DocStoreGorm, DocStoreRedis:
	default:
		return errors.Errorf("unknown DOC_STORE %q", c.DOC_STORE)
	}
	switch c.BLOB_STORE {
	case BlobStoreMemory:
	case BlobStoreS3:
		if c.S3_BUCKET == "" || c.S3_REGION == "" {
			return errors.New("BLOB_STORE s3 requires S3_BUCKET and S3_REGION")
		}
	case BlobStoreCloudinary:
	default:
		return errors.Errorf("unknown BLOB_STORE %q", c.BLOB_STORE)
	}
	switch c.IDENTITY {
	case IdentityMemory:
	case IdentityCognito:
		if c.COGNITO_REGION == "" || c.COGNITO_CLIENT_ID == "" {
			return errors.New("IDENTITY cognito requires COGNITO_REGION and COGNITO_CLIENT_ID")
		}
	default:
		return errors.Errorf("unknown IDENTITY %q", c.IDENTITY)
	}
	return nil
}
