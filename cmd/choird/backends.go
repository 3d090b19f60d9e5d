package main

import (
	"context"
	"os"

	"github.com/DataDog/datadog-go/statsd"
	"github.com/Luismorlan/choirmux/app_setting"
	"github.com/Luismorlan/choirmux/remote"
	"github.com/Luismorlan/choirmux/remote/blobstore"
	"github.com/Luismorlan/choirmux/remote/docstore"
	"github.com/Luismorlan/choirmux/remote/identity"
	"github.com/Luismorlan/choirmux/stream"
	"github.com/Luismorlan/choirmux/utils"
	"github.com/pkg/errors"
)

const memoryBlobUrl = "memory://choir/"

func newDocumentStore(setting app_setting.ChoirAppSetting) (remote.DocumentStore, func(), error) {
	switch setting.DOC_STORE {
	case app_setting.DocStoreGorm:
		db, err := utils.GetDBConnection()
		if err != nil {
			return nil, nil, errors.Wrap(err, "connect document database")
		}
		store, err := docstore.NewGormStore(db)
		if err != nil {
			return nil, nil, err
		}
		return store, func() {
			if conn, err := db.DB(); err == nil {
				conn.Close()
			}
		}, nil
	case app_setting.DocStoreRedis:
		store := docstore.NewRedisStore(docstore.GetRedisClient())
		return store, func() { store.Close() }, nil
	default:
		return docstore.NewMemoryStore(), func() {}, nil
	}
}

func newBlobStore(setting app_setting.ChoirAppSetting) (remote.BlobStore, error) {
	switch setting.BLOB_STORE {
	case app_setting.BlobStoreS3:
		return blobstore.NewS3Store(setting.S3_BUCKET, setting.S3_REGION, setting.S3_CDN_PREFIX)
	case app_setting.BlobStoreCloudinary:
		return blobstore.NewCloudinaryStore(os.Getenv("CLOUDINARY_URL"), setting.CLOUDINARY_FOLDER)
	default:
		return blobstore.NewMemoryStore(memoryBlobUrl), nil
	}
}

func newIdentityProvider(ctx context.Context, setting app_setting.ChoirAppSetting, bus *stream.Bus) (remote.IdentityProvider, error) {
	switch setting.IDENTITY {
	case app_setting.IdentityCognito:
		return identity.NewCognitoProvider(ctx, setting.COGNITO_REGION, setting.COGNITO_CLIENT_ID, bus)
	default:
		return identity.NewMemoryProvider(bus), nil
	}
}

func newDogStatsdClient(addr string) (*statsd.Client, error) {
	return statsd.New(addr)
}
