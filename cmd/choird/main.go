package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Luismorlan/choirmux/app_setting"
	"github.com/Luismorlan/choirmux/cache"
	"github.com/Luismorlan/choirmux/engine"
	"github.com/Luismorlan/choirmux/engine/modules"
	"github.com/Luismorlan/choirmux/repository"
	"github.com/Luismorlan/choirmux/seed"
	"github.com/Luismorlan/choirmux/server"
	"github.com/Luismorlan/choirmux/stream"
	. "github.com/Luismorlan/choirmux/utils"
	"github.com/Luismorlan/choirmux/utils/dotenv"
	. "github.com/Luismorlan/choirmux/utils/flag"
	Logger "github.com/Luismorlan/choirmux/utils/log"
)

func cleanup() {
	CloseProfiler()
	CloseTracer()
	Logger.Log.Info("choird shutdown")
}

func main() {
	Parse()
	if err := dotenv.LoadDotEnvs(); err != nil {
		panic(err)
	}
	Logger.InitLogger()

	StartTracer()
	StartProfiler()
	defer cleanup()

	setting, err := app_setting.ParseChoirAppSetting(*AppSettingPath)
	if err != nil {
		Logger.Log.WithError(err).Fatalln("invalid app setting")
	}

	db, err := OpenDB(setting.CACHE_DRIVER, setting.CACHE_DSN)
	if err != nil {
		Logger.Log.WithError(err).Fatalln("fail to open cache database")
	}
	if err := DatabaseSetupAndMigration(db); err != nil {
		Logger.Log.WithError(err).Fatalln("fail to migrate cache database")
	}

	ctx, cancel := context.WithCancel(context.Background())
	bus := stream.NewBus()
	store := cache.NewStore(db, bus)

	docs, closeDocs, err := newDocumentStore(setting)
	if err != nil {
		Logger.Log.WithError(err).Fatalln("fail to create document store")
	}
	defer closeDocs()
	blobs, err := newBlobStore(setting)
	if err != nil {
		Logger.Log.WithError(err).Fatalln("fail to create blob store")
	}
	provider, err := newIdentityProvider(ctx, setting, bus)
	if err != nil {
		Logger.Log.WithError(err).Fatalln("fail to create identity provider")
	}

	repos := server.Repositories{
		Music:  repository.NewMusicRepository(store, docs, blobs),
		News:   repository.NewNewsRepository(store, docs, blobs),
		Social: repository.NewSocialRepository(store, docs, blobs),
		Themes: repository.NewThemeRepository(store, docs, blobs),
		Users:  repository.NewUserRepository(store, docs, blobs),
		Auth:   repository.NewAuthRepository(store, docs, provider),
	}

	if *ServiceName == Seeder {
		runSeeder(ctx, setting, repos)
		cancel()
		bus.Close()
		return
	}

	statsdClient, err := newDogStatsdClient(setting.STATSD_ADDR)
	if err != nil {
		Logger.Log.WithError(err).Fatalln("fail to create statsd client")
	}
	defer statsdClient.Close()

	router := server.NewRouter(repos, server.RouterConfig{
		ServiceName: *ServiceName,
		ByPassAuth:  *ByPassAuth,
		Provider:    provider,
	})

	// Initialize all engine modules here.
	ms := []engine.Module{
		// Reporter counts sync outcomes in Datadog.
		modules.NewReporter(modules.ReporterConfig{Name: "reporter"}, statsdClient, bus),
		// ApiServer serves the repositories to the local UI.
		modules.NewApiServer(modules.ApiServerConfig{Name: "api_server", Addr: setting.HTTP_ADDR}, router),
	}
	e := engine.NewEngine(ms, ctx, cancel, bus)

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		e.Shutdown()
	}()

	Logger.Log.Info("choird starts up")
	// blocking call.
	e.Run()
}

func runSeeder(ctx context.Context, setting app_setting.ChoirAppSetting, repos server.Repositories) {
	fixture, err := seed.ParseFixture(setting.SEED_PATH)
	if err != nil {
		Logger.Log.WithError(err).Fatalln("fail to load seed fixture")
	}
	s := &seed.Seeder{Music: repos.Music, Themes: repos.Themes}
	if err := s.Seed(ctx, fixture); err != nil {
		Logger.Log.WithError(err).Fatalln("fail to seed")
	}
}
