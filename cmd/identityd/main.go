package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"identity-backend/internal/auth"
	"identity-backend/internal/identity"
	"identity-backend/internal/server"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := server.FromEnv()
	if err != nil {
		log.Error("config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	dialCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	cli, err := mongo.Connect(dialCtx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Error("mongo connect", "error", err)
		os.Exit(1)
	}
	if err := cli.Ping(dialCtx, readpref.Primary()); err != nil {
		log.Error("mongo ping", "error", err)
		os.Exit(1)
	}
	db := cli.Database(cfg.MongoDB)

	creds, err := auth.NewMongoCredentialStore(ctx, db, cfg.CredentialsCollection)
	if err != nil {
		log.Error("credential store", "error", err)
		os.Exit(1)
	}
	identities := identity.NewMongoStore(db, cfg.IdentityCollection)

	issuer := auth.NewTokenIssuer([]byte(cfg.SecretKey), cfg.TokenTTL)
	srv := server.NewServer(log,
		auth.NewService(creds, issuer),
		identity.NewService(identities),
		issuer,
	)

	log.Info("server up and running", "addr", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, srv.Handler()); err != nil {
		log.Error("serve", "error", err)
		os.Exit(1)
	}
}
