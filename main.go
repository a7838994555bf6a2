package main

import (
	"log"
	"net/http"
	"os"

	"github.com/red-fox-ru/techshop/app/cmd"
	"github.com/red-fox-ru/techshop/app/configs"
	"github.com/red-fox-ru/techshop/app/routes"
	"github.com/red-fox-ru/techshop/app/utils/sessions"
)

func main() {

	// configs.LoadENV snapshots the environment at package init.
	if len(os.Args) > 1 {
		cmd.RunCli()
		return
	}

	db, err := configs.OpenConnection()
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}
	log.Println("✅ Database connected.")

	keys, err := configs.LoadSessionKeysFromEnv()
	if err != nil {
		log.Fatalf("Failed to load session keys: %v (run `techshop generate-keys`)", err)
	}
	sessionStore := sessions.NewCookieSessionStore(keys.AuthKey, keys.EncKey)

	router := routes.NewRouter(db, sessionStore)

	server := http.Server{
		Addr:    configs.LoadENV.Port,
		Handler: router,
	}

	log.Printf("🚀 Server starting on %s", server.Addr)
	if err := server.ListenAndServe(); err != nil {
		log.Println("failed to start the server:", err)
	}

}
