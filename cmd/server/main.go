package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/uniquers/landing/internal/audit"
	"github.com/uniquers/landing/internal/db"
	"github.com/uniquers/landing/internal/services"
	"github.com/uniquers/landing/internal/web"
)

func main() {
	_ = godotenv.Load()

	// A failed DB open is not fatal: the service comes up degraded and
	// captures every lead to the audit log until the store is back.
	var gdb *gorm.DB
	var sink services.Sink
	conn, err := db.Open(getEnv("DB_PATH", "uniquers.db"))
	if err != nil {
		log.Printf("db open: %v (running degraded, leads go to the audit log)", err)
	} else {
		gdb = conn
		sink = services.NewGormSink(conn)
	}

	// Optional managed-table alternative to the local store.
	if os.Getenv("SINK") == "rest" {
		url := os.Getenv("REST_SINK_URL")
		if url == "" {
			log.Fatal("SINK=rest requires REST_SINK_URL")
		}
		sink = services.NewRestSink(url, os.Getenv("REST_SINK_KEY"))
	}

	fallback := audit.New(getEnv("AUDIT_LOG", "logs/leads-audit.jsonl"))
	defer fallback.Close()

	leads := services.New(sink, fallback, 5*time.Second)
	r := web.Router(leads, gdb)

	addr := getEnv("ADDR", ":8080")
	log.Printf("Uniquers landing listening on %s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal(err)
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
