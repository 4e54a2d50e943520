package main

import (
	"context"
	"log"
	"net/http"

	httpadapter "github.com/logitrack/assist/internal/adapters/http"
	"github.com/logitrack/assist/internal/adapters/llm"
	"github.com/logitrack/assist/internal/adapters/seed"
	firestorestore "github.com/logitrack/assist/internal/adapters/storage/firestore"
	memstore "github.com/logitrack/assist/internal/adapters/storage/memory"
	"github.com/logitrack/assist/internal/app/assist"
	"github.com/logitrack/assist/internal/app/chat"
	"github.com/logitrack/assist/internal/app/fleet"
	"github.com/logitrack/assist/internal/config"
	"github.com/logitrack/assist/internal/domain"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()

	shipments, vehicles, err := seed.Fleet()
	if err != nil {
		log.Fatalf("error loading fleet snapshot: %v", err)
	}

	// Responder: scripted rules or Gemini
	var responder domain.Responder
	switch cfg.Responder {
	case config.ResponderGemini:
		log.Println("[RESPONDER] Using Gemini responder")
		responder, err = llm.NewGeminiResponder(ctx, cfg.GCPProjectID, cfg.GCPLocation, cfg.ModelName)
		if err != nil {
			log.Fatalf("error initializing Gemini responder: %v", err)
		}
	default:
		log.Println("[RESPONDER] Using scripted responder")
		responder = assist.NewScriptedResponder(assist.DefaultKnowledgeBase())
	}

	// Storage: Firestore or Memory
	var sessionStore domain.SessionStore
	var turnStore domain.TurnStore

	switch cfg.StorageBackend {
	case "firestore":
		log.Printf("[STORE] Using Firestore storage (project=%s)", cfg.GCPProjectID)
		fsStore, err := firestorestore.NewStore(ctx, cfg.GCPProjectID)
		if err != nil {
			log.Fatalf("error initializing Firestore store: %v", err)
		}

		// 1 store, implements 2 interfaces
		sessionStore = fsStore
		turnStore = fsStore

	default:
		log.Println("[STORE] Using in-memory storage")
		sessionStore = memstore.NewSessionStore()
		turnStore = memstore.NewTurnStore()
	}

	chatSvc := chat.NewService(responder, sessionStore, turnStore, chat.NewTimerScheduler(), cfg.ReplyDelay)
	fleetSvc := fleet.NewService(shipments, vehicles)

	handler := httpadapter.NewServer(chatSvc, fleetSvc)

	addr := ":" + cfg.Port
	log.Println("LogiTrack assist API listening on", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatal(err)
	}
}
