package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/automoto/vacuumarena/assets"
	cfg "github.com/automoto/vacuumarena/config"
	"github.com/automoto/vacuumarena/server/core"
)

func main() {
	tickRate := flag.Int("tickrate", 60, "Simulation tick rate (ticks per second)")
	seed := flag.Int64("seed", 0, "Seed for props, spawn points and enemy picks")
	difficulty := flag.String("difficulty", "normal", "Bot difficulty: easy, normal or hard")
	arenaFile := flag.String("arena", "", "TMX arena on disk instead of the embedded one")
	tuning := flag.String("tuning", "", "YAML tuning file applied before the run")
	fast := flag.Bool("fast", false, "Step as fast as possible instead of in real time")
	maxTicks := flag.Int("maxticks", 60*60*10, "Give up after this many ticks in fast mode")
	report := flag.Duration("report", 5*time.Second, "Interval between progress lines in real time mode")
	flag.Parse()

	if *tuning != "" {
		if err := cfg.LoadTuning(*tuning); err != nil {
			log.Fatalf("Tuning error: %v", err)
		}
	}
	diff, err := cfg.ParseBotDifficulty(*difficulty)
	if err != nil {
		log.Fatal(err)
	}

	opts := core.Options{TickRate: *tickRate, Seed: *seed, Difficulty: diff}
	if *arenaFile != "" {
		loader := assets.NewLevelLoader(os.DirFS(filepath.Dir(*arenaFile)))
		if opts.Arena, err = loader.LoadArena(filepath.Base(*arenaFile)); err != nil {
			log.Fatalf("Arena error: %v", err)
		}
	}

	server, err := core.NewServer(opts)
	if err != nil {
		log.Fatalf("Server error: %v", err)
	}

	if *fast {
		if !server.RunTicks(*maxTicks) {
			logStats(server.Stats())
			log.Fatalf("No result after %d ticks", *maxTicks)
		}
		logResult(server)
		return
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	log.Printf("Starting arena simulation (tick rate: %d/s, seed: %d, bot: %s)", *tickRate, *seed, diff)
	server.Start()

	ticker := time.NewTicker(*report)
	defer ticker.Stop()
	for {
		select {
		case <-sigChan:
			log.Println("Shutting down simulation...")
			server.Stop()
			logStats(server.Stats())
			return
		case <-server.Done():
			logResult(server)
			return
		case <-ticker.C:
			logStats(server.Stats())
		}
	}
}

func logStats(st core.Stats) {
	log.Printf("tick %d  %s  wave %d/%d  enemies %d  hp %.0f  held %d  score %.0f %s",
		st.Tick, st.Phase, st.Wave, st.Total, st.Enemies, st.Health, st.Held, st.Score, st.Rank)
}

func logResult(server *core.Server) {
	res := server.Result()
	logStats(server.Stats())
	log.Printf("Result: %s at wave %d, score %.0f", res.Result, res.Wave, res.Score)
}
