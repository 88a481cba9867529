package core

import (
	"log"
	"sync"
	"time"
)

// GameLoop steps a Server at a fixed real-time rate.
type GameLoop struct {
	server   *Server
	tickRate int
	stopChan chan struct{}
	stopOnce sync.Once
}

func NewGameLoop(server *Server, tickRate int) *GameLoop {
	return &GameLoop{
		server:   server,
		tickRate: max(1, tickRate),
		stopChan: make(chan struct{}),
	}
}

// Run blocks until Stop is called or the run ends.
func (g *GameLoop) Run() {
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	log.Printf("Game loop started at %d ticks/second", g.tickRate)

	for {
		select {
		case <-g.stopChan:
			log.Println("Game loop stopped")
			return
		case <-g.server.Done():
			log.Println("Game loop finished")
			return
		case <-ticker.C:
			g.server.Step()
		}
	}
}

func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() {
		close(g.stopChan)
	})
}
