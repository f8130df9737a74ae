package main

import (
	"flag"
	"log"
	"net/http"
	"os"

	"github.com/psidex/simgraph/internal/config"
	"github.com/psidex/simgraph/internal/lib"
	"github.com/psidex/simgraph/internal/simgraph"
	"github.com/psidex/simgraph/internal/similarity"
	"github.com/psidex/simgraph/internal/sweep"
	"github.com/psidex/simgraph/internal/webserver"
)

func main() {
	staticDir := flag.String("d", "public", "the directory to serve static files from")
	address := flag.String("b", "127.0.0.1:8080", "the ip:port to bind the webserver to")

	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger, err := lib.NewLogger(os.Stderr, cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}

	matrix, err := similarity.Load(cfg.MatrixPath)
	if err != nil {
		log.Fatalf("load matrix: %v", err)
	}
	ids, err := simgraph.LoadIdentifiers(cfg.GraphsGlob)
	if err != nil {
		log.Fatalf("load identifiers: %v", err)
	}
	in := sweep.Input{Matrix: matrix, Identifiers: ids}
	if err := simgraph.CheckAligned(ids, matrix.RawMatrix().Rows); err != nil {
		log.Fatalf("inputs: %v", err)
	}

	server := webserver.NewServer(cfg, in, logger)

	http.Handle("/", http.FileServer(http.Dir(*staticDir)))
	http.HandleFunc("/ws", server.Session)

	logger.Info("Listening", "address", *address, "static", *staticDir)
	log.Fatal(http.ListenAndServe(*address, nil))
}
