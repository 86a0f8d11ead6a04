package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/kianooshaz/crude-server/http1"
	"github.com/kianooshaz/crude-server/server"
)

func main() {
	def := server.DefaultConfig()
	host := flag.String("host", def.Host, "listen host")
	port := flag.Int("port", def.Port, "listen port")
	variant := flag.String("handler", "http", "request handler: echo|http")
	level := flag.String("log-level", "info", "log level")
	flag.Parse()

	lvl, err := zerolog.ParseLevel(*level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid -log-level %q: %s\n", *level, err)
		os.Exit(2)
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(lvl).
		With().
		Timestamp().
		Logger()

	var handler server.RequestHandler
	switch *variant {
	case "echo":
		handler = server.Echo{}
	case "http":
		handler = http1.NewHandler(http1.DefaultTables(), http1.OSFiles{}, logger)
	default:
		fmt.Fprintf(os.Stderr, "unknown -handler %q (use echo|http)\n", *variant)
		flag.Usage()
		os.Exit(2)
	}

	s := server.New(server.Config{Host: *host, Port: *port}, handler, logger)
	if err := s.ListenAndServe(); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
