/*
Lr1serve starts an HTTP server that constructs canonical LR(1) parsers from
submitted grammars and, optionally, drives them over an input string.

Usage:

	lr1serve [flags]
	lr1serve [flags] -l [[ADDRESS]:PORT]

Once started, the server listens for HTTP requests and responds using a
small JSON REST API (see POST /api/v1/parse). By default it listens on
localhost:8080; this can be changed with the --listen/-l flag or the
LR1CONSTRUCT_LISTEN_ADDRESS environment variable.

The flags are:

	-v, --version
		Give the current version of lr1serve and then exit.

	-l, --listen LISTEN_ADDRESS
		Listen on the given address. Must be in BIND_ADDRESS:PORT or :PORT
		format. If not given, defaults to the value of environment variable
		LR1CONSTRUCT_LISTEN_ADDRESS, and if that is not given, defaults to
		localhost:8080.

	-c, --config FILE
		Load additional settings from the given TOML config file. Flags and
		the environment variable still take precedence over values read from
		it.
*/
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/BurntSushi/toml"
	"github.com/corvidlabs/lr1construct/internal/version"
	"github.com/corvidlabs/lr1construct/server"
	"github.com/spf13/pflag"
)

const (
	envListen = "LR1CONSTRUCT_LISTEN_ADDRESS"

	defaultHost = "localhost"
	defaultPort = 8080
)

// fileConfig is the shape of the optional TOML config file, in the manner
// of dekarrin/tunaq's server.Config: a plain struct decoded directly with
// BurntSushi/toml, holding only what flags/env vars don't already cover.
type fileConfig struct {
	Listen string `toml:"listen"`
}

var (
	flagVersion = pflag.BoolP("version", "v", false, "Give the current version of lr1serve and then exit.")
	flagListen  = pflag.StringP("listen", "l", "", "Listen on the given address.")
	flagConfig  = pflag.StringP("config", "c", "", "Load additional settings from the given TOML config file.")
)

func main() {
	pflag.Parse()

	if *flagVersion {
		fmt.Printf("lr1serve (lr1construct v%s)\n", version.Current)
		return
	}

	if args := pflag.Args(); len(args) > 0 {
		fmt.Fprintf(os.Stderr, "Too many arguments\nDo -h for help.\n")
		os.Exit(1)
	}

	listenAddr := os.Getenv(envListen)

	if *flagConfig != "" {
		var cfg fileConfig
		if _, err := toml.DecodeFile(*flagConfig, &cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Could not read config file: %s\n", err.Error())
			os.Exit(1)
		}
		if cfg.Listen != "" && listenAddr == "" {
			listenAddr = cfg.Listen
		}
	}

	if pflag.Lookup("listen").Changed {
		listenAddr = *flagListen
	}

	addr, err := resolveAddr(listenAddr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\nDo -h for help.\n", err.Error())
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(addr)
	log.Printf("INFO  Starting lr1construct server %s on %s...", version.Current, addr)
	if err := srv.ListenAndServe(ctx); err != nil {
		log.Fatalf("FATAL server exited: %s", err.Error())
	}
}

// resolveAddr validates and normalizes a possibly-empty listen string into
// a net/http-ready address, defaulting to localhost:8080.
func resolveAddr(listenAddr string) (string, error) {
	if listenAddr == "" {
		return fmt.Sprintf("%s:%d", defaultHost, defaultPort), nil
	}

	bindParts := strings.SplitN(listenAddr, ":", 2)
	if len(bindParts) != 2 {
		return "", fmt.Errorf("listen address %q is not in ADDRESS:PORT or :PORT format", listenAddr)
	}
	if _, err := strconv.Atoi(bindParts[1]); err != nil {
		return "", fmt.Errorf("%q is not a valid port number", bindParts[1])
	}
	return listenAddr, nil
}
