package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses configuration flags from args.
//
// Flags:
//
//	-a server listen address in format [host]:[port]
//	-server server address used by the client, with or without scheme
//	-d database DSN (server)
//	-users user directory JSON file (server)
//	-products product catalog JSON file (server)
//	-cache durable cache backend: sqlite or redis (client)
//	-cache-dsn sqlite cache file (client)
//	-redis-address redis address for the redis cache (client)
//	-c/-config json file path with configs
//	-request-timeout server request timeout (e.g., "30s")
//	-client-timeout client request timeout (e.g., "10s")
//	-cookie-ttl auth cookie lifetime (e.g., "24h")
//	-log-level log level
//	-render print one page and exit (client)
//	-version application version
func ParseFlags(args []string) (*StructuredConfig, error) {
	return parseFlags(args)
}

func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("storefront", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var serverAddress NetAddress
	var (
		adapterAddress string
		databaseDSN    string
		usersFile      string
		productsFile   string
		cacheBackend   string
		cacheDSN       string
		redisAddress   string
		jsonConfigPath string
		requestTimeout time.Duration
		clientTimeout  time.Duration
		cookieTTL      time.Duration
		logLevel       string
		renderPath     string
		version        string
	)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&adapterAddress, "server", "", "Server address used by the client")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&usersFile, "users", "", "User directory JSON file")
	fs.StringVar(&productsFile, "products", "", "Product catalog JSON file")
	fs.StringVar(&cacheBackend, "cache", "", "Durable cache backend (sqlite, redis)")
	fs.StringVar(&cacheDSN, "cache-dsn", "", "SQLite durable cache file")
	fs.StringVar(&redisAddress, "redis-address", "", "Redis address host:port")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Server request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&clientTimeout, "client-timeout", 0, "Client request timeout (e.g., 10s)")
	fs.DurationVar(&cookieTTL, "cookie-ttl", 0, "Auth cookie lifetime (e.g., 24h)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&renderPath, "render", "", "Render a single page and exit")
	fs.StringVar(&version, "version", "", "Application version")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Version: version,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Files: Files{
				UsersFile:    usersFile,
				ProductsFile: productsFile,
			},
			Cache: Cache{
				Backend:      cacheBackend,
				DSN:          cacheDSN,
				RedisAddress: redisAddress,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: clientTimeout,
		},
		Session: Session{
			CookieTTL: cookieTTL,
		},
		Log: Log{
			Level: logLevel,
		},
		UI: UI{
			RenderPath: renderPath,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost"
// or empty, and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
