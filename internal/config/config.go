package config

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shibukawa/configdir"
	"go.uber.org/zap"
)

const logsDirectory = "logs"

const VendorName = "fullmoon-games"
const ApplicationName = "werewolf-cli"

// DefaultServerURL is the development endpoint of the game server.
const DefaultServerURL = "http://localhost:3232"

var serverURL string
var playerName string
var master string
var debug bool
var anonymous bool

var Logger *zap.Logger
var LogFilePath string

func SetupLogger() {
	var c zap.Config
	if debug {
		c = zap.NewDevelopmentConfig()
	} else {
		c = zap.NewProductionConfig()
	}

	// The terminal is owned by the UI, logs go to a file.
	LogFilePath = createLogFile()
	c.OutputPaths = []string{LogFilePath}
	c.Development = false
	logger, err := c.Build()
	if err != nil {
		panic(err)
	}
	Logger = logger
}

func createLogFile() string {
	name := fmt.Sprintf("werewolf-%s.log", time.Now().UTC().Format(time.RFC3339))
	name = strings.Replace(name, ":", "-", -1)

	configDirs := configdir.New(VendorName, ApplicationName)
	folders := configDirs.QueryFolders(configdir.Global)
	path := filepath.Join(folders[0].Path, logsDirectory, name)

	if err := os.MkdirAll(filepath.Dir(path), 0770); err != nil {
		panic(err)
	}

	if _, err := os.Create(path); err != nil {
		panic(err)
	}

	return path
}

func ParseArguments() {
	flag.StringVar(&serverURL, "url", DefaultServerURL, "Game server URL (http, https, ws or wss)")
	flag.StringVar(&playerName, "name", "", "Player name to sign up with")
	flag.StringVar(&master, "room", "", "Room to sign up to")
	flag.BoolVar(&debug, "debug", false, "Show debug info")
	flag.BoolVar(&anonymous, "anonymous", false, "Do not persist credentials")
	flag.Parse()
}

func ServerURL() string {
	return serverURL
}

func PlayerName() string {
	return playerName
}

func Master() string {
	return master
}

func Debug() bool {
	return debug
}

func Anonymous() bool {
	return anonymous
}
