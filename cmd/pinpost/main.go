package main

import (
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/mdouchement/pinpost/internal/database"
	"github.com/mdouchement/pinpost/internal/geo"
	"github.com/mdouchement/pinpost/internal/pubsub"
	"github.com/mdouchement/pinpost/internal/server"
	"github.com/muesli/coral"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const dbname = "pinpost.db"

var (
	version  = "dev"
	revision = "none"
	date     = "unknown"

	cfg string
)

func main() {
	c := &coral.Command{
		Use:     "pinpost",
		Short:   "Item server with postcode geo enrichment",
		Version: fmt.Sprintf("%s - build %.7s @ %s - %s", version, revision, date, runtime.Version()),
		Args:    coral.ExactArgs(0),
	}
	initCmd.Flags().StringVarP(&cfg, "config", "c", "", "Configuration file")
	c.AddCommand(initCmd)

	reindexCmd.Flags().StringVarP(&cfg, "config", "c", "", "Configuration file")
	c.AddCommand(reindexCmd)

	serverCmd.Flags().StringVarP(&cfg, "config", "c", "", "Configuration file")
	c.AddCommand(serverCmd)

	if err := c.Execute(); err != nil {
		log.Fatalf("%+v", err)
	}
}

func configuration() (*koanf.Koanf, error) {
	konf := koanf.New(".")

	err := konf.Load(confmap.Provider(map[string]any{
		"address":             ":8080",
		"geocoder.endpoint":   "https://api.zippopotam.us/us",
		"geocoder.timeout":    "10s",
		"reference.latitude":  40.7128,
		"reference.longitude": -74.0060,
		"log.level":           "info",
	}, "."), nil)
	if err != nil {
		return nil, errors.Wrap(err, "could not load default configuration")
	}

	if cfg != "" {
		if err := konf.Load(file.Provider(cfg), yaml.Parser()); err != nil {
			return nil, errors.Wrap(err, "could not load configuration file")
		}
	}
	return konf, nil
}

func setupLogger(konf *koanf.Koanf) error {
	level, err := logrus.ParseLevel(konf.String("log.level"))
	if err != nil {
		return errors.Wrap(err, "could not parse log level")
	}
	logrus.SetLevel(level)

	if filename := konf.String("log.file"); filename != "" {
		logrus.SetOutput(&lumberjack.Logger{
			Filename:   filename,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
		})
	}
	return nil
}

func dbnameWithPath(path string) string {
	if len(path) == 0 {
		return dbname
	}
	return filepath.Join(path, dbname)
}

var (
	initCmd = &coral.Command{
		Use:   "init",
		Short: "Init the database",
		Args:  coral.ExactArgs(0),
		RunE: func(_ *coral.Command, _ []string) error {
			konf, err := configuration()
			if err != nil {
				return err
			}

			return database.StormInit(dbnameWithPath(konf.String("database_path")))
		},
	}

	//
	reindexCmd = &coral.Command{
		Use:   "reindex",
		Short: "Reindex the database",
		Args:  coral.ExactArgs(0),
		RunE: func(_ *coral.Command, _ []string) error {
			konf, err := configuration()
			if err != nil {
				return err
			}

			return database.StormReIndex(dbnameWithPath(konf.String("database_path")))
		},
	}

	//
	//
	serverCmd = &coral.Command{
		Use:   "server",
		Short: "Start server",
		Args:  coral.ExactArgs(0),
		RunE: func(_ *coral.Command, _ []string) error {
			konf, err := configuration()
			if err != nil {
				return err
			}

			if err := setupLogger(konf); err != nil {
				return err
			}

			db, err := database.StormOpen(dbnameWithPath(konf.String("database_path")))
			if err != nil {
				return errors.Wrap(err, "could not open database")
			}
			defer db.Close()

			geocoder, err := geo.NewClient(
				&http.Client{Timeout: konf.Duration("geocoder.timeout")},
				konf.String("geocoder.endpoint"),
			)
			if err != nil {
				return errors.Wrap(err, "could not setup geocoder client")
			}

			broker := pubsub.NewBroker(logrus.StandardLogger())
			defer broker.Close()
			if err := pubsub.RegisterLogListeners(broker, logrus.StandardLogger()); err != nil {
				return errors.Wrap(err, "could not register event listeners")
			}

			engine := server.EchoEngine(server.Controller{
				Version:  version,
				Database: db,
				Geocoder: geocoder,
				Events:   broker,
				Reference: geo.Point{
					Latitude:  konf.Float64("reference.latitude"),
					Longitude: konf.Float64("reference.longitude"),
				},
			})
			server.PrintRoutes(engine)

			address := konf.String("address")
			message := "could not run server"
			log.Printf("Server listening on %s\n", address)
			parts := strings.Split(address, ":")
			if len(parts) == 2 && parts[0] == "unix" {
				socketFile := parts[1]
				if _, err := os.Stat(socketFile); err == nil {
					log.Printf("Removing existing %s\n", socketFile)
					os.Remove(socketFile)
				}
				defer os.Remove(socketFile)
				listener, err := net.Listen(parts[0], socketFile)
				if err != nil {
					return err
				}
				return errors.Wrap(engine.Server.Serve(listener), message)
			}
			return errors.Wrap(engine.Start(address), message)
		},
	}
)
