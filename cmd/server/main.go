package main

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/masto-go/mastogo/internal/apiclient"
	"github.com/masto-go/mastogo/internal/server"
)

const (
	commandUse              = "server"
	commandShortDescription = "Serve a Mastodon instance's public timeline over HTTP"
	envPrefix               = "MASTOGO_SERVER"
	flagHostName            = "host"
	flagHostDescription     = "Host interface for the HTTP server"
	flagPortName            = "port"
	flagPortDescription     = "Port for the HTTP server"
	flagServerName          = "instance"
	flagServerDescription   = "Mastodon instance to read the public timeline from"
	flagPageSizeName        = "page-size"
	flagPageSizeDescription = "Number of statuses per page"
	defaultHost             = "127.0.0.1"
	defaultPort             = 8080
	defaultInstance         = "mastodon.social"
	defaultPageSize         = 20
	errMessageLoggerCreate  = "create logger"
	errMessageClientCreate  = "create api client"
	errMessageRouterCreate  = "create router"
	errMessageListenServe   = "listen and serve"
	logMessageStartingUp    = "starting timeline server"
	logMessageServerStopped = "server stopped"
	logFieldAddress         = "address"
	logFieldInstance        = "instance"
)

func main() {
	cobra.CheckErr(newServerCommand().Execute())
}

func newServerCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   commandUse,
		Short: commandShortDescription,
		RunE:  runServerCommand,
	}

	command.Flags().String(flagHostName, defaultHost, flagHostDescription)
	command.Flags().Int(flagPortName, defaultPort, flagPortDescription)
	command.Flags().String(flagServerName, defaultInstance, flagServerDescription)
	command.Flags().Int(flagPageSizeName, defaultPageSize, flagPageSizeDescription)

	bindFlagToViper(command, flagHostName)
	bindFlagToViper(command, flagPortName)
	bindFlagToViper(command, flagServerName)
	bindFlagToViper(command, flagPageSizeName)

	cobra.OnInitialize(configureEnvironment)

	return command
}

func bindFlagToViper(command *cobra.Command, flagName string) {
	cobra.CheckErr(viper.BindPFlag(flagName, command.Flags().Lookup(flagName)))
}

func configureEnvironment() {
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func runServerCommand(*cobra.Command, []string) error {
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("%s: %w", errMessageLoggerCreate, err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	instanceHost := viper.GetString(flagServerName)
	client, err := apiclient.NewClient(apiclient.Config{Server: instanceHost})
	if err != nil {
		return fmt.Errorf("%s: %w", errMessageClientCreate, err)
	}

	router, err := server.NewRouter(server.RouterConfig{
		Source:   client,
		Logger:   logger,
		PageSize: viper.GetInt(flagPageSizeName),
	})
	if err != nil {
		return fmt.Errorf("%s: %w", errMessageRouterCreate, err)
	}

	address := fmt.Sprintf("%s:%d", viper.GetString(flagHostName), viper.GetInt(flagPortName))
	logger.Info(logMessageStartingUp,
		zap.String(logFieldAddress, address),
		zap.String(logFieldInstance, instanceHost),
	)
	if err := http.ListenAndServe(address, router); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("%s: %w", errMessageListenServe, err)
	}
	logger.Info(logMessageServerStopped)
	return nil
}
