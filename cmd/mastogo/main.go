package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/masto-go/mastogo/internal/apiclient"
	"github.com/masto-go/mastogo/internal/login"
	"github.com/masto-go/mastogo/internal/store"
)

const (
	rootCommandUse                  = "mastogo"
	rootCommandShortDescription     = "Command line client for Mastodon servers"
	loginCommandUse                 = "login"
	loginCommandShortDescription    = "Register this client and obtain an access token"
	whoamiCommandUse                = "whoami"
	whoamiCommandShortDescription   = "Show the account the stored token belongs to"
	timelineCommandUse              = "timeline"
	timelineCommandShortDescription = "Print the latest statuses from the home timeline"
	envPrefix                       = "MASTOGO"
	flagServerName                  = "server"
	flagServerDescription           = "Mastodon server to talk to"
	flagStoreName                   = "store"
	flagStoreDescription            = "Directory holding app and token records"
	flagLimitName                   = "limit"
	flagLimitDescription            = "Number of statuses to fetch"
	defaultServer                   = "mastodon.social"
	defaultLimit                    = 20
	defaultStoreDirName             = ".mastogo"
	applicationName                 = "mastogo"
	errMessageLoggerCreate          = "create logger"
	errMessageStoreCreate           = "open store"
	errMessageClientCreate          = "create api client"
	errMessageNotLoggedIn           = "no stored authorization for this server; run login first"
	errMessageCodeRead              = "read authorization code"
	logMessageAppRegistered         = "registered application"
	logMessageLoginComplete         = "login complete"
	logFieldServer                  = "server"
	logFieldClientID                = "client_id"
	promptAuthorizeFormat           = "Open this URL in a browser and authorize the application:\n\n  %s\n\nPaste the authorization code here: "
	outputWhoamiFormat              = "@%s (%s)\nFollowers: %d  Following: %d  Statuses: %d\n"
	outputStatusFormat              = "%s @%s\n%s\n\n"
)

func main() {
	cobra.CheckErr(newRootCommand().Execute())
}

func newRootCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   rootCommandUse,
		Short: rootCommandShortDescription,
	}

	command.PersistentFlags().String(flagServerName, defaultServer, flagServerDescription)
	command.PersistentFlags().String(flagStoreName, defaultStoreDirectory(), flagStoreDescription)
	bindFlagToViper(command, flagServerName)
	bindFlagToViper(command, flagStoreName)

	cobra.OnInitialize(configureEnvironment)

	command.AddCommand(newLoginCommand())
	command.AddCommand(newWhoamiCommand())
	command.AddCommand(newTimelineCommand())
	return command
}

func bindFlagToViper(command *cobra.Command, flagName string) {
	cobra.CheckErr(viper.BindPFlag(flagName, command.PersistentFlags().Lookup(flagName)))
}

func configureEnvironment() {
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func defaultStoreDirectory() string {
	homeDirectory, err := os.UserHomeDir()
	if err != nil {
		return defaultStoreDirName
	}
	return filepath.Join(homeDirectory, defaultStoreDirName)
}

func newLoginCommand() *cobra.Command {
	return &cobra.Command{
		Use:   loginCommandUse,
		Short: loginCommandShortDescription,
		RunE:  runLoginCommand,
	}
}

func runLoginCommand(command *cobra.Command, _ []string) error {
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("%s: %w", errMessageLoggerCreate, err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	serverValue := viper.GetString(flagServerName)
	recordStore, err := store.NewStore(viper.GetString(flagStoreName))
	if err != nil {
		return fmt.Errorf("%s: %w", errMessageStoreCreate, err)
	}
	client, err := apiclient.NewClient(apiclient.Config{Server: serverValue})
	if err != nil {
		return fmt.Errorf("%s: %w", errMessageClientCreate, err)
	}

	requestContext := command.Context()
	app, err := login.RegisterApp(requestContext, client, login.AppConfig{Name: applicationName})
	if err != nil {
		return err
	}
	if err := recordStore.SaveApp(serverValue, app); err != nil {
		return err
	}
	logger.Info(logMessageAppRegistered,
		zap.String(logFieldServer, serverValue),
		zap.String(logFieldClientID, app.ClientID),
	)

	authorizeURL, err := login.AuthorizeURL(serverValue, app, login.DefaultScopes)
	if err != nil {
		return err
	}
	fmt.Fprintf(command.OutOrStdout(), promptAuthorizeFormat, authorizeURL)

	codeReader := bufio.NewReader(command.InOrStdin())
	codeLine, err := codeReader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("%s: %w", errMessageCodeRead, err)
	}

	authorization, _, err := login.ExchangeCode(requestContext, client, app, strings.TrimSpace(codeLine))
	if err != nil {
		return err
	}
	if err := recordStore.SaveAuthorization(serverValue, authorization); err != nil {
		return err
	}
	logger.Info(logMessageLoginComplete, zap.String(logFieldServer, serverValue))
	return nil
}

func newWhoamiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   whoamiCommandUse,
		Short: whoamiCommandShortDescription,
		RunE:  runWhoamiCommand,
	}
}

func runWhoamiCommand(command *cobra.Command, _ []string) error {
	client, token, err := authorizedClient()
	if err != nil {
		return err
	}
	account, err := client.VerifyCredentials(command.Context(), token)
	if err != nil {
		return err
	}
	fmt.Fprintf(command.OutOrStdout(), outputWhoamiFormat,
		account.Acct,
		account.DisplayName,
		account.FollowersCount,
		account.FollowingCount,
		account.StatusesCount,
	)
	return nil
}

func newTimelineCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   timelineCommandUse,
		Short: timelineCommandShortDescription,
		RunE:  runTimelineCommand,
	}
	command.Flags().Int(flagLimitName, defaultLimit, flagLimitDescription)
	cobra.CheckErr(viper.BindPFlag(flagLimitName, command.Flags().Lookup(flagLimitName)))
	return command
}

func runTimelineCommand(command *cobra.Command, _ []string) error {
	client, token, err := authorizedClient()
	if err != nil {
		return err
	}
	statuses, err := client.HomeTimeline(command.Context(), token, viper.GetInt(flagLimitName))
	if err != nil {
		return err
	}
	for _, status := range statuses {
		displayed := status
		if status.Reblog != nil {
			displayed = *status.Reblog
		}
		fmt.Fprintf(command.OutOrStdout(), outputStatusFormat,
			displayed.CreatedAt,
			displayed.Account.Acct,
			displayed.Content,
		)
	}
	return nil
}

func authorizedClient() (*apiclient.Client, string, error) {
	serverValue := viper.GetString(flagServerName)
	recordStore, err := store.NewStore(viper.GetString(flagStoreName))
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", errMessageStoreCreate, err)
	}
	authorization, err := recordStore.LoadAuthorization(serverValue)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, "", fmt.Errorf(errMessageNotLoggedIn)
		}
		return nil, "", err
	}
	client, err := apiclient.NewClient(apiclient.Config{Server: serverValue})
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", errMessageClientCreate, err)
	}
	return client, authorization.Token, nil
}
