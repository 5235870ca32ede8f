// Package root contains the root command for the application
package root

import (
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/t-8ch/burp/internal/aur"
	"github.com/t-8ch/burp/internal/catalog"
	"github.com/t-8ch/burp/internal/config"
	"github.com/t-8ch/burp/internal/logging"
	"github.com/t-8ch/burp/internal/login"
	"github.com/t-8ch/burp/internal/params"
	"github.com/t-8ch/burp/internal/upload"
)

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "burp [flags] targets...",
		Short: "Upload package tarballs to the AUR.",
		Long: `burp logs into the AUR and uploads one or more source package tarballs,
optionally assigning each a category. Credentials come from burp.conf or flags;
a stored login cookie is reused when one is available.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runUpload,
	}

	// Upload command flags
	Username    string
	Password    string
	CookieFile  string
	Category    string
	KeepCookies bool
	Domain      string
)

// Init initializes the root command and all flags
func Init() {
	Cmd.Flags().StringVarP(&Username, "user", "u", "", "AUR login username")
	Cmd.Flags().StringVarP(&Password, "password", "p", "", "AUR login password")
	Cmd.Flags().StringVarP(&Category, "category", "c", "", "Assign the uploaded packages category CAT ('help' lists valid categories)")
	Cmd.Flags().StringVarP(&CookieFile, "cookies", "C", "", "Use FILE to store cookies rather than the default temporary file")
	Cmd.Flags().BoolVarP(&KeepCookies, "keep-cookies", "k", false, "Keep cookies persistent and reuse them for logins (requires --cookies)")
	Cmd.Flags().StringVar(&Domain, "domain", "", "Domain of the AUR")
	// Matches the C original, which left --domain out of its help text.
	_ = Cmd.Flags().MarkHidden("domain")
}

func runUpload(cmd *cobra.Command, args []string) error {
	appConfig, err := config.InitializeConfig()
	if err != nil {
		return err
	}
	Log = config.ConfigureLogging(appConfig)
	logger := logging.NewLogrusAdapterFromLogger(Log)

	// `-c help` prints the category list instead of uploading.
	if Category == "help" {
		printCategories(cmd)
		return nil
	}

	fileValues, err := params.ReadConfigFile(logger)
	if err != nil {
		return err
	}

	cliValues := params.Values{
		Username:   Username,
		Password:   Password,
		CookieFile: CookieFile,
		Persist:    KeepCookies,
		Domain:     Domain,
		Category:   Category,
	}

	effective, err := params.Resolve(fileValues, cliValues, appConfig.AUR.Domain)
	if err != nil {
		var catErr *params.InvalidCategoryError
		if errors.As(err, &catErr) {
			fmt.Fprintln(cmd.ErrOrStderr(), "Valid categories:")
			for _, name := range catErr.Valid {
				fmt.Fprintf(cmd.ErrOrStderr(), "\t%s\n", name)
			}
		}
		return err
	}

	if len(args) == 0 {
		return errors.New("no targets specified (pass one or more package tarballs)")
	}

	client, err := aur.NewClient(effective.Domain,
		time.Duration(appConfig.AUR.TimeoutSeconds)*time.Second, logger)
	if err != nil {
		return err
	}
	client.SetUsername(effective.Username)
	client.SetPassword(effective.Password)
	client.SetCookieFile(effective.CookieFile)
	client.SetPersistCookies(effective.PersistCookies)

	ctx := cmd.Context()

	coordinator := login.NewCoordinator(client, logger)
	if err := coordinator.Authenticate(ctx); err != nil {
		return errors.New(login.Message(err))
	}
	logger.Debug("login complete",
		logging.Field{Key: logging.FieldDomain, Value: effective.Domain})

	orchestrator := upload.NewOrchestrator(client, logger)
	_, err = orchestrator.Run(ctx, args, effective.CategoryID)
	return err
}

func printCategories(cmd *cobra.Command) {
	fmt.Fprintln(cmd.OutOrStdout(), "Valid categories:")
	for _, name := range catalog.Names() {
		fmt.Fprintf(cmd.OutOrStdout(), "\t%s\n", name)
	}
}
