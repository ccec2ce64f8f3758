package cmd

import (
	"errors"
	"io"
	"io/fs"
	"log"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"microsh.dev/microsh/core"
	"microsh.dev/microsh/core/config"
	"microsh.dev/microsh/core/logger"
	"microsh.dev/microsh/core/vfs"
)

var cfgPath string

func loadConfig() (*config.Configuration, error) {
	configuration, err := config.Load(afero.NewOsFs(), cfgPath)

	if errors.Is(err, fs.ErrNotExist) {
		log.Println("No configuration found, using defaults. Run init to create one.")
		return config.Default()
	}

	return configuration, err
}

// newShell assembles a shell from the configuration: storage backend,
// quota, event log, and session options.
func newShell(configuration *config.Configuration, reader core.LineReader, console io.Writer, interactive bool) (*core.Shell, io.Closer, error) {
	var backend afero.Fs
	if configuration.StorageDir != "" {
		if err := os.MkdirAll(configuration.StorageDir, 0755); err != nil {
			return nil, nil, err
		}
		backend = afero.NewBasePathFs(afero.NewOsFs(), configuration.StorageDir)
	} else {
		backend = afero.NewMemMapFs()
	}

	var fsOpts []vfs.Option
	if configuration.StorageQuotaBytes > 0 {
		fsOpts = append(fsOpts, vfs.WithQuota(configuration.StorageQuotaBytes))
	}

	var eventLog *logger.Logger
	var toClose io.Closer = nopCloser{}
	if configuration.LogFile != "" {
		fd, err := os.OpenFile(configuration.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
		if err != nil {
			return nil, nil, err
		}
		eventLog = logger.New(fd)
		toClose = fd
	}

	sh := core.NewShell(core.Options{
		FS:            vfs.New(backend, fsOpts...),
		Console:       console,
		Reader:        reader,
		Prompt:        configuration.Prompt,
		Hostname:      configuration.Hostname,
		Motd:          configuration.Motd,
		Aliases:       configuration.Aliases,
		StartupScript: configuration.StartupScript,
		Interactive:   interactive,
		Log:           eventLog,
	})

	return sh, toClose, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "microsh",
	Short: "A small Unix-like shell over a device filesystem.",
	Long: `microsh is an interactive command shell over a small virtual
filesystem, in the spirit of the line shells found on
microcontroller consoles.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", config.ConfigurationName, "path to the configuration file")
}
