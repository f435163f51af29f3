package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/openpai-contrib/jobsubmit/pkg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "jobsubmit",
	Short: "Job protocol transformer",
	Long:  `Transforms a job protocol document for the submission plugin: decomposes it into editable components and injects or strips auto-generated command sections.`,
}

func Execute(version string, commit string, date string) {
	rootCmd.Version = fmt.Sprintf("%s (%s) %s", version, commit, date)
	pkg.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "./jobsubmit.yaml", "configuration options for the transformer")
	rootCmd.PersistentFlags().String("log-format", "TEXT", "overrides environment variable 'JOBSUBMIT_LOG_FORMAT' (options [\"JSON\", \"TEXT\"])")
	rootCmd.PersistentFlags().String("log-level", "INFO", "overrides environment variable 'JOBSUBMIT_LOG_LEVEL' (options [\"ERROR\", \"WARN\", \"INFO\", \"DEBUG\"])")

	rootCmd.PersistentFlags().String("rest-server-url", "", "The base URL of the platform rest-server used to resolve storage configs.")
	rootCmd.PersistentFlags().String("rest-server-token", "", "The bearer token for the platform rest-server.")

	viper.BindPFlags(rootCmd.PersistentFlags())
	viper.BindEnv("log-format", "JOBSUBMIT_LOG_FORMAT")
	viper.BindEnv("log-level", "JOBSUBMIT_LOG_LEVEL")
	viper.BindEnv("rest-server-url", "JOBSUBMIT_REST_SERVER_URL")
	viper.BindEnv("rest-server-token", "JOBSUBMIT_REST_SERVER_TOKEN")
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	readConfig()
	setupLogging()
}

func readConfig() {
	if cfgFile != "" {
		if cfgFile == "." {
			viper.SetConfigType("yaml")
			viper.ReadConfig(os.Stdin)
			return
		} else {
			viper.SetConfigFile(cfgFile)
		}
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.SetConfigName("jobsubmit")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath(home)
	}
	viper.SetEnvPrefix("JOBSUBMIT")
	viper.AutomaticEnv()
	viper.ReadInConfig()
}

func setupLogging() {
	logFormat := strings.ToLower(viper.GetString("log-format"))
	logLevel := strings.ToLower(viper.GetString("log-level"))

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if logFormat == "text" {
		output := zerolog.ConsoleWriter{Out: os.Stderr}
		log.Logger = log.Output(output)
	}

	switch {
	case logLevel == "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case logLevel == "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case logLevel == "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case logLevel == "trace":
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}
