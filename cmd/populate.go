package cmd

import (
	"fmt"

	"github.com/openpai-contrib/jobsubmit/pkg"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var populateCmd = &cobra.Command{
	Use:   "populate",
	Short: "Inject the TensorBoard and storage-mount command sections",
	RunE:  doPopulate,
}

func init() {
	rootCmd.AddCommand(populateCmd)

	populateCmd.PersistentFlags().StringVarP(&protocolFile, "file", "f", ".", "File to read the job protocol from. If '-' then reads from stdin. Defaults to read from './job.yaml'")
	populateCmd.Flags().String("user", "", "The user the job is submitted as.")
	populateCmd.Flags().StringSlice("storage-configs", nil, "The names of the team storage configs to mount.")
	populateCmd.Flags().Int("metrics-port", 0, "When > 0, expose prometheus metrics on this port.")
	viper.BindPFlags(populateCmd.Flags())
}

func doPopulate(cmd *cobra.Command, args []string) error {
	protocol, err := readProtocolInput()
	if err != nil {
		return err
	}
	if port := viper.GetInt("metrics-port"); port > 0 {
		pkg.StartMetricsServer(port)
	}

	selected := make([]pkg.MountConfig, 0)
	for _, name := range viper.GetStringSlice("storage-configs") {
		selected = append(selected, pkg.MountConfig{Name: name})
	}
	var jobData pkg.JobData
	if restServerURL := viper.GetString("rest-server-url"); restServerURL != "" {
		jobData = pkg.NewStorageJobData(restServerURL, viper.GetString("rest-server-token"), log.Logger, selected...)
	} else {
		if len(selected) > 0 {
			log.Warn().Msg("No rest-server-url configured, storage configs will not be resolved")
		}
		jobData = pkg.NewStaticJobData(nil, selected...)
	}

	err = pkg.PopulateProtocolWithDataAndTensorBoard(cmd.Context(), viper.GetString("user"), protocol, jobData)
	if err != nil {
		return err
	}
	output, err := protocol.ToYAML()
	if err != nil {
		return err
	}
	fmt.Print(output)
	return nil
}
