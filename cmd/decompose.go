package cmd

import (
	"fmt"

	"github.com/openpai-contrib/jobsubmit/pkg"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

var decomposeCmd = &cobra.Command{
	Use:   "decompose",
	Short: "Decompose a job protocol into editable form components",
	RunE:  doDecompose,
}

func init() {
	rootCmd.AddCommand(decomposeCmd)

	decomposeCmd.PersistentFlags().StringVarP(&protocolFile, "file", "f", ".", "File to read the job protocol from. If '-' then reads from stdin. Defaults to read from './job.yaml'")
	decomposeCmd.Flags().StringSlice("virtual-clusters", []string{pkg.DefaultVirtualCluster}, "The virtual clusters the current user may submit to.")
	viper.BindPFlags(decomposeCmd.Flags())
}

func doDecompose(cmd *cobra.Command, args []string) error {
	protocol, err := readProtocolInput()
	if err != nil {
		return err
	}
	components, err := pkg.GetJobComponentsFromConfig(protocol, pkg.ComponentContext{
		VirtualClusters: viper.GetStringSlice("virtual-clusters"),
		Notifier:        pkg.NewLogNotifier(log.Logger),
	})
	if err != nil {
		return err
	}
	output, err := yaml.Marshal(components)
	if err != nil {
		return err
	}
	fmt.Print(string(output))
	return nil
}
