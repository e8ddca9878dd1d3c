package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/toyfactory/heijunkasim/internal/models"
	"github.com/toyfactory/heijunkasim/internal/simulator"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "heijunkasim",
	Short: "Levels toy production schedules from retailer orders",
	Long:  `heijunkasim is a CLI tool that turns retailer orders, toy bills-of-materials, and raw material inventories into a leveled (heijunka) day-by-day production plan, with projected material consumption and inventory depletion, plus a step-by-step explanation of the arithmetic.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		sim := simulator.NewSimulator(cfg)
		if err := sim.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Simulation failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is examples/config.json)")

	rootCmd.Flags().String("input-source", "file", "Where to read orders, toys, materials and suppliers from (file or postgres)")
	rootCmd.Flags().String("input-file", "examples/data.json", "Dataset file path when input-source is file")
	rootCmd.Flags().String("output-path", "", "Base directory for result row files (console output if empty)")
	rootCmd.Flags().String("output-folder", "results", "Folder under output-path for result rows")
	rootCmd.Flags().String("output-format", "json", "Result row format: json, csv or parquet")
	rootCmd.Flags().String("explanation-file", "", "File for the calculation explanation (stdout if empty)")
	rootCmd.Flags().Bool("kafka-enabled", false, "Enable Kafka output")
	rootCmd.Flags().String("kafka-broker-list", "localhost:9092", "Kafka broker list")

	viper.BindPFlags(rootCmd.Flags())
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath("examples")
		viper.SetConfigType("json")
		viper.SetConfigName("config")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
