package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "suryasaathi",
	Short: "SuryaSaathi - Rooftop solar installation evidence capture",
	Long:  `Captures GPS location and installation photos in the field and submits them for verification.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("api-base-url", "http://localhost:8000", "Backend base URL")
	rootCmd.PersistentFlags().String("token-path", ".artifacts/token", "Access token file path")
	rootCmd.PersistentFlags().String("sqlite-path", ".artifacts/submissions.db", "SQLite database path")
	rootCmd.PersistentFlags().String("fsm-db-path", ".artifacts/fsm.db", "FSM BoltDB path")
	rootCmd.PersistentFlags().String("work-dir", "/tmp/suryasaathi", "Working directory for staged payloads")
	rootCmd.PersistentFlags().String("media-dir", "", "Local photo library directory")
	rootCmd.PersistentFlags().String("evidence-bucket", "", "S3 bucket serving the photo library")
	rootCmd.PersistentFlags().String("evidence-region", "ap-south-1", "S3 region")
	rootCmd.PersistentFlags().String("evidence-prefix", "", "S3 key prefix for the photo library")
	rootCmd.PersistentFlags().String("location-command", "termux-location", "Positioning helper command")
	rootCmd.PersistentFlags().String("camera-command", "", "Camera helper command (empty = library only)")
	rootCmd.PersistentFlags().Int("min-identifier-len", 5, "Identifier length an application ID must exceed")
	rootCmd.PersistentFlags().Bool("allow-zero-coordinate", false, "Accept 0 as a valid coordinate")
	rootCmd.PersistentFlags().Int64("max-photo-size", 10*1024*1024, "Max photo size in bytes")

	viper.BindPFlag("api-base-url", rootCmd.PersistentFlags().Lookup("api-base-url"))
	viper.BindPFlag("token-path", rootCmd.PersistentFlags().Lookup("token-path"))
	viper.BindPFlag("sqlite-path", rootCmd.PersistentFlags().Lookup("sqlite-path"))
	viper.BindPFlag("fsm-db-path", rootCmd.PersistentFlags().Lookup("fsm-db-path"))
	viper.BindPFlag("work-dir", rootCmd.PersistentFlags().Lookup("work-dir"))
	viper.BindPFlag("media-dir", rootCmd.PersistentFlags().Lookup("media-dir"))
	viper.BindPFlag("evidence-bucket", rootCmd.PersistentFlags().Lookup("evidence-bucket"))
	viper.BindPFlag("evidence-region", rootCmd.PersistentFlags().Lookup("evidence-region"))
	viper.BindPFlag("evidence-prefix", rootCmd.PersistentFlags().Lookup("evidence-prefix"))
	viper.BindPFlag("location-command", rootCmd.PersistentFlags().Lookup("location-command"))
	viper.BindPFlag("camera-command", rootCmd.PersistentFlags().Lookup("camera-command"))
	viper.BindPFlag("min-identifier-len", rootCmd.PersistentFlags().Lookup("min-identifier-len"))
	viper.BindPFlag("allow-zero-coordinate", rootCmd.PersistentFlags().Lookup("allow-zero-coordinate"))
	viper.BindPFlag("max-photo-size", rootCmd.PersistentFlags().Lookup("max-photo-size"))
}
