package main

import (
	"context"
	"fmt"
	"os"
	"time"

	emailv1 "github.com/orderpost/orderpost/api/proto/email/v1"
	"github.com/orderpost/orderpost/internal/admin"
	"github.com/orderpost/orderpost/internal/notifier"
	"github.com/orderpost/orderpost/pkg/client"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"google.golang.org/protobuf/encoding/protojson"
)

// version is overridden by goreleaser via -ldflags "-X main.version=...".
var version = "dev"

var (
	cfgFile string
	addr    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "orderpost",
	Short: "orderpost email service client",
	Long: `orderpost is the command-line client for the orderpost email service.

It sends order-confirmation requests over gRPC and mints admin tokens for
the service's ops API.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if cfgFile != "" {
			viper.SetConfigFile(cfgFile)
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(home + "/.orderpost")
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
		viper.AutomaticEnv()
		_ = viper.ReadInConfig()

		if addr == "" {
			addr = viper.GetString("emailservice_addr")
		}
		if addr == "" {
			addr = notifier.DefaultAddr
		}
	},
	// Invoked bare, the client only announces itself.
	Run: func(cmd *cobra.Command, args []string) {
		logger, _ := zap.NewProduction()
		defer logger.Sync() //nolint:errcheck
		logger.Named("emailservice-client").Info("Client for email service.")
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.orderpost/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&addr, "addr", "", "email service address (default "+notifier.DefaultAddr+")")

	rootCmd.AddCommand(sendCmd)
	rootCmd.AddCommand(tokenCmd)
	rootCmd.AddCommand(versionCmd)
}

// ── send ─────────────────────────────────────────────────────────────────────

var (
	sendTo        string
	sendOrderPath string
	sendTimeout   time.Duration
	fireAndForget bool
)

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Send an order-confirmation email",
	Long: `Send reads an OrderResult from a JSON file and asks the email service
to deliver a confirmation to the recipient.

By default the call is synchronous and failures are reported with a non-zero
exit code. With --fire-and-forget the outcome is only logged, matching how
the checkout flow invokes the service.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		order, err := loadOrder(sendOrderPath)
		if err != nil {
			return err
		}

		if fireAndForget {
			logger, _ := zap.NewProduction()
			defer logger.Sync() //nolint:errcheck
			notifier.New(addr, logger).Notify(sendTo, order)
			return nil
		}

		c, err := client.New(addr, client.WithTimeout(sendTimeout))
		if err != nil {
			return err
		}
		defer c.Close() //nolint:errcheck

		messageID, err := c.SendOrderConfirmation(context.Background(), sendTo, order)
		if err != nil {
			return err
		}
		fmt.Printf("confirmation accepted: message_id=%s\n", messageID)
		return nil
	},
}

func init() {
	sendCmd.Flags().StringVar(&sendTo, "to", "", "recipient email address (required)")
	sendCmd.Flags().StringVar(&sendOrderPath, "order", "", "path to OrderResult JSON file (required)")
	sendCmd.Flags().DurationVar(&sendTimeout, "timeout", client.DefaultTimeout, "per-call timeout")
	sendCmd.Flags().BoolVar(&fireAndForget, "fire-and-forget", false, "log the outcome instead of reporting it")
	_ = sendCmd.MarkFlagRequired("to")
	_ = sendCmd.MarkFlagRequired("order")
}

// loadOrder parses an OrderResult from protojson on disk.
func loadOrder(path string) (*emailv1.OrderResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read order file: %w", err)
	}
	var order emailv1.OrderResult
	if err := protojson.Unmarshal(data, &order); err != nil {
		return nil, fmt.Errorf("parse order file %s: %w", path, err)
	}
	return &order, nil
}

// ── token ────────────────────────────────────────────────────────────────────

var tokenTTL time.Duration

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint an admin token for the ops API",
	RunE: func(cmd *cobra.Command, args []string) error {
		secret := viper.GetString("emailservice_admin_secret")
		if secret == "" {
			return fmt.Errorf("emailservice_admin_secret is not set (config or env)")
		}
		token, err := admin.IssueToken(secret, tokenTTL)
		if err != nil {
			return err
		}
		fmt.Println(token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", time.Hour, "token lifetime")
}

// ── version ──────────────────────────────────────────────────────────────────

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the client version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("orderpost", version)
	},
}
