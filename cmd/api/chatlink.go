package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"taxi-booking/internal/billing"
	"taxi-booking/internal/civil"
	"taxi-booking/internal/config"
)

var chatLinkFields = []string{"name", "phone", "date", "pickup", "drop", "amount", "vehicleNumber"}

// newChatLinkCmd prints a bill request deep link, for staff filling one in on
// a customer's behalf.
func newChatLinkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat-link",
		Short: "Print a bill request chat link",
		RunE:  runChatLink,
	}

	f := cmd.Flags()
	f.String("name", "", "customer name")
	f.String("phone", "", "customer phone")
	f.String("date", "", "trip date YYYY-MM-DD (default today in IST)")
	f.String("pickup", "", "pickup location")
	f.String("drop", "", "drop location")
	f.String("amount", "", "total fare")
	f.String("vehicleNumber", "", "vehicle registration number")
	return cmd
}

func runChatLink(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	form := billing.New(civil.NewProvider(nil))

	for _, field := range chatLinkFields {
		if !cmd.Flags().Changed(field) {
			continue
		}
		value, _ := cmd.Flags().GetString(field)
		if err := form.Set(field, value); err != nil {
			return err
		}
	}

	link, err := form.ChatLink(cfg.WhatsAppNumber)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), link)
	return nil
}
